// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import "unicode/utf8"

// Heap views (spec §3, §4.2): four read-only indexable containers over
// borrowed byte ranges. None of them scan or validate beyond what decoding
// the requested entry requires; the heaps may contain unreachable garbage
// between the entries that a table row actually references.

// StringsHeap is the `#Strings` stream: concatenated NUL-terminated UTF-8
// strings, addressed by byte offset. Offset 0 is always the empty string.
type StringsHeap struct {
	data []byte
}

// Get returns the NUL-terminated UTF-8 string starting at off.
func (h StringsHeap) Get(off uint32) (string, error) {
	if int(off) > len(h.data) {
		return "", errBadStringID(off)
	}
	end := off
	for {
		b, err := readU8(h.data, end)
		if err != nil {
			return "", errBadStringID(off)
		}
		if b == 0 {
			break
		}
		end++
	}
	s := h.data[off:end]
	if !utf8.Valid(s) {
		return "", errUtf8(errMalformed("#Strings"))
	}
	return string(s), nil
}

// UserStringsHeap is the `#US` stream: length-prefixed UTF-16LE strings
// with a trailing terminal byte. Decoding policy is left to callers (spec
// non-goal); this heap only exposes the raw bytes of the entry, length
// prefix consumed.
type UserStringsHeap struct {
	data []byte
}

// Get returns the raw bytes of the `#US` entry at off: the UTF-16LE code
// units plus the trailing terminal byte, with the compressed-unsigned
// length prefix already stripped.
func (h UserStringsHeap) Get(off uint32) ([]byte, error) {
	length, n, err := decodeCompressedUint(h.data, off)
	if err != nil {
		return nil, err
	}
	return boundedSlice(h.data, off+n, length)
}

// BlobsHeap is the `#Blob` stream: length-prefixed opaque byte blobs. Index
// 0 is always the single byte 0x00, the empty blob.
type BlobsHeap struct {
	data []byte
}

// Get decodes the compressed-unsigned length prefix at off and returns the
// following length bytes.
func (h BlobsHeap) Get(off uint32) ([]byte, error) {
	length, n, err := decodeCompressedUint(h.data, off)
	if err != nil {
		return nil, err
	}
	return boundedSlice(h.data, off+n, length)
}

// Guid is a 16-byte globally unique identifier, returned by value.
type Guid [16]byte

// GuidsHeap is the `#GUID` stream: packed 16-byte GUIDs, 1-based indexing.
type GuidsHeap struct {
	data []byte
}

// Get returns the GUID at the 1-based index id, or (zero, false, nil) if id is 0
// ("absent"), per spec §4.2 and testable property 7.
func (h GuidsHeap) Get(id uint32) (Guid, bool, error) {
	if id == 0 {
		return Guid{}, false, nil
	}
	off := (id - 1) * 16
	b, err := boundedSlice(h.data, off, 16)
	if err != nil {
		return Guid{}, false, errBadGuidID(id)
	}
	var g Guid
	copy(g[:], b)
	return g, true, nil
}
