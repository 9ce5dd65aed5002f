// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import "encoding/binary"

// Byte cursor / primitives (spec §4.1/§4.2): little-endian fixed-width
// reads, length-prefixed/4-byte-padded ASCII names, ECMA compressed-unsigned
// length decoding, and bounded slice extraction. Every function here
// borrows from buf; none of them allocate.

func readU8(buf []byte, off uint32) (uint8, error) {
	if off >= uint32(len(buf)) {
		return 0, errBadOffset(off)
	}
	return buf[off], nil
}

func readU16(buf []byte, off uint32) (uint16, error) {
	if off+2 > uint32(len(buf)) {
		return 0, errBadOffset(off)
	}
	return binary.LittleEndian.Uint16(buf[off:]), nil
}

func readU32(buf []byte, off uint32) (uint32, error) {
	if off+4 > uint32(len(buf)) {
		return 0, errBadOffset(off)
	}
	return binary.LittleEndian.Uint32(buf[off:]), nil
}

func readU64(buf []byte, off uint32) (uint64, error) {
	if off+8 > uint32(len(buf)) {
		return 0, errBadOffset(off)
	}
	return binary.LittleEndian.Uint64(buf[off:]), nil
}

// boundedSlice returns buf[off:off+n], failing if that range would run past
// the end of buf or overflow.
func boundedSlice(buf []byte, off, n uint32) ([]byte, error) {
	end := off + n
	if end < off || end > uint32(len(buf)) {
		return nil, errBadLength(n)
	}
	return buf[off:end], nil
}

// readNulPaddedName reads a NUL-terminated ASCII string starting at off,
// then advances past trailing zero padding to the next 4-byte boundary
// relative to off, matching the metadata stream header name encoding of
// spec §4.1 item 5.
func readNulPaddedName(buf []byte, off uint32) (string, uint32, error) {
	start := off
	i := off
	for {
		b, err := readU8(buf, i)
		if err != nil {
			return "", 0, err
		}
		if b == 0 {
			break
		}
		i++
	}
	name := string(buf[start:i])
	consumed := i - start + 1
	padded := (consumed + 3) &^ 3
	return name, start + padded, nil
}

// readLengthPrefixedString reads the root header's version string (spec
// §4.1 item 3): a u32 length followed by that many bytes, NUL-scanned
// within that span.
func readLengthPrefixedString(buf []byte, off uint32) (string, uint32, error) {
	length, err := readU32(buf, off)
	if err != nil {
		return "", 0, err
	}
	data, err := boundedSlice(buf, off+4, length)
	if err != nil {
		return "", 0, err
	}
	end := 0
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[:end]), off + 4 + length, nil
}

// decodeCompressedUint decodes an ECMA-335 "compressed unsigned integer"
// (§4.2, used by the `#Blob` and `#US` streams): the top bits of the first
// byte select a 1, 2, or 4 byte encoding.
//
//	0xxxxxxx                           -> 1 byte,  value in bits 0-6
//	10xxxxxx xxxxxxxx                  -> 2 bytes, value in bits 0-13, big-endian
//	110xxxxx xxxxxxxx xxxxxxxx xxxxxxxx -> 4 bytes, value in bits 0-28, big-endian
func decodeCompressedUint(buf []byte, off uint32) (value uint32, n uint32, err error) {
	b0, err := readU8(buf, off)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case b0&0x80 == 0:
		return uint32(b0), 1, nil
	case b0&0xC0 == 0x80:
		b1, err := readU8(buf, off+1)
		if err != nil {
			return 0, 0, err
		}
		return (uint32(b0&0x3F) << 8) | uint32(b1), 2, nil
	case b0&0xE0 == 0xC0:
		rest, err := boundedSlice(buf, off+1, 3)
		if err != nil {
			return 0, 0, err
		}
		v := (uint32(b0&0x1F) << 24) | (uint32(rest[0]) << 16) | (uint32(rest[1]) << 8) | uint32(rest[2])
		return v, 4, nil
	default:
		return 0, 0, errMalformed("compressed-unsigned")
	}
}
