// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// HeapSizes are the three flag bits of the `#~` header that select whether
// indexes into the `#Strings`, `#GUID`, and `#Blob` heaps are 2 or 4 bytes
// wide (spec §4.3/§4.4).
type HeapSizes uint8

const (
	// WideStringHeap: `#Strings` heap indexes are 4 bytes wide.
	WideStringHeap HeapSizes = 0x01
	// WideGUIDHeap: `#GUID` heap indexes are 4 bytes wide.
	WideGUIDHeap HeapSizes = 0x02
	// WideBlobHeap: `#Blob` heap indexes are 4 bytes wide.
	WideBlobHeap HeapSizes = 0x04
)

func (h HeapSizes) has(bit HeapSizes) bool { return h&bit != 0 }

// tablesHeader is the decoded `#~`/`#-` stream header (spec §4.3).
type tablesHeader struct {
	MajorVersion uint8
	MinorVersion uint8
	HeapSizes    HeapSizes
	Valid        uint64
	Sorted       uint64
	Rows         [64]uint32
}

// isValid reports whether table id i is present.
func (h *tablesHeader) isValid(i int) bool {
	return h.Valid&(1<<uint(i)) != 0
}

// parseTablesHeader decodes the `#~` stream header starting at off in buf
// and returns the header plus the byte offset immediately following the
// per-table row-count array, i.e. the start of the first table's region.
func parseTablesHeader(buf []byte, off uint32) (*tablesHeader, uint32, error) {
	// 4 bytes reserved, must be 0 -- not enforced (spec §9 tolerance).
	off += 4

	h := &tablesHeader{}
	major, err := readU8(buf, off)
	if err != nil {
		return nil, 0, err
	}
	h.MajorVersion = major
	off++

	minor, err := readU8(buf, off)
	if err != nil {
		return nil, 0, err
	}
	h.MinorVersion = minor
	off++

	heapSizes, err := readU8(buf, off)
	if err != nil {
		return nil, 0, err
	}
	h.HeapSizes = HeapSizes(heapSizes)
	off++

	// 1 byte reserved, nominally 1 -- not enforced.
	off++

	if h.Valid, err = readU64(buf, off); err != nil {
		return nil, 0, err
	}
	off += 8

	if h.Sorted, err = readU64(buf, off); err != nil {
		return nil, 0, err
	}
	off += 8

	for i := 0; i < 64; i++ {
		if !h.isValid(i) {
			continue
		}
		rows, err := readU32(buf, off)
		if err != nil {
			return nil, 0, err
		}
		h.Rows[i] = rows
		off += 4
	}

	return h, off, nil
}
