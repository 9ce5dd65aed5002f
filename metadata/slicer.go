// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// tableRegion is the byte span, within the `#~`/`#-` stream body, that
// holds one table's rows back to back.
type tableRegion struct {
	off uint32
	n   uint32 // length in bytes, rowCount * rowSize
}

// sliceTables walks the valid table ids in ascending order (spec §4.5) and
// carves out each one's contiguous row region from body, the bytes that
// follow a tables header's row-count array. Ascending order matters: table
// regions are laid out back to back with no padding, so each table's
// offset is the end offset of the one before it.
func sliceTables(body []byte, h *tablesHeader, w *Widths) (map[TableID]tableRegion, error) {
	regions := make(map[TableID]tableRegion, maxTableID+1)
	var off uint32
	for id := 0; id <= maxTableID; id++ {
		if !h.isValid(id) {
			continue
		}
		t := TableID(id)
		rowCount := h.Rows[id]
		rowSize := w.RowSize(t)
		n := rowCount * rowSize
		if uint64(rowCount)*uint64(rowSize) != uint64(n) {
			return nil, errBadLength(n)
		}
		end := off + n
		if end < off || uint64(end) > uint64(len(body)) {
			return nil, errBadLength(end)
		}
		regions[t] = tableRegion{off: off, n: n}
		off = end
	}
	return regions, nil
}

func (r tableRegion) slice(body []byte) ([]byte, error) {
	return boundedSlice(body, r.off, r.n)
}
