// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import "testing"

// decodeTestByteRow treats a 1-byte row as malformed when its value is
// 0xFF, letting tests exercise the "one bad row doesn't block the rest"
// contract of Table.Get/Iter without needing a real table schema.
func decodeTestByteRow(buf []byte, w *Widths) (byte, uint32, error) {
	if buf[0] == 0xFF {
		return 0, 1, errMalformed("test row")
	}
	return buf[0], 1, nil
}

func TestTableGet(t *testing.T) {
	data := []byte{10, 20, 30}
	tbl := newTable(data, 1, 3, &Widths{}, decodeTestByteRow)

	if got := tbl.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if tbl.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}

	for id, want := range map[uint32]byte{1: 10, 2: 20, 3: 30} {
		got, err := tbl.Get(id)
		if err != nil {
			t.Errorf("Get(%d): %v", id, err)
			continue
		}
		if got != want {
			t.Errorf("Get(%d) = %d, want %d", id, got, want)
		}
	}

	if _, err := tbl.Get(0); err == nil {
		t.Error("Get(0): want BadRowID error, got nil")
	}
	if _, err := tbl.Get(4); err == nil {
		t.Error("Get(4) past row count: want BadRowID error, got nil")
	}
}

func TestTableEmpty(t *testing.T) {
	tbl := newTable(nil, 0, 0, &Widths{}, decodeTestByteRow)
	if !tbl.IsEmpty() {
		t.Error("IsEmpty() = false, want true for a zero-row table")
	}
	it := tbl.Iter()
	if _, ok, _ := it.Next(); ok {
		t.Error("Iter().Next() on an empty table: want ok == false")
	}
}

func TestTableIterSkipsMalformedRowsWithoutStopping(t *testing.T) {
	// Row 2 is malformed (0xFF); rows 1 and 3 must still decode.
	data := []byte{10, 0xFF, 30}
	tbl := newTable(data, 1, 3, &Widths{}, decodeTestByteRow)

	it := tbl.Iter()
	var gotRows []byte
	var errCount int
	for {
		row, ok, err := it.Next()
		if !ok {
			break
		}
		if err != nil {
			errCount++
			continue
		}
		gotRows = append(gotRows, row)
	}

	if errCount != 1 {
		t.Errorf("errCount = %d, want 1", errCount)
	}
	if len(gotRows) != 2 || gotRows[0] != 10 || gotRows[1] != 30 {
		t.Errorf("decoded rows = %v, want [10 30]", gotRows)
	}
}
