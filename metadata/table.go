// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// decodeRowFunc decodes one row of a table's region, returning the
// decoded row and the number of bytes consumed.
type decodeRowFunc[T any] func(buf []byte, w *Widths) (T, uint32, error)

// Table is a random-access, allocation-free view over one metadata
// table's rows (spec §4.7). Row ids are 1-based per ECMA-335; Get rejects
// id 0 and any id beyond the table's row count with BadRowID.
//
// Table is a thin slice of the underlying metadata buffer: constructing
// one does no copying and no decoding beyond what Get/Next touch.
type Table[T any] struct {
	data     []byte
	rowSize  uint32
	rowCount uint32
	w        *Widths
	decode   decodeRowFunc[T]
}

func newTable[T any](data []byte, rowSize, rowCount uint32, w *Widths, decode decodeRowFunc[T]) Table[T] {
	return Table[T]{data: data, rowSize: rowSize, rowCount: rowCount, w: w, decode: decode}
}

// Len returns the table's declared row count.
func (t Table[T]) Len() uint32 { return t.rowCount }

// IsEmpty reports whether the table has no rows.
func (t Table[T]) IsEmpty() bool { return t.rowCount == 0 }

// Get decodes and returns the 1-based row id. A malformed row does not
// prevent decoding any other row (spec testable property: independent
// row failures).
func (t Table[T]) Get(id uint32) (T, error) {
	var zero T
	if id == 0 || id > t.rowCount {
		return zero, errBadRowID(id)
	}
	off := (id - 1) * t.rowSize
	buf, err := boundedSlice(t.data, off, t.rowSize)
	if err != nil {
		return zero, err
	}
	row, _, err := t.decode(buf, t.w)
	if err != nil {
		return zero, err
	}
	return row, nil
}

// Iter returns a restartable sequential iterator over the table's rows,
// in row-id order starting at 1. Each call to Next decodes exactly one
// row; no intermediate allocation beyond the returned value occurs.
func (t Table[T]) Iter() *TableIter[T] {
	return &TableIter[T]{table: t, next: 1}
}

// TableIter sequentially walks a Table's rows.
type TableIter[T any] struct {
	table Table[T]
	next  uint32
}

// Next returns the next row, false once the table is exhausted. A
// decoding error on one row is returned alongside ok == true so the
// caller can skip it and keep iterating; the iterator always advances.
func (it *TableIter[T]) Next() (row T, ok bool, err error) {
	if it.next > it.table.rowCount {
		return row, false, nil
	}
	id := it.next
	it.next++
	row, err = it.table.Get(id)
	return row, true, err
}
