// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import "testing"

func TestCodedIndexRoundTrip(t *testing.T) {
	for kind, def := range codedIndexDefs {
		kind, def := kind, def
		t.Run(codedIndexNames[kind], func(t *testing.T) {
			for tag := uint32(0); tag < uint32(len(def.candidates)); tag++ {
				if invalidCodedTags[kind][tag] {
					continue
				}
				rowID := uint32(42)
				raw := encodeCodedIndex(kind, tag, rowID)
				got, err := DecodeCodedIndex(kind, raw)
				if err != nil {
					t.Fatalf("tag %d: DecodeCodedIndex: %v", tag, err)
				}
				want := def.candidates[tag]
				if got.Table != want || got.RowID != rowID {
					t.Errorf("tag %d: got {%v %d}, want {%v %d}", tag, got.Table, got.RowID, want, rowID)
				}
			}
		})
	}
}

func TestCodedIndexReservedTag(t *testing.T) {
	// CustomAttributeType reserves tags 0, 1 and 4; only 2 (MethodDef) and
	// 3 (MemberRef) are valid.
	for _, tag := range []uint32{0, 1, 4} {
		raw := encodeCodedIndex(CustomAttributeType, tag, 1)
		if _, err := DecodeCodedIndex(CustomAttributeType, raw); err == nil {
			t.Errorf("tag %d: want error for reserved CustomAttributeType tag, got nil", tag)
		}
	}
}

func TestCodedIndexWidth(t *testing.T) {
	// TypeDefOrRef has a 2-bit tag; with every candidate table under
	// 2^14 rows the field stays 2 bytes, but once one candidate crosses
	// that threshold the field widens to 4.
	small := &Widths{rows: [64]uint32{}}
	if got := TypeDefOrRef.width(small); got != 2 {
		t.Errorf("width with small tables = %d, want 2", got)
	}

	large := &Widths{rows: [64]uint32{}}
	large.rows[TypeDef] = 1 << 14
	if got := TypeDefOrRef.width(large); got != 4 {
		t.Errorf("width with a table at 2^14 rows = %d, want 4", got)
	}
}
