// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import "testing"

func TestReadFixedWidth(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	if got, err := readU8(buf, 0); err != nil || got != 0x01 {
		t.Errorf("readU8 = %v, %v; want 0x01, nil", got, err)
	}
	if got, err := readU16(buf, 0); err != nil || got != 0x0201 {
		t.Errorf("readU16 = %#x, %v; want 0x0201, nil", got, err)
	}
	if got, err := readU32(buf, 0); err != nil || got != 0x04030201 {
		t.Errorf("readU32 = %#x, %v; want 0x04030201, nil", got, err)
	}
	if got, err := readU64(buf, 0); err != nil || got != 0x0807060504030201 {
		t.Errorf("readU64 = %#x, %v; want 0x0807060504030201, nil", got, err)
	}

	if _, err := readU32(buf, 6); err == nil {
		t.Error("readU32 past end of buf: want error, got nil")
	}
}

func TestBoundedSlice(t *testing.T) {
	buf := []byte{1, 2, 3, 4}

	got, err := boundedSlice(buf, 1, 2)
	if err != nil || len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("boundedSlice(1, 2) = %v, %v", got, err)
	}

	if _, err := boundedSlice(buf, 1, 10); err == nil {
		t.Error("boundedSlice past end of buf: want error, got nil")
	}

	// off+n overflowing uint32 must also fail, not wrap around into bounds.
	if _, err := boundedSlice(buf, 0xFFFFFFFF, 2); err == nil {
		t.Error("boundedSlice with overflowing range: want error, got nil")
	}
}

func TestReadNulPaddedName(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		off  uint32
		want string
		next uint32
	}{
		{"exact-4-byte-boundary", []byte("abc\x00"), 0, "abc", 4},
		{"pads-to-next-4", []byte("ab\x00\x00"), 0, "ab", 4},
		{"pads-across-two-words", []byte("abcdef\x00\x00"), 0, "abcdef", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next, err := readNulPaddedName(tt.buf, tt.off)
			if err != nil {
				t.Fatalf("readNulPaddedName: %v", err)
			}
			if got != tt.want || next != tt.next {
				t.Errorf("readNulPaddedName(%q) = %q, %d; want %q, %d", tt.buf, got, next, tt.want, tt.next)
			}
		})
	}
}

func TestReadLengthPrefixedString(t *testing.T) {
	buf := []byte{0x04, 0x00, 0x00, 0x00, 'v', '4', '.', '0'}
	got, next, err := readLengthPrefixedString(buf, 0)
	if err != nil {
		t.Fatalf("readLengthPrefixedString: %v", err)
	}
	if got != "v4.0" || next != 8 {
		t.Errorf("readLengthPrefixedString = %q, %d; want %q, 8", got, next, "v4.0")
	}
}

func TestDecodeCompressedUint(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want uint32
		n    uint32
	}{
		{"1-byte", []byte{0x03}, 0x03, 1},
		{"1-byte-max", []byte{0x7F}, 0x7F, 1},
		{"2-byte", []byte{0x80, 0x80}, 0x80, 2},
		{"2-byte-max", []byte{0xBF, 0xFF}, 0x3FFF, 2},
		{"4-byte", []byte{0xC0, 0x00, 0x40, 0x00}, 0x4000, 4},
		{"4-byte-max", []byte{0xDF, 0xFF, 0xFF, 0xFF}, 0x1FFFFFFF, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := decodeCompressedUint(tt.buf, 0)
			if err != nil {
				t.Fatalf("decodeCompressedUint: %v", err)
			}
			if got != tt.want || n != tt.n {
				t.Errorf("decodeCompressedUint(%x) = %#x, %d; want %#x, %d", tt.buf, got, n, tt.want, tt.n)
			}
		})
	}

	if _, _, err := decodeCompressedUint([]byte{0xF0}, 0); err == nil {
		t.Error("decodeCompressedUint with reserved 111xxxxx prefix: want error, got nil")
	}
}
