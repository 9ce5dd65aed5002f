// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import (
	"bytes"
	"testing"
)

func TestStringsHeapGet(t *testing.T) {
	// offset 0 is always the empty string; "Foo" starts at 1.
	h := StringsHeap{data: []byte("\x00Foo\x00Bar\x00")}

	tests := []struct {
		off  uint32
		want string
	}{
		{0, ""},
		{1, "Foo"},
		{5, "Bar"},
	}
	for _, tt := range tests {
		got, err := h.Get(tt.off)
		if err != nil {
			t.Errorf("Get(%d) error: %v", tt.off, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%d) = %q, want %q", tt.off, got, tt.want)
		}
	}

	if _, err := h.Get(9999); err == nil {
		t.Error("Get with out-of-range offset: want error, got nil")
	}
}

func TestBlobsHeapGet(t *testing.T) {
	// index 0 is the single 0x00 byte, the empty blob.
	h := BlobsHeap{data: []byte{0x00, 0x03, 0xAA, 0xBB, 0xCC}}

	empty, err := h.Get(0)
	if err != nil || len(empty) != 0 {
		t.Errorf("Get(0) = %v, %v; want empty blob, nil", empty, err)
	}

	got, err := h.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !bytes.Equal(got, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("Get(1) = %x, want aabbcc", got)
	}
}

func TestGuidsHeapGet(t *testing.T) {
	var g1, g2 [16]byte
	for i := range g1 {
		g1[i] = byte(i)
	}
	for i := range g2 {
		g2[i] = byte(0xF0 + i)
	}
	data := append(append([]byte{}, g1[:]...), g2[:]...)
	h := GuidsHeap{data: data}

	// id 0 means "absent", per spec: zero value, ok == false, no error.
	zero, ok, err := h.Get(0)
	if err != nil || ok || zero != (Guid{}) {
		t.Errorf("Get(0) = %v, %v, %v; want zero, false, nil", zero, ok, err)
	}

	got1, ok, err := h.Get(1)
	if err != nil || !ok || got1 != Guid(g1) {
		t.Errorf("Get(1) = %v, %v, %v; want first guid, true, nil", got1, ok, err)
	}

	got2, ok, err := h.Get(2)
	if err != nil || !ok || got2 != Guid(g2) {
		t.Errorf("Get(2) = %v, %v, %v; want second guid, true, nil", got2, ok, err)
	}

	if _, _, err := h.Get(3); err == nil {
		t.Error("Get(3) past the heap: want error, got nil")
	}
}

func TestUserStringsHeapGet(t *testing.T) {
	// A two-char UTF-16LE string "Hi" (4 bytes) plus its trailing terminal
	// byte, length-prefixed as a 1-byte compressed unsigned integer (5).
	h := UserStringsHeap{data: []byte{0x05, 'H', 0x00, 'i', 0x00, 0x01}}

	got, err := h.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	want := []byte{'H', 0x00, 'i', 0x00, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("Get(0) = %x, want %x", got, want)
	}
}
