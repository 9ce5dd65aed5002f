// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// padName NUL-terminates name and pads it to the next 4-byte boundary, the
// on-disk encoding of a stream header's name (spec §4.1 item 5).
func padName(name string) []byte {
	b := append([]byte(name), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

type streamSpec struct {
	name string
	off  uint32
	size uint32
}

// buildRoot assembles a minimal, well-formed metadata root header with the
// given stream directory. It does not include the stream bodies themselves;
// tests that need those append them after the header and set offsets
// accordingly.
func buildRoot(version string, streams []streamSpec) []byte {
	var buf bytes.Buffer
	u32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }
	u16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }

	u32(rootMagic)
	u16(1) // MajorVersion
	u16(1) // MinorVersion
	u32(0) // reserved

	verBytes := padName(version)
	u32(uint32(len(verBytes)))
	buf.Write(verBytes)

	u16(0) // flags, reserved
	u16(uint16(len(streams)))

	for _, s := range streams {
		u32(s.off)
		u32(s.size)
		buf.Write(padName(s.name))
	}

	return buf.Bytes()
}

func TestParseRootBasic(t *testing.T) {
	buf := buildRoot("v4.0.30319", []streamSpec{
		{"#Strings", 100, 10},
		{"#US", 110, 20},
		{"#GUID", 130, 16},
		{"#Blob", 146, 8},
		{"#~", 154, 40},
	})

	r, err := parseRoot(buf)
	if err != nil {
		t.Fatalf("parseRoot: %v", err)
	}
	if r.Version != "v4.0.30319" {
		t.Errorf("Version = %q, want v4.0.30319", r.Version)
	}
	if r.Strings == nil || r.Strings.Offset != 100 || r.Strings.Size != 10 {
		t.Errorf("Strings = %+v, want {100 10 #Strings}", r.Strings)
	}
	if r.UserStrings == nil || r.UserStrings.Offset != 110 {
		t.Errorf("UserStrings = %+v", r.UserStrings)
	}
	if r.Guid == nil || r.Guid.Offset != 130 {
		t.Errorf("Guid = %+v", r.Guid)
	}
	if r.Blob == nil || r.Blob.Offset != 146 {
		t.Errorf("Blob = %+v", r.Blob)
	}
	if r.Tables == nil || r.TablesName != "#~" || r.Tables.Offset != 154 {
		t.Errorf("Tables = %+v, TablesName = %q", r.Tables, r.TablesName)
	}
}

func TestParseRootBadMagic(t *testing.T) {
	buf := buildRoot("v4.0.30319", nil)
	buf[0] = 0xFF
	if _, err := parseRoot(buf); err == nil {
		t.Error("parseRoot with corrupted magic: want error, got nil")
	}
}

func TestParseRootKeepsFirstDuplicateStream(t *testing.T) {
	// An obfuscator-style image duplicating #Strings: the first occurrence
	// wins, the second is silently discarded (spec §3 testable property 4).
	buf := buildRoot("v4.0.30319", []streamSpec{
		{"#Strings", 100, 10},
		{"#Strings", 200, 99},
	})

	r, err := parseRoot(buf)
	if err != nil {
		t.Fatalf("parseRoot: %v", err)
	}
	if r.Strings == nil || r.Strings.Offset != 100 || r.Strings.Size != 10 {
		t.Errorf("Strings = %+v, want the first occurrence {100 10}", r.Strings)
	}
}

func TestParseRootUnknownStreamDiscarded(t *testing.T) {
	buf := buildRoot("v4.0.30319", []streamSpec{
		{"#Weird", 100, 10},
		{"#Strings", 200, 10},
	})

	r, err := parseRoot(buf)
	if err != nil {
		t.Fatalf("parseRoot: %v", err)
	}
	if r.Strings == nil || r.Strings.Offset != 200 {
		t.Errorf("Strings = %+v, want {200 10}", r.Strings)
	}
}

func TestParseRootNoTablesStreamIsNotAnError(t *testing.T) {
	buf := buildRoot("v4.0.30319", []streamSpec{
		{"#Strings", 100, 10},
	})

	r, err := parseRoot(buf)
	if err != nil {
		t.Fatalf("parseRoot: %v", err)
	}
	if r.Tables != nil {
		t.Errorf("Tables = %+v, want nil", r.Tables)
	}
}
