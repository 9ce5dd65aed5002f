// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildMetadataRoot assembles a complete, minimal metadata root: header,
// stream directory, and the named streams' bodies laid out immediately
// after the header, in the order given. This is the same shape Parse
// expects from a PE image's CLR metadata data directory.
func buildMetadataRoot(streams []struct {
	name string
	data []byte
}) []byte {
	var header bytes.Buffer
	u32 := func(v uint32) { binary.Write(&header, binary.LittleEndian, v) }
	u16 := func(v uint16) { binary.Write(&header, binary.LittleEndian, v) }

	u32(rootMagic)
	u16(1)
	u16(1)
	u32(0)

	verBytes := padName("v4.0.30319")
	u32(uint32(len(verBytes)))
	header.Write(verBytes)

	u16(0)
	u16(uint16(len(streams)))

	headerPlaceholder := header.Len()
	for _, s := range streams {
		headerPlaceholder += 4 + 4 + len(padName(s.name))
	}

	off := uint32(headerPlaceholder)
	type placement struct {
		name string
		off  uint32
		size uint32
		data []byte
	}
	placements := make([]placement, len(streams))
	for i, s := range streams {
		placements[i] = placement{name: s.name, off: off, size: uint32(len(s.data)), data: s.data}
		off += uint32(len(s.data))
	}

	for _, p := range placements {
		u32(p.off)
		u32(p.size)
		header.Write(padName(p.name))
	}

	var buf bytes.Buffer
	buf.Write(header.Bytes())
	for _, p := range placements {
		buf.Write(p.data)
	}
	return buf.Bytes()
}

// buildModuleTablesStream builds a `#~` stream body containing exactly one
// Module row, with both heap indexes at their narrow (2-byte) width.
func buildModuleTablesStream(name uint16, mvid uint16) []byte {
	var buf bytes.Buffer
	u32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }
	u16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }
	u8 := func(v uint8) { buf.WriteByte(v) }
	u64 := func(v uint64) { binary.Write(&buf, binary.LittleEndian, v) }

	u32(0) // reserved
	u8(2)  // MajorVersion
	u8(0)  // MinorVersion
	u8(0)  // HeapSizes: all heaps narrow
	u8(1)  // reserved
	u64(1 << uint(Module))
	u64(0) // sorted
	u32(1) // Module table row count

	u16(0)    // Generation
	u16(name) // Name: #Strings index
	u16(mvid) // Mvid: #GUID index
	u16(0)    // EncID
	u16(0)    // EncBaseID

	return buf.Bytes()
}

func TestParseEndToEnd(t *testing.T) {
	strings := []byte("\x00ModuleName\x00")
	var guid [16]byte
	for i := range guid {
		guid[i] = byte(i + 1)
	}

	buf := buildMetadataRoot([]struct {
		name string
		data []byte
	}{
		{"#Strings", strings},
		{"#GUID", guid[:]},
		{"#~", buildModuleTablesStream(1, 1)},
	})

	ctx, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if ctx.Module.Len() != 1 {
		t.Fatalf("Module.Len() = %d, want 1", ctx.Module.Len())
	}
	row, err := ctx.Module.Get(1)
	if err != nil {
		t.Fatalf("Module.Get(1): %v", err)
	}

	name, err := ctx.Strings.Get(row.Name)
	if err != nil || name != "ModuleName" {
		t.Errorf("Strings.Get(row.Name) = %q, %v; want ModuleName, nil", name, err)
	}

	gotGuid, ok, err := ctx.Guids.Get(row.Mvid)
	if err != nil || !ok || gotGuid != Guid(guid) {
		t.Errorf("Guids.Get(row.Mvid) = %v, %v, %v; want the built GUID, true, nil", gotGuid, ok, err)
	}

	// Every other table is valid (present in the schema) but carries no
	// rows, since only the Module bit was set in the tables header.
	if ctx.TypeDef.Len() != 0 || !ctx.TypeDef.IsEmpty() {
		t.Errorf("TypeDef.Len() = %d, want 0", ctx.TypeDef.Len())
	}
}

func TestParseWithNoTablesStreamYieldsEmptyTables(t *testing.T) {
	// Some obfuscators and minimal compilers omit the `#~`/`#-` stream
	// entirely; Parse must still succeed with every table reporting zero
	// rows rather than failing.
	buf := buildMetadataRoot([]struct {
		name string
		data []byte
	}{
		{"#Strings", []byte("\x00")},
	})

	ctx, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ctx.Module.IsEmpty() || ctx.Module.Len() != 0 {
		t.Errorf("Module table with no #~ stream: Len() = %d, want 0", ctx.Module.Len())
	}
	if !ctx.GenericParamConstraint.IsEmpty() {
		t.Error("GenericParamConstraint with no #~ stream: want empty")
	}
}

func TestParseBadMagicFails(t *testing.T) {
	buf := buildMetadataRoot([]struct {
		name string
		data []byte
	}{
		{"#Strings", []byte("\x00")},
	})
	buf[0] = 0x00
	if _, err := Parse(buf); err == nil {
		t.Error("Parse with corrupted root magic: want error, got nil")
	}
}
