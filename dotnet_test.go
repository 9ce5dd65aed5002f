// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pe

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"sort"
	"strconv"
	"testing"

	mmap "github.com/edsrzf/mmap-go"
)

func TestClrDirectorCOMImageFlagsType(t *testing.T) {

	tests := []struct {
		in  int
		out []string
	}{
		{
			0x9,
			[]string{"IL Only", "Strong Name Signed"},
		},
	}

	for _, tt := range tests {
		t.Run("CaseFlagsEqualTo_"+strconv.Itoa(tt.in), func(t *testing.T) {
			got := COMImageFlagsType(tt.in).String()
			sort.Strings(got)
			sort.Strings(tt.out)
			if !reflect.DeepEqual(got, tt.out) {
				t.Errorf("CLR header flags assertion failed, got %v, want %v",
					got, tt.out)
			}
		})
	}
}

// padMetadataName NUL-terminates name and pads it to the next 4-byte
// boundary, the on-disk encoding of a metadata root stream header's name.
func padMetadataName(name string) []byte {
	b := append([]byte(name), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// buildMinimalMetadataRoot assembles a metadata root containing a
// `#Strings`, `#GUID` and `#~` stream, the latter holding exactly one
// Module row. It mirrors the layout the metadata package's own tests
// build, kept independent here since it exercises the root from the PE
// loader's side of the boundary rather than the metadata package's.
func buildMinimalMetadataRoot(moduleName string, guid [16]byte) []byte {
	stringsData := append([]byte{0x00}, append([]byte(moduleName), 0x00)...)
	guidData := guid[:]

	var header bytes.Buffer
	u32 := func(v uint32) { binary.Write(&header, binary.LittleEndian, v) }
	u16 := func(v uint16) { binary.Write(&header, binary.LittleEndian, v) }

	u32(0x424A5342) // "BSJB"
	u16(1)
	u16(1)
	u32(0) // reserved

	verBytes := padMetadataName("v4.0.30319")
	u32(uint32(len(verBytes)))
	header.Write(verBytes)

	u16(0) // flags, reserved
	u16(3) // stream count

	type stream struct {
		name string
		data []byte
	}
	streams := []stream{
		{"#Strings", stringsData},
		{"#GUID", guidData},
		{"#~", buildMinimalTablesStream()},
	}

	headerLen := header.Len()
	for _, s := range streams {
		headerLen += 4 + 4 + len(padMetadataName(s.name))
	}

	off := uint32(headerLen)
	offsets := make([]uint32, len(streams))
	for i, s := range streams {
		offsets[i] = off
		off += uint32(len(s.data))
	}

	for i, s := range streams {
		u32(offsets[i])
		u32(uint32(len(s.data)))
		header.Write(padMetadataName(s.name))
	}

	var buf bytes.Buffer
	buf.Write(header.Bytes())
	for _, s := range streams {
		buf.Write(s.data)
	}
	return buf.Bytes()
}

// buildMinimalTablesStream builds a `#~` stream body with exactly one
// Module row (Name -> #Strings offset 1, Mvid -> #GUID index 1), both
// heap indexes at their narrow (2-byte) width.
func buildMinimalTablesStream() []byte {
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
	u64(1) // Valid: bit 0, Module table only
	u64(0) // Sorted
	u32(1) // Module table row count

	u16(0) // Generation
	u16(1) // Name: #Strings offset 1
	u16(1) // Mvid: #GUID index 1
	u16(0) // EncID
	u16(0) // EncBaseID

	return buf.Bytes()
}

// TestParseCLRHeaderDirectoryEndToEnd builds a minimal in-memory image
// consisting of an ImageCOR20Header immediately followed by a metadata
// root, and exercises the real loader path from raw bytes down to a
// decoded Module row.
func TestParseCLRHeaderDirectoryEndToEnd(t *testing.T) {
	var guid [16]byte
	for i := range guid {
		guid[i] = byte(i + 1)
	}
	metadataBuf := buildMinimalMetadataRoot("ModuleName", guid)

	const headerSize = 72 // sizeof(ImageCOR20Header)
	var hdr bytes.Buffer
	u32 := func(v uint32) { binary.Write(&hdr, binary.LittleEndian, v) }
	u16 := func(v uint16) { binary.Write(&hdr, binary.LittleEndian, v) }

	u32(headerSize)                          // Cb
	u16(2)                                    // MajorRuntimeVersion
	u16(5)                                    // MinorRuntimeVersion
	u32(headerSize)                           // MetaData.VirtualAddress
	u32(uint32(len(metadataBuf)))             // MetaData.Size
	u32(uint32(COMImageFlagsILOnly))          // Flags
	u32(0)                                    // EntryPointRVAorToken
	for i := 0; i < 6; i++ {                  // Resources..ManagedNativeHeader
		u32(0)
		u32(0)
	}

	fileBuf := append(hdr.Bytes(), metadataBuf...)

	pe := &File{
		data: mmap.MMap(fileBuf),
		size: uint32(len(fileBuf)),
	}

	if err := pe.parseCLRHeaderDirectory(0, headerSize); err != nil {
		t.Fatalf("parseCLRHeaderDirectory: %v", err)
	}
	if !pe.HasCLR {
		t.Fatal("HasCLR = false, want true")
	}
	if pe.CLR.CLRHeader.MajorRuntimeVersion != 2 || pe.CLR.CLRHeader.MinorRuntimeVersion != 5 {
		t.Errorf("CLRHeader runtime version = %d.%d, want 2.5",
			pe.CLR.CLRHeader.MajorRuntimeVersion, pe.CLR.CLRHeader.MinorRuntimeVersion)
	}
	if pe.CLR.Metadata == nil {
		t.Fatal("CLR.Metadata = nil, want a parsed metadata root")
	}

	md := pe.CLR.Metadata
	if md.Module.Len() != 1 {
		t.Fatalf("Module.Len() = %d, want 1", md.Module.Len())
	}
	row, err := md.Module.Get(1)
	if err != nil {
		t.Fatalf("Module.Get(1): %v", err)
	}
	name, err := md.Strings.Get(row.Name)
	if err != nil || name != "ModuleName" {
		t.Errorf("Strings.Get(row.Name) = %q, %v; want ModuleName, nil", name, err)
	}
}
