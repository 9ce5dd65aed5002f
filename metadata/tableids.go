// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// TableID identifies one of the metadata table kinds by its fixed 6-bit id
// (spec §3/§4.6). Bit i of a tables header's valid bitmap corresponds to
// table id i.
type TableID int

// The 38 table ids a consumer of this package can read rows from.
const (
	Module                 TableID = 0x00
	TypeRef                TableID = 0x01
	TypeDef                TableID = 0x02
	Field                   TableID = 0x04
	MethodDef               TableID = 0x06
	Param                   TableID = 0x08
	InterfaceImpl           TableID = 0x09
	MemberRef               TableID = 0x0A
	Constant                TableID = 0x0B
	CustomAttribute         TableID = 0x0C
	FieldMarshal            TableID = 0x0D
	DeclSecurity            TableID = 0x0E
	ClassLayout             TableID = 0x0F
	FieldLayout             TableID = 0x10
	StandAloneSig           TableID = 0x11
	EventMap                TableID = 0x12
	Event                   TableID = 0x14
	PropertyMap             TableID = 0x15
	Property                TableID = 0x17
	MethodSemantics         TableID = 0x18
	MethodImpl              TableID = 0x19
	ModuleRef               TableID = 0x1A
	TypeSpec                TableID = 0x1B
	ImplMap                 TableID = 0x1C
	FieldRVA                TableID = 0x1D
	Assembly                TableID = 0x20
	AssemblyProcessor       TableID = 0x21
	AssemblyOS              TableID = 0x22
	AssemblyRef             TableID = 0x23
	AssemblyRefProcessor    TableID = 0x24
	AssemblyRefOS           TableID = 0x25
	File                    TableID = 0x26
	ExportedType            TableID = 0x27
	ManifestResource        TableID = 0x28
	NestedClass             TableID = 0x29
	GenericParam            TableID = 0x2A
	MethodSpec              TableID = 0x2B
	GenericParamConstraint  TableID = 0x2C
)

// Auxiliary "pointer" and edit-and-continue table ids. These never appear
// in the optimized `#~` stream a compiler emits, but an edit-and-continue
// (`#-`) image can set their valid bits; the table slicer (spec §4.5) must
// still account for their row regions to keep subsequent table offsets
// correct, even though this package does not expose typed readers for
// them.
const (
	fieldPtr    TableID = 0x03
	methodPtr   TableID = 0x05
	paramPtr    TableID = 0x07
	eventPtr    TableID = 0x13
	propertyPtr TableID = 0x16
	encLog      TableID = 0x1E
	encMap      TableID = 0x1F
)

// maxTableID is the highest table id, known or auxiliary, this package can
// size. A valid bit set above this is accepted: its row count is read from
// the header, but the table is neither sized nor sliced. Its region would
// follow every known table's, so known tables' offsets are unaffected.
const maxTableID = int(GenericParamConstraint)

var tableNames = map[TableID]string{
	Module:                 "Module",
	TypeRef:                "TypeRef",
	TypeDef:                "TypeDef",
	fieldPtr:               "FieldPtr",
	Field:                  "Field",
	methodPtr:              "MethodPtr",
	MethodDef:              "MethodDef",
	paramPtr:               "ParamPtr",
	Param:                  "Param",
	InterfaceImpl:          "InterfaceImpl",
	MemberRef:              "MemberRef",
	Constant:               "Constant",
	CustomAttribute:        "CustomAttribute",
	FieldMarshal:           "FieldMarshal",
	DeclSecurity:           "DeclSecurity",
	ClassLayout:            "ClassLayout",
	FieldLayout:            "FieldLayout",
	StandAloneSig:          "StandAloneSig",
	EventMap:               "EventMap",
	eventPtr:               "EventPtr",
	Event:                  "Event",
	PropertyMap:            "PropertyMap",
	propertyPtr:            "PropertyPtr",
	Property:               "Property",
	MethodSemantics:        "MethodSemantics",
	MethodImpl:             "MethodImpl",
	ModuleRef:              "ModuleRef",
	TypeSpec:               "TypeSpec",
	ImplMap:                "ImplMap",
	FieldRVA:               "FieldRVA",
	encLog:                 "ENCLog",
	encMap:                 "ENCMap",
	Assembly:               "Assembly",
	AssemblyProcessor:      "AssemblyProcessor",
	AssemblyOS:             "AssemblyOS",
	AssemblyRef:            "AssemblyRef",
	AssemblyRefProcessor:   "AssemblyRefProcessor",
	AssemblyRefOS:          "AssemblyRefOS",
	File:                   "File",
	ExportedType:           "ExportedType",
	ManifestResource:       "ManifestResource",
	NestedClass:            "NestedClass",
	GenericParam:           "GenericParam",
	MethodSpec:             "MethodSpec",
	GenericParamConstraint: "GenericParamConstraint",
}

// String returns the ECMA-335 name of a table id, or "" if unknown.
func (t TableID) String() string {
	return tableNames[t]
}
