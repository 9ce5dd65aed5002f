// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// CodedIndexKind names one of the thirteen coded indexes of spec §6: a
// composite cross-table reference that packs a small tag identifying the
// destination table together with a row number into a single 2- or 4-byte
// field.
type CodedIndexKind int

const (
	TypeDefOrRef CodedIndexKind = iota
	HasConstant
	HasCustomAttribute
	HasFieldMarshal
	HasDeclSecurity
	MemberRefParent
	HasSemantics
	MethodDefOrRef
	MemberForwarded
	Implementation
	CustomAttributeType
	ResolutionScope
	TypeOrMethodDef
)

// codedIndexDef describes a coded index's tag width and its tag -> table
// mapping, ordered by tag value.
type codedIndexDef struct {
	tagBits    uint
	candidates []TableID // candidates[tag] is the table for that tag; tags at or past len(candidates), and tags listed in invalidCodedTags, are invalid
}

// codedIndexDefs mirrors spec §6's table verbatim. Tag -> table order
// matters: index i of candidates is the table for tag i.
var codedIndexDefs = map[CodedIndexKind]codedIndexDef{
	TypeDefOrRef: {tagBits: 2, candidates: []TableID{TypeDef, TypeRef, TypeSpec}},
	HasConstant:  {tagBits: 2, candidates: []TableID{Field, Param, Property}},
	HasCustomAttribute: {tagBits: 5, candidates: []TableID{
		MethodDef, Field, TypeRef, TypeDef, Param, InterfaceImpl, MemberRef,
		Module, DeclSecurity, Property, Event, StandAloneSig, ModuleRef,
		TypeSpec, Assembly, AssemblyRef, File, ExportedType, ManifestResource,
		GenericParam, GenericParamConstraint, MethodSpec,
	}},
	HasFieldMarshal: {tagBits: 1, candidates: []TableID{Field, Param}},
	HasDeclSecurity: {tagBits: 2, candidates: []TableID{TypeDef, MethodDef, Assembly}},
	MemberRefParent: {tagBits: 3, candidates: []TableID{TypeDef, TypeRef, ModuleRef, MethodDef, TypeSpec}},
	HasSemantics:    {tagBits: 1, candidates: []TableID{Event, Property}},
	MethodDefOrRef:  {tagBits: 1, candidates: []TableID{MethodDef, MemberRef}},
	MemberForwarded: {tagBits: 1, candidates: []TableID{Field, MethodDef}},
	Implementation:  {tagBits: 2, candidates: []TableID{File, AssemblyRef, ExportedType}},
	// CustomAttributeType's tags 0, 1 and 4 are reserved/invalid (spec §6);
	// only MethodDef (2) and MemberRef (3) decode.
	CustomAttributeType: {tagBits: 3, candidates: []TableID{0, 0, MethodDef, MemberRef}},
	ResolutionScope:     {tagBits: 2, candidates: []TableID{Module, ModuleRef, AssemblyRef, TypeRef}},
	TypeOrMethodDef:     {tagBits: 1, candidates: []TableID{TypeDef, MethodDef}},
}

// invalidCodedTags marks candidate slots that are reserved/undefined for a
// kind even though the slice has an entry there (CustomAttributeType's
// tags 0 and 1; its tag 4 lies past the candidate slice and is rejected by
// the length check).
var invalidCodedTags = map[CodedIndexKind]map[uint32]bool{
	CustomAttributeType: {0: true, 1: true},
}

// CodedIndex is a decoded coded-index value: the destination table and the
// 1-based row number within it.
type CodedIndex struct {
	Table TableID
	RowID uint32
}

// width returns 2 or 4, the on-disk byte width of kind's field, following
// spec §4.4: 4 bytes if any candidate table's row count is at least
// 2^(16-tagBits), else 2.
func (k CodedIndexKind) width(w *Widths) uint32 {
	def := codedIndexDefs[k]
	threshold := uint64(1) << (16 - def.tagBits)
	for _, t := range def.candidates {
		if uint64(w.rows[t]) >= threshold {
			return 4
		}
	}
	return 2
}

// DecodeCodedIndex splits a raw coded-index value, as stored in a row field
// decoded via rowReader.coded, into its tag and row number and resolves the
// tag to a destination table. Row schemas keep coded-index columns as raw
// uint32 so a malformed tag in one field never blocks decoding the rest of
// the row; callers resolve each one lazily with this function.
func DecodeCodedIndex(k CodedIndexKind, raw uint32) (CodedIndex, error) {
	def, ok := codedIndexDefs[k]
	if !ok {
		return CodedIndex{}, errMalformed("coded index")
	}
	mask := uint32(1)<<def.tagBits - 1
	tag := raw & mask
	rowID := raw >> def.tagBits

	if invalidCodedTags[k][tag] || tag >= uint32(len(def.candidates)) {
		return CodedIndex{}, errMalformed(codedIndexNames[k])
	}
	table := def.candidates[tag]
	return CodedIndex{Table: table, RowID: rowID}, nil
}

// encodeCodedIndex packs a (tag, rowID) pair the way DecodeCodedIndex
// unpacks it. Used by tests to verify the round trip (spec testable
// property 6).
func encodeCodedIndex(k CodedIndexKind, tag uint32, rowID uint32) uint32 {
	def := codedIndexDefs[k]
	return (rowID << def.tagBits) | tag
}

var codedIndexNames = map[CodedIndexKind]string{
	TypeDefOrRef:         "TypeDefOrRef",
	HasConstant:          "HasConstant",
	HasCustomAttribute:   "HasCustomAttribute",
	HasFieldMarshal:      "HasFieldMarshal",
	HasDeclSecurity:      "HasDeclSecurity",
	MemberRefParent:      "MemberRefParent",
	HasSemantics:         "HasSemantics",
	MethodDefOrRef:       "MethodDefOrRef",
	MemberForwarded:      "MemberForwarded",
	Implementation:       "Implementation",
	CustomAttributeType:  "CustomAttributeType",
	ResolutionScope:      "ResolutionScope",
	TypeOrMethodDef:      "TypeOrMethodDef",
}
