// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// Row struct definitions and decoders for the 38 metadata tables (spec
// §4.6). Column comments follow the ECMA-335 spec (6th edition). Every
// *Row type is a small, trivially-copyable value: heap fields are offsets
// or 1-based ids into a Context's heaps, not decoded strings/blobs/GUIDs
// themselves -- callers resolve those lazily through the Context.

// ModuleRow is the sole row of the Module table (0x00): identifies the
// current module.
type ModuleRow struct {
	Generation uint16 // reserved, shall be zero
	Name       uint32 // index into the #Strings heap
	Mvid       uint32 // index into the #GUID heap
	EncID      uint32 // index into the #GUID heap, reserved
	EncBaseID  uint32 // index into the #GUID heap, reserved
}

func decodeModuleRow(buf []byte, w *Widths) (ModuleRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ModuleRow{
		Generation: r.u16(),
		Name:       r.str(),
		Mvid:       r.guid(),
		EncID:      r.guid(),
		EncBaseID:  r.guid(),
	}
	n, err := r.done()
	return row, n, err
}

// TypeRefRow is a row of the TypeRef table (0x01): a reference to a type
// defined in another module or assembly.
type TypeRefRow struct {
	ResolutionScope uint32 // a ResolutionScope coded index
	TypeName        uint32 // index into the #Strings heap
	TypeNamespace   uint32 // index into the #Strings heap
}

func decodeTypeRefRow(buf []byte, w *Widths) (TypeRefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := TypeRefRow{
		ResolutionScope: r.coded(ResolutionScope),
		TypeName:        r.str(),
		TypeNamespace:   r.str(),
	}
	n, err := r.done()
	return row, n, err
}

// TypeDefRow is a row of the TypeDef table (0x02): a class or interface
// definition.
type TypeDefRow struct {
	Flags      uint32 // a TypeAttributes bitmask
	TypeName   uint32 // index into the #Strings heap
	TypeNamespace uint32 // index into the #Strings heap
	Extends    uint32 // a TypeDefOrRef coded index, or null
	FieldList  uint32 // index into Field; first of a contiguous run owned by this type
	MethodList uint32 // index into MethodDef; first of a contiguous run owned by this type
}

func decodeTypeDefRow(buf []byte, w *Widths) (TypeDefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := TypeDefRow{
		Flags:         r.u32(),
		TypeName:      r.str(),
		TypeNamespace: r.str(),
		Extends:       r.coded(TypeDefOrRef),
		FieldList:     r.simple(Field),
		MethodList:    r.simple(MethodDef),
	}
	n, err := r.done()
	return row, n, err
}

// FieldRow is a row of the Field table (0x04).
type FieldRow struct {
	Flags     uint16 // a FieldAttributes bitmask
	Name      uint32 // index into the #Strings heap
	Signature uint32 // index into the #Blob heap
}

func decodeFieldRow(buf []byte, w *Widths) (FieldRow, uint32, error) {
	r := newRowReader(buf, w)
	row := FieldRow{
		Flags:     r.u16(),
		Name:      r.str(),
		Signature: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// MethodDefRow is a row of the MethodDef table (0x06).
type MethodDefRow struct {
	RVA        uint32 // RVA of the method body, or 0
	ImplFlags  uint16 // a MethodImplAttributes bitmask
	Flags      uint16 // a MethodAttributes bitmask
	Name       uint32 // index into the #Strings heap
	Signature  uint32 // index into the #Blob heap
	ParamList  uint32 // index into Param; first of a contiguous run owned by this method
}

func decodeMethodDefRow(buf []byte, w *Widths) (MethodDefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := MethodDefRow{
		RVA:       r.u32(),
		ImplFlags: r.u16(),
		Flags:     r.u16(),
		Name:      r.str(),
		Signature: r.blob(),
		ParamList: r.simple(Param),
	}
	n, err := r.done()
	return row, n, err
}

// ParamRow is a row of the Param table (0x08).
type ParamRow struct {
	Flags    uint16 // a ParamAttributes bitmask
	Sequence uint16 // 0 for the method's return value, 1..n for parameters
	Name     uint32 // index into the #Strings heap
}

func decodeParamRow(buf []byte, w *Widths) (ParamRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ParamRow{
		Flags:    r.u16(),
		Sequence: r.u16(),
		Name:     r.str(),
	}
	n, err := r.done()
	return row, n, err
}

// InterfaceImplRow is a row of the InterfaceImpl table (0x09).
type InterfaceImplRow struct {
	Class     uint32 // index into TypeDef
	Interface uint32 // a TypeDefOrRef coded index
}

func decodeInterfaceImplRow(buf []byte, w *Widths) (InterfaceImplRow, uint32, error) {
	r := newRowReader(buf, w)
	row := InterfaceImplRow{
		Class:     r.simple(TypeDef),
		Interface: r.coded(TypeDefOrRef),
	}
	n, err := r.done()
	return row, n, err
}

// MemberRefRow is a row of the MemberRef table (0x0A): a reference to a
// field or method.
type MemberRefRow struct {
	Class     uint32 // a MemberRefParent coded index
	Name      uint32 // index into the #Strings heap
	Signature uint32 // index into the #Blob heap
}

func decodeMemberRefRow(buf []byte, w *Widths) (MemberRefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := MemberRefRow{
		Class:     r.coded(MemberRefParent),
		Name:      r.str(),
		Signature: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// ConstantRow is a row of the Constant table (0x0B): a default value.
type ConstantRow struct {
	Type   uint8  // an ElementType value narrowing the constant's type
	pad    uint8  // unused
	Parent uint32 // a HasConstant coded index
	Value  uint32 // index into the #Blob heap
}

func decodeConstantRow(buf []byte, w *Widths) (ConstantRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ConstantRow{
		Type:   r.u8(),
		pad:    r.u8(),
		Parent: r.coded(HasConstant),
		Value:  r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// CustomAttributeRow is a row of the CustomAttribute table (0x0C).
type CustomAttributeRow struct {
	Parent uint32 // a HasCustomAttribute coded index
	Type   uint32 // a CustomAttributeType coded index
	Value  uint32 // index into the #Blob heap
}

func decodeCustomAttributeRow(buf []byte, w *Widths) (CustomAttributeRow, uint32, error) {
	r := newRowReader(buf, w)
	row := CustomAttributeRow{
		Parent: r.coded(HasCustomAttribute),
		Type:   r.coded(CustomAttributeType),
		Value:  r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// FieldMarshalRow is a row of the FieldMarshal table (0x0D).
type FieldMarshalRow struct {
	Parent     uint32 // a HasFieldMarshal coded index
	NativeType uint32 // index into the #Blob heap
}

func decodeFieldMarshalRow(buf []byte, w *Widths) (FieldMarshalRow, uint32, error) {
	r := newRowReader(buf, w)
	row := FieldMarshalRow{
		Parent:     r.coded(HasFieldMarshal),
		NativeType: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// DeclSecurityRow is a row of the DeclSecurity table (0x0E).
type DeclSecurityRow struct {
	Action        uint16 // a SecurityAction value
	Parent        uint32 // a HasDeclSecurity coded index
	PermissionSet uint32 // index into the #Blob heap
}

func decodeDeclSecurityRow(buf []byte, w *Widths) (DeclSecurityRow, uint32, error) {
	r := newRowReader(buf, w)
	row := DeclSecurityRow{
		Action:        r.u16(),
		Parent:        r.coded(HasDeclSecurity),
		PermissionSet: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// ClassLayoutRow is a row of the ClassLayout table (0x0F).
type ClassLayoutRow struct {
	PackingSize uint16 // 0, 1, 2, 4, 8, 16, 32, 64, or 128
	ClassSize   uint32
	Parent      uint32 // index into TypeDef
}

func decodeClassLayoutRow(buf []byte, w *Widths) (ClassLayoutRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ClassLayoutRow{
		PackingSize: r.u16(),
		ClassSize:   r.u32(),
		Parent:      r.simple(TypeDef),
	}
	n, err := r.done()
	return row, n, err
}

// FieldLayoutRow is a row of the FieldLayout table (0x10).
type FieldLayoutRow struct {
	Offset uint32
	Field  uint32 // index into Field
}

func decodeFieldLayoutRow(buf []byte, w *Widths) (FieldLayoutRow, uint32, error) {
	r := newRowReader(buf, w)
	row := FieldLayoutRow{
		Offset: r.u32(),
		Field:  r.simple(Field),
	}
	n, err := r.done()
	return row, n, err
}

// StandAloneSigRow is a row of the StandAloneSig table (0x11): a signature
// not otherwise attached to a Field/MethodDef/MemberRef/Property row, used
// by local variables and the calli instruction.
type StandAloneSigRow struct {
	Signature uint32 // index into the #Blob heap
}

func decodeStandAloneSigRow(buf []byte, w *Widths) (StandAloneSigRow, uint32, error) {
	r := newRowReader(buf, w)
	row := StandAloneSigRow{Signature: r.blob()}
	n, err := r.done()
	return row, n, err
}

// EventMapRow is a row of the EventMap table (0x12).
type EventMapRow struct {
	Parent    uint32 // index into TypeDef
	EventList uint32 // index into Event; first of a contiguous run
}

func decodeEventMapRow(buf []byte, w *Widths) (EventMapRow, uint32, error) {
	r := newRowReader(buf, w)
	row := EventMapRow{
		Parent:    r.simple(TypeDef),
		EventList: r.simple(Event),
	}
	n, err := r.done()
	return row, n, err
}

// EventRow is a row of the Event table (0x14).
type EventRow struct {
	Flags     uint16 // an EventAttributes bitmask
	Name      uint32 // index into the #Strings heap
	EventType uint32 // a TypeDefOrRef coded index
}

func decodeEventRow(buf []byte, w *Widths) (EventRow, uint32, error) {
	r := newRowReader(buf, w)
	row := EventRow{
		Flags:     r.u16(),
		Name:      r.str(),
		EventType: r.coded(TypeDefOrRef),
	}
	n, err := r.done()
	return row, n, err
}

// PropertyMapRow is a row of the PropertyMap table (0x15).
type PropertyMapRow struct {
	Parent       uint32 // index into TypeDef
	PropertyList uint32 // index into Property; first of a contiguous run
}

func decodePropertyMapRow(buf []byte, w *Widths) (PropertyMapRow, uint32, error) {
	r := newRowReader(buf, w)
	row := PropertyMapRow{
		Parent:       r.simple(TypeDef),
		PropertyList: r.simple(Property),
	}
	n, err := r.done()
	return row, n, err
}

// PropertyRow is a row of the Property table (0x17).
type PropertyRow struct {
	Flags     uint16 // a PropertyAttributes bitmask
	Name      uint32 // index into the #Strings heap
	Signature uint32 // index into the #Blob heap
}

func decodePropertyRow(buf []byte, w *Widths) (PropertyRow, uint32, error) {
	r := newRowReader(buf, w)
	row := PropertyRow{
		Flags:     r.u16(),
		Name:      r.str(),
		Signature: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// MethodSemanticsRow is a row of the MethodSemantics table (0x18).
type MethodSemanticsRow struct {
	Semantics   uint16 // a MethodSemanticsAttributes bitmask
	Method      uint32 // index into MethodDef
	Association uint32 // a HasSemantics coded index
}

func decodeMethodSemanticsRow(buf []byte, w *Widths) (MethodSemanticsRow, uint32, error) {
	r := newRowReader(buf, w)
	row := MethodSemanticsRow{
		Semantics:   r.u16(),
		Method:      r.simple(MethodDef),
		Association: r.coded(HasSemantics),
	}
	n, err := r.done()
	return row, n, err
}

// MethodImplRow is a row of the MethodImpl table (0x19).
type MethodImplRow struct {
	Class       uint32 // index into TypeDef
	Body        uint32 // a MethodDefOrRef coded index
	Declaration uint32 // a MethodDefOrRef coded index
}

func decodeMethodImplRow(buf []byte, w *Widths) (MethodImplRow, uint32, error) {
	r := newRowReader(buf, w)
	row := MethodImplRow{
		Class:       r.simple(TypeDef),
		Body:        r.coded(MethodDefOrRef),
		Declaration: r.coded(MethodDefOrRef),
	}
	n, err := r.done()
	return row, n, err
}

// ModuleRefRow is a row of the ModuleRef table (0x1A).
type ModuleRefRow struct {
	Name uint32 // index into the #Strings heap
}

func decodeModuleRefRow(buf []byte, w *Widths) (ModuleRefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ModuleRefRow{Name: r.str()}
	n, err := r.done()
	return row, n, err
}

// TypeSpecRow is a row of the TypeSpec table (0x1B).
type TypeSpecRow struct {
	Signature uint32 // index into the #Blob heap
}

func decodeTypeSpecRow(buf []byte, w *Widths) (TypeSpecRow, uint32, error) {
	r := newRowReader(buf, w)
	row := TypeSpecRow{Signature: r.blob()}
	n, err := r.done()
	return row, n, err
}

// ImplMapRow is a row of the ImplMap table (0x1C): a P/Invoke mapping.
type ImplMapRow struct {
	MappingFlags uint16 // a PInvokeAttributes bitmask
	MemberForwarded uint32 // a MemberForwarded coded index
	ImportName   uint32 // index into the #Strings heap
	ImportScope  uint32 // index into ModuleRef
}

func decodeImplMapRow(buf []byte, w *Widths) (ImplMapRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ImplMapRow{
		MappingFlags:    r.u16(),
		MemberForwarded: r.coded(MemberForwarded),
		ImportName:      r.str(),
		ImportScope:     r.simple(ModuleRef),
	}
	n, err := r.done()
	return row, n, err
}

// FieldRVARow is a row of the FieldRVA table (0x1D): a field's initial
// value location.
type FieldRVARow struct {
	RVA   uint32
	Field uint32 // index into Field
}

func decodeFieldRVARow(buf []byte, w *Widths) (FieldRVARow, uint32, error) {
	r := newRowReader(buf, w)
	row := FieldRVARow{
		RVA:   r.u32(),
		Field: r.simple(Field),
	}
	n, err := r.done()
	return row, n, err
}

// AssemblyRow is the sole row of the Assembly table (0x20), present only in
// the prime module of an assembly.
type AssemblyRow struct {
	HashAlgID      uint32 // an AssemblyHashAlgorithm value
	MajorVersion   uint16
	MinorVersion   uint16
	BuildNumber    uint16
	RevisionNumber uint16
	Flags          uint32 // an AssemblyFlags bitmask
	PublicKey      uint32 // index into the #Blob heap
	Name           uint32 // index into the #Strings heap
	Culture        uint32 // index into the #Strings heap
}

func decodeAssemblyRow(buf []byte, w *Widths) (AssemblyRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyRow{
		HashAlgID:      r.u32(),
		MajorVersion:   r.u16(),
		MinorVersion:   r.u16(),
		BuildNumber:    r.u16(),
		RevisionNumber: r.u16(),
		Flags:          r.u32(),
		PublicKey:      r.blob(),
		Name:           r.str(),
		Culture:        r.str(),
	}
	n, err := r.done()
	return row, n, err
}

// AssemblyProcessorRow is a row of the AssemblyProcessor table (0x21).
// Unused by the CLI, but well-formed images may still carry it.
type AssemblyProcessorRow struct {
	Processor uint32
}

func decodeAssemblyProcessorRow(buf []byte, w *Widths) (AssemblyProcessorRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyProcessorRow{Processor: r.u32()}
	n, err := r.done()
	return row, n, err
}

// AssemblyOSRow is a row of the AssemblyOS table (0x22). Unused by the CLI.
type AssemblyOSRow struct {
	OSPlatformID   uint32
	OSMajorVersion uint32
	OSMinorVersion uint32
}

func decodeAssemblyOSRow(buf []byte, w *Widths) (AssemblyOSRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyOSRow{
		OSPlatformID:   r.u32(),
		OSMajorVersion: r.u32(),
		OSMinorVersion: r.u32(),
	}
	n, err := r.done()
	return row, n, err
}

// AssemblyRefRow is a row of the AssemblyRef table (0x23): a reference to
// an external assembly.
type AssemblyRefRow struct {
	MajorVersion   uint16
	MinorVersion   uint16
	BuildNumber    uint16
	RevisionNumber uint16
	Flags          uint32 // an AssemblyFlags bitmask
	PublicKeyOrToken uint32 // index into the #Blob heap
	Name           uint32 // index into the #Strings heap
	Culture        uint32 // index into the #Strings heap
	HashValue      uint32 // index into the #Blob heap
}

func decodeAssemblyRefRow(buf []byte, w *Widths) (AssemblyRefRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyRefRow{
		MajorVersion:     r.u16(),
		MinorVersion:     r.u16(),
		BuildNumber:      r.u16(),
		RevisionNumber:   r.u16(),
		Flags:            r.u32(),
		PublicKeyOrToken: r.blob(),
		Name:             r.str(),
		Culture:          r.str(),
		HashValue:        r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// AssemblyRefProcessorRow is a row of the AssemblyRefProcessor table
// (0x24). Unused by the CLI.
type AssemblyRefProcessorRow struct {
	Processor   uint32
	AssemblyRef uint32 // index into AssemblyRef
}

func decodeAssemblyRefProcessorRow(buf []byte, w *Widths) (AssemblyRefProcessorRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyRefProcessorRow{
		Processor:   r.u32(),
		AssemblyRef: r.simple(AssemblyRef),
	}
	n, err := r.done()
	return row, n, err
}

// AssemblyRefOSRow is a row of the AssemblyRefOS table (0x25). Unused by
// the CLI.
type AssemblyRefOSRow struct {
	OSPlatformID   uint32
	OSMajorVersion uint32
	OSMinorVersion uint32
	AssemblyRef    uint32 // index into AssemblyRef
}

func decodeAssemblyRefOSRow(buf []byte, w *Widths) (AssemblyRefOSRow, uint32, error) {
	r := newRowReader(buf, w)
	row := AssemblyRefOSRow{
		OSPlatformID:   r.u32(),
		OSMajorVersion: r.u32(),
		OSMinorVersion: r.u32(),
		AssemblyRef:    r.simple(AssemblyRef),
	}
	n, err := r.done()
	return row, n, err
}

// FileRow is a row of the File table (0x26): another file belonging to
// this assembly.
type FileRow struct {
	Flags uint32 // a FileAttributes bitmask
	Name  uint32 // index into the #Strings heap
	Hash  uint32 // index into the #Blob heap
}

func decodeFileRow(buf []byte, w *Widths) (FileRow, uint32, error) {
	r := newRowReader(buf, w)
	row := FileRow{
		Flags: r.u32(),
		Name:  r.str(),
		Hash:  r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// ExportedTypeRow is a row of the ExportedType table (0x27): a public type
// declared in another module of this assembly.
type ExportedTypeRow struct {
	Flags          uint32 // a TypeAttributes bitmask
	TypeDefID      uint32 // a hint at the TypeDef row id in the defining module
	TypeName       uint32 // index into the #Strings heap
	TypeNamespace  uint32 // index into the #Strings heap
	Implementation uint32 // an Implementation coded index
}

func decodeExportedTypeRow(buf []byte, w *Widths) (ExportedTypeRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ExportedTypeRow{
		Flags:          r.u32(),
		TypeDefID:      r.simple(TypeDef),
		TypeName:       r.str(),
		TypeNamespace:  r.str(),
		Implementation: r.coded(Implementation),
	}
	n, err := r.done()
	return row, n, err
}

// ManifestResourceRow is a row of the ManifestResource table (0x28).
type ManifestResourceRow struct {
	Offset         uint32 // offset into the CLR header's Resources data directory
	Flags          uint32 // a ManifestResourceAttributes bitmask
	Name           uint32 // index into the #Strings heap
	Implementation uint32 // an Implementation coded index
}

func decodeManifestResourceRow(buf []byte, w *Widths) (ManifestResourceRow, uint32, error) {
	r := newRowReader(buf, w)
	row := ManifestResourceRow{
		Offset:         r.u32(),
		Flags:          r.u32(),
		Name:           r.str(),
		Implementation: r.coded(Implementation),
	}
	n, err := r.done()
	return row, n, err
}

// NestedClassRow is a row of the NestedClass table (0x29).
type NestedClassRow struct {
	NestedClass    uint32 // index into TypeDef
	EnclosingClass uint32 // index into TypeDef
}

func decodeNestedClassRow(buf []byte, w *Widths) (NestedClassRow, uint32, error) {
	r := newRowReader(buf, w)
	row := NestedClassRow{
		NestedClass:    r.simple(TypeDef),
		EnclosingClass: r.simple(TypeDef),
	}
	n, err := r.done()
	return row, n, err
}

// GenericParamRow is a row of the GenericParam table (0x2A): a type
// parameter of a generic type or method.
type GenericParamRow struct {
	Number uint16 // 0-based index of the parameter
	Flags  uint16 // a GenericParamAttributes bitmask
	Owner  uint32 // a TypeOrMethodDef coded index
	Name   uint32 // index into the #Strings heap
}

func decodeGenericParamRow(buf []byte, w *Widths) (GenericParamRow, uint32, error) {
	r := newRowReader(buf, w)
	row := GenericParamRow{
		Number: r.u16(),
		Flags:  r.u16(),
		Owner:  r.coded(TypeOrMethodDef),
		Name:   r.str(),
	}
	n, err := r.done()
	return row, n, err
}

// MethodSpecRow is a row of the MethodSpec table (0x2B): a generic method
// instantiation.
type MethodSpecRow struct {
	Method        uint32 // a MethodDefOrRef coded index
	Instantiation uint32 // index into the #Blob heap
}

func decodeMethodSpecRow(buf []byte, w *Widths) (MethodSpecRow, uint32, error) {
	r := newRowReader(buf, w)
	row := MethodSpecRow{
		Method:        r.coded(MethodDefOrRef),
		Instantiation: r.blob(),
	}
	n, err := r.done()
	return row, n, err
}

// GenericParamConstraintRow is a row of the GenericParamConstraint table
// (0x2C): a constraint on a generic parameter.
type GenericParamConstraintRow struct {
	Owner      uint32 // index into GenericParam
	Constraint uint32 // a TypeDefOrRef coded index
}

func decodeGenericParamConstraintRow(buf []byte, w *Widths) (GenericParamConstraintRow, uint32, error) {
	r := newRowReader(buf, w)
	row := GenericParamConstraintRow{
		Owner:      r.simple(GenericParam),
		Constraint: r.coded(TypeDefOrRef),
	}
	n, err := r.done()
	return row, n, err
}

// rowSizers maps each of the 38 public table ids to a function that
// measures one row's on-disk size for a resolved Widths, by running the
// table's real decoder against sizingScratch and keeping only the byte
// count. Used once, by newWidths, to resolve every table's row size
// before the table slicer carves up the `#~` body (spec §4.5).
var rowSizers = map[TableID]func(*Widths) uint32{
	Module:                 func(w *Widths) uint32 { _, n, _ := decodeModuleRow(sizingScratch, w); return n },
	TypeRef:                func(w *Widths) uint32 { _, n, _ := decodeTypeRefRow(sizingScratch, w); return n },
	TypeDef:                func(w *Widths) uint32 { _, n, _ := decodeTypeDefRow(sizingScratch, w); return n },
	Field:                  func(w *Widths) uint32 { _, n, _ := decodeFieldRow(sizingScratch, w); return n },
	MethodDef:              func(w *Widths) uint32 { _, n, _ := decodeMethodDefRow(sizingScratch, w); return n },
	Param:                  func(w *Widths) uint32 { _, n, _ := decodeParamRow(sizingScratch, w); return n },
	InterfaceImpl:          func(w *Widths) uint32 { _, n, _ := decodeInterfaceImplRow(sizingScratch, w); return n },
	MemberRef:              func(w *Widths) uint32 { _, n, _ := decodeMemberRefRow(sizingScratch, w); return n },
	Constant:               func(w *Widths) uint32 { _, n, _ := decodeConstantRow(sizingScratch, w); return n },
	CustomAttribute:        func(w *Widths) uint32 { _, n, _ := decodeCustomAttributeRow(sizingScratch, w); return n },
	FieldMarshal:           func(w *Widths) uint32 { _, n, _ := decodeFieldMarshalRow(sizingScratch, w); return n },
	DeclSecurity:           func(w *Widths) uint32 { _, n, _ := decodeDeclSecurityRow(sizingScratch, w); return n },
	ClassLayout:            func(w *Widths) uint32 { _, n, _ := decodeClassLayoutRow(sizingScratch, w); return n },
	FieldLayout:            func(w *Widths) uint32 { _, n, _ := decodeFieldLayoutRow(sizingScratch, w); return n },
	StandAloneSig:          func(w *Widths) uint32 { _, n, _ := decodeStandAloneSigRow(sizingScratch, w); return n },
	EventMap:               func(w *Widths) uint32 { _, n, _ := decodeEventMapRow(sizingScratch, w); return n },
	Event:                  func(w *Widths) uint32 { _, n, _ := decodeEventRow(sizingScratch, w); return n },
	PropertyMap:            func(w *Widths) uint32 { _, n, _ := decodePropertyMapRow(sizingScratch, w); return n },
	Property:               func(w *Widths) uint32 { _, n, _ := decodePropertyRow(sizingScratch, w); return n },
	MethodSemantics:        func(w *Widths) uint32 { _, n, _ := decodeMethodSemanticsRow(sizingScratch, w); return n },
	MethodImpl:             func(w *Widths) uint32 { _, n, _ := decodeMethodImplRow(sizingScratch, w); return n },
	ModuleRef:              func(w *Widths) uint32 { _, n, _ := decodeModuleRefRow(sizingScratch, w); return n },
	TypeSpec:               func(w *Widths) uint32 { _, n, _ := decodeTypeSpecRow(sizingScratch, w); return n },
	ImplMap:                func(w *Widths) uint32 { _, n, _ := decodeImplMapRow(sizingScratch, w); return n },
	FieldRVA:               func(w *Widths) uint32 { _, n, _ := decodeFieldRVARow(sizingScratch, w); return n },
	Assembly:               func(w *Widths) uint32 { _, n, _ := decodeAssemblyRow(sizingScratch, w); return n },
	AssemblyProcessor:      func(w *Widths) uint32 { _, n, _ := decodeAssemblyProcessorRow(sizingScratch, w); return n },
	AssemblyOS:             func(w *Widths) uint32 { _, n, _ := decodeAssemblyOSRow(sizingScratch, w); return n },
	AssemblyRef:            func(w *Widths) uint32 { _, n, _ := decodeAssemblyRefRow(sizingScratch, w); return n },
	AssemblyRefProcessor:   func(w *Widths) uint32 { _, n, _ := decodeAssemblyRefProcessorRow(sizingScratch, w); return n },
	AssemblyRefOS:          func(w *Widths) uint32 { _, n, _ := decodeAssemblyRefOSRow(sizingScratch, w); return n },
	File:                   func(w *Widths) uint32 { _, n, _ := decodeFileRow(sizingScratch, w); return n },
	ExportedType:           func(w *Widths) uint32 { _, n, _ := decodeExportedTypeRow(sizingScratch, w); return n },
	ManifestResource:       func(w *Widths) uint32 { _, n, _ := decodeManifestResourceRow(sizingScratch, w); return n },
	NestedClass:            func(w *Widths) uint32 { _, n, _ := decodeNestedClassRow(sizingScratch, w); return n },
	GenericParam:           func(w *Widths) uint32 { _, n, _ := decodeGenericParamRow(sizingScratch, w); return n },
	MethodSpec:             func(w *Widths) uint32 { _, n, _ := decodeMethodSpecRow(sizingScratch, w); return n },
	GenericParamConstraint: func(w *Widths) uint32 { _, n, _ := decodeGenericParamConstraintRow(sizingScratch, w); return n },
}

// auxRowSize measures the row size of the non-public pointer/EnC tables
// (spec §4.6/tableids.go) directly against the shared Widths, since no
// typed reader is ever built for them.
func auxRowSize(id TableID, w *Widths) uint32 {
	r := newRowReader(sizingScratch, w)
	switch id {
	case fieldPtr:
		r.simple(Field)
	case methodPtr:
		r.simple(MethodDef)
	case paramPtr:
		r.simple(Param)
	case eventPtr:
		r.simple(Event)
	case propertyPtr:
		r.simple(Property)
	case encLog:
		r.u32()
		r.u32()
	case encMap:
		r.u32()
	}
	n, _ := r.done()
	return n
}
