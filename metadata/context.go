// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// Context is the result of parsing one metadata root: the four heaps and
// a typed, random-access view over each of the 38 metadata tables (spec
// §2/§4). It borrows from the buffer passed to Parse; it must not outlive
// that buffer.
type Context struct {
	Strings     StringsHeap
	UserStrings UserStringsHeap
	Blobs       BlobsHeap
	Guids       GuidsHeap

	MajorVersion uint16
	MinorVersion uint16
	Version      string

	Module                 Table[ModuleRow]
	TypeRef                Table[TypeRefRow]
	TypeDef                Table[TypeDefRow]
	Field                  Table[FieldRow]
	MethodDef              Table[MethodDefRow]
	Param                  Table[ParamRow]
	InterfaceImpl          Table[InterfaceImplRow]
	MemberRef              Table[MemberRefRow]
	Constant               Table[ConstantRow]
	CustomAttribute        Table[CustomAttributeRow]
	FieldMarshal           Table[FieldMarshalRow]
	DeclSecurity           Table[DeclSecurityRow]
	ClassLayout            Table[ClassLayoutRow]
	FieldLayout            Table[FieldLayoutRow]
	StandAloneSig          Table[StandAloneSigRow]
	EventMap               Table[EventMapRow]
	Event                  Table[EventRow]
	PropertyMap            Table[PropertyMapRow]
	Property               Table[PropertyRow]
	MethodSemantics        Table[MethodSemanticsRow]
	MethodImpl             Table[MethodImplRow]
	ModuleRef              Table[ModuleRefRow]
	TypeSpec               Table[TypeSpecRow]
	ImplMap                Table[ImplMapRow]
	FieldRVA               Table[FieldRVARow]
	Assembly               Table[AssemblyRow]
	AssemblyProcessor      Table[AssemblyProcessorRow]
	AssemblyOS             Table[AssemblyOSRow]
	AssemblyRef            Table[AssemblyRefRow]
	AssemblyRefProcessor   Table[AssemblyRefProcessorRow]
	AssemblyRefOS          Table[AssemblyRefOSRow]
	File                   Table[FileRow]
	ExportedType           Table[ExportedTypeRow]
	ManifestResource       Table[ManifestResourceRow]
	NestedClass            Table[NestedClassRow]
	GenericParam           Table[GenericParamRow]
	MethodSpec             Table[MethodSpecRow]
	GenericParamConstraint Table[GenericParamConstraintRow]
}

// Parse decodes an ECMA-335 CLI metadata root out of buf (the bytes of a
// PE image's CLR metadata data directory, starting at the "BSJB" magic).
// The returned Context borrows buf; callers must keep it alive (and
// unmodified, per the zero-copy contract) for as long as the Context is
// in use.
//
// A metadata root with no `#~`/`#-` stream parses successfully with every
// table empty: this is unusual but not malformed, and matches images
// produced by some obfuscators and minimal compilers.
func Parse(buf []byte) (*Context, error) {
	root, err := parseRoot(buf)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		MajorVersion: root.MajorVersion,
		MinorVersion: root.MinorVersion,
		Version:      root.Version,
	}

	if root.Strings != nil {
		data, err := root.Strings.data(buf)
		if err != nil {
			return nil, err
		}
		ctx.Strings = StringsHeap{data: data}
	}
	if root.UserStrings != nil {
		data, err := root.UserStrings.data(buf)
		if err != nil {
			return nil, err
		}
		ctx.UserStrings = UserStringsHeap{data: data}
	}
	if root.Blob != nil {
		data, err := root.Blob.data(buf)
		if err != nil {
			return nil, err
		}
		ctx.Blobs = BlobsHeap{data: data}
	}
	if root.Guid != nil {
		data, err := root.Guid.data(buf)
		if err != nil {
			return nil, err
		}
		ctx.Guids = GuidsHeap{data: data}
	}

	var header *tablesHeader
	var body []byte
	if root.Tables != nil {
		data, err := root.Tables.data(buf)
		if err != nil {
			return nil, err
		}
		header, body, err = parseTablesHeaderAndBody(data)
		if err != nil {
			return nil, err
		}
	} else {
		header = &tablesHeader{}
		body = nil
	}

	widths := newWidths(header)
	regions, err := sliceTables(body, header, widths)
	if err != nil {
		return nil, err
	}

	if err := bindTables(ctx, body, header, widths, regions); err != nil {
		return nil, err
	}
	return ctx, nil
}

// parseTablesHeaderAndBody parses the tables header out of a `#~`/`#-`
// stream's bytes and returns it alongside the remaining bytes, the region
// the table slicer carves per-table regions from.
func parseTablesHeaderAndBody(data []byte) (*tablesHeader, []byte, error) {
	header, bodyOff, err := parseTablesHeader(data, 0)
	if err != nil {
		return nil, nil, err
	}
	body, err := boundedSlice(data, bodyOff, uint32(len(data))-bodyOff)
	if err != nil {
		return nil, nil, err
	}
	return header, body, nil
}

func bindTable[T any](body []byte, regions map[TableID]tableRegion, id TableID, w *Widths, decode decodeRowFunc[T]) (Table[T], error) {
	region, ok := regions[id]
	if !ok {
		return newTable(nil, 0, 0, w, decode), nil
	}
	data, err := region.slice(body)
	if err != nil {
		return Table[T]{}, err
	}
	return newTable(data, w.RowSize(id), w.RowCount(id), w, decode), nil
}

// bindTables constructs every exported Table field of ctx from the
// sliced table regions. Written as one function, rather than 38 inlined
// call sites in Parse, purely to keep Parse's own body short.
func bindTables(ctx *Context, body []byte, header *tablesHeader, w *Widths, regions map[TableID]tableRegion) error {
	var err error
	bind := func(e error) {
		if err == nil {
			err = e
		}
	}

	ctx.Module, err = bindTable(body, regions, Module, w, decodeModuleRow)
	bind(err)
	ctx.TypeRef, err = bindTable(body, regions, TypeRef, w, decodeTypeRefRow)
	bind(err)
	ctx.TypeDef, err = bindTable(body, regions, TypeDef, w, decodeTypeDefRow)
	bind(err)
	ctx.Field, err = bindTable(body, regions, Field, w, decodeFieldRow)
	bind(err)
	ctx.MethodDef, err = bindTable(body, regions, MethodDef, w, decodeMethodDefRow)
	bind(err)
	ctx.Param, err = bindTable(body, regions, Param, w, decodeParamRow)
	bind(err)
	ctx.InterfaceImpl, err = bindTable(body, regions, InterfaceImpl, w, decodeInterfaceImplRow)
	bind(err)
	ctx.MemberRef, err = bindTable(body, regions, MemberRef, w, decodeMemberRefRow)
	bind(err)
	ctx.Constant, err = bindTable(body, regions, Constant, w, decodeConstantRow)
	bind(err)
	ctx.CustomAttribute, err = bindTable(body, regions, CustomAttribute, w, decodeCustomAttributeRow)
	bind(err)
	ctx.FieldMarshal, err = bindTable(body, regions, FieldMarshal, w, decodeFieldMarshalRow)
	bind(err)
	ctx.DeclSecurity, err = bindTable(body, regions, DeclSecurity, w, decodeDeclSecurityRow)
	bind(err)
	ctx.ClassLayout, err = bindTable(body, regions, ClassLayout, w, decodeClassLayoutRow)
	bind(err)
	ctx.FieldLayout, err = bindTable(body, regions, FieldLayout, w, decodeFieldLayoutRow)
	bind(err)
	ctx.StandAloneSig, err = bindTable(body, regions, StandAloneSig, w, decodeStandAloneSigRow)
	bind(err)
	ctx.EventMap, err = bindTable(body, regions, EventMap, w, decodeEventMapRow)
	bind(err)
	ctx.Event, err = bindTable(body, regions, Event, w, decodeEventRow)
	bind(err)
	ctx.PropertyMap, err = bindTable(body, regions, PropertyMap, w, decodePropertyMapRow)
	bind(err)
	ctx.Property, err = bindTable(body, regions, Property, w, decodePropertyRow)
	bind(err)
	ctx.MethodSemantics, err = bindTable(body, regions, MethodSemantics, w, decodeMethodSemanticsRow)
	bind(err)
	ctx.MethodImpl, err = bindTable(body, regions, MethodImpl, w, decodeMethodImplRow)
	bind(err)
	ctx.ModuleRef, err = bindTable(body, regions, ModuleRef, w, decodeModuleRefRow)
	bind(err)
	ctx.TypeSpec, err = bindTable(body, regions, TypeSpec, w, decodeTypeSpecRow)
	bind(err)
	ctx.ImplMap, err = bindTable(body, regions, ImplMap, w, decodeImplMapRow)
	bind(err)
	ctx.FieldRVA, err = bindTable(body, regions, FieldRVA, w, decodeFieldRVARow)
	bind(err)
	ctx.Assembly, err = bindTable(body, regions, Assembly, w, decodeAssemblyRow)
	bind(err)
	ctx.AssemblyProcessor, err = bindTable(body, regions, AssemblyProcessor, w, decodeAssemblyProcessorRow)
	bind(err)
	ctx.AssemblyOS, err = bindTable(body, regions, AssemblyOS, w, decodeAssemblyOSRow)
	bind(err)
	ctx.AssemblyRef, err = bindTable(body, regions, AssemblyRef, w, decodeAssemblyRefRow)
	bind(err)
	ctx.AssemblyRefProcessor, err = bindTable(body, regions, AssemblyRefProcessor, w, decodeAssemblyRefProcessorRow)
	bind(err)
	ctx.AssemblyRefOS, err = bindTable(body, regions, AssemblyRefOS, w, decodeAssemblyRefOSRow)
	bind(err)
	ctx.File, err = bindTable(body, regions, File, w, decodeFileRow)
	bind(err)
	ctx.ExportedType, err = bindTable(body, regions, ExportedType, w, decodeExportedTypeRow)
	bind(err)
	ctx.ManifestResource, err = bindTable(body, regions, ManifestResource, w, decodeManifestResourceRow)
	bind(err)
	ctx.NestedClass, err = bindTable(body, regions, NestedClass, w, decodeNestedClassRow)
	bind(err)
	ctx.GenericParam, err = bindTable(body, regions, GenericParam, w, decodeGenericParamRow)
	bind(err)
	ctx.MethodSpec, err = bindTable(body, regions, MethodSpec, w, decodeMethodSpecRow)
	bind(err)
	ctx.GenericParamConstraint, err = bindTable(body, regions, GenericParamConstraint, w, decodeGenericParamConstraintRow)
	bind(err)

	return err
}
