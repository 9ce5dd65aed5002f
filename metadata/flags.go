// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// Flag and enum constants for the column values of spec §4.6/§6. Bit
// layouts and values are normative (ECMA-335 6th edition, Partition II);
// nothing here is inferred.

// AssemblyHashAlgorithm identifies the algorithm used to hash the files of
// a multi-file assembly (AssemblyRow.HashAlgID).
type AssemblyHashAlgorithm uint32

const (
	AssemblyHashAlgorithmNone   AssemblyHashAlgorithm = 0x0000
	AssemblyHashAlgorithmMD5    AssemblyHashAlgorithm = 0x8003
	AssemblyHashAlgorithmSHA1   AssemblyHashAlgorithm = 0x8004
	AssemblyHashAlgorithmSHA256 AssemblyHashAlgorithm = 0x800C
	AssemblyHashAlgorithmSHA384 AssemblyHashAlgorithm = 0x800D
	AssemblyHashAlgorithmSHA512 AssemblyHashAlgorithm = 0x800E
)

// AssemblyFlags is a bitmask over AssemblyRow.Flags / AssemblyRefRow.Flags.
type AssemblyFlags uint32

const (
	// The assembly reference holds the full (unhashed) public key.
	AssemblyFlagsPublicKey AssemblyFlags = 0x0001
	// The implementation of this assembly used at runtime is not expected
	// to match the version seen at compile time.
	AssemblyFlagsRetargetable AssemblyFlags = 0x0100
	// Reserved.
	AssemblyFlagsDisableJITCompileOptimizer AssemblyFlags = 0x4000
	// Reserved.
	AssemblyFlagsEnableJITCompileTracking AssemblyFlags = 0x8000
)

// EventAttributes is a bitmask over EventRow.Flags.
type EventAttributes uint16

const (
	EventAttributesSpecialName   EventAttributes = 0x0200
	EventAttributesRTSpecialName EventAttributes = 0x0400
)

// FieldAttributes is a bitmask over FieldRow.Flags.
type FieldAttributes uint16

const (
	FieldAttributesAccessMask      FieldAttributes = 0x0007
	FieldAttributesCompilerControlled FieldAttributes = 0x0000
	FieldAttributesPrivate         FieldAttributes = 0x0001
	FieldAttributesFamANDAssem     FieldAttributes = 0x0002
	FieldAttributesAssembly        FieldAttributes = 0x0003
	FieldAttributesFamily          FieldAttributes = 0x0004
	FieldAttributesFamORAssem      FieldAttributes = 0x0005
	FieldAttributesPublic          FieldAttributes = 0x0006
	FieldAttributesStatic          FieldAttributes = 0x0010
	FieldAttributesInitOnly        FieldAttributes = 0x0020
	FieldAttributesLiteral         FieldAttributes = 0x0040
	FieldAttributesNotSerialized   FieldAttributes = 0x0080
	FieldAttributesSpecialName     FieldAttributes = 0x0200
	FieldAttributesPInvokeImpl     FieldAttributes = 0x2000
	FieldAttributesRTSpecialName   FieldAttributes = 0x0400
	FieldAttributesHasFieldMarshal FieldAttributes = 0x1000
	FieldAttributesHasDefault      FieldAttributes = 0x8000
	FieldAttributesHasFieldRVA     FieldAttributes = 0x0100
)

// FileAttributes is a bitmask over FileRow.Flags.
type FileAttributes uint32

const (
	FileAttributesContainsMetadata   FileAttributes = 0x0000
	FileAttributesContainsNoMetadata FileAttributes = 0x0001
)

// GenericParamAttributes is a bitmask over GenericParamRow.Flags.
type GenericParamAttributes uint16

const (
	GenericParamAttributesVarianceMask               GenericParamAttributes = 0x0003
	GenericParamAttributesNone                       GenericParamAttributes = 0x0000
	GenericParamAttributesCovariant                  GenericParamAttributes = 0x0001
	GenericParamAttributesContravariant              GenericParamAttributes = 0x0002
	GenericParamAttributesSpecialConstraintMask       GenericParamAttributes = 0x001C
	GenericParamAttributesReferenceTypeConstraint     GenericParamAttributes = 0x0004
	GenericParamAttributesNotNullableValueTypeConstraint GenericParamAttributes = 0x0008
	GenericParamAttributesDefaultConstructorConstraint GenericParamAttributes = 0x0010
)

// PInvokeAttributes is a bitmask over ImplMapRow.MappingFlags.
type PInvokeAttributes uint16

const (
	PInvokeAttributesNoMangle      PInvokeAttributes = 0x0001
	PInvokeAttributesCharSetMask   PInvokeAttributes = 0x0006
	PInvokeAttributesCharSetNotSpec PInvokeAttributes = 0x0000
	PInvokeAttributesCharSetAnsi   PInvokeAttributes = 0x0002
	PInvokeAttributesCharSetUnicode PInvokeAttributes = 0x0004
	PInvokeAttributesCharSetAuto   PInvokeAttributes = 0x0006
)

// ManifestResourceAttributes is a bitmask over ManifestResourceRow.Flags.
type ManifestResourceAttributes uint32

const (
	ManifestResourceAttributesPublic  ManifestResourceAttributes = 0x0001
	ManifestResourceAttributesPrivate ManifestResourceAttributes = 0x0002
)

// MethodImplAttributes is a bitmask over MethodDefRow.ImplFlags.
type MethodImplAttributes uint16

const (
	MethodImplAttributesMemberAccessMask  MethodImplAttributes = 0x0007
	MethodImplAttributesCompilerControlled MethodImplAttributes = 0x0000
	MethodImplAttributesPrivate           MethodImplAttributes = 0x0001
	MethodImplAttributesFamANDAssem       MethodImplAttributes = 0x0002
	MethodImplAttributesAssem             MethodImplAttributes = 0x0003
	MethodImplAttributesFamily            MethodImplAttributes = 0x0004
	MethodImplAttributesFamORAssem        MethodImplAttributes = 0x0005
	MethodImplAttributesPublic            MethodImplAttributes = 0x0006
	MethodImplAttributesStatic            MethodImplAttributes = 0x0010
	MethodImplAttributesFinal             MethodImplAttributes = 0x0020
	MethodImplAttributesVirtual           MethodImplAttributes = 0x0040
	MethodImplAttributesHideBySig         MethodImplAttributes = 0x0080
	MethodImplAttributesVTableLayoutMask  MethodImplAttributes = 0x0100
	MethodImplAttributesReuseSlot         MethodImplAttributes = 0x0000
	MethodImplAttributesNewSlot           MethodImplAttributes = 0x0100
	MethodImplAttributesStrict            MethodImplAttributes = 0x0200
	MethodImplAttributesAbstract          MethodImplAttributes = 0x0400
	MethodImplAttributesSpecialName       MethodImplAttributes = 0x0800
	MethodImplAttributesPInvokeImpl       MethodImplAttributes = 0x2000
	MethodImplAttributesUnmanagedExport   MethodImplAttributes = 0x0008
	MethodImplAttributesRTSpecialName     MethodImplAttributes = 0x1000
	MethodImplAttributesHasSecurity       MethodImplAttributes = 0x4000
	MethodImplAttributesRequireSecObject  MethodImplAttributes = 0x8000
)

// MethodAttributes is a bitmask over MethodDefRow.Flags.
type MethodAttributes uint16

const (
	MethodAttributesMemberAccessMask   MethodAttributes = 0x0007
	MethodAttributesCompilerControlled MethodAttributes = 0x0000
	MethodAttributesPrivate            MethodAttributes = 0x0001
	MethodAttributesFamANDAssem        MethodAttributes = 0x0002
	MethodAttributesAssem              MethodAttributes = 0x0003
	MethodAttributesFamily             MethodAttributes = 0x0004
	MethodAttributesFamORAssem         MethodAttributes = 0x0005
	MethodAttributesPublic             MethodAttributes = 0x0006
	MethodAttributesStatic             MethodAttributes = 0x0010
	MethodAttributesFinal              MethodAttributes = 0x0020
	MethodAttributesVirtual            MethodAttributes = 0x0040
	MethodAttributesHideBySig          MethodAttributes = 0x0080
	MethodAttributesVTableLayoutMask   MethodAttributes = 0x0100
	MethodAttributesReuseSlot          MethodAttributes = 0x0000
	MethodAttributesNewSlot            MethodAttributes = 0x0100
	MethodAttributesStrict             MethodAttributes = 0x0200
	MethodAttributesAbstract           MethodAttributes = 0x0400
	MethodAttributesSpecialName        MethodAttributes = 0x0800
	MethodAttributesPInvokeImpl        MethodAttributes = 0x2000
	MethodAttributesUnmanagedExport    MethodAttributes = 0x0008
	MethodAttributesRTSpecialName      MethodAttributes = 0x1000
	MethodAttributesHasSecurity        MethodAttributes = 0x4000
	MethodAttributesRequireSecObject   MethodAttributes = 0x8000
)

// MethodSemanticsAttributes is a bitmask over MethodSemanticsRow.Semantics.
type MethodSemanticsAttributes uint16

const (
	MethodSemanticsAttributesSetter  MethodSemanticsAttributes = 0x0001
	MethodSemanticsAttributesGetter  MethodSemanticsAttributes = 0x0002
	MethodSemanticsAttributesOther   MethodSemanticsAttributes = 0x0004
	MethodSemanticsAttributesAddOn   MethodSemanticsAttributes = 0x0008
	MethodSemanticsAttributesRemoveOn MethodSemanticsAttributes = 0x0010
	MethodSemanticsAttributesFire    MethodSemanticsAttributes = 0x0020
)

// ParamAttributes is a bitmask over ParamRow.Flags.
type ParamAttributes uint16

const (
	ParamAttributesIn              ParamAttributes = 0x0001
	ParamAttributesOut             ParamAttributes = 0x0002
	ParamAttributesOptional        ParamAttributes = 0x0010
	ParamAttributesHasDefault      ParamAttributes = 0x1000
	ParamAttributesHasFieldMarshal ParamAttributes = 0x2000
	ParamAttributesUnused          ParamAttributes = 0xcfe0
)

// PropertyAttributes is a bitmask over PropertyRow.Flags.
type PropertyAttributes uint16

const (
	PropertyAttributesSpecialName   PropertyAttributes = 0x0200
	PropertyAttributesRTSpecialName PropertyAttributes = 0x0400
	PropertyAttributesHasDefault    PropertyAttributes = 0x1000
	PropertyAttributesUnused        PropertyAttributes = 0xe9ff
)

// TypeAttributes is a bitmask over TypeDefRow.Flags / ExportedTypeRow.Flags.
type TypeAttributes uint32

const (
	TypeAttributesVisibilityMask        TypeAttributes = 0x00000007
	TypeAttributesNotPublic             TypeAttributes = 0x00000000
	TypeAttributesPublic                TypeAttributes = 0x00000001
	TypeAttributesNestedPublic          TypeAttributes = 0x00000002
	TypeAttributesNestedPrivate         TypeAttributes = 0x00000003
	TypeAttributesNestedFamily          TypeAttributes = 0x00000004
	TypeAttributesNestedAssembly        TypeAttributes = 0x00000005
	TypeAttributesNestedFamANDAssem     TypeAttributes = 0x00000006
	TypeAttributesNestedFamORAssem      TypeAttributes = 0x00000007
	TypeAttributesLayoutMask            TypeAttributes = 0x00000018
	TypeAttributesAutoLayout            TypeAttributes = 0x00000000
	TypeAttributesSequentialLayout      TypeAttributes = 0x00000008
	TypeAttributesExplicitLayout        TypeAttributes = 0x00000010
	TypeAttributesClassSemanticsMask    TypeAttributes = 0x00000020
	TypeAttributesClass                 TypeAttributes = 0x00000000
	TypeAttributesInterface             TypeAttributes = 0x00000020
	TypeAttributesAbstract              TypeAttributes = 0x00000080
	TypeAttributesSealed                TypeAttributes = 0x00000100
	TypeAttributesSpecialName           TypeAttributes = 0x00000400
	TypeAttributesImport                TypeAttributes = 0x00001000
	TypeAttributesSerializable          TypeAttributes = 0x00002000
	TypeAttributesStringFormatMask      TypeAttributes = 0x00030000
	TypeAttributesAnsiClass             TypeAttributes = 0x00000000
	TypeAttributesUnicodeClass          TypeAttributes = 0x00010000
	TypeAttributesAutoClass             TypeAttributes = 0x00020000
	TypeAttributesCustomFormatClass     TypeAttributes = 0x00030000
	TypeAttributesCustomStringFormatMask TypeAttributes = 0x00C00000
	TypeAttributesBeforeFieldInit       TypeAttributes = 0x00100000
	TypeAttributesRTSpecialName         TypeAttributes = 0x00000800
	TypeAttributesHasSecurity           TypeAttributes = 0x00040000
	TypeAttributesIsTypeForwarder       TypeAttributes = 0x00200000
)

// ElementType identifies a signature element's primitive type (spec §4.6
// note, Constant.Type). Full signature decoding is out of scope; this
// enum lets callers interpret a Constant row's Type byte without it.
type ElementType uint8

const (
	ElementTypeEnd           ElementType = 0x00
	ElementTypeVoid          ElementType = 0x01
	ElementTypeBoolean       ElementType = 0x02
	ElementTypeChar          ElementType = 0x03
	ElementTypeI1            ElementType = 0x04
	ElementTypeU1            ElementType = 0x05
	ElementTypeI2            ElementType = 0x06
	ElementTypeU2            ElementType = 0x07
	ElementTypeI4            ElementType = 0x08
	ElementTypeU4            ElementType = 0x09
	ElementTypeI8            ElementType = 0x0a
	ElementTypeU8            ElementType = 0x0b
	ElementTypeR4            ElementType = 0x0c
	ElementTypeR8            ElementType = 0x0d
	ElementTypeString        ElementType = 0x0e
	ElementTypePtr           ElementType = 0x0f
	ElementTypeByRef         ElementType = 0x10
	ElementTypeValueType     ElementType = 0x11
	ElementTypeClass         ElementType = 0x12
	ElementTypeVar           ElementType = 0x13
	ElementTypeArray         ElementType = 0x14
	ElementTypeGenericInst   ElementType = 0x15
	ElementTypeTypedByRef    ElementType = 0x16
	ElementTypeI             ElementType = 0x18
	ElementTypeU             ElementType = 0x19
	ElementTypeFnPtr         ElementType = 0x1b
	ElementTypeObject        ElementType = 0x1c
	ElementTypeSZArray       ElementType = 0x1d
	ElementTypeMVar          ElementType = 0x1e
	ElementTypeCmodReqd      ElementType = 0x1f
	ElementTypeCmodOpt       ElementType = 0x20
	ElementTypeInternal      ElementType = 0x21
	ElementTypeModifier      ElementType = 0x40
	ElementTypeSentinel      ElementType = 0x41
	ElementTypePinned        ElementType = 0x45
)
