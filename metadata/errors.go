// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package metadata decodes the ECMA-335 CLI metadata embedded in a managed
// PE image: the metadata root, its stream directory, and the compressed
// `#~` tables stream (modules, types, methods, fields, and the coded
// indexes that cross-reference them).
//
// The package is a zero-copy reader: it never allocates beyond a handful of
// parse-time scalars and never owns the bytes it decodes from. The caller
// supplies a buffer containing the CLI metadata section (for example the
// bytes located via a PE image's CLR runtime header) and keeps that buffer
// alive for as long as any value returned from this package is in use.
package metadata

import "fmt"

// ErrorKind classifies the small closed set of ways metadata decoding can
// fail.
type ErrorKind int

const (
	// BadMagic is returned when the metadata root signature does not equal
	// 0x424A5342 ("BSJB").
	BadMagic ErrorKind = iota
	// Malformed is returned when a coded-index tag is outside its defined
	// set, a row field exceeds its destination table's row count, or a
	// length-prefix fails to decode.
	Malformed
	// BadOffset is returned when a stream or intra-stream offset falls
	// outside the buffer.
	BadOffset
	// BadLength is returned when a declared size exceeds the remaining
	// bytes.
	BadLength
	// BadRowID is returned for an out-of-range row index in a table reader.
	BadRowID
	// BadGuidID is returned for a GUID index that would read past the heap.
	BadGuidID
	// BadStringID is returned for a string offset past the heap or an
	// unterminated string.
	BadStringID
	// Utf8 is returned for invalid UTF-8 in the `#Strings` heap.
	Utf8
)

func (k ErrorKind) String() string {
	switch k {
	case BadMagic:
		return "BadMagic"
	case Malformed:
		return "Malformed"
	case BadOffset:
		return "BadOffset"
	case BadLength:
		return "BadLength"
	case BadRowID:
		return "BadRowID"
	case BadGuidID:
		return "BadGuidID"
	case BadStringID:
		return "BadStringID"
	case Utf8:
		return "Utf8"
	default:
		return "Unknown"
	}
}

// Error is the single error type every decoding operation in this package
// returns. Context carries whatever the error kind needs to be actionable:
// a stream name for BadMagic, a coded-index name for Malformed, an offset
// or row id for the others.
type Error struct {
	Kind    ErrorKind
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%s): %v", e.Kind, e.Context, e.Err)
	}
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.Err }

func errBadMagic(where string) error {
	return &Error{Kind: BadMagic, Context: where}
}

func errMalformed(what string) error {
	return &Error{Kind: Malformed, Context: what}
}

func errBadOffset(v uint32) error {
	return &Error{Kind: BadOffset, Context: fmt.Sprintf("0x%x", v)}
}

func errBadLength(v uint32) error {
	return &Error{Kind: BadLength, Context: fmt.Sprintf("0x%x", v)}
}

func errBadRowID(v uint32) error {
	return &Error{Kind: BadRowID, Context: fmt.Sprintf("%d", v)}
}

func errBadGuidID(v uint32) error {
	return &Error{Kind: BadGuidID, Context: fmt.Sprintf("%d", v)}
}

func errBadStringID(v uint32) error {
	return &Error{Kind: BadStringID, Context: fmt.Sprintf("0x%x", v)}
}

func errUtf8(err error) error {
	return &Error{Kind: Utf8, Err: err}
}
