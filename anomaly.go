// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pe

// Anomalies found while walking the PE container on the way to the CLR
// header: structural oddities that don't prevent the Windows loader (or the
// CLR) from loading the image but are worth surfacing to a caller inspecting
// a possibly-obfuscated or malformed assembly.
var (
	// AnoPEHeaderOverlapDOSHeader is reported when the PE headers overlaps with the DOS header.
	AnoPEHeaderOverlapDOSHeader = "PE Header overlaps with DOS header"

	// AnoReservedDataDirectoryEntry is reported when the last data directory entry is not zero.
	AnoReservedDataDirectoryEntry = "Last data directory entry is a reserved field, must be set to zero"

	// ErrInvalidFileAlignment is reported when FileAlignment is larger than 0x200 and odd.
	ErrInvalidFileAlignment = "FileAlignment larger than 0x200 and odd"

	// ErrInvalidSectionAlignment is reported when FileAlignment is less than 0x200 and differs from SectionAlignment.
	ErrInvalidSectionAlignment = "FileAlignment lesser than 0x200 and different from section alignment"
)
