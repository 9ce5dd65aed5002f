// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package metadata

// rootMagic is the metadata root signature, "BSJB" read as a little-endian
// u32 -- the initials of the four CLR founders (spec §6).
const rootMagic = 0x424A5342

// streamHeader is one entry of the metadata root's stream directory
// (spec §4.1 item 5).
type streamHeader struct {
	Offset uint32
	Size   uint32
	Name   string
}

// data returns the bytes of the stream relative to the metadata root buf.
func (s streamHeader) data(buf []byte) ([]byte, error) {
	return boundedSlice(buf, s.Offset, s.Size)
}

// root is the parsed metadata root header plus the recognized stream
// headers, keep-first deduplicated (spec §3/§4.1).
type root struct {
	MajorVersion uint16
	MinorVersion uint16
	Version      string

	Strings     *streamHeader
	UserStrings *streamHeader
	Blob        *streamHeader
	Guid        *streamHeader
	Tables      *streamHeader // `#~` or `#-`
	TablesName  string
}

// parseRoot decodes the metadata root header and its stream directory from
// buf, which starts at the metadata root (the CLR runtime header's
// MetaData data directory, translated to a file offset by the caller).
//
// Obfuscated images may duplicate or inject streams; the rule is to keep
// the first occurrence of each recognized name and silently discard
// duplicates and unrecognized names (spec §3, testable property 4).
func parseRoot(buf []byte) (*root, error) {
	magic, err := readU32(buf, 0)
	if err != nil {
		return nil, errBadMagic("Metadata")
	}
	if magic != rootMagic {
		return nil, errBadMagic("Metadata")
	}

	r := &root{}
	if r.MajorVersion, err = readU16(buf, 4); err != nil {
		return nil, err
	}
	if r.MinorVersion, err = readU16(buf, 6); err != nil {
		return nil, err
	}
	// offset 8: u32 reserved, ignored.

	version, off, err := readLengthPrefixedString(buf, 12)
	if err != nil {
		return nil, err
	}
	r.Version = version

	// offset: u16 flags (reserved), u16 stream count.
	off += 2
	streamCount, err := readU16(buf, off)
	if err != nil {
		return nil, err
	}
	off += 2

	seen := make(map[string]bool, streamCount)
	for i := uint16(0); i < streamCount; i++ {
		var sh streamHeader
		if sh.Offset, err = readU32(buf, off); err != nil {
			return nil, err
		}
		if sh.Size, err = readU32(buf, off+4); err != nil {
			return nil, err
		}
		off += 8

		name, next, err := readNulPaddedName(buf, off)
		if err != nil {
			return nil, err
		}
		sh.Name = name
		off = next

		if seen[sh.Name] {
			continue
		}

		switch sh.Name {
		case "#Strings":
			seen[sh.Name] = true
			h := sh
			r.Strings = &h
		case "#US":
			seen[sh.Name] = true
			h := sh
			r.UserStrings = &h
		case "#Blob":
			seen[sh.Name] = true
			h := sh
			r.Blob = &h
		case "#GUID":
			seen[sh.Name] = true
			h := sh
			r.Guid = &h
		case "#~", "#-":
			// The streams #~ and #- are mutually exclusive, but both are
			// recognized names subject to the same keep-first rule.
			if r.Tables != nil {
				continue
			}
			seen[sh.Name] = true
			h := sh
			r.Tables = &h
			r.TablesName = sh.Name
		default:
			// Unknown stream name: discarded silently.
		}
	}

	return r, nil
}
