// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Fixed byte offsets of the fields inside the 60-byte header record.
// Every field is left-justified ASCII, right-padded with spaces.
const (
	fieldName    = 0
	fieldModTime = 16
	fieldUID     = 28
	fieldGID     = 34
	fieldMode    = 40
	fieldSize    = 48
	fieldMagic   = 58
)

// modeClassPrefix is the historical "100" regular-file class written in
// front of the octal permission digits and stripped back on decode.
const modeClassPrefix = "100"

// decodedHeader is one parsed fixed record plus variant adjustment results.
type decodedHeader struct {
	hdr Header
	// inlineSize is the BSD inline name length prepended to content.
	inlineSize int64
	// inline reports the BSD "#1/<N>" name form.
	inline bool
	// gnuName reports a GNU trailing-slash name form.
	gnuName bool
}

// writeSession carries the GNU name-table state shared across one builder
// instance. It must never be shared between concurrent builds.
type writeSession struct {
	table        bytes.Buffer
	tableOffset  int64
	hasLongNames bool
}

// decodeHeader parses one fixed record and applies variant-specific name
// and size adjustment. For BSD inline names the real name is left empty;
// the scanner reads it from the first inlineSize content bytes.
func decodeHeader(b []byte) (decodedHeader, error) {
	if len(b) < headerSize {
		return decodedHeader{}, fmt.Errorf("%w: short record (%d bytes)", ErrInvalidHeader, len(b))
	}

	if string(b[fieldMagic:fieldMagic+2]) != entryMagic {
		return decodedHeader{}, fmt.Errorf("%w: bad record terminator %q", ErrInvalidHeader, b[fieldMagic:fieldMagic+2])
	}

	name := trimTrailingSpaces(b[fieldName : fieldName+nameFieldSize])

	modTime, err := parseDecimalField(b[fieldModTime:fieldUID])
	if err != nil {
		return decodedHeader{}, fmt.Errorf("%w: mtime: %v", ErrInvalidHeader, err)
	}

	uid, err := parseDecimalField(b[fieldUID:fieldGID])
	if err != nil {
		return decodedHeader{}, fmt.Errorf("%w: uid: %v", ErrInvalidHeader, err)
	}

	gid, err := parseDecimalField(b[fieldGID:fieldMode])
	if err != nil {
		return decodedHeader{}, fmt.Errorf("%w: gid: %v", ErrInvalidHeader, err)
	}

	mode, err := parseModeField(b[fieldMode:fieldSize])
	if err != nil {
		return decodedHeader{}, fmt.Errorf("%w: mode: %v", ErrInvalidHeader, err)
	}

	size, err := parseDecimalField(b[fieldSize:fieldMagic])
	if err != nil {
		return decodedHeader{}, fmt.Errorf("%w: size: %v", ErrInvalidHeader, err)
	}

	out := decodedHeader{hdr: Header{
		Name:    name,
		ModTime: modTime,
		UID:     uid,
		GID:     gid,
		Mode:    mode,
		Size:    size,
	}}

	switch {
	case strings.HasPrefix(name, "#1/"):
		inlineSize, err := strconv.ParseInt(name[3:], 10, 64)
		if err != nil {
			return decodedHeader{}, fmt.Errorf("%w: inline name size %q", ErrInvalidHeader, name[3:])
		}

		out.hdr.Name = ""
		out.hdr.Size = size - inlineSize
		out.inlineSize = inlineSize
		out.inline = true
	case strings.HasSuffix(name, "/") && name != nameTableName && name != symbolTableName:
		out.hdr.Name = name[:len(name)-1]
		out.gnuName = true
	}

	return out, nil
}

// encodeHeader serializes one header for the target variant and returns the
// fixed record plus the inline name bytes the caller must write before
// content for BSD long names. GNU long names are appended to the session's
// pending name table and referenced by running offset.
func encodeHeader(hdr Header, contentSize int64, variant Variant, s *writeSession) ([headerSize]byte, []byte) {
	var inlineName []byte
	nameField := hdr.Name

	switch variant {
	case Common:
		if len(nameField) > nameFieldSize {
			nameField = nameField[:nameFieldSize]
		}
	case BSD:
		if len(hdr.Name) > nameFieldSize || strings.Contains(hdr.Name, " ") {
			nameField = "#1/" + strconv.Itoa(len(hdr.Name))
			inlineName = []byte(hdr.Name)
		}
	case GNU:
		switch {
		case hdr.Name == nameTableName:
			nameField = nameTableName
		case len(hdr.Name) <= nameFieldSize-1:
			nameField = hdr.Name + "/"
		default:
			s.hasLongNames = true
			s.table.WriteString(hdr.Name)
			s.table.WriteString("/\n")
			nameField = "/" + strconv.FormatInt(s.tableOffset, 10)
			s.tableOffset += int64(len(hdr.Name)) + 3
		}
	}

	var record [headerSize]byte
	for i := range record {
		record[i] = ' '
	}

	putField(record[fieldName:fieldModTime], nameField)
	putField(record[fieldModTime:fieldUID], strconv.FormatInt(hdr.ModTime, 10))
	putField(record[fieldUID:fieldGID], strconv.FormatInt(hdr.UID, 10))
	putField(record[fieldGID:fieldMode], strconv.FormatInt(hdr.GID, 10))
	putField(record[fieldMode:fieldSize], modeClassPrefix+strconv.FormatInt(hdr.Mode, 8))
	putField(record[fieldSize:fieldMagic], strconv.FormatInt(contentSize+int64(len(inlineName)), 10))
	copy(record[fieldMagic:], entryMagic)

	return record, inlineName
}

// putField copies a left-justified value into a space-filled field.
func putField(dst []byte, value string) {
	if len(value) > len(dst) {
		value = value[:len(dst)]
	}

	copy(dst, value)
}

// trimTrailingSpaces strips trailing spaces while always keeping the first
// byte, so a single-character field survives even when it is a space.
func trimTrailingSpaces(b []byte) string {
	i := len(b) - 1
	for i > 0 && b[i] == ' ' {
		i--
	}

	return string(b[:i+1])
}

// parseDecimalField parses a space-padded decimal field; empty means zero.
func parseDecimalField(b []byte) (int64, error) {
	s := strings.ReplaceAll(string(b), " ", "")
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}

// parseModeField parses the octal mode field, dropping the historical "100"
// class prefix when present.
func parseModeField(b []byte) (int64, error) {
	s := strings.ReplaceAll(string(b), " ", "")
	if strings.HasPrefix(s, modeClassPrefix) && len(s) > len(modeClassPrefix) {
		s = s[len(modeClassPrefix):]
	}
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 8, 64)
}
