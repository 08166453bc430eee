// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"bytes"
)

// pendingEntry stores one appended entry until serialization.
type pendingEntry struct {
	hdr     Header
	content []byte
}

// Builder accumulates entries and serializes them into one archive buffer
// for the configured variant.
//
// Append never fails; name encoding is chosen per entry at serialization
// time. One builder owns one write session of GNU name-table state and
// must not be shared between concurrent builds.
type Builder struct {
	entries []pendingEntry
	variant Variant
}

// NewBuilder creates an empty archive builder for the given variant.
func NewBuilder(variant Variant) *Builder {
	return &Builder{variant: variant}
}

// Append adds one entry to the archive being built. Content ownership
// transfers to the builder until Finalize or Reset.
func (b *Builder) Append(hdr Header, content []byte) {
	b.entries = append(b.entries, pendingEntry{hdr: hdr, content: content})
}

// Len returns the number of appended entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Finalize serializes the archive and returns the complete buffer.
//
// Headers are computed in a first pass so the GNU name table is complete
// before any record is emitted; the byte order is then global magic, the
// "//" table entry when long names exist, and every entry in append order.
// Each odd-length unit is followed by a single newline pad byte.
func (b *Builder) Finalize() []byte {
	session := writeSession{}
	records := make([][headerSize]byte, len(b.entries))
	inlineNames := make([][]byte, len(b.entries))
	for i := range b.entries {
		records[i], inlineNames[i] = encodeHeader(b.entries[i].hdr, int64(len(b.entries[i].content)), b.variant, &session)
	}

	var out bytes.Buffer
	out.WriteString(globalMagic)

	if session.hasLongNames {
		tableContent := session.table.Bytes()
		tableRecord, _ := encodeHeader(Header{Name: nameTableName}, int64(len(tableContent)), GNU, &session)
		writeUnit(&out, tableRecord, nil, tableContent)
	}

	for i := range b.entries {
		writeUnit(&out, records[i], inlineNames[i], b.entries[i].content)
	}

	return out.Bytes()
}

// Reset clears appended entries for builder reuse.
func (b *Builder) Reset() {
	b.entries = nil
}

// writeUnit emits one header+content unit padded to even total length.
func writeUnit(out *bytes.Buffer, record [headerSize]byte, inlineName []byte, content []byte) {
	out.Write(record[:])
	out.Write(inlineName)
	out.Write(content)
	if (len(inlineName)+len(content))%2 == 1 {
		out.WriteByte('\n')
	}
}
