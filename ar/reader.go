// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"fmt"
	"os"
)

// Reader provides read-only random access to a parsed archive buffer.
//
// The reader keeps the original buffer and serves content as zero-copy
// slices of it. After construction the reader never mutates its state, so
// one instance is safe to query from multiple goroutines.
type Reader struct {
	// data is the full archive buffer shared with content slices.
	data []byte
	// entries are parsed headers in archive order, pseudo-entries excluded.
	entries []Header
	// variant is the detected archive dialect.
	variant Variant
}

// Open reads the archive file at path into memory and parses it.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open ar: %w", err)
	}

	return NewReader(data)
}

// NewReader parses an in-memory archive buffer.
// The buffer is retained and must not be modified while the reader is used.
func NewReader(data []byte) (*Reader, error) {
	r := &Reader{data: data}
	if err := r.parse(); err != nil {
		return nil, err
	}

	return r, nil
}

// Variant returns the detected archive dialect.
func (r *Reader) Variant() Variant {
	if r == nil {
		return Common
	}

	return r.variant
}

// Entries returns a copy of parsed entries in archive order.
func (r *Reader) Entries() []Header {
	if r == nil {
		return nil
	}

	entries := make([]Header, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of parsed entries.
func (r *Reader) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// ContentAt returns the content slice of the i-th entry without copying.
// Passing an index outside this reader's entry table is a caller bug and
// panics like any out-of-range access.
func (r *Reader) ContentAt(i int) []byte {
	return r.content(r.entries[i])
}

// ContentOf returns the content slice for a header previously produced by
// this reader. Headers from other readers or built by hand are a caller
// contract violation.
func (r *Reader) ContentOf(hdr Header) []byte {
	return r.content(hdr)
}

// ReadEntry returns the content of the named entry.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	if r == nil {
		return nil, ErrEntryNotFound
	}

	for i := range r.entries {
		if r.entries[i].Name == name {
			return r.content(r.entries[i]), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

// content slices the archive buffer by stored location and size.
func (r *Reader) content(hdr Header) []byte {
	return r.data[hdr.contentOffset : hdr.contentOffset+hdr.Size]
}

// parse validates the global magic, walks all records, then resolves GNU
// name-table references and drops pseudo-entries.
func (r *Reader) parse() error {
	data := r.data
	if len(data) == 0 {
		return ErrEmptyArchive
	}
	if len(data) < len(globalMagic) {
		return ErrMissingMagicBytes
	}
	if string(data[:len(globalMagic)]) != globalMagic {
		return ErrInvalidMagicBytes
	}
	if len(data) == len(globalMagic) {
		return ErrNoEntries
	}

	sawInline := false
	sawGNUName := false
	cursor := int64(len(globalMagic))
	for cursor+headerSize <= int64(len(data)) {
		dec, err := decodeHeader(data[cursor : cursor+headerSize])
		if err != nil {
			return err
		}

		hdr := dec.hdr
		contentLocation := cursor + headerSize + dec.inlineSize
		if dec.inline {
			if contentLocation > int64(len(data)) {
				return fmt.Errorf("%w: inline name extends past buffer end", ErrInvalidHeader)
			}

			hdr.Name = string(data[cursor+headerSize : contentLocation])
			sawInline = true
		}
		if dec.gnuName {
			sawGNUName = true
		}

		hdr.contentOffset = contentLocation
		if contentLocation+hdr.Size > int64(len(data)) {
			return fmt.Errorf("%w: content extends past buffer end", ErrInvalidHeader)
		}

		// Padding parity follows the on-wire content section, which for BSD
		// entries includes the inline name bytes.
		wireSize := hdr.Size + dec.inlineSize
		cursor = contentLocation + hdr.Size + wireSize%2
		r.entries = append(r.entries, hdr)
	}

	if len(r.entries) == 0 {
		return ErrNoEntries
	}

	r.variant = Common
	if sawInline {
		r.variant = BSD
	}
	if sawGNUName {
		r.variant = GNU
	}

	r.resolveNameTable()

	// Drop a leading symbol table pseudo-entry.
	if len(r.entries) > 0 && r.entries[0].Name == symbolTableName {
		r.entries = r.entries[1:]
	}

	return nil
}

// resolveNameTable detects the "//" pseudo-entry, resolves long-name
// references against it, and removes it from the entry list. References
// whose offset is absent from the table keep their literal name.
func (r *Reader) resolveNameTable() {
	tableIndex := -1
	switch {
	case len(r.entries) > 0 && r.entries[0].Name == nameTableName:
		tableIndex = 0
	case len(r.entries) > 1 && r.entries[1].Name == nameTableName:
		tableIndex = 1
	default:
		return
	}

	table := parseNameTable(r.content(r.entries[tableIndex]))
	r.variant = GNU

	for i := range r.entries {
		if i == tableIndex {
			continue
		}

		offset, ok := resolveTableReference(r.entries[i].Name)
		if !ok {
			continue
		}

		if name, found := table.lookup(offset); found {
			r.entries[i].Name = name
		}
	}

	r.entries = append(r.entries[:tableIndex], r.entries[tableIndex+1:]...)
}
