// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

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
	// entries are parsed headers in archive order, trailer excluded.
	entries []Header
}

// Open reads the archive file at path into memory and parses it.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open cpio: %w", err)
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

	lookupName := NormalizePath(name)
	for i := range r.entries {
		if NormalizePath(r.entries[i].Name) == lookupName {
			return r.content(r.entries[i]), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

// content slices the archive buffer by stored location and size.
func (r *Reader) content(hdr Header) []byte {
	return r.data[hdr.contentOffset : hdr.contentOffset+hdr.Size]
}

// parse walks the buffer and collects entry headers with content locations.
func (r *Reader) parse() error {
	data := r.data
	cursor := int64(0)

	for cursor+headerSize <= int64(len(data)) {
		hdr, size, nameSize, err := decodeHeader(data[cursor : cursor+headerSize])
		if err != nil {
			return err
		}

		nameStart := cursor + headerSize
		if nameStart+nameSize > int64(len(data)) {
			return fmt.Errorf("%w: name extends past buffer end", ErrInvalidHeader)
		}

		// nameSize counts the trailing NUL, which is not kept in memory.
		hdr.Name = string(data[nameStart : nameStart+nameSize-1])

		cursor = nameStart + nameSize + pad4(headerSize+nameSize)
		hdr.contentOffset = cursor
		if cursor+size > int64(len(data)) {
			return fmt.Errorf("%w: content extends past buffer end", ErrInvalidHeader)
		}

		if hdr.Mode.IsSymlink() {
			hdr.Linkname = string(data[cursor : cursor+size])
		}

		cursor += size + pad4(size)
		r.entries = append(r.entries, hdr)

		// The trailer marks the logical end; anything after it is padding
		// or garbage and must not be scanned.
		if hdr.Name == trailerName {
			break
		}
	}

	if n := len(r.entries); n > 0 && r.entries[n-1].Name == trailerName {
		r.entries = r.entries[:n-1]
	}

	if len(r.entries) == 0 {
		return ErrEmptyArchive
	}

	return nil
}
