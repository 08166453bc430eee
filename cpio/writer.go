// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"bytes"
)

// zeroPad backs NUL alignment padding writes.
var zeroPad [4]byte

// Builder accumulates entries and serializes them into one archive buffer.
//
// Append never fails: missing link counts, type bits, inode and dev numbers
// are defaulted instead of rejected. One builder owns one write session of
// sequential inode/dev counters and must not be shared between concurrent
// builds.
type Builder struct {
	buf     bytes.Buffer
	session writeSession
}

// NewBuilder creates an empty archive builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds one entry to the archive being built.
//
// The caller's header is treated as a value: defaulting is applied to a
// copy and never mutates the original. A header with bare permission bits
// becomes a regular file, and regular or untyped entries with a zero link
// count get one link. For ModeSymlink entries with empty content the link
// target is written as the payload.
func (b *Builder) Append(hdr Header, content []byte) {
	if hdr.Mode.IsSymlink() && len(content) == 0 && hdr.Linkname != "" {
		content = []byte(hdr.Linkname)
	}

	typeBits := hdr.Mode & ModeType
	if hdr.Links == 0 && (typeBits == 0 || typeBits == ModeRegular) {
		hdr.Links = 1
	}

	if typeBits == 0 {
		hdr.Mode |= ModeRegular
	}

	record := encodeHeader(hdr, int64(len(content)), &b.session)
	b.buf.Write(record[:])
	b.buf.WriteString(hdr.Name)
	b.buf.WriteByte(0)

	nameSize := int64(len(hdr.Name)) + 1
	b.buf.Write(zeroPad[:pad4(headerSize+nameSize)])
	b.buf.Write(content)
	b.buf.Write(zeroPad[:pad4(int64(len(content)))])
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Finalize appends the trailer entry and returns the complete archive.
// The returned slice aliases the builder's buffer; call Reset before
// reusing the builder for another archive.
func (b *Builder) Finalize() []byte {
	b.Append(Header{
		Name:  trailerName,
		Mode:  0o644,
		Links: 1,
	}, nil)

	return b.buf.Bytes()
}

// Reset clears accumulated bytes and restarts the write session counters.
func (b *Builder) Reset() {
	b.buf.Reset()
	b.session = writeSession{}
}
