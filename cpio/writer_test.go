// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"bytes"
	"testing"
)

func TestBuilderReferenceArchive(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Append(Header{
		Name:    "hello.txt",
		Mode:    0o644,
		ModTime: 1620311816,
	}, []byte("Hello, World!\n"))

	got := b.Finalize()

	want := "070701" + // magic, plain variant
		"00000000" + // inode (first session default)
		"000081A4" + // mode 0o100644
		"00000000" + // uid
		"00000000" + // gid
		"00000001" + // nlink defaulted
		"6093FF08" + // mtime 1620311816
		"0000000E" + // size 14
		"00000000" + // devmajor
		"00000000" + // devminor
		"00000000" + // rdevmajor
		"00000000" + // rdevminor
		"0000000A" + // namesize 10
		"00000000" + // checksum
		"hello.txt\x00" + // name region ends 4-aligned, no pad
		"Hello, World!\n\x00\x00" + // content plus 2 pad bytes
		"070701" +
		"00000001" + // inode counter advanced past hello.txt
		"000081A4" +
		"00000000" +
		"00000000" +
		"00000001" +
		"00000000" + // zero mtime stays zero-filled
		"00000000" +
		"00000001" + // devmajor counter
		"00000001" + // devminor counter
		"00000000" +
		"00000000" +
		"0000000B" + // namesize 11
		"00000000" +
		"TRAILER!!!\x00\x00\x00\x00" // name plus 3 pad bytes

	if !bytes.Equal(got, []byte(want)) {
		t.Fatalf("archive bytes mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	t.Parallel()

	inode := int64(77)
	devMajor := int64(8)
	devMinor := int64(3)

	b := NewBuilder()
	b.Append(Header{
		Name:    "etc",
		Mode:    ModeDir | 0o755,
		Links:   2,
		ModTime: 1700000000,
	}, nil)
	b.Append(Header{
		Name:     "etc/passwd",
		Mode:     ModeRegular | 0o600,
		UID:      1000,
		GID:      1000,
		ModTime:  1700000001,
		Inode:    &inode,
		DevMajor: &devMajor,
		DevMinor: &devMinor,
	}, []byte("root:x:0:0\n"))
	b.Append(Header{
		Name:     "etc/motd",
		Mode:     ModeSymlink | 0o777,
		Linkname: "passwd",
	}, nil)

	r, err := NewReader(b.Finalize())
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries)=%d, want 3", len(entries))
	}

	dir := entries[0]
	if dir.Name != "etc" || !dir.Mode.IsDir() || dir.Links != 2 {
		t.Fatalf("dir entry mismatch: %+v", dir)
	}

	file := entries[1]
	if file.Name != "etc/passwd" {
		t.Fatalf("file.Name=%q, want etc/passwd", file.Name)
	}
	if file.Mode != ModeRegular|0o600 || file.UID != 1000 || file.GID != 1000 {
		t.Fatalf("file metadata mismatch: %+v", file)
	}
	if file.Inode == nil || *file.Inode != 77 {
		t.Fatalf("file.Inode=%v, want 77", formatOptional(file.Inode))
	}
	if file.DevMajor == nil || *file.DevMajor != 8 || file.DevMinor == nil || *file.DevMinor != 3 {
		t.Fatalf("file dev numbers mismatch: %+v", file)
	}
	if got := r.ContentAt(1); string(got) != "root:x:0:0\n" {
		t.Fatalf("ContentAt(1)=%q, want root:x:0:0", got)
	}

	link := entries[2]
	if !link.Mode.IsSymlink() {
		t.Fatalf("link.Mode=%v, want symlink type", link.Mode)
	}
	if link.Linkname != "passwd" {
		t.Fatalf("link.Linkname=%q, want passwd", link.Linkname)
	}
	if got := r.ContentOf(link); string(got) != "passwd" {
		t.Fatalf("ContentOf(link)=%q, want passwd", got)
	}
}

func TestBuilderAlignment(t *testing.T) {
	t.Parallel()

	// Name and content lengths chosen to force every padding width.
	names := []string{"a", "ab", "abc", "abcd"}
	b := NewBuilder()
	for i, name := range names {
		b.Append(Header{Name: name, Mode: 0o644}, bytes.Repeat([]byte{'x'}, i+1))
	}

	data := b.Finalize()
	if len(data)%4 != 0 {
		t.Fatalf("archive length %d not 4-aligned", len(data))
	}

	r, err := NewReader(data)
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	for i, name := range names {
		entry := r.Entries()[i]
		if entry.Name != name {
			t.Fatalf("entries[%d].Name=%q, want %q", i, entry.Name, name)
		}
		if entry.contentOffset%4 != 0 {
			t.Fatalf("entries[%d] content offset %d not 4-aligned", i, entry.contentOffset)
		}
		if got := r.ContentAt(i); len(got) != i+1 {
			t.Fatalf("ContentAt(%d) length %d, want %d", i, len(got), i+1)
		}
	}
}

func TestBuilderChecksumVariant(t *testing.T) {
	t.Parallel()

	content := []byte("checksummed payload")
	sum := Sum(content)
	if sum == 0 {
		t.Fatal("Sum returned 0 for non-empty payload")
	}

	b := NewBuilder()
	b.Append(Header{Name: "plain.txt", Mode: 0o644}, []byte("no sum"))
	b.Append(Header{Name: "summed.txt", Mode: 0o644, Checksum: sum}, content)
	data := b.Finalize()

	if got := string(data[:6]); got != "070701" {
		t.Fatalf("plain entry magic %q, want 070701", got)
	}

	r, err := NewReader(data)
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	summed := r.Entries()[1]
	if summed.Checksum != sum {
		t.Fatalf("Checksum=%v, want %v", summed.Checksum, sum)
	}

	// The checksum entry record starts after the first entry's record,
	// name and padded content.
	secondRecord := data[hdrEnd("plain.txt", 6):]
	if got := string(secondRecord[:6]); got != "070702" {
		t.Fatalf("checksum entry magic %q, want 070702", got)
	}
}

// hdrEnd returns the serialized size of one entry with the given name and
// content length.
func hdrEnd(name string, contentLen int64) int64 {
	nameSize := int64(len(name)) + 1
	return headerSize + nameSize + pad4(headerSize+nameSize) + contentLen + pad4(contentLen)
}

func TestBuilderSequentialDefaults(t *testing.T) {
	t.Parallel()

	fixed := int64(500)

	b := NewBuilder()
	b.Append(Header{Name: "first", Mode: 0o644}, nil)
	b.Append(Header{Name: "pinned", Mode: 0o644, Inode: &fixed}, nil)
	b.Append(Header{Name: "third", Mode: 0o644}, nil)

	r, err := NewReader(b.Finalize())
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	entries := r.Entries()
	if *entries[0].Inode != 0 {
		t.Fatalf("entries[0].Inode=%d, want 0", *entries[0].Inode)
	}
	if *entries[1].Inode != 500 {
		t.Fatalf("entries[1].Inode=%d, want 500", *entries[1].Inode)
	}

	// The counter advances for every entry even when the value is unused.
	if *entries[2].Inode != 2 {
		t.Fatalf("entries[2].Inode=%d, want 2", *entries[2].Inode)
	}
	if *entries[2].DevMajor != 2 || *entries[2].DevMinor != 2 {
		t.Fatalf("entries[2] dev numbers (%d,%d), want (2,2)",
			*entries[2].DevMajor, *entries[2].DevMinor)
	}
}

func TestBuilderBareModeDefaults(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Append(Header{Name: "bare", Mode: 0o400}, []byte("x"))

	r, err := NewReader(b.Finalize())
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	entry := r.Entries()[0]
	if !entry.Mode.IsRegular() {
		t.Fatalf("Mode=%v, want regular type bits set", entry.Mode)
	}
	if entry.Mode.Perm() != 0o400 {
		t.Fatalf("Perm()=%v, want 0400", entry.Mode.Perm())
	}
	if entry.Links != 1 {
		t.Fatalf("Links=%d, want 1", entry.Links)
	}
}

func TestBuilderAppendDoesNotMutateCaller(t *testing.T) {
	t.Parallel()

	hdr := Header{Name: "x.bin", Mode: 0o644}
	b := NewBuilder()
	b.Append(hdr, []byte("data"))

	if hdr.Mode != 0o644 {
		t.Fatalf("caller Mode=%v, want 0644 untouched", hdr.Mode)
	}
	if hdr.Links != 0 {
		t.Fatalf("caller Links=%d, want 0 untouched", hdr.Links)
	}
}

func TestBuilderReset(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Append(Header{Name: "a", Mode: 0o644}, nil)
	first := append([]byte(nil), b.Finalize()...)

	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len()=%d after Reset, want 0", b.Len())
	}

	b.Append(Header{Name: "a", Mode: 0o644}, nil)
	second := b.Finalize()

	// Session counters restart, so identical input produces identical bytes.
	if !bytes.Equal(first, second) {
		t.Fatalf("archives differ after Reset:\nfirst  %q\nsecond %q", first, second)
	}
}
