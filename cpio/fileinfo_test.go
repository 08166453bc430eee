// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHeaderFileInfo(t *testing.T) {
	t.Parallel()

	hdr := Header{
		Name:    "usr/share/doc/readme.txt",
		Mode:    ModeRegular | 0o644,
		Size:    42,
		ModTime: 1700000000,
	}

	fi := hdr.FileInfo()
	if fi.Name() != "readme.txt" {
		t.Fatalf("Name()=%q, want readme.txt", fi.Name())
	}
	if fi.Size() != 42 {
		t.Fatalf("Size()=%d, want 42", fi.Size())
	}
	if fi.IsDir() {
		t.Fatal("IsDir()=true for regular file")
	}
	if got := fi.Mode().Perm(); got != 0o644 {
		t.Fatalf("Mode().Perm()=%v, want 0644", got)
	}
	if fi.ModTime().Unix() != 1700000000 {
		t.Fatalf("ModTime()=%v, want unix 1700000000", fi.ModTime())
	}
}

func TestHeaderFileInfoTypeBits(t *testing.T) {
	t.Parallel()

	dir := Header{Name: "etc", Mode: ModeDir | 0o755}
	if !dir.FileInfo().IsDir() || dir.FileInfo().Mode()&os.ModeDir == 0 {
		t.Fatalf("directory mode not mapped: %v", dir.FileInfo().Mode())
	}

	link := Header{Name: "l", Mode: ModeSymlink | 0o777}
	if link.FileInfo().Mode()&os.ModeSymlink == 0 {
		t.Fatalf("symlink mode not mapped: %v", link.FileInfo().Mode())
	}

	setuid := Header{Name: "s", Mode: ModeRegular | ModeSetuid | 0o755}
	if setuid.FileInfo().Mode()&os.ModeSetuid == 0 {
		t.Fatalf("setuid bit not mapped: %v", setuid.FileInfo().Mode())
	}
}

func TestFileInfoHeaderFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0o640); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fi, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("lstat fixture: %v", err)
	}

	hdr, err := FileInfoHeader(fi, "")
	if err != nil {
		t.Fatalf("FileInfoHeader: %v", err)
	}

	if !hdr.Mode.IsRegular() {
		t.Fatalf("Mode=%v, want regular type", hdr.Mode)
	}
	if hdr.Mode.Perm() != 0o640 {
		t.Fatalf("Perm()=%v, want 0640", hdr.Mode.Perm())
	}
	if hdr.Size != 10 {
		t.Fatalf("Size=%d, want 10", hdr.Size)
	}
	if hdr.Name != "sample.txt" {
		t.Fatalf("Name=%q, want sample.txt", hdr.Name)
	}
}

func TestFileInfoHeaderSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	linkPath := filepath.Join(dir, "link")
	if err := os.Symlink("target.txt", linkPath); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fi, err := os.Lstat(linkPath)
	if err != nil {
		t.Fatalf("lstat symlink: %v", err)
	}

	hdr, err := FileInfoHeader(fi, "target.txt")
	if err != nil {
		t.Fatalf("FileInfoHeader: %v", err)
	}

	if !hdr.Mode.IsSymlink() {
		t.Fatalf("Mode=%v, want symlink type", hdr.Mode)
	}
	if hdr.Linkname != "target.txt" {
		t.Fatalf("Linkname=%q, want target.txt", hdr.Linkname)
	}
	if hdr.Size != 0 {
		t.Fatalf("Size=%d, want 0 for symlink", hdr.Size)
	}
}

func TestFileInfoHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	orig := Header{
		Name:    "etc/passwd",
		Mode:    ModeRegular | 0o600,
		UID:     1000,
		GID:     1000,
		Size:    11,
		ModTime: 1700000000,
	}

	hdr, err := FileInfoHeader(orig.FileInfo(), "")
	if err != nil {
		t.Fatalf("FileInfoHeader: %v", err)
	}

	// Sys() carries the full header through, ownership included.
	if hdr.Name != orig.Name || hdr.UID != 1000 || hdr.GID != 1000 {
		t.Fatalf("round-trip header mismatch: %+v", hdr)
	}
}
