// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func buildExtractArchive(t *testing.T) *Reader {
	t.Helper()

	b := NewBuilder(Common)
	b.Append(Header{Name: "a.o", Mode: 0o644}, []byte("object a"))
	b.Append(Header{Name: "b.o", Mode: 0o640}, []byte("object b"))
	b.Append(Header{Name: "notes.txt", Mode: 0o644}, []byte("readme"))

	r, err := NewReader(b.Finalize())
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	return r
}

func TestExtract(t *testing.T) {
	t.Parallel()

	r := buildExtractArchive(t)
	dst := t.TempDir()

	var mu sync.Mutex
	done := make(map[string]int64)

	err := r.Extract(context.Background(), dst, ExtractOptions{
		OnEntryDone: func(hdr Header, written int64, outputPath string) {
			mu.Lock()
			done[hdr.Name] = written
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "a.o"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "object a" {
		t.Fatalf("extracted content %q, want object a", got)
	}

	info, err := os.Stat(filepath.Join(dst, "b.o"))
	if err != nil {
		t.Fatalf("stat extracted file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o640 {
		t.Fatalf("extracted perm %v, want 0640", perm)
	}

	if len(done) != 3 {
		t.Fatalf("OnEntryDone called for %d entries, want 3", len(done))
	}
	if done["a.o"] != 8 {
		t.Fatalf("written bytes for a.o = %d, want 8", done["a.o"])
	}
}

func TestExtractWithRules(t *testing.T) {
	t.Parallel()

	r := buildExtractArchive(t)
	dst := t.TempDir()

	err := r.Extract(context.Background(), dst, ExtractOptions{
		Rules:      includeRules("*.o"),
		MaxWorkers: 1,
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "a.o")); err != nil {
		t.Fatalf("selected file missing: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "notes.txt")); !os.IsNotExist(err) {
		t.Fatalf("excluded file present, stat err = %v", err)
	}
}

func TestExtractRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Common)
	b.Append(Header{Name: "../escape.o", Mode: 0o644}, []byte("x"))

	r, err := NewReader(b.Finalize())
	if err != nil {
		t.Fatalf("parse built archive: %v", err)
	}

	err = r.Extract(context.Background(), t.TempDir(), ExtractOptions{})
	if !errors.Is(err, ErrInvalidExtractPath) {
		t.Fatalf("Extract error = %v, want ErrInvalidExtractPath", err)
	}
}

func TestValidateExtractName(t *testing.T) {
	t.Parallel()

	valid := []string{"a.o", "lib name.a", "obj-1.o"}
	for _, name := range valid {
		if err := validateExtractName(name); err != nil {
			t.Fatalf("validateExtractName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "  ", ".", "..", "dir/file.o", `dir\file.o`, "nul\x00name"}
	for _, name := range invalid {
		if err := validateExtractName(name); !errors.Is(err, ErrInvalidExtractPath) {
			t.Fatalf("validateExtractName(%q) = %v, want ErrInvalidExtractPath", name, err)
		}
	}
}
