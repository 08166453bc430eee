// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"errors"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "etc/passwd", want: "etc/passwd"},
		{in: `etc\passwd`, want: "etc/passwd"},
		{in: "./etc/passwd", want: "etc/passwd"},
		{in: "/etc/passwd", want: "etc/passwd"},
		{in: "  etc/passwd  ", want: "etc/passwd"},
		{in: "a/./b//c", want: "a/b/c"},
		{in: ".", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Fatalf("NormalizePath(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeExtractEntryPath(t *testing.T) {
	t.Parallel()

	got, err := normalizeExtractEntryPath(`dir\sub\file.txt`)
	if err != nil {
		t.Fatalf("normalizeExtractEntryPath: %v", err)
	}
	if got != "dir/sub/file.txt" {
		t.Fatalf("got %q, want dir/sub/file.txt", got)
	}

	rejected := []string{
		"",
		"   ",
		"/abs/path",
		`\abs\path`,
		"C:/windows/system32",
		"../outside",
		"dir/../../outside",
		"name\x00with-nul",
		"./.",
	}

	for _, in := range rejected {
		if _, err := normalizeExtractEntryPath(in); !errors.Is(err, ErrInvalidExtractPath) {
			t.Fatalf("normalizeExtractEntryPath(%q) error = %v, want ErrInvalidExtractPath", in, err)
		}
	}
}
