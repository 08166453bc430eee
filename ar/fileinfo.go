// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// FileInfo returns an os.FileInfo view of the header.
func (h *Header) FileInfo() os.FileInfo {
	return headerFileInfo{h}
}

// headerFileInfo adapts a header to the os.FileInfo interface.
type headerFileInfo struct {
	h *Header
}

// Name returns the entry file name.
func (fi headerFileInfo) Name() string { return fi.h.Name }

// Size returns the entry content size.
func (fi headerFileInfo) Size() int64 { return fi.h.Size }

// Mode returns the entry permission bits.
func (fi headerFileInfo) Mode() os.FileMode { return os.FileMode(fi.h.Mode) & os.ModePerm }

// ModTime returns the entry modification time.
func (fi headerFileInfo) ModTime() time.Time { return time.Unix(fi.h.ModTime, 0) }

// IsDir always reports false; the format stores plain files only.
func (fi headerFileInfo) IsDir() bool { return false }

// Sys returns the underlying header.
func (fi headerFileInfo) Sys() any { return fi.h }

// FileInfoHeader creates a header from fi. The format has no type bits, so
// only permission bits of the mode are recorded.
func FileInfoHeader(fi os.FileInfo) (*Header, error) {
	if fi == nil {
		return nil, errors.New("file info is nil")
	}

	if sys, ok := fi.Sys().(*Header); ok {
		// FileInfo produced by Header.FileInfo: return a copy of the original.
		h := *sys
		return &h, nil
	}

	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("unsupported file mode %v: archive members are plain files", fi.Mode())
	}

	return &Header{
		Name:    fi.Name(),
		Mode:    int64(fi.Mode().Perm()),
		ModTime: fi.ModTime().Unix(),
		Size:    fi.Size(),
	}, nil
}
