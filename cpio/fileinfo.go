// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"errors"
	"fmt"
	"os"
	"path"
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

// Name returns the base name of the entry.
func (fi headerFileInfo) Name() string { return path.Base(fi.h.Name) }

// Size returns the entry content size.
func (fi headerFileInfo) Size() int64 { return fi.h.Size }

// ModTime returns the entry modification time.
func (fi headerFileInfo) ModTime() time.Time { return time.Unix(fi.h.ModTime, 0) }

// IsDir reports whether the entry is a directory.
func (fi headerFileInfo) IsDir() bool { return fi.h.Mode.IsDir() }

// Sys returns the underlying header.
func (fi headerFileInfo) Sys() any { return fi.h }

// Mode maps archive mode bits to an os.FileMode.
func (fi headerFileInfo) Mode() os.FileMode {
	mode := os.FileMode(fi.h.Mode.Perm())

	switch fi.h.Mode & ModeType {
	case ModeDir:
		mode |= os.ModeDir
	case ModeSymlink:
		mode |= os.ModeSymlink
	case ModeNamedPipe:
		mode |= os.ModeNamedPipe
	case ModeSocket:
		mode |= os.ModeSocket
	case ModeDevice:
		mode |= os.ModeDevice
	case ModeCharDevice:
		mode |= os.ModeDevice | os.ModeCharDevice
	}

	if fi.h.Mode&ModeSetuid != 0 {
		mode |= os.ModeSetuid
	}
	if fi.h.Mode&ModeSetgid != 0 {
		mode |= os.ModeSetgid
	}
	if fi.h.Mode&ModeSticky != 0 {
		mode |= os.ModeSticky
	}

	return mode
}

// FileInfoHeader creates a partially populated header from fi.
// If fi describes a symlink, link is recorded as the link target. Because
// os.FileInfo carries only the base name, callers usually rewrite Name to
// the full archive path afterwards.
func FileInfoHeader(fi os.FileInfo, link string) (*Header, error) {
	if fi == nil {
		return nil, errors.New("file info is nil")
	}

	if sys, ok := fi.Sys().(*Header); ok {
		// FileInfo produced by Header.FileInfo: return a copy of the original.
		h := *sys
		return &h, nil
	}

	fm := fi.Mode()
	h := &Header{
		Name:    fi.Name(),
		Mode:    FileMode(fm.Perm()),
		ModTime: fi.ModTime().Unix(),
		Size:    fi.Size(),
	}

	switch {
	case fm.IsRegular():
		h.Mode |= ModeRegular
	case fi.IsDir():
		h.Mode |= ModeDir
		h.Size = 0
	case fm&os.ModeSymlink != 0:
		h.Mode |= ModeSymlink
		h.Linkname = link
		h.Size = 0
	case fm&os.ModeDevice != 0:
		if fm&os.ModeCharDevice != 0 {
			h.Mode |= ModeCharDevice
		} else {
			h.Mode |= ModeDevice
		}
	case fm&os.ModeNamedPipe != 0:
		h.Mode |= ModeNamedPipe
	case fm&os.ModeSocket != 0:
		h.Mode |= ModeSocket
	default:
		return nil, fmt.Errorf("unsupported file mode %v", fm)
	}

	if fm&os.ModeSetuid != 0 {
		h.Mode |= ModeSetuid
	}
	if fm&os.ModeSetgid != 0 {
		h.Mode |= ModeSetgid
	}
	if fm&os.ModeSticky != 0 {
		h.Mode |= ModeSticky
	}

	return h, nil
}
