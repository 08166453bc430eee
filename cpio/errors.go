// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"errors"
	"fmt"
)

// Sentinel errors for cpio operations. Use errors.Is in callers.
var (
	// ErrEmptyArchive means the input buffer holds no parseable entries.
	ErrEmptyArchive = errors.New("archive has no entries")
	// ErrInvalidArchive means the archive is structurally present but semantically broken.
	ErrInvalidArchive = errors.New("invalid cpio archive")
	// ErrInvalidHeader means a fixed-width header field failed to parse as hexadecimal.
	ErrInvalidHeader = errors.New("invalid cpio entry header")
	// ErrInvalidChecksum means the magic declared a checksum but the field was unparseable.
	ErrInvalidChecksum = errors.New("missing or invalid checksum")
	// ErrEntryNotFound means the entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidExtractPath means archive entry path is invalid for extraction destination.
	ErrInvalidExtractPath = errors.New("invalid extract path")
	// ErrInvalidFilterPattern means one or more entry selection rules are invalid.
	ErrInvalidFilterPattern = errors.New("invalid entry filter rules")
)

// ChecksumError reports an unparseable checksum field on a checksum-variant
// header. Header carries the fixed fields decoded before the failure.
type ChecksumError struct {
	// Header is the partially decoded header for diagnostics.
	Header Header
}

// Error formats the checksum failure with decoded header context.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v: inode %s mode %v", ErrInvalidChecksum, formatOptional(e.Header.Inode), e.Header.Mode)
}

// Unwrap makes the error match ErrInvalidChecksum via errors.Is.
func (e *ChecksumError) Unwrap() error {
	return ErrInvalidChecksum
}

// formatOptional renders an optional numeric field for diagnostics.
func formatOptional(v *int64) string {
	if v == nil {
		return "<unset>"
	}

	return fmt.Sprintf("%d", *v)
}
