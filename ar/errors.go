// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import "errors"

// Sentinel errors for ar operations. Use errors.Is in callers.
var (
	// ErrEmptyArchive means the input buffer is empty.
	ErrEmptyArchive = errors.New("archive is empty")
	// ErrInvalidArchive means the archive is structurally present but semantically broken.
	ErrInvalidArchive = errors.New("invalid ar archive")
	// ErrMissingMagicBytes means the buffer is shorter than the global magic.
	ErrMissingMagicBytes = errors.New("missing global magic bytes")
	// ErrInvalidMagicBytes means the global magic does not match "!<arch>\n".
	ErrInvalidMagicBytes = errors.New("invalid global magic bytes")
	// ErrNoEntries means nothing follows a valid global magic.
	ErrNoEntries = errors.New("archive has no entries")
	// ErrInvalidHeader means a fixed-width header field failed to parse.
	ErrInvalidHeader = errors.New("invalid ar entry header")
	// ErrEntryNotFound means the entry is not found.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidExtractPath means archive entry name is invalid for extraction destination.
	ErrInvalidExtractPath = errors.New("invalid extract path")
	// ErrInvalidFilterPattern means one or more entry selection rules are invalid.
	ErrInvalidFilterPattern = errors.New("invalid entry filter rules")
)
