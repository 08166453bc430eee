// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"github.com/woozymasta/pathrules"
)

// Internal binary layout constants.
const (
	globalMagic     = "!<arch>\n"
	headerSize      = 60   // fixed entry header size in bytes
	nameFieldSize   = 16   // width of the name field
	entryMagic      = "`\n" // 2-byte record terminator
	nameTableName   = "//"  // GNU long-filename table pseudo-entry
	symbolTableName = "/"   // GNU symbol table pseudo-entry
)

// Variant identifies one of the ar on-disk dialects.
type Variant uint8

// Archive format variants.
const (
	// Common truncates names longer than 16 characters. A name cut
	// exactly at a "/" reads back in the GNU short-name form: the slash
	// is stripped and the archive is detected as GNU.
	Common Variant = iota
	// BSD stores long or space-containing names inline before entry content.
	BSD
	// GNU collects long names in a "//" side table referenced by offset.
	GNU
)

// String returns the conventional variant name.
func (v Variant) String() string {
	switch v {
	case Common:
		return "common"
	case BSD:
		return "bsd"
	case GNU:
		return "gnu"
	default:
		return "unknown"
	}
}

// Header describes a single archive entry. The format has no directory or
// link concept: Mode carries permission bits only.
type Header struct {
	// Name is the entry file name.
	Name string `json:"name" yaml:"name"`
	// ModTime is the modification time in Unix seconds.
	ModTime int64 `json:"mod_time" yaml:"mod_time"`
	// UID is the owner user id.
	UID int64 `json:"uid" yaml:"uid"`
	// GID is the owner group id.
	GID int64 `json:"gid" yaml:"gid"`
	// Mode holds Unix permission bits.
	Mode int64 `json:"mode" yaml:"mode"`
	// Size is the content size in bytes, set during parse and serialization.
	// For BSD inline-name entries it excludes the prepended name bytes.
	Size int64 `json:"size" yaml:"size"`

	// contentOffset is the absolute payload offset filled during scan.
	contentOffset int64
}

// ExtractOptions configures Extract behavior.
type ExtractOptions struct {
	// OnEntryDone is called after one entry is fully written to disk.
	OnEntryDone func(hdr Header, written int64, outputPath string) `json:"-" yaml:"-"`
	// Rules defines ordered name rules selecting entries for extraction;
	// empty means all entries.
	Rules []pathrules.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
	// MatcherOptions control entry selection rule matching.
	MatcherOptions pathrules.MatcherOptions `json:"matcher_options,omitzero" yaml:"matcher_options,omitzero"`
	// MaxWorkers is number of extraction workers (zero means GOMAXPROCS).
	MaxWorkers int `json:"max_workers,omitempty" yaml:"max_workers,omitempty"`
}

// applyDefaults fills zero-valued extract options with defaults.
func (opts *ExtractOptions) applyDefaults() {
	if opts.MatcherOptions == (pathrules.MatcherOptions{}) {
		opts.MatcherOptions = pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionExclude,
		}
	}

	if opts.MatcherOptions.DefaultAction == pathrules.ActionUnknown {
		opts.MatcherOptions.DefaultAction = pathrules.ActionExclude
	}
}
