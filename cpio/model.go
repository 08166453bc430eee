// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"fmt"

	"github.com/woozymasta/pathrules"
)

// Internal binary layout and format limits.
const (
	headerSize  = 110     // fixed SVR4 "newc" header size in bytes
	magicPrefix = "07070" // shared prefix of both newc magic values
	maxNameSize = 1 << 16 // max entry name length including terminator
	trailerName = "TRAILER!!!"
)

// Mode bit masks for Header.Mode, matching the on-disk mode field.
const (
	// ModeSetuid is the set-uid bit.
	ModeSetuid FileMode = 0o4000
	// ModeSetgid is the set-gid bit.
	ModeSetgid FileMode = 0o2000
	// ModeSticky is the sticky bit.
	ModeSticky FileMode = 0o1000
	// ModeNamedPipe marks a FIFO.
	ModeNamedPipe FileMode = 0o10000
	// ModeCharDevice marks a character special file.
	ModeCharDevice FileMode = 0o20000
	// ModeDir marks a directory.
	ModeDir FileMode = 0o40000
	// ModeDevice marks a block special file.
	ModeDevice FileMode = 0o60000
	// ModeRegular marks a regular file.
	ModeRegular FileMode = 0o100000
	// ModeSymlink marks a symbolic link.
	ModeSymlink FileMode = 0o120000
	// ModeSocket marks a socket.
	ModeSocket FileMode = 0o140000

	// ModeType masks the file type bits.
	ModeType FileMode = 0o170000
	// ModePerm masks the Unix permission bits.
	ModePerm FileMode = 0o777
)

// FileMode holds an entry's permission and type bits.
type FileMode int64

// String formats mode in octal.
func (m FileMode) String() string {
	return fmt.Sprintf("%#o", int64(m))
}

// IsDir reports whether mode describes a directory.
func (m FileMode) IsDir() bool {
	return m&ModeType == ModeDir
}

// IsRegular reports whether mode describes a regular file.
func (m FileMode) IsRegular() bool {
	return m&ModeType == ModeRegular
}

// IsSymlink reports whether mode describes a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m&ModeType == ModeSymlink
}

// Perm returns the Unix permission bits.
func (m FileMode) Perm() FileMode {
	return m & ModePerm
}

// Checksum is the unsigned sum of all content bytes truncated to 32 bits.
// Use Sum to compute it for a payload.
type Checksum uint32

// String formats checksum the way the wire field stores it.
func (c Checksum) String() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// Header describes a single archive entry.
//
// Inode, DevMajor and DevMinor are optional: entries appended with nil
// values receive sequential defaults from the builder's write session.
type Header struct {
	// Name is the entry path as stored in the archive.
	Name string `json:"name" yaml:"name"`
	// Linkname is the link target for ModeSymlink entries.
	Linkname string `json:"linkname,omitempty" yaml:"linkname,omitempty"`
	// Mode holds permission and type bits.
	Mode FileMode `json:"mode" yaml:"mode"`
	// UID is the owner user id.
	UID int64 `json:"uid" yaml:"uid"`
	// GID is the owner group id.
	GID int64 `json:"gid" yaml:"gid"`
	// Links is the number of inbound links.
	Links int64 `json:"links" yaml:"links"`
	// ModTime is the modification time in Unix seconds.
	ModTime int64 `json:"mod_time" yaml:"mod_time"`
	// Size is the content size in bytes, set during parse and serialization.
	Size int64 `json:"size" yaml:"size"`
	// Inode is the inode number; nil selects a sequential default on write.
	Inode *int64 `json:"inode,omitempty" yaml:"inode,omitempty"`
	// DevMajor is the device major number; nil selects a sequential default on write.
	DevMajor *int64 `json:"dev_major,omitempty" yaml:"dev_major,omitempty"`
	// DevMinor is the device minor number; nil selects a sequential default on write.
	DevMinor *int64 `json:"dev_minor,omitempty" yaml:"dev_minor,omitempty"`
	// RDevMajor is the referenced device major number for device entries.
	RDevMajor int64 `json:"rdev_major,omitempty" yaml:"rdev_major,omitempty"`
	// RDevMinor is the referenced device minor number for device entries.
	RDevMinor int64 `json:"rdev_minor,omitempty" yaml:"rdev_minor,omitempty"`
	// Checksum is the content byte sum for checksum-variant archives.
	Checksum Checksum `json:"checksum,omitempty" yaml:"checksum,omitempty"`

	// contentOffset is the absolute payload offset filled during scan.
	contentOffset int64
}

// ExtractOptions configures Extract behavior.
type ExtractOptions struct {
	// OnEntryDone is called after one entry is fully written to disk.
	OnEntryDone func(hdr Header, written int64, outputPath string) `json:"-" yaml:"-"`
	// Rules defines ordered path rules selecting entries for extraction;
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
