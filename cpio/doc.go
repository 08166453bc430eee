// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

/*
Package cpio reads and writes SVR4 "newc" cpio archives, including the
checksum ("070702") variant. Codecs operate on whole in-memory buffers:
parsing produces zero-copy content slices of the original buffer, and
building accumulates entries before serializing the full byte stream with
the mandatory trailer.

# Reading

Parse an archive and list or read entries:

	r, err := cpio.Open("initrd.cpio")
	if err != nil {
	    return err
	}
	for _, e := range r.Entries() {
	    data := r.ContentOf(e)
	    // use data
	}

Content lookups by index or by header are zero-copy slices of the parsed
buffer and must only use indexes/headers from the same reader.

# Writing

Build an archive entry by entry and finalize:

	b := cpio.NewBuilder()
	b.Append(cpio.Header{
	    Name:    "etc/hostname",
	    Mode:    0o644,
	    ModTime: time.Now().Unix(),
	}, []byte("box\n"))
	data := b.Finalize()

Entries appended with bare permission bits become regular files, and inode
and device numbers left unset are assigned sequentially per builder. A
non-zero Header.Checksum (use Sum) selects the checksum archive variant for
that entry.

# Extracting

Extract to a directory with optional path rules
(github.com/woozymasta/pathrules):

	err := r.Extract(ctx, "out/", cpio.ExtractOptions{
	    MaxWorkers: 4,
	    Rules: []pathrules.Rule{
	        {Action: pathrules.ActionInclude, Pattern: "etc/**"},
	    },
	})

Entry paths are sanitized before writing: absolute paths and traversal
segments fail extraction.
*/
package cpio
