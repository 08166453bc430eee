// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

/*
Package ar reads and writes Unix ar archives in the common, BSD and GNU
dialects. Codecs operate on whole in-memory buffers: parsing produces
zero-copy content slices of the original buffer, and building accumulates
entries before serializing the full byte stream.

Reading auto-detects the dialect. GNU "//" long-name tables are resolved
and hidden, a leading "/" symbol table is dropped, and BSD "#1/<N>" inline
names are read from the content region:

	r, err := ar.Open("libdemo.a")
	if err != nil {
	    return err
	}
	for _, e := range r.Entries() {
	    data := r.ContentOf(e)
	    // use data
	}

Writing picks per-entry name encoding for the builder's variant. Long GNU
names go to a generated "//" table emitted before the first entry:

	b := ar.NewBuilder(ar.GNU)
	b.Append(ar.Header{
	    Name:    "very-long-object-name.o",
	    Mode:    0o644,
	    ModTime: time.Now().Unix(),
	}, object)
	data := b.Finalize()

Extraction is flat (the format has no directories) and accepts optional
name selection rules (github.com/woozymasta/pathrules):

	err := r.Extract(ctx, "out/", ar.ExtractOptions{
	    Rules: []pathrules.Rule{
	        {Action: pathrules.ActionInclude, Pattern: "*.o"},
	    },
	})
*/
package ar
