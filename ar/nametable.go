// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"strconv"
	"strings"
)

// nameTable maps running byte offsets to long file names parsed from the
// "//" pseudo-entry content. The offset arithmetic mirrors the writer's
// stride so references written by the builder always resolve.
type nameTable struct {
	names map[int64]string
}

// parseNameTable scans "<name>/\n" records from the table content.
func parseNameTable(content []byte) *nameTable {
	t := &nameTable{names: make(map[int64]string)}

	var current []byte
	offset := int64(0)
	for i := 0; i < len(content); {
		if content[i] == '/' && i+1 < len(content) && content[i+1] == '\n' {
			name := string(current)
			t.names[offset] = name
			offset += int64(len(name)) + 3
			current = current[:0]
			i += 2
			continue
		}

		current = append(current, content[i])
		i++
	}

	return t
}

// lookup resolves one table offset to its long name.
func (t *nameTable) lookup(offset int64) (string, bool) {
	if t == nil {
		return "", false
	}

	name, ok := t.names[offset]
	return name, ok
}

// resolveTableReference parses an "/<offset>" name reference. The second
// result is false for names that are not table references.
func resolveTableReference(name string) (int64, bool) {
	if len(name) < 2 || name[0] != '/' {
		return 0, false
	}

	offset, err := strconv.ParseInt(name[1:], 10, 64)
	if err != nil || strings.ContainsAny(name[1:], "+- ") {
		return 0, false
	}

	return offset, true
}
