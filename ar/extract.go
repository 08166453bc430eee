// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Extract writes selected entries from the archive to dstDir. The format
// has no directory entries, so output is always flat. Extraction is
// parallelized by MaxWorkers; on failure it returns the first encountered
// error.
func (r *Reader) Extract(ctx context.Context, dstDir string, opts ExtractOptions) error {
	if r == nil {
		return ErrEntryNotFound
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts.applyDefaults()

	matcher, err := newEntryMatcher(opts.Rules, opts.MatcherOptions)
	if err != nil {
		return err
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	dstRootAbs, err := filepath.Abs(dstDir)
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}

	if err := os.MkdirAll(dstRootAbs, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	selected := make([]Header, 0, len(r.entries))
	for _, entry := range r.entries {
		if !matcher.Match(entry.Name) {
			continue
		}

		if err := validateExtractName(entry.Name); err != nil {
			return fmt.Errorf("entry %q: %w", entry.Name, err)
		}

		selected = append(selected, entry)
	}

	if len(selected) == 0 {
		return nil
	}

	taskCh := make(chan Header, len(selected))
	errCh := make(chan error, len(selected))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Go(func() {
			for task := range taskCh {
				err := r.extractEntry(ctx, dstRootAbs, task, opts.OnEntryDone)
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		})
	}

	for _, task := range selected {
		select {
		case <-ctx.Done():
			close(taskCh)
			wg.Wait()
			return ctx.Err()
		case taskCh <- task:
		}
	}

	close(taskCh)
	wg.Wait()
	close(errCh)

	var first error
	for err := range errCh {
		if err != nil && first == nil {
			first = err
		}
	}

	return first
}

// extractEntry writes one entry to destination root.
func (r *Reader) extractEntry(
	ctx context.Context,
	dstRootAbs string,
	entry Header,
	onEntryDone func(hdr Header, written int64, outputPath string),
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	perm := os.FileMode(entry.Mode) & os.ModePerm
	if perm == 0 {
		perm = 0o600
	}

	outPath := filepath.Join(dstRootAbs, entry.Name)
	if err := os.WriteFile(outPath, r.content(entry), perm); err != nil {
		return fmt.Errorf("write %s: %w", entry.Name, err)
	}

	if onEntryDone != nil {
		onEntryDone(entry, entry.Size, outPath)
	}

	return nil
}

// validateExtractName rejects entry names unusable as flat output file names.
func validateExtractName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return ErrInvalidExtractPath
	}

	if strings.ContainsAny(name, "/\\") || strings.ContainsRune(name, 0) {
		return ErrInvalidExtractPath
	}

	return nil
}
