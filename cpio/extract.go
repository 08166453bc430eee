// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// extractWorkItem stores one selected entry with prepared output relative paths.
type extractWorkItem struct {
	relPath string
	relDir  string
	entry   Header
}

// Extract writes selected entries from the archive to dstDir. Directory
// entries become directories, symlink entries become symlinks and regular
// entries become files; other entry types are skipped. Extraction is
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

	workItems, err := r.prepareExtractWorkItems(dstRootAbs, matcher, opts.OnEntryDone)
	if err != nil {
		return err
	}

	if len(workItems) == 0 {
		return nil
	}

	if err := prepareExtractDirs(dstRootAbs, workItems); err != nil {
		return err
	}

	taskCh := make(chan extractWorkItem, len(workItems))
	errCh := make(chan error, len(workItems))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Go(func() {
			for task := range taskCh {
				err := r.extractPreparedEntry(ctx, dstRootAbs, task, opts.OnEntryDone)
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		})
	}

	for _, task := range workItems {
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

// prepareExtractWorkItems selects file and symlink entries, creates
// directory entries eagerly, and prepares relative fs paths.
func (r *Reader) prepareExtractWorkItems(
	dstRootAbs string,
	matcher *entryMatcher,
	onEntryDone func(hdr Header, written int64, outputPath string),
) ([]extractWorkItem, error) {
	workItems := make([]extractWorkItem, 0, len(r.entries))
	for _, entry := range r.entries {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}

		if !matcher.Match(entry.Name, entry.Mode.IsDir()) {
			continue
		}

		normalizedPath, err := normalizeExtractEntryPath(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("normalize entry path %s: %w", entry.Name, err)
		}

		relPath := filepath.FromSlash(normalizedPath)
		if entry.Mode.IsDir() {
			dirPath := filepath.Join(dstRootAbs, relPath)
			if err := os.MkdirAll(dirPath, 0o750); err != nil {
				return nil, fmt.Errorf("create directory entry %s: %w", entry.Name, err)
			}

			if onEntryDone != nil {
				onEntryDone(entry, 0, dirPath)
			}

			continue
		}

		typeBits := entry.Mode & ModeType
		if typeBits != ModeRegular && typeBits != ModeSymlink {
			// Device nodes, sockets and FIFOs have no portable extraction.
			continue
		}

		relDir := filepath.Dir(relPath)
		if relDir == "." || relDir == "" {
			relDir = ""
		}

		workItems = append(workItems, extractWorkItem{
			entry:   entry,
			relPath: relPath,
			relDir:  relDir,
		})
	}

	return workItems, nil
}

// prepareExtractDirs creates all unique parent directories needed by work items.
func prepareExtractDirs(dstRootAbs string, workItems []extractWorkItem) error {
	seen := make(map[string]struct{}, len(workItems))
	for _, task := range workItems {
		if task.relDir == "" {
			continue
		}

		dirPath := filepath.Join(dstRootAbs, task.relDir)
		key := strings.ToLower(dirPath)
		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		if err := os.MkdirAll(dirPath, 0o750); err != nil {
			return fmt.Errorf("create output directory %s: %w", dirPath, err)
		}
	}

	return nil
}

// extractPreparedEntry writes one prepared work item to destination root.
func (r *Reader) extractPreparedEntry(
	ctx context.Context,
	dstRootAbs string,
	task extractWorkItem,
	onEntryDone func(hdr Header, written int64, outputPath string),
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outPath := filepath.Join(dstRootAbs, task.relPath)

	if task.entry.Mode.IsSymlink() {
		if err := os.Symlink(task.entry.Linkname, outPath); err != nil && !os.IsExist(err) {
			return fmt.Errorf("symlink %s: %w", task.entry.Name, err)
		}

		if onEntryDone != nil {
			onEntryDone(task.entry, 0, outPath)
		}

		return nil
	}

	perm := os.FileMode(task.entry.Mode.Perm())
	if perm == 0 {
		perm = 0o600
	}

	if err := os.WriteFile(outPath, r.content(task.entry), perm); err != nil {
		return fmt.Errorf("write %s: %w", task.entry.Name, err)
	}

	if onEntryDone != nil {
		onEntryDone(task.entry, task.entry.Size, outPath)
	}

	return nil
}
