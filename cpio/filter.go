// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"fmt"

	"github.com/woozymasta/pathrules"
)

// entryMatcher holds compiled path rules for entry selection.
type entryMatcher struct {
	matcher *pathrules.Matcher
}

// newEntryMatcher compiles entry selection rules. A nil matcher is returned
// for an empty rule set and matches every entry.
func newEntryMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*entryMatcher, error) {
	rules = normalizeFilterRules(rules)
	if len(rules) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidFilterPattern, err)
	}

	return &entryMatcher{matcher: matcher}, nil
}

// normalizeFilterRules normalizes rule patterns and drops empty patterns.
func normalizeFilterRules(rules []pathrules.Rule) []pathrules.Rule {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := NormalizePath(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	return normalized
}

// Match reports whether entry path is selected by the rule set.
func (m *entryMatcher) Match(path string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return true
	}

	candidate := NormalizePath(path)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, isDir)
}

// FilterEntries returns the entries selected by ordered path rules.
// An empty rule set selects every entry.
func FilterEntries(entries []Header, rules []pathrules.Rule, opts pathrules.MatcherOptions) ([]Header, error) {
	matcher, err := newEntryMatcher(rules, opts)
	if err != nil {
		return nil, err
	}

	if matcher == nil {
		return entries, nil
	}

	out := make([]Header, 0, len(entries))
	for _, entry := range entries {
		if matcher.Match(entry.Name, entry.Mode.IsDir()) {
			out = append(out, entry)
		}
	}

	return out, nil
}
