// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package ar

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathrules"
)

// entryMatcher holds compiled name rules for entry selection.
type entryMatcher struct {
	matcher *pathrules.Matcher
}

// newEntryMatcher compiles entry selection rules. A nil matcher is returned
// for an empty rule set and matches every entry.
func newEntryMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*entryMatcher, error) {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := strings.TrimSpace(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	if len(normalized) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(normalized, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidFilterPattern, err)
	}

	return &entryMatcher{matcher: matcher}, nil
}

// Match reports whether entry name is selected by the rule set.
func (m *entryMatcher) Match(name string) bool {
	if m == nil || m.matcher == nil {
		return true
	}

	candidate := strings.TrimSpace(name)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, false)
}

// FilterEntries returns the entries selected by ordered name rules.
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
		if matcher.Match(entry.Name) {
			out = append(out, entry)
		}
	}

	return out, nil
}
