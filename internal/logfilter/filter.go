// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logfilter evaluates the dashboard's search box and level selector
// against an ordered log corpus.
//
// An entry passes when both gates pass, checked in order:
//
//  1. level gate: the filter is "all" or equals the entry's level
//  2. text gate: the search is empty or a case-insensitive substring of
//     the entry's message or source
//
// Evaluation is lazy, keeps corpus order and holds no state between calls,
// so the same query over the same entries always yields the same sequence.
package logfilter

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jeranaias/arena-tui/internal/model"
)

// =============================================================================
// LEVEL FILTER
// =============================================================================

// LevelFilter is either All or a single log level.
type LevelFilter string

// All matches every level. It is also the zero value's meaning.
const All LevelFilter = "all"

// LevelFilters lists the selector options in display order.
var LevelFilters = []LevelFilter{
	All,
	LevelFilter(model.LevelInfo),
	LevelFilter(model.LevelWarning),
	LevelFilter(model.LevelError),
	LevelFilter(model.LevelSuccess),
}

// ParseLevelFilter parses "all" or a level name, case-insensitively.
func ParseLevelFilter(s string) (LevelFilter, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" || norm == string(All) {
		return All, nil
	}
	level, err := model.ParseLogLevel(norm)
	if err != nil {
		return "", fmt.Errorf("invalid level filter: %w", err)
	}
	return LevelFilter(level), nil
}

// IsAll returns true if the filter admits every level.
func (f LevelFilter) IsAll() bool {
	return f == All || f == ""
}

// Admits reports whether level passes the level gate.
func (f LevelFilter) Admits(level model.LogLevel) bool {
	return f.IsAll() || model.LogLevel(f) == level
}

// DisplayName returns the selector label.
func (f LevelFilter) DisplayName() string {
	if f.IsAll() {
		return "All Levels"
	}
	return model.LogLevel(f).DisplayName()
}

// Next returns the following selector option, wrapping around.
func (f LevelFilter) Next() LevelFilter {
	for i, opt := range LevelFilters {
		if opt == f || (f == "" && opt == All) {
			return LevelFilters[(i+1)%len(LevelFilters)]
		}
	}
	return All
}

// =============================================================================
// QUERY
// =============================================================================

// Query is the search text plus level selector.
type Query struct {
	Search string
	Level  LevelFilter
}

// IsEmpty returns true if the query admits every entry.
func (q Query) IsEmpty() bool {
	return q.Search == "" && q.Level.IsAll()
}

// matcher holds the per-evaluation folded search text. A cases.Caser is not
// safe for concurrent use, so each evaluation builds its own.
type matcher struct {
	level  LevelFilter
	search string
	fold   cases.Caser
}

func newMatcher(q Query) *matcher {
	m := &matcher{level: q.Level, fold: cases.Fold()}
	if q.Search != "" {
		m.search = m.fold.String(q.Search)
	}
	return m
}

func (m *matcher) match(e model.LogEntry) bool {
	if !m.level.Admits(e.Level) {
		return false
	}
	if m.search == "" {
		return true
	}
	return strings.Contains(m.fold.String(e.Message), m.search) ||
		strings.Contains(m.fold.String(e.Source), m.search)
}

// =============================================================================
// EVALUATION
// =============================================================================

// Evaluate returns the entries that pass q, lazily and in corpus order.
// The sequence can be ranged over any number of times.
func Evaluate(entries []model.LogEntry, q Query) iter.Seq[model.LogEntry] {
	return func(yield func(model.LogEntry) bool) {
		m := newMatcher(q)
		for _, e := range entries {
			if !m.match(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Matches reports whether a single entry passes q.
func Matches(e model.LogEntry, q Query) bool {
	return newMatcher(q).match(e)
}

// Collect evaluates q and returns the result as a slice.
func Collect(entries []model.LogEntry, q Query) []model.LogEntry {
	out := make([]model.LogEntry, 0, len(entries))
	for e := range Evaluate(entries, q) {
		out = append(out, e)
	}
	return out
}

// Count returns how many entries pass q.
func Count(entries []model.LogEntry, q Query) int {
	n := 0
	for range Evaluate(entries, q) {
		n++
	}
	return n
}
