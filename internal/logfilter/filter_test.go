// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logfilter

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/arena-tui/internal/model"
)

func sampleCorpus() []model.LogEntry {
	return []model.LogEntry{
		{ID: "1", Timestamp: "2024-03-14 10:30:45", Level: model.LevelInfo, Message: "Application started successfully", Source: "system"},
		{ID: "2", Timestamp: "2024-03-14 10:31:15", Level: model.LevelWarning, Message: "High memory usage detected", Source: "monitoring"},
		{ID: "3", Timestamp: "2024-03-14 10:32:00", Level: model.LevelError, Message: "Failed to connect to database", Source: "database"},
		{ID: "4", Timestamp: "2024-03-14 10:32:30", Level: model.LevelSuccess, Message: "Backup completed successfully", Source: "backup"},
	}
}

func ids(entries []model.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

// =============================================================================
// EVALUATION TESTS
// =============================================================================

func TestEvaluate_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	corpus := sampleCorpus()

	got := Collect(corpus, Query{Search: "", Level: All})

	assert.Equal(t, corpus, got)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"search database", Query{Search: "database", Level: All}, []string{"3"}},
		{"level warning", Query{Level: LevelFilter(model.LevelWarning)}, []string{"2"}},
		{"case insensitive message", Query{Search: "HIGH MEMORY", Level: All}, []string{"2"}},
		{"matches source only", Query{Search: "monitor", Level: All}, []string{"2"}},
		{"substring across entries", Query{Search: "success", Level: All}, []string{"1", "4"}},
		{"both gates", Query{Search: "success", Level: LevelFilter(model.LevelSuccess)}, []string{"4"}},
		{"gates disagree", Query{Search: "database", Level: LevelFilter(model.LevelInfo)}, []string{}},
		{"no match", Query{Search: "nonexistent", Level: All}, []string{}},
		{"zero level means all", Query{Search: "backup"}, []string{"4"}},
		{"whitespace is literal", Query{Search: " ", Level: All}, []string{"1", "2", "3", "4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collect(sampleCorpus(), tc.query)
			assert.Equal(t, tc.want, ids(got))
			assert.Equal(t, len(tc.want), Count(sampleCorpus(), tc.query))
		})
	}
}

func TestEvaluate_Restartable(t *testing.T) {
	corpus := sampleCorpus()
	seq := Evaluate(corpus, Query{Search: "success", Level: All})

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
	assert.Equal(t, Collect(corpus, Query{Search: "success", Level: All}), first)
}

func TestEvaluate_StopsEarly(t *testing.T) {
	n := 0
	for range Evaluate(sampleCorpus(), Query{}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestEvaluate_Lazy(t *testing.T) {
	// Nothing is evaluated until the sequence is ranged over, so a corpus
	// mutated after Evaluate is observed.
	corpus := sampleCorpus()
	seq := Evaluate(corpus, Query{Search: "arena", Level: All})
	corpus[0].Message = "arena restarted"

	assert.Equal(t, []string{"1"}, ids(slices.Collect(seq)))
}

func TestEvaluate_ConcurrentUse(t *testing.T) {
	corpus := sampleCorpus()
	seq := Evaluate(corpus, Query{Search: "SUCCESS", Level: All})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"1", "4"}, ids(slices.Collect(seq)))
		}()
	}
	wg.Wait()
}

func TestEvaluate_Nil(t *testing.T) {
	assert.Empty(t, Collect(nil, Query{Search: "x"}))
}

func TestMatches(t *testing.T) {
	e := sampleCorpus()[2]
	assert.True(t, Matches(e, Query{Search: "Database"}))
	assert.False(t, Matches(e, Query{Level: LevelFilter(model.LevelWarning)}))
}

// =============================================================================
// LEVEL FILTER TESTS
// =============================================================================

func TestParseLevelFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    LevelFilter
		wantErr bool
	}{
		{"all", All, false},
		{"", All, false},
		{"ALL", All, false},
		{"warning", LevelFilter(model.LevelWarning), false},
		{" Error ", LevelFilter(model.LevelError), false},
		{"critical", "", true},
	}

	for _, tc := range tests {
		got, err := ParseLevelFilter(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestLevelFilter_NextCycles(t *testing.T) {
	f := All
	var seen []LevelFilter
	for i := 0; i < len(LevelFilters); i++ {
		seen = append(seen, f)
		f = f.Next()
	}
	assert.Equal(t, LevelFilters, seen)
	assert.Equal(t, All, f)
	assert.Equal(t, LevelFilter(model.LevelInfo), LevelFilter("").Next())
}

func TestLevelFilter_DisplayName(t *testing.T) {
	assert.Equal(t, "All Levels", All.DisplayName())
	assert.Equal(t, "Warning", LevelFilter(model.LevelWarning).DisplayName())
}

func TestQuery_IsEmpty(t *testing.T) {
	assert.True(t, Query{}.IsEmpty())
	assert.True(t, Query{Level: All}.IsEmpty())
	assert.False(t, Query{Search: "x"}.IsEmpty())
	assert.False(t, Query{Level: LevelFilter(model.LevelError)}.IsEmpty())
}
