// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/logfilter"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/util"
)

// HandleLogs filters entries with the search and level from args and
// writes the matches in corpus order.
func HandleLogs(w io.Writer, args Args, entries []model.LogEntry) error {
	level, err := logfilter.ParseLevelFilter(args.Level)
	if err != nil {
		verr := NewValidationErrorWithExample("level", args.Level,
			"must be all, info, warning, error or success", "arena logs --level warning")
		if args.JSON {
			NewJSONErrorResponse("logs", verr).Print(w)
		}
		return verr
	}

	q := logfilter.Query{Search: args.Search, Level: level}
	matched := logfilter.Collect(entries, q)
	log.Printf("LOGS_QUERY | search=%q level=%s matched=%d total=%d", q.Search, level, len(matched), len(entries))

	if args.JSON {
		return NewJSONResponse("logs", LogsData{
			Search:  q.Search,
			Level:   string(level),
			Total:   len(entries),
			Matched: len(matched),
			Entries: matched,
		}).Print(w)
	}

	if !args.Quiet {
		fmt.Fprintln(w, TitleStyle.Render("Log Management Dashboard"))
		fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf("Showing %d of %d entries", len(matched), len(entries))))
		fmt.Fprintln(w, RenderSeparator(GetTerminalWidth()-10))
	}
	if len(matched) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No logs match the current filters."))
		return nil
	}

	width := GetTerminalWidth()
	for _, e := range matched {
		prefix := fmt.Sprintf("%s %s %s ", RenderLevel(e.Level), DimStyle.Render(e.Timestamp), SenderStyle.Render(e.Source))
		room := width - lipgloss.Width(prefix)
		if room < 20 {
			room = 20
		}
		fmt.Fprintln(w, prefix+util.TruncateWidth(e.Message, room))
	}
	return nil
}
