// Package view renders captured records into console rows.
package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/logview/internal/capture"
	"github.com/Iron-Ham/logview/internal/tui/filter"
	"github.com/Iron-Ham/logview/internal/tui/styles"
)

// DefaultTimeFormat renders times as 24h wall clock with milliseconds.
const DefaultTimeFormat = "15:04:05.000"

// SkipCount computes how many leading records to skip so the trailing
// records fit a viewport: max(0, total - height).
func SkipCount(total, height int) int {
	if height < 0 {
		height = 0
	}
	if skip := total - height; skip > 0 {
		return skip
	}
	return 0
}

// RenderRecord renders one record as a console row:
// time | LEVEL | source | message, with the level badge colored.
func RenderRecord(r capture.Record, timeFormat string) string {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	var b strings.Builder
	b.WriteString(styles.Muted.Render(r.Time.Local().Format(timeFormat)))
	b.WriteString(" | ")
	b.WriteString(styles.Level(r.Level).Render(padLevel(r.Level)))
	b.WriteString(" | ")
	b.WriteString(styles.Secondary.Render(r.Source))
	b.WriteString(" | ")
	b.WriteString(r.Message)
	return b.String()
}

// padLevel right-pads level names to the width of the widest ("ERROR").
func padLevel(l capture.Level) string {
	name := l.String()
	for len(name) < 5 {
		name += " "
	}
	return name
}

// RenderTail renders the rows a viewport of the given height shows
// while following the store: the skip is computed from the raw record
// count first, then the severity predicate is applied to the
// survivors. Fewer than height rows may result when the filter hides
// some of the trailing records.
func RenderTail(st *capture.Store, f *filter.Filter, height int, timeFormat string) []string {
	records := st.Snapshot(SkipCount(st.Len(), height))
	return renderVisible(records, f, timeFormat)
}

// RenderAll renders every visible record in the store, oldest first.
// Used when the console is paused for scrollback.
func RenderAll(st *capture.Store, f *filter.Filter, timeFormat string) []string {
	return renderVisible(st.Snapshot(0), f, timeFormat)
}

func renderVisible(records []capture.Record, f *filter.Filter, timeFormat string) []string {
	var rows []string
	for _, r := range records {
		if f.Visible(r) {
			rows = append(rows, RenderRecord(r, timeFormat))
		}
	}
	return rows
}

// RenderHeader renders the console's top line: title, filter summary,
// and the record count of the store being read.
func RenderHeader(f *filter.Filter, stored, capacity, width int) string {
	left := styles.Title.MarginBottom(0).Render("logview")
	mid := styles.Muted.Render(f.Describe())
	right := styles.Muted.Render(countLabel(stored, capacity))

	line := left + "  " + mid
	gap := width - lipgloss.Width(line) - lipgloss.Width(right)
	if gap > 0 {
		line += strings.Repeat(" ", gap)
	} else {
		line += " "
	}
	return line + right
}

func countLabel(stored, capacity int) string {
	return strconv.Itoa(stored) + "/" + strconv.Itoa(capacity)
}
