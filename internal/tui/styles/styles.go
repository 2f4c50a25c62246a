// Package styles provides the lipgloss styles shared by the console
// TUI, including the per-level colors applied to rendered records.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/logview/internal/capture"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Per-level colors, matching the classic debug console palette:
	// errors red, warnings yellow, debug green, trace blue.
	ErrorColor = lipgloss.Color("#F87171")
	WarnColor  = lipgloss.Color("#FBBF24")
	InfoColor  = lipgloss.Color("#F9FAFB")
	DebugColor = lipgloss.Color("#34D399")
	TraceColor = lipgloss.Color("#60A5FA")

	// Convenience styles
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	// Header line above the record area
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	// Filter panel
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	FilterSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	FilterUnselected = lipgloss.NewStyle().
				Foreground(MutedColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)

// levelStyles is indexed by capture.Level.
var levelStyles = map[capture.Level]lipgloss.Style{
	capture.LevelError: lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	capture.LevelWarn:  lipgloss.NewStyle().Foreground(WarnColor),
	capture.LevelInfo:  lipgloss.NewStyle().Foreground(InfoColor),
	capture.LevelDebug: lipgloss.NewStyle().Foreground(DebugColor),
	capture.LevelTrace: lipgloss.NewStyle().Foreground(TraceColor),
}

// Level returns the style for a record level's badge.
func Level(l capture.Level) lipgloss.Style {
	if s, ok := levelStyles[l]; ok {
		return s
	}
	return Text
}

// SetLevelColor overrides the color used for one level. Called by the
// theme loader.
func SetLevelColor(l capture.Level, c lipgloss.Color) {
	st, ok := levelStyles[l]
	if !ok {
		st = lipgloss.NewStyle()
	}
	levelStyles[l] = st.Foreground(c)
}
