package filter

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/logview/internal/capture"
	"github.com/Iron-Ham/logview/internal/tui/styles"
)

// ScopeAll is the scope value showing all captured records.
const ScopeAll = ""

// Filter holds the view's severity threshold and source scope. Both
// are read-time concerns: adjusting them never touches captured
// history.
//
// The threshold starts unset, which shows everything. "Unset" is kept
// distinct from an explicit Trace threshold even though the two are
// behaviorally identical, so the panel can show that no user choice
// has been made yet.
type Filter struct {
	threshold    capture.Level
	thresholdSet bool
	scope        string
}

// New creates a Filter with no threshold and the all-records scope.
func New() *Filter {
	return &Filter{}
}

// Threshold returns the configured minimum severity and whether one
// has been set.
func (f *Filter) Threshold() (capture.Level, bool) {
	return f.threshold, f.thresholdSet
}

// SetThreshold sets the minimum severity a record needs to be visible.
func (f *Filter) SetThreshold(l capture.Level) {
	f.threshold = l
	f.thresholdSet = true
}

// ClearThreshold returns the filter to its show-everything default.
func (f *Filter) ClearThreshold() {
	f.threshold = capture.LevelTrace
	f.thresholdSet = false
}

// Visible reports whether a record passes the severity threshold.
// The boundary is inclusive: with threshold Warn, a Warn record is
// visible. With no threshold set, everything is.
func (f *Filter) Visible(r capture.Record) bool {
	if !f.thresholdSet {
		return true
	}
	return r.Level >= f.threshold
}

// Scope returns the selected source, or ScopeAll.
func (f *Filter) Scope() string {
	return f.scope
}

// SetScope restricts the view to one registered source's store.
func (f *Filter) SetScope(source string) {
	f.scope = source
}

// ClearScope returns the view to all captured records.
func (f *Filter) ClearScope() {
	f.scope = ScopeAll
}

// CycleScope advances the scope through all → sources[0] → … →
// sources[len-1] → all. The sources slice is the registry's ordered
// list.
func (f *Filter) CycleScope(sources []string) {
	f.scope = nextScope(f.scope, sources, 1)
}

// CycleScopeBack is CycleScope in the other direction.
func (f *Filter) CycleScopeBack(sources []string) {
	f.scope = nextScope(f.scope, sources, -1)
}

func nextScope(current string, sources []string, step int) string {
	if len(sources) == 0 {
		return ScopeAll
	}
	// Positions: 0 = all, 1..len = sources.
	pos := 0
	for i, src := range sources {
		if src == current {
			pos = i + 1
			break
		}
	}
	n := len(sources) + 1
	pos = (pos + step + n) % n
	if pos == 0 {
		return ScopeAll
	}
	return sources[pos-1]
}

// SelectStore picks the store the view reads: the primary store for
// ScopeAll, otherwise the scoped source's secondary store. Store
// selection happens before the severity predicate is applied to the
// records drawn from it. An unregistered scope falls back to the
// primary store.
func (f *Filter) SelectStore(sink *capture.Sink) *capture.Store {
	if f.scope == ScopeAll {
		return sink.Primary()
	}
	if st, ok := sink.Registry().StoreFor(f.scope); ok {
		return st
	}
	return sink.Primary()
}

// Active reports whether any filtering deviates from the defaults.
func (f *Filter) Active() bool {
	return f.thresholdSet || f.scope != ScopeAll
}

// Describe summarizes the filter state for the status line.
func (f *Filter) Describe() string {
	level := "all levels"
	if f.thresholdSet {
		level = f.threshold.String() + "+"
	}
	scope := "all sources"
	if f.scope != ScopeAll {
		scope = f.scope
	}
	return level + " | " + scope
}

// InputResult captures the result of handling a key press in filter
// mode.
type InputResult struct {
	ExitMode bool // Whether to exit filter mode
}

// HandleKey handles keyboard input when the filter panel is open.
// sources is the registry's ordered source list, used for scope
// cycling.
func (f *Filter) HandleKey(msg tea.KeyMsg, sources []string) InputResult {
	switch msg.String() {
	case "esc", "f", "q":
		return InputResult{ExitMode: true}

	case "e":
		f.SetThreshold(capture.LevelError)
	case "w":
		f.SetThreshold(capture.LevelWarn)
	case "i":
		f.SetThreshold(capture.LevelInfo)
	case "d":
		f.SetThreshold(capture.LevelDebug)
	case "t":
		f.SetThreshold(capture.LevelTrace)
	case "u":
		f.ClearThreshold()

	case "tab", "right":
		f.CycleScope(sources)
	case "shift+tab", "left":
		f.CycleScopeBack(sources)
	case "a":
		f.ClearScope()
	}

	return InputResult{}
}

// RenderPanel renders the filter configuration panel.
func RenderPanel(f *Filter, sources []string, width int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Log Filters"))
	b.WriteString("\n\n")

	b.WriteString(styles.Secondary.Render("Minimum severity:"))
	b.WriteString("\n")
	threshold, set := f.Threshold()
	for i := len(capture.ValidLevels()) - 1; i >= 0; i-- {
		name := capture.ValidLevels()[i]
		level := capture.ParseLevel(name)
		marker := "( )"
		style := styles.FilterUnselected
		if set && level == threshold {
			marker = "(•)"
			style = styles.FilterSelected
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			marker,
			style.Render(name),
			styles.Muted.Render("("+strings.ToLower(name[:1])+")")))
	}
	unsetMarker := "( )"
	unsetStyle := styles.FilterUnselected
	if !set {
		unsetMarker = "(•)"
		unsetStyle = styles.FilterSelected
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		unsetMarker,
		unsetStyle.Render("no filter"),
		styles.Muted.Render("(u)")))

	b.WriteString("\n")
	b.WriteString(styles.Secondary.Render("Source scope:"))
	b.WriteString("\n")
	allMarker := "( )"
	allStyle := styles.FilterUnselected
	if f.Scope() == ScopeAll {
		allMarker = "(•)"
		allStyle = styles.FilterSelected
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n", allMarker, allStyle.Render("all sources"), styles.Muted.Render("(a)")))
	for _, src := range sources {
		marker := "( )"
		style := styles.FilterUnselected
		if f.Scope() == src {
			marker = "(•)"
			style = styles.FilterSelected
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, style.Render(src)))
	}
	if len(sources) == 0 {
		b.WriteString(styles.Muted.Render("  (no sources tracked)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("[Tab] Cycle scope  [Esc]/[f] Close"))

	return styles.ContentBox.Width(width - 4).Render(b.String())
}
