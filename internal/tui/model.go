package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/logview/internal/capture"
	"github.com/Iron-Ham/logview/internal/tui/filter"
	"github.com/Iron-Ham/logview/internal/tui/styles"
	"github.com/Iron-Ham/logview/internal/tui/view"
	"github.com/Iron-Ham/logview/internal/util"
)

// chromeHeight is the rows consumed by the header (line + border) and
// the help bar (margin + line).
const chromeHeight = 4

// DefaultTickInterval is how often the console re-reads its store.
const DefaultTickInterval = 100 * time.Millisecond

// Options configures the console model.
type Options struct {
	// TickInterval is how often the console refreshes while
	// following. Zero means DefaultTickInterval.
	TickInterval time.Duration
	// TimeFormat is the record timestamp layout. Empty means
	// view.DefaultTimeFormat.
	TimeFormat string
}

// tickMsg triggers a refresh of the followed store.
type tickMsg time.Time

// Model is the console's Bubbletea model. It only ever reads from the
// capture side: snapshots of the selected store, and the registry's
// source list for the filter panel.
type Model struct {
	sink   *capture.Sink
	filter *filter.Filter

	vp         viewport.Model
	width      int
	height     int
	tick       time.Duration
	timeFormat string

	filterMode bool
	paused     bool
	quitting   bool
}

// NewModel creates a console model reading from sink.
func NewModel(sink *capture.Sink, opts Options) Model {
	tick := opts.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return Model{
		sink:       sink,
		filter:     filter.New(),
		tick:       tick,
		timeFormat: opts.TimeFormat,
	}
}

// Filter exposes the model's view filter, mainly for presetting scope
// or threshold before the program starts.
func (m Model) Filter() *filter.Filter {
	return m.filter
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		if m.paused {
			m.reloadScrollback()
		}
		return m, nil

	case tickMsg:
		// Following happens in View by re-snapshotting; the tick just
		// forces a redraw and re-arms itself.
		if m.quitting {
			return m, nil
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterMode {
		res := m.filter.HandleKey(msg, m.sink.Registry().List())
		if res.ExitMode {
			m.filterMode = false
		}
		if m.paused {
			m.reloadScrollback()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "f":
		m.filterMode = true
		return m, nil

	case "p":
		m.paused = !m.paused
		if m.paused {
			m.reloadScrollback()
			m.vp.GotoBottom()
		}
		return m, nil
	}

	// While paused the viewport owns navigation keys.
	if m.paused {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reloadScrollback refreshes the paused viewport's content from the
// currently selected store.
func (m *Model) reloadScrollback() {
	rows := view.RenderAll(m.filter.SelectStore(m.sink), m.filter, m.timeFormat)
	m.vp.SetContent(strings.Join(rows, "\n"))
}

func (m Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "starting console..."
	}

	st := m.filter.SelectStore(m.sink)
	header := styles.Header.Width(m.width).Render(
		view.RenderHeader(m.filter, st.Len(), st.Cap(), m.width))

	var body string
	switch {
	case m.filterMode:
		body = filter.RenderPanel(m.filter, m.sink.Registry().List(), m.width)
	case m.paused:
		body = m.vp.View()
	default:
		rows := view.RenderTail(st, m.filter, m.contentHeight(), m.timeFormat)
		for i := range rows {
			rows[i] = util.TruncateANSI(rows[i], m.width)
		}
		body = strings.Join(rows, "\n")
	}
	body = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)

	return header + "\n" + body + "\n" + m.helpBar()
}

func (m Model) helpBar() string {
	if m.filterMode {
		return styles.HelpBar.Render(
			styles.HelpKey.Render("[e/w/i/d/t]") + " threshold  " +
				styles.HelpKey.Render("[u]") + " no filter  " +
				styles.HelpKey.Render("[tab]") + " scope  " +
				styles.HelpKey.Render("[esc]") + " close")
	}
	mode := "following"
	if m.paused {
		mode = "paused"
	}
	return styles.HelpBar.Render(
		styles.HelpKey.Render("[f]") + " filters  " +
			styles.HelpKey.Render("[p]") + " " + mode + "  " +
			styles.HelpKey.Render("[q]") + " quit")
}
