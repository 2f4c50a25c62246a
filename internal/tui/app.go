package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/logview/internal/capture"
)

// App wraps the Bubbletea program running the console.
type App struct {
	model Model
}

// New creates a console app reading from sink.
func New(sink *capture.Sink, opts Options) *App {
	return &App{model: NewModel(sink, opts)}
}

// Run starts the console and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(a.model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}
