package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/clean"
	"github.com/tonicformac/deepclean/internal/engine"
	"github.com/tonicformac/deepclean/internal/scan"
)

// Model represents the application state
type Model struct {
	engine *engine.Engine
	state  string // "menu", "scanning", "results", "confirm", "cleaning", "done", "diskusage"

	menuChoice   int
	resultChoice int

	spinner  spinner.Model
	progress progress.Model

	results   []scan.Result
	selection map[catalog.ID]bool
	outcome   clean.Outcome

	scanningCategory catalog.ID
	cleanProgress    float64

	diskUsageTable table.Model

	cancel context.CancelFunc
	width  int
	height int
	err    error
}

// InitialModel builds the TUI around an engine instance owned by the
// caller.
func InitialModel(e *engine.Engine) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		engine:    e,
		state:     "menu",
		spinner:   s,
		progress:  progress.New(progress.WithDefaultGradient()),
		selection: make(map[catalog.ID]bool),
	}
}

// Init starts the spinner
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}
