package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonicformac/deepclean/internal/catalog"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// Refresh the live status while an operation is running.
		status := m.engine.State()
		m.scanningCategory = status.Scanning
		m.cleanProgress = status.CleanProgress
		return m, cmd

	case scanDoneMsg:
		m.cancel = nil
		if msg.err != nil {
			m.err = msg.err
			m.state = "menu"
			return m, nil
		}
		m.err = nil
		m.results = msg.results
		m.selection = make(map[catalog.ID]bool)
		m.resultChoice = 0
		m.state = "results"
		return m, nil

	case cleanDoneMsg:
		m.cancel = nil
		if msg.err != nil {
			m.err = msg.err
			m.state = "results"
			return m, nil
		}
		m.err = nil
		m.outcome = msg.outcome
		m.results = msg.results
		m.state = "done"
		return m, nil

	case diskUsageMsg:
		m.diskUsageTable = msg.table
		m.state = "diskusage"
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "q":
		switch m.state {
		case "scanning", "cleaning":
			// Handled as cancel below via esc; plain q is ignored so a
			// stray keypress does not abort a running clean.
			return m, nil
		case "menu":
			return m, tea.Quit
		default:
			m.state = "menu"
			m.menuChoice = 0
			return m, nil
		}

	case "esc":
		switch m.state {
		case "scanning", "cleaning":
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		case "menu":
			return m, nil
		default:
			m.state = "menu"
			m.menuChoice = 0
			return m, nil
		}

	case "up", "k":
		switch m.state {
		case "menu":
			if m.menuChoice > 0 {
				m.menuChoice--
			}
		case "results":
			if m.resultChoice > 0 {
				m.resultChoice--
			}
		case "diskusage":
			var cmd tea.Cmd
			m.diskUsageTable, cmd = m.diskUsageTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case "down", "j":
		switch m.state {
		case "menu":
			if m.menuChoice < len(menuItems)-1 {
				m.menuChoice++
			}
		case "results":
			if m.resultChoice < len(m.results)-1 {
				m.resultChoice++
			}
		case "diskusage":
			var cmd tea.Cmd
			m.diskUsageTable, cmd = m.diskUsageTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case " ":
		if m.state == "results" && m.resultChoice < len(m.results) {
			id := m.results[m.resultChoice].Category
			m.selection[id] = !m.selection[id]
		}
		return m, nil

	case "a":
		if m.state == "results" {
			for _, r := range m.results {
				m.selection[r.Category] = true
			}
		}
		return m, nil

	case "c":
		if m.state == "results" && m.selectedCount() > 0 {
			m.state = "confirm"
		}
		return m, nil

	case "y":
		if m.state == "confirm" {
			ctx, cancel := context.WithCancel(context.Background())
			m.cancel = cancel
			m.state = "cleaning"
			m.cleanProgress = 0
			return m, tea.Batch(m.spinner.Tick, performClean(ctx, m.engine, m.selectedIDs()))
		}
		return m, nil

	case "n":
		if m.state == "confirm" {
			m.state = "results"
		}
		return m, nil

	case "enter":
		switch m.state {
		case "menu":
			switch m.menuChoice {
			case 0: // Deep Clean Scan
				ctx, cancel := context.WithCancel(context.Background())
				m.cancel = cancel
				m.state = "scanning"
				m.scanningCategory = ""
				return m, tea.Batch(m.spinner.Tick, performScan(ctx, m.engine))
			case 1: // Disk Usage
				return m, showDiskUsage()
			case 2: // Exit
				return m, tea.Quit
			}
		case "done":
			m.state = "results"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectedCount() int {
	n := 0
	for _, marked := range m.selection {
		if marked {
			n++
		}
	}
	return n
}

func (m Model) selectedIDs() map[catalog.ID]bool {
	ids := make(map[catalog.ID]bool, len(m.selection))
	for id, marked := range m.selection {
		if marked {
			ids[id] = true
		}
	}
	return ids
}
