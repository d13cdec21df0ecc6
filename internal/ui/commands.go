package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/engine"
	"github.com/tonicformac/deepclean/internal/metrics"
)

// Command functions
func performScan(ctx context.Context, e *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		results, err := e.ScanAll(ctx)
		if errors.Is(err, engine.ErrCancelled) {
			// Completed categories are still worth showing.
			err = nil
		}
		return scanDoneMsg{results: results, err: err}
	}
}

func performClean(ctx context.Context, e *engine.Engine, selection map[catalog.ID]bool) tea.Cmd {
	return func() tea.Msg {
		outcome, err := e.Clean(ctx, selection)
		if errors.Is(err, engine.ErrCancelled) {
			err = nil
		}
		return cleanDoneMsg{outcome: outcome, results: e.Results(), err: err}
	}
}

func showDiskUsage() tea.Cmd {
	return func() tea.Msg {
		paths := []string{"/"}
		if home, err := os.UserHomeDir(); err == nil && home != "/" {
			paths = append(paths, home)
		}

		var rows []table.Row
		for _, path := range paths {
			usage, err := metrics.DiskUsage(path)
			if err != nil {
				continue
			}
			rows = append(rows, table.Row{
				usage.Path,
				humanize.Bytes(usage.Total),
				humanize.Bytes(usage.Used),
				humanize.Bytes(usage.Free),
				fmt.Sprintf("%.1f%%", usage.UsedPercent),
			})
		}
		if len(rows) == 0 {
			return errMsg{err: fmt.Errorf("no disk usage data")}
		}

		columns := []table.Column{
			{Title: "Volume", Width: 30},
			{Title: "Size", Width: 10},
			{Title: "Used", Width: 10},
			{Title: "Free", Width: 10},
			{Title: "Capacity", Width: 10},
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(len(rows)+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(false)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		return diskUsageMsg{table: t}
	}
}
