package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tonicformac/deepclean/internal/catalog"
)

var menuItems = []string{
	"🔍 Deep Clean Scan",
	"📊 Disk Usage",
	"❌ Exit",
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	header := TitleStyle.Render("🧹 Deep Clean")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n\n")

	var content string
	switch m.state {
	case "menu":
		content = m.renderMenu()
	case "scanning":
		content = m.renderScanning()
	case "results":
		content = m.renderResults()
	case "confirm":
		content = m.renderConfirm()
	case "cleaning":
		content = m.renderCleaning()
	case "done":
		content = m.renderDone()
	case "diskusage":
		content = m.renderDiskUsage()
	}

	s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(content))

	if m.err != nil {
		s.WriteString("\n\n")
		errLine := lipgloss.NewStyle().Padding(0, 3).Render(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString(errLine)
	}

	s.WriteString("\n\n")
	return s.String()
}

func (m Model) renderMenu() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Main Menu"))
	s.WriteString("\n\n\n")

	for i, item := range menuItems {
		cursor := "  "
		style := lipgloss.NewStyle()
		if m.menuChoice == i {
			cursor = "▸ "
			style = SelectedStyle
		}
		s.WriteString("  " + cursor + style.Render(item) + "\n\n")
	}

	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("Use ↑/↓ or j/k to navigate, Enter to select, q to quit"))

	return s.String()
}

func (m Model) renderScanning() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Scanning..."))
	s.WriteString("\n\n")

	current := "Resolving category roots"
	if m.scanningCategory != "" {
		current = "Scanning " + catalog.InfoFor(m.scanningCategory).Name
	}
	s.WriteString("  " + m.spinner.View() + " " + current)
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("  Categories are scanned one at a time. Esc to cancel."))

	return s.String()
}

func (m Model) renderResults() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Scan Results"))
	s.WriteString("\n\n")

	var total int64
	for i, result := range m.results {
		info := catalog.InfoFor(result.Category)
		total += result.TotalSize

		mark := "[ ]"
		if m.selection[result.Category] {
			mark = SuccessStyle.Render("[x]")
		}
		cursor := "  "
		style := lipgloss.NewStyle()
		if m.resultChoice == i {
			cursor = "▸ "
			style = SelectedStyle
		}

		line := fmt.Sprintf("%s %s %-22s %10s  %d items",
			cursor, mark, style.Render(info.Name),
			humanize.Bytes(uint64(result.TotalSize)), result.ItemCount)
		s.WriteString("  " + line + "\n")
		if m.resultChoice == i && info.Description != "" {
			s.WriteString("        " + DimStyle.Render(info.Description) + "\n")
		}
		if len(result.Skipped) > 0 {
			s.WriteString("        " + WarningStyle.Render(fmt.Sprintf("%d paths unreadable", len(result.Skipped))) + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(HeaderStyle.Render(fmt.Sprintf("  Total reclaimable: %s", humanize.Bytes(uint64(total)))))
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("Space to select, a to select all, c to clean selected, q for menu"))

	return s.String()
}

func (m Model) renderConfirm() string {
	var s strings.Builder

	var bytes int64
	var names []string
	for _, result := range m.results {
		if m.selection[result.Category] {
			bytes += result.TotalSize
			names = append(names, catalog.InfoFor(result.Category).Name)
		}
	}

	s.WriteString(WarningStyle.Render("⚠ Confirm Clean"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  Delete %s across: %s\n", humanize.Bytes(uint64(bytes)), strings.Join(names, ", ")))
	s.WriteString("\n")
	s.WriteString(ErrorStyle.Render("  This cannot be undone."))
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("y to confirm, n to go back"))

	return s.String()
}

func (m Model) renderCleaning() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Cleaning..."))
	s.WriteString("\n\n")
	s.WriteString("  " + m.progress.ViewAs(m.cleanProgress))
	s.WriteString("\n\n")
	s.WriteString("  " + m.spinner.View() + fmt.Sprintf(" %.0f%%", m.cleanProgress*100))
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("  Esc to cancel; deletions already made are kept."))

	return s.String()
}

func (m Model) renderDone() string {
	var s strings.Builder

	s.WriteString(SuccessStyle.Render("✓ Clean Complete"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  Freed %s (%d items deleted)\n", humanize.Bytes(uint64(m.outcome.BytesFreed)), m.outcome.Deleted))

	if len(m.outcome.Failures) > 0 {
		s.WriteString("\n")
		s.WriteString(WarningStyle.Render(fmt.Sprintf("  %d items could not be deleted:", len(m.outcome.Failures))))
		s.WriteString("\n")
		shown := len(m.outcome.Failures)
		if shown > 5 {
			shown = 5
		}
		for _, failure := range m.outcome.Failures[:shown] {
			s.WriteString("    " + DimStyle.Render(truncatePath(failure.Path, 60)) + "\n")
		}
		if len(m.outcome.Failures) > shown {
			s.WriteString("    " + DimStyle.Render(fmt.Sprintf("…and %d more", len(m.outcome.Failures)-shown)) + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(DimStyle.Render("Enter for updated results, q for menu"))

	return s.String()
}

func (m Model) renderDiskUsage() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Disk Usage"))
	s.WriteString("\n\n")
	s.WriteString(m.diskUsageTable.View())
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("q for menu"))

	return s.String()
}

// truncatePath shortens a path from the left so the file name stays
// visible.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "…" + path[len(path)-maxLen+1:]
}
