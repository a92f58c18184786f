package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.mode == helpMode {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(formatMemSummary(m.mem))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(formatHeader()))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", m.separatorWidth()))
	b.WriteString("\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.mode == filterMode {
		b.WriteString("\n")
		b.WriteString(m.renderFilterBar())
	}

	if m.dialog.active() {
		b.WriteString("\n")
		b.WriteString(m.renderDialog())
	}

	return b.String()
}

func (m Model) renderTitle() string {
	return titleStyle.Render("ltop - process monitor")
}

// visibleCapacity is the terminal height minus the fixed header/footer
// rows, never negative.
func (m Model) visibleCapacity() int {
	capacity := m.height - headerFooterRows
	if capacity < 0 {
		capacity = 0
	}
	return capacity
}

func (m Model) separatorWidth() int {
	if m.width > 0 {
		return m.width
	}
	return len(formatHeader())
}

func (m Model) renderRows() string {
	start, visible := viewport(len(m.rows), m.visibleCapacity(), m.sel.index)

	var b strings.Builder
	for i := 0; i < visible; i++ {
		idx := start + i
		line := formatRow(m.rows[idx])
		if idx == m.sel.index {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < visible-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	status := fmt.Sprintf("Processes: %d | Selected %d", len(m.rows), m.sel.index+1)
	if len(m.rows) == 0 {
		status = "Processes: 0"
	}
	if m.filterText != "" {
		status += fmt.Sprintf(" | Filter: %s (%d/%d)", m.filterText, len(m.rows), m.snapshot.Count())
	}
	if m.scanErr != "" {
		status += "  " + errorStyle.Render(m.scanErr)
	}
	return status
}

func (m Model) renderFooter() string {
	footer := fmt.Sprintf(
		"%s Quit | %s Navigate | %s Kill | %s Refresh | %s Filter | %s Sort | %s Help",
		keybindStyle.Render("[q]"),
		keybindStyle.Render("[up/down]"),
		keybindStyle.Render("[k]"),
		keybindStyle.Render("[r]"),
		keybindStyle.Render("[/]"),
		keybindStyle.Render("[p/n/m]"),
		keybindStyle.Render("[?]"),
	)
	return keybindDescStyle.Render(footer)
}

func (m Model) renderFilterBar() string {
	return "Filter: " + m.filterInput.View() +
		keybindDescStyle.Render(" (Enter to apply, Esc to cancel)")
}

func (m Model) renderDialog() string {
	if m.dialog.state == dialogResult {
		return confirmStyle.Render(
			m.dialog.result + "\n\nPress any key to continue...")
	}

	msg := fmt.Sprintf("Terminate process: PID %d (%s)\n\n  1. SIGTERM\n  2. Cancel\n\nSelect option [1-2]",
		m.dialog.pid, m.dialog.name)
	return confirmStyle.Render(msg)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"up/down", "Move selection"},
		{"k", "Terminate selected process (confirmation dialog)"},
		{"r", "Refresh now"},
		{"/", "Filter by process name"},
		{"p / n / m", "Sort by PID / NAME / MEM, press again to reverse"},
		{"?", "Show or hide this help"},
		{"q", "Quit"},
	}

	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keybindStyle.Render(fmt.Sprintf("%-10s", kb.key)),
			kb.desc))
	}

	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("Press ? or esc to return"))
	return b.String()
}
