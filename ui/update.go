package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oppppia/ltop/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.maybeRefresh(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The kill dialog is modal: while it is up, it owns every key.
	if m.dialog.active() {
		m.dialog.handleKey(msg.String())
		return m, nil
	}

	switch m.mode {
	case filterMode:
		return m.handleFilterMode(msg)
	case helpMode:
		return m.handleHelpMode(msg)
	}
	return m.handleNormalMode(msg)
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case keyHelp:
		m.mode = helpMode
		return m, nil

	case keyFilter:
		m.mode = filterMode
		m.filterInput.Focus()
		return m, nil

	case keySortPID:
		m.sorter.Toggle(model.SortByPID)
		m.rebuildRows()
		return m, nil
	case keySortName:
		m.sorter.Toggle(model.SortByName)
		m.rebuildRows()
		return m, nil
	case keySortMem:
		m.sorter.Toggle(model.SortByMem)
		m.rebuildRows()
		return m, nil
	}

	switch dispatch(key, len(m.rows)) {
	case actionQuit:
		return m, tea.Quit

	case actionMoveUp:
		m.sel.move(-1, len(m.rows))

	case actionMoveDown:
		m.sel.move(1, len(m.rows))

	case actionRefresh:
		m.refreshPending = true
		m.maybeRefresh(time.Now())

	case actionKill:
		rec := m.rows[m.sel.index]
		m.dialog.open(rec.PID, rec.Name)
	}

	return m, nil
}

func (m Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = normalMode
		m.filterInput.Blur()
		m.filterInput.SetValue(m.filterText)
		return m, nil
	case "enter":
		m.mode = normalMode
		m.filterInput.Blur()
		m.filterText = m.filterInput.Value()
		m.rebuildRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterText = m.filterInput.Value()
	m.rebuildRows()
	return m, cmd
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", keyHelp:
		m.mode = normalMode
	}
	return m, nil
}

// filterRecords keeps records whose name contains text, case-insensitive.
func filterRecords(records []model.ProcessRecord, text string) []model.ProcessRecord {
	search := strings.ToLower(text)
	filtered := make([]model.ProcessRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), search) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
