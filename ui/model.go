package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oppppia/ltop/model"
	"github.com/oppppia/ltop/monitor"
	"github.com/oppppia/ltop/proc"
)

// pollInterval is the input tick. Quit and navigation react at this
// cadence; data freshness is governed by the scheduler's interval, which
// gates actual collection on each tick.
const pollInterval = 100 * time.Millisecond

// Model holds TUI state. One value threaded through the bubbletea loop;
// nothing here is shared or ambient.
type Model struct {
	collector *monitor.Collector
	scheduler *monitor.Scheduler

	snapshot *model.Snapshot
	mem      model.MemorySample
	rows     []model.ProcessRecord // displayed slice: snapshot -> filter -> sort
	scanErr  string

	sel            selection
	sorter         *model.Sorter
	dialog         killDialog
	refreshPending bool

	filterInput textinput.Model
	filterText  string
	mode        uiMode

	width  int
	height int
}

func NewModel(interval time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name..."
	ti.CharLimit = 50

	return Model{
		collector:   monitor.NewCollector(),
		scheduler:   monitor.NewScheduler(interval),
		sorter:      model.NewSorter(),
		dialog:      killDialog{send: proc.TerminateProcess},
		filterInput: ti,
		mode:        normalMode,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// maybeRefresh runs a collection when one is due, consuming the pending
// manual request if the scheduler fires.
func (m *Model) maybeRefresh(now time.Time) {
	if !m.scheduler.Due(now, m.refreshPending) {
		return
	}
	m.refreshPending = false
	m.refresh()
}

// refresh replaces the snapshot and memory sample wholesale. A failed scan
// keeps the previous snapshot on screen behind a persistent error; the
// next due tick retries. A failed memory read zero-fills.
func (m *Model) refresh() {
	snap, err := m.collector.Collect()
	if err != nil {
		m.scanErr = err.Error()
		return
	}
	m.scanErr = ""
	m.snapshot = snap

	mem, err := proc.ReadMemInfo(m.collector.Root)
	if err != nil {
		mem = model.MemorySample{}
	}
	m.mem = mem

	m.rebuildRows()
}

// rebuildRows derives the displayed slice and re-validates the selection
// against its length. The snapshot itself is never filtered or reordered.
func (m *Model) rebuildRows() {
	var records []model.ProcessRecord
	if m.snapshot != nil {
		records = m.snapshot.Records
	}

	if m.filterText != "" {
		records = filterRecords(records, m.filterText)
	}

	rows := make([]model.ProcessRecord, len(records))
	copy(rows, records)
	m.sorter.Sort(rows)

	m.rows = rows
	m.sel.clamp(len(m.rows))
}
