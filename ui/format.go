package ui

import (
	"fmt"

	"github.com/oppppia/ltop/model"
)

// Fixed display column widths: PID 8, NAME 22 (truncated), STATE 6,
// MEM (KB) 12, all left-justified.
const rowFormat = "%-8d %-22.22s %-6c %-12d"

func formatHeader() string {
	return fmt.Sprintf("%-8s %-22s %-6s %-12s", "PID", "NAME", "STATE", "MEM (KB)")
}

func formatRow(r model.ProcessRecord) string {
	return fmt.Sprintf(rowFormat, r.PID, r.Name, rune(r.State), r.MemKB)
}

// formatMemSummary renders the system memory line in MB. Used and swap-used
// are derived here, clamped to zero by the sample's methods.
func formatMemSummary(m model.MemorySample) string {
	const kbPerMB = 1024
	return fmt.Sprintf("Mem: %d/%d MB used, %d MB available | Swap: %d/%d MB used",
		m.UsedKB()/kbPerMB,
		m.TotalKB/kbPerMB,
		m.AvailableKB/kbPerMB,
		m.SwapUsedKB()/kbPerMB,
		m.SwapTotalKB/kbPerMB,
	)
}
