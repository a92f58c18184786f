package model

import (
	"sort"
	"strings"
)

type SortColumn int

const (
	SortNone SortColumn = iota // discovery order
	SortByPID
	SortByName
	SortByMem
)

// Sorter orders a display copy of the records. The collector's snapshot is
// never reordered; callers sort their own slice.
type Sorter struct {
	Column     SortColumn
	Descending bool
}

func NewSorter() *Sorter {
	return &Sorter{Column: SortNone}
}

// Toggle selects a column, or flips direction when it is already selected.
func (s *Sorter) Toggle(col SortColumn) {
	if s.Column == col {
		s.Descending = !s.Descending
	} else {
		s.Column = col
		s.Descending = true
	}
}

func (s *Sorter) Sort(records []ProcessRecord) {
	if s.Column == SortNone {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]

		var less bool
		switch s.Column {
		case SortByPID:
			less = a.PID < b.PID
		case SortByName:
			less = strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByMem:
			less = a.MemKB < b.MemKB
		}

		if s.Descending {
			return !less
		}
		return less
	})
}

func (s *Sorter) ColumnName() string {
	names := []string{"NONE", "PID", "NAME", "MEM"}
	return names[s.Column]
}
