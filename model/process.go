package model

import "time"

// NameMax bounds the process name kept in a record. Longer names are
// truncated at parse time; display truncation is narrower still.
const NameMax = 128

// ProcessRecord is one process as seen at snapshot time. Immutable once
// built; owned by the Snapshot that carries it.
type ProcessRecord struct {
	PID   int
	Name  string
	State byte
	MemKB int64
}

// Snapshot is one complete capture of the process table. Records keep the
// order in which pids were discovered; the collector never sorts.
type Snapshot struct {
	Records []ProcessRecord
	Taken   time.Time
}

// Count returns the number of records.
func (s *Snapshot) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
