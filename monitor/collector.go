package monitor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/oppppia/ltop/model"
	"github.com/oppppia/ltop/proc"
)

// initialCapacity is the record buffer's starting size. The buffer doubles
// when full, so N records cost at most ceil(log2(N/initialCapacity)) regrows.
const initialCapacity = 128

// Collector builds process-table snapshots from a /proc-shaped directory.
type Collector struct {
	Root string
}

func NewCollector() *Collector {
	return &Collector{Root: proc.DefaultRoot}
}

// Collect enumerates the pid namespace and reads one record per live
// process. Entries that are not purely numeric, or parse to pid <= 0, are
// not processes and are skipped. A process that vanishes between
// enumeration and read is skipped silently; that is normal churn, not an
// error. The only fatal condition is the namespace itself being unreadable.
func (c *Collector) Collect() (*model.Snapshot, error) {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, fmt.Errorf("read process namespace %s: %w", c.Root, err)
	}

	records := make([]model.ProcessRecord, 0, initialCapacity)

	for _, ent := range entries {
		if !proc.IsNumeric(ent.Name()) {
			continue
		}
		pid, err := strconv.Atoi(ent.Name())
		if err != nil || pid <= 0 {
			continue
		}

		rec, err := proc.ReadProcess(c.Root, pid)
		if errors.Is(err, proc.ErrProcessGone) {
			continue
		}

		records = appendRecord(records, rec)
	}

	return &model.Snapshot{Records: records, Taken: time.Now()}, nil
}

// appendRecord grows the buffer by doubling, never by one. Implementation
// detail of the collector, kept explicit so the amortized-linear cost holds
// regardless of the runtime's append heuristics.
func appendRecord(buf []model.ProcessRecord, rec model.ProcessRecord) []model.ProcessRecord {
	if len(buf) == cap(buf) {
		grown := make([]model.ProcessRecord, len(buf), cap(buf)*2)
		copy(grown, buf)
		buf = grown
	}
	return append(buf, rec)
}
