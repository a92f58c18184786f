package proc

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oppppia/ltop/model"
)

// DefaultRoot is the live process pseudo-filesystem. Tests and the collector
// pass a directory of the same shape.
const DefaultRoot = "/proc"

// ErrProcessGone marks a process that vanished (or became unreadable)
// between enumeration and read. Callers skip it, this is routine churn.
var ErrProcessGone = errors.New("process gone")

// ReadProcess parses <root>/<pid>/status into a record. Only the first
// Name, State and VmRSS lines are consumed; scanning stops once all three
// are found so huge status files stay cheap. Fields missing from the file
// get sentinel defaults: name "?", state '?', memory 0.
func ReadProcess(root string, pid int) (model.ProcessRecord, error) {
	rec := model.ProcessRecord{PID: pid}

	f, err := os.Open(filepath.Join(root, strconv.Itoa(pid), "status"))
	if err != nil {
		return rec, ErrProcessGone
	}
	defer f.Close()

	var nameFound, stateFound, rssFound bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case !nameFound && strings.HasPrefix(line, "Name:"):
			name := strings.TrimSpace(line[len("Name:"):])
			if len(name) > model.NameMax {
				name = name[:model.NameMax]
			}
			rec.Name = name
			nameFound = true

		case !stateFound && strings.HasPrefix(line, "State:"):
			rest := strings.TrimSpace(line[len("State:"):])
			if rest != "" {
				rec.State = rest[0]
				stateFound = true
			}

		case !rssFound && strings.HasPrefix(line, "VmRSS:"):
			fields := strings.Fields(line[len("VmRSS:"):])
			if len(fields) > 0 {
				if v, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
					rec.MemKB = v
					rssFound = true
				}
			}
		}

		if nameFound && stateFound && rssFound {
			break
		}
	}

	if !nameFound || rec.Name == "" {
		rec.Name = "?"
	}
	if !stateFound {
		rec.State = '?'
	}

	return rec, nil
}
