package proc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oppppia/ltop/model"
)

// ReadMemInfo parses <root>/meminfo. Unrecognized keys are ignored and
// missing keys stay zero. An open failure is the caller's cue to zero-fill.
func ReadMemInfo(root string) (model.MemorySample, error) {
	var sample model.MemorySample

	f, err := os.Open(filepath.Join(root, "meminfo"))
	if err != nil {
		return sample, fmt.Errorf("open meminfo: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			sample.TotalKB = v
		case "MemFree":
			sample.FreeKB = v
		case "MemAvailable":
			sample.AvailableKB = v
		case "Cached":
			sample.CachedKB = v
		case "Buffers":
			sample.BuffersKB = v
		case "SwapTotal":
			sample.SwapTotalKB = v
		case "SwapFree":
			sample.SwapFreeKB = v
		}
	}

	return sample, nil
}
