package daemon

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oppppia/ltop/config"
	"github.com/oppppia/ltop/model"
)

func testDaemon(t *testing.T) (*Daemon, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf, "[ltop] ", 0)
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	d := New(cfgPath, time.Second, logger)
	return d, &buf
}

func TestCheckAlert_Threshold(t *testing.T) {
	d, buf := testDaemon(t)
	d.cfg.MemThresholdKB = 1000

	d.checkAlert(&model.ProcessRecord{PID: 1, Name: "small", MemKB: 999})
	assert.Empty(t, buf.String())

	d.checkAlert(&model.ProcessRecord{PID: 2, Name: "big", MemKB: 1000})
	assert.Contains(t, buf.String(), "High memory: PID 2 (big) at 1000 KB")
}

func TestCheckAlert_RateLimitedPerPID(t *testing.T) {
	d, buf := testDaemon(t)
	d.cfg.MemThresholdKB = 1

	rec := &model.ProcessRecord{PID: 5, Name: "hog", MemKB: 100}
	d.checkAlert(rec)
	first := buf.String()
	require.Contains(t, first, "PID 5")

	// The same pid within the cooldown stays quiet; another pid does not.
	d.checkAlert(rec)
	assert.Equal(t, first, buf.String())

	d.checkAlert(&model.ProcessRecord{PID: 6, Name: "hog2", MemKB: 100})
	assert.Contains(t, buf.String(), "PID 6")
}

func TestHandleConfigEvent(t *testing.T) {
	d, buf := testDaemon(t)

	save := func(threshold int64) {
		require.NoError(t, config.Save(d.cfgPath, &config.Config{
			RefreshIntervalMS: 3000,
			MemThresholdKB:    threshold,
			Webhooks:          map[string]string{},
		}))
	}

	// An atomic writer replaces the file, surfacing as Create on the
	// directory watch; the reload must still happen.
	save(777)
	d.handleConfigEvent(fsnotify.Event{Name: d.cfgPath, Op: fsnotify.Create})
	assert.Equal(t, int64(777), d.cfg.MemThresholdKB)
	assert.Contains(t, buf.String(), "config reloaded")

	// Events for other files in the directory are ignored.
	save(888)
	other := filepath.Join(filepath.Dir(d.cfgPath), "other.json")
	d.handleConfigEvent(fsnotify.Event{Name: other, Op: fsnotify.Write})
	assert.Equal(t, int64(777), d.cfg.MemThresholdKB)

	// Chmod alone is not a content change.
	d.handleConfigEvent(fsnotify.Event{Name: d.cfgPath, Op: fsnotify.Chmod})
	assert.Equal(t, int64(777), d.cfg.MemThresholdKB)

	d.handleConfigEvent(fsnotify.Event{Name: d.cfgPath, Op: fsnotify.Write})
	assert.Equal(t, int64(888), d.cfg.MemThresholdKB)
}

// Run owns every read and write of cfg on its own goroutine; rewriting the
// config while scans are running must stay clean under the race detector.
func TestRun_ConfigReloadDuringScans(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "1")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"),
		[]byte("Name:\thog\nState:\tS (sleeping)\nVmRSS:\t100 kB\n"), 0644))

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		RefreshIntervalMS: 3000,
		MemThresholdKB:    1,
		Webhooks:          map[string]string{},
	}))

	var buf bytes.Buffer
	logger := log.New(&buf, "[ltop] ", 0)
	d := New(cfgPath, time.Millisecond, logger)
	d.collector.Root = root

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	// Let Run install its watcher, then rewrite the config while the
	// 1ms ticker keeps scans flowing.
	time.Sleep(20 * time.Millisecond)
	for i := 0; i < 50; i++ {
		require.NoError(t, config.Save(cfgPath, &config.Config{
			RefreshIntervalMS: 3000,
			MemThresholdKB:    int64(i + 2),
			Webhooks:          map[string]string{},
		}))
		time.Sleep(2 * time.Millisecond)
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// Only read shared state after Run has returned.
	out := buf.String()
	assert.Contains(t, out, "config reloaded")
	assert.Contains(t, out, "High memory: PID 1 (hog) at 100 KB")
}

func TestCheckAlert_DisabledThreshold(t *testing.T) {
	d, buf := testDaemon(t)
	d.cfg.MemThresholdKB = 0

	d.checkAlert(&model.ProcessRecord{PID: 9, Name: "any", MemKB: 1 << 30})
	assert.Empty(t, buf.String())
}
