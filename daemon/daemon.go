package daemon

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oppppia/ltop/alert"
	"github.com/oppppia/ltop/config"
	"github.com/oppppia/ltop/model"
	"github.com/oppppia/ltop/monitor"
)

// alertCooldown is the minimum gap between two alerts for the same pid.
const alertCooldown = 60 * time.Second

// Daemon is the headless watch mode: scan on a ticker, notify the active
// webhook when a process crosses the resident-memory threshold.
type Daemon struct {
	collector  *monitor.Collector
	cfg        *config.Config
	cfgPath    string
	logger     *log.Logger
	interval   time.Duration
	lastAlerts map[int]time.Time
}

func New(cfgPath string, interval time.Duration, logger *log.Logger) *Daemon {
	cfg, _ := config.Load(cfgPath)

	return &Daemon{
		collector:  monitor.NewCollector(),
		cfg:        cfg,
		cfgPath:    cfgPath,
		logger:     logger,
		interval:   interval,
		lastAlerts: make(map[int]time.Time),
	}
}

// Run scans until the context is cancelled. Config reload events and scan
// ticks are handled on this one goroutine, so cfg is never shared.
func (d *Daemon) Run(ctx context.Context) error {
	var events chan fsnotify.Event

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		d.logger.Printf("config watch unavailable: %v", err)
	} else {
		defer watcher.Close()
		// Watch the directory, not the file: editors and atomic writes
		// replace the file, which drops a watch held on the path itself.
		if err := watcher.Add(filepath.Dir(d.cfgPath)); err != nil {
			d.logger.Printf("config watch unavailable: %v", err)
		} else {
			events = watcher.Events
		}
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case e := <-events:
			d.handleConfigEvent(e)

		case <-ticker.C:
			d.scan()
		}
	}
}

func (d *Daemon) scan() {
	snap, err := d.collector.Collect()
	if err != nil {
		d.logger.Printf("scan failed: %v", err)
		return
	}

	for i := range snap.Records {
		d.checkAlert(&snap.Records[i])
	}
}

// handleConfigEvent reloads the config when the watched directory reports
// a change to the config file. Create and Rename cover replacement by
// editors and atomic writers; anything touching other files is ignored.
func (d *Daemon) handleConfigEvent(e fsnotify.Event) {
	if filepath.Base(e.Name) != filepath.Base(d.cfgPath) {
		return
	}
	if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	cfg, err := config.Load(d.cfgPath)
	if err == nil {
		d.cfg = cfg
		d.logger.Println("config reloaded")
	}
}

func (d *Daemon) checkAlert(r *model.ProcessRecord) {
	if d.cfg.MemThresholdKB <= 0 || r.MemKB < d.cfg.MemThresholdKB {
		return
	}

	now := time.Now()
	if t, ok := d.lastAlerts[r.PID]; ok && now.Sub(t) < alertCooldown {
		return
	}
	d.lastAlerts[r.PID] = now

	msg := fmt.Sprintf("High memory: PID %d (%s) at %d KB", r.PID, r.Name, r.MemKB)
	d.logger.Println(msg)

	url := d.cfg.Webhooks[d.cfg.ActiveWebhook]
	if err := alert.Send(url, msg); err != nil {
		d.logger.Printf("webhook failed: %v", err)
	}
}
