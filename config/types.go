package config

// Config is the on-disk configuration, stored as JSON.
type Config struct {
	RefreshIntervalMS int               `json:"refresh_interval_ms"`
	MemThresholdKB    int64             `json:"mem_threshold_kb"`
	ActiveWebhook     string            `json:"active_webhook"`
	Webhooks          map[string]string `json:"webhooks"`
}
