package config

import (
	"fmt"
)

// HistoryConfig defines settings for run history storage.
type HistoryConfig struct {
	// Backend selects the store type: "jsonl" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the store.
	Path string `json:"path"`
	// Keep limits how many past runs queries return by default.
	Keep int `json:"keep"`
}

// SetDefaults applies sane defaults.
func (c *HistoryConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		c.Path = "lineup_history.jsonl"
	}
	if c.Keep == 0 {
		c.Keep = 10
	}
}

// Validate checks mandatory fields.
func (c HistoryConfig) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.Keep < 0 {
		return fmt.Errorf("negative keep %d", c.Keep)
	}
	return nil
}
