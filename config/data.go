package config

import "fmt"

// DataConfig defines where the candidate pool and price list come from.
type DataConfig struct {
	// Source selects the pool origin: "api", "csv" or "json".
	Source string `json:"source"`
	// File is the pool file for the csv and json sources.
	File string `json:"file"`
	// PriceFile is the CSV price list matched against the pool.
	PriceFile string `json:"price_file"`

	// CacheDir holds raw API payloads; CacheMaxAgeHours is their validity.
	CacheDir         string `json:"cache_dir"`
	CacheMaxAgeHours int    `json:"cache_max_age_hours"`
	ForceRefresh     bool   `json:"force_refresh"`

	// Teams restricts the pool to these team abbreviations. Gameday
	// (YYYY-MM-DD) restricts it to teams playing that day.
	Teams   []string `json:"teams"`
	Gameday string   `json:"gameday"`

	// Season overrides the season identifier, e.g. "20252026".
	Season string `json:"season"`
}

// SetDefaults applies the standard data source settings.
func (c *DataConfig) SetDefaults() {
	if c.Source == "" {
		c.Source = "api"
	}
	if c.CacheDir == "" {
		c.CacheDir = "cache"
	}
	if c.CacheMaxAgeHours == 0 {
		c.CacheMaxAgeHours = 12
	}
}

// Validate checks source selection consistency.
func (c DataConfig) Validate() error {
	switch c.Source {
	case "api":
	case "csv", "json":
		if c.File == "" {
			return fmt.Errorf("config: source %s requires data.file", c.Source)
		}
	default:
		return fmt.Errorf("config: unknown data source %q", c.Source)
	}
	if c.CacheMaxAgeHours < 0 {
		return fmt.Errorf("config: negative cache age %d", c.CacheMaxAgeHours)
	}
	return nil
}
