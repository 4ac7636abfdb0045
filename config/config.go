// Package config loads the pipeline configuration from YAML or JSON files
// with environment variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsvec/faceoff/core/lineup"
	"github.com/jsvec/faceoff/core/metrics"
	"github.com/jsvec/faceoff/core/scoring"
)

type Config struct {
	Data    DataConfig     `json:"data"`
	Scoring scoring.Config `json:"scoring"`
	Lineup  lineup.Config  `json:"lineup"`
	Metrics metrics.Config `json:"metrics"`
	History HistoryConfig  `json:"history"`
}

// Load reads the configuration file, applies FO_-prefixed environment
// overrides (FO_LINEUP__STRATEGY=iterative sets lineup.strategy), fills
// defaults and validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FO_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fo_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	return &cfg, cfg.Finalize()
}

// Default returns a configuration usable without any file, for runs driven
// entirely by command line flags.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Finalize(); err != nil {
		// Defaults always validate.
		panic(err)
	}
	return cfg
}

// Finalize fills defaults and validates every section. Callers that mutate
// a loaded configuration, such as flag overrides, run it again.
func (c *Config) Finalize() error {
	c.Data.SetDefaults()
	c.Scoring.SetDefaults()
	c.Lineup.SetDefaults()
	c.History.SetDefaults()
	if c.Metrics.PrometheusPort == "" {
		c.Metrics.PrometheusPort = ":9090"
	}
	if err := c.Data.Validate(); err != nil {
		return err
	}
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if err := c.Lineup.Validate(); err != nil {
		return err
	}
	return c.History.Validate()
}
