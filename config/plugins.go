package config

import (
	"github.com/jsvec/faceoff/core/factory"
)

// SinkModules translates the metrics section into the module configs
// consumed by the sink registry. Disabled exporters produce no module, so
// an empty slice means the nop sink.
func (c *Config) SinkModules() []factory.ModuleConfig {
	var mods []factory.ModuleConfig
	if c.Metrics.PrometheusEnabled {
		mods = append(mods, factory.ModuleConfig{Type: "prometheus"})
	}
	if c.Metrics.InfluxEnabled {
		mods = append(mods, factory.ModuleConfig{
			Type: "influx",
			Conf: map[string]any{
				"url":    c.Metrics.InfluxURL,
				"token":  c.Metrics.InfluxToken,
				"org":    c.Metrics.InfluxOrg,
				"bucket": c.Metrics.InfluxBucket,
			},
		})
	}
	return mods
}

// HistoryModule translates the history section into a module config for the
// store registry.
func (c *Config) HistoryModule() factory.ModuleConfig {
	return factory.ModuleConfig{
		Type: c.History.Backend,
		Conf: map[string]any{"path": c.History.Path},
	}
}
