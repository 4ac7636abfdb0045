// Package plugins holds the factories for the pluggable pipeline pieces.
// Built-ins register themselves in init; external builds may add their own
// entries before constructing the service.
package plugins

import (
	"fmt"

	"github.com/jsvec/faceoff/core/lineup"
	"github.com/jsvec/faceoff/core/lineup/history"
	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
)

// StrategyFactory builds a selection strategy from a raw configuration map.
type StrategyFactory func(name string, conf map[string]any) (lineup.Strategy, error)

// ScorerFactory builds the scorer feeding the engine. Factories that rank
// against positional benchmarks receive the full pool.
type ScorerFactory func(cfg scoring.Config, pool []model.Player) (scoring.Scorer, error)

// StoreFactory builds a run history store from a raw configuration map.
type StoreFactory func(name string, conf map[string]any) (history.Store, error)

var (
	Strategies = map[string]StrategyFactory{}
	Scorers    = map[string]ScorerFactory{}
	Stores     = map[string]StoreFactory{}
)

func RegisterStrategy(name string, f StrategyFactory) { Strategies[name] = f }
func RegisterScorer(name string, f ScorerFactory)     { Scorers[name] = f }
func RegisterStore(name string, f StoreFactory)       { Stores[name] = f }

// NewStrategy resolves a registered strategy by name.
func NewStrategy(name string, conf map[string]any) (lineup.Strategy, error) {
	f, ok := Strategies[name]
	if !ok {
		return nil, fmt.Errorf("plugins: unknown strategy %q", name)
	}
	return f(name, conf)
}

// NewScorer resolves the scorer registered under name. The strategy name
// doubles as the scorer key so a strategy can bring its own scoring model;
// names without a dedicated scorer fall back to the basic one.
func NewScorer(name string, cfg scoring.Config, pool []model.Player) (scoring.Scorer, error) {
	f, ok := Scorers[name]
	if !ok {
		f = Scorers["basic"]
	}
	if f == nil {
		return nil, fmt.Errorf("plugins: no scorer registered for %q", name)
	}
	return f(cfg, pool)
}

// NewStore resolves a registered history store by backend name.
func NewStore(name string, conf map[string]any) (history.Store, error) {
	f, ok := Stores[name]
	if !ok {
		return nil, fmt.Errorf("plugins: unknown history backend %q", name)
	}
	return f(name, conf)
}
