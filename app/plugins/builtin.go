package plugins

import (
	"github.com/jsvec/faceoff/core/factory"
	"github.com/jsvec/faceoff/core/lineup"
	"github.com/jsvec/faceoff/core/lineup/history"
	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
)

func init() {
	RegisterStrategy("greedy", func(name string, _ map[string]any) (lineup.Strategy, error) {
		return lineup.Greedy{}, nil
	})
	RegisterStrategy("iterative", func(name string, _ map[string]any) (lineup.Strategy, error) {
		return lineup.Iterative{}, nil
	})
	// The advanced strategy's selection is greedy; its scoring model is
	// the regression-augmented scorer registered under the same name.
	RegisterStrategy("advanced", func(name string, _ map[string]any) (lineup.Strategy, error) {
		return lineup.Advanced{}, nil
	})

	RegisterScorer("basic", func(cfg scoring.Config, _ []model.Player) (scoring.Scorer, error) {
		return scoring.BasicScorer{Cfg: cfg}, nil
	})
	RegisterScorer("advanced", func(cfg scoring.Config, pool []model.Player) (scoring.Scorer, error) {
		return scoring.NewAdvancedScorer(cfg, pool), nil
	})

	RegisterStore("jsonl", func(name string, conf map[string]any) (history.Store, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return history.NewJSONLStore(c.Path)
	})
	RegisterStore("sqlite", func(name string, conf map[string]any) (history.Store, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return history.NewSQLiteStore(c.Path)
	})
}
