package plugins

import (
	"path/filepath"
	"testing"

	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
)

func TestNewStrategyBuiltins(t *testing.T) {
	for _, name := range []string{"greedy", "iterative", "advanced"} {
		s, err := NewStrategy(name, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("strategy configured as %q reports Name() = %q", name, s.Name())
		}
	}
	if _, err := NewStrategy("simplex", nil); err == nil {
		t.Fatal("expected an error for an unregistered strategy")
	}
}

func TestNewScorerFallsBackToBasic(t *testing.T) {
	cfg := scoring.Config{}
	cfg.SetDefaults()

	s, err := NewScorer("greedy", cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(scoring.BasicScorer); !ok {
		t.Fatalf("expected the basic scorer, got %T", s)
	}

	adv, err := NewScorer("advanced", cfg, []model.Player{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := adv.(*scoring.AdvancedScorer); !ok {
		t.Fatalf("expected the advanced scorer, got %T", adv)
	}
}

func TestNewStoreBuiltins(t *testing.T) {
	dir := t.TempDir()

	jsonl, err := NewStore("jsonl", map[string]any{"path": filepath.Join(dir, "runs.jsonl")})
	if err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	defer jsonl.Close()

	sqlite, err := NewStore("sqlite", map[string]any{"path": filepath.Join(dir, "runs.db")})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer sqlite.Close()

	if _, err := NewStore("redis", nil); err == nil {
		t.Fatal("expected an error for an unregistered backend")
	}
}
