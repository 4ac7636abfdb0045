package scoring

import (
	"math"
	"testing"
)

func defaultConfig() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

func TestCurrentWeight_InflectionIsHalfCeiling(t *testing.T) {
	curve := WeightCurve{Ceiling: 0.92, Steepness: 0.08, Inflection: 35}
	got := curve.CurrentWeight(35)
	if math.Abs(got-0.46) > 1e-9 {
		t.Fatalf("w(35) = %v, want 0.46", got)
	}
}

func TestCurrentWeight_MonotoneAndBounded(t *testing.T) {
	curve := defaultConfig().Curve
	prev := -1.0
	for g := 0; g <= 82; g++ {
		w := curve.CurrentWeight(g)
		if w <= 0 || w > curve.Ceiling {
			t.Fatalf("w(%d) = %v outside (0, %v]", g, w, curve.Ceiling)
		}
		if w < prev {
			t.Fatalf("w(%d) = %v decreased from %v", g, w, prev)
		}
		prev = w
	}
}

func TestCurrentWeight_NoEarlySeasonFloor(t *testing.T) {
	// The 15% tabulated floor is documentation rounding; the formula is the
	// source of truth and yields roughly 5% at zero games.
	curve := defaultConfig().Curve
	w := curve.CurrentWeight(0)
	if w > 0.06 {
		t.Fatalf("w(0) = %v, expected the pure logistic value (~0.05)", w)
	}
}

func TestCurrentWeight_NegativeClampsToZeroGames(t *testing.T) {
	curve := defaultConfig().Curve
	if curve.CurrentWeight(-5) != curve.CurrentWeight(0) {
		t.Fatal("negative sample size should behave like zero")
	}
}

func TestAmplify_Endpoints(t *testing.T) {
	amp := Amplifier{Base: 1.05, MaxBoost: 0.30, DecayRate: 20}
	if got := amp.Amplify(0); math.Abs(got-1.35) > 1e-9 {
		t.Fatalf("amp(0) = %v, want 1.35", got)
	}
	want := 1.05 + 0.30/math.E
	if got := amp.Amplify(20); math.Abs(got-want) > 1e-9 {
		t.Fatalf("amp(20) = %v, want %v", got, want)
	}
}

func TestAmplify_StrictlyDecreasingAboveBase(t *testing.T) {
	amp := defaultConfig().Amplifier
	prev := math.Inf(1)
	for g := 0; g <= 200; g += 5 {
		a := amp.Amplify(g)
		if a >= prev {
			t.Fatalf("amp(%d) = %v did not decrease from %v", g, a, prev)
		}
		if a <= amp.Base {
			t.Fatalf("amp(%d) = %v reached base %v", g, a, amp.Base)
		}
		prev = a
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := cfg
	bad.Curve.Ceiling = 1.2
	if err := bad.Validate(); err == nil {
		t.Error("ceiling above 1 should be rejected")
	}
	bad = cfg
	bad.Amplifier.DecayRate = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative decay rate should be rejected")
	}
	bad = cfg
	bad.Curve.Inflection = 200
	if err := bad.Validate(); err == nil {
		t.Error("inflection beyond season length should be rejected")
	}
}
