package scoring

import "fmt"

// WeightCurve parametrises the logistic blend between current and prior
// season statistics.
type WeightCurve struct {
	Ceiling    float64 `json:"ceiling"`    // L, asymptotic max weight, < 1
	Steepness  float64 `json:"steepness"`  // k
	Inflection float64 `json:"inflection"` // x0, games played at L/2
}

// Amplifier parametrises the small-sample boost applied to players without
// a prior-season baseline.
type Amplifier struct {
	Base      float64 `json:"base"`
	MaxBoost  float64 `json:"max_boost"`
	DecayRate float64 `json:"decay_rate"`
}

// Config groups the scoring engine settings.
type Config struct {
	Curve        WeightCurve `json:"curve"`
	Amplifier    Amplifier   `json:"amplifier"`
	SeasonLength int         `json:"season_length"`
}

// SetDefaults fills zero values with the standard curve parameters.
func (c *Config) SetDefaults() {
	if c.Curve.Ceiling == 0 {
		c.Curve.Ceiling = 0.92
	}
	if c.Curve.Steepness == 0 {
		c.Curve.Steepness = 0.08
	}
	if c.Curve.Inflection == 0 {
		c.Curve.Inflection = 35
	}
	if c.Amplifier.Base == 0 {
		c.Amplifier.Base = 1.05
	}
	if c.Amplifier.MaxBoost == 0 {
		c.Amplifier.MaxBoost = 0.30
	}
	if c.Amplifier.DecayRate == 0 {
		c.Amplifier.DecayRate = 20
	}
	if c.SeasonLength == 0 {
		c.SeasonLength = 82
	}
}

// Validate rejects contradictory curve parameters before any scoring work.
func (c Config) Validate() error {
	if c.Curve.Ceiling <= 0 || c.Curve.Ceiling >= 1 {
		return fmt.Errorf("scoring: curve ceiling must be in (0,1), got %v", c.Curve.Ceiling)
	}
	if c.Curve.Steepness <= 0 {
		return fmt.Errorf("scoring: curve steepness must be positive, got %v", c.Curve.Steepness)
	}
	if c.Curve.Inflection < 0 || c.Curve.Inflection > float64(c.SeasonLength) {
		return fmt.Errorf("scoring: curve inflection %v outside season length %d", c.Curve.Inflection, c.SeasonLength)
	}
	if c.Amplifier.Base <= 0 {
		return fmt.Errorf("scoring: amplifier base must be positive, got %v", c.Amplifier.Base)
	}
	if c.Amplifier.MaxBoost < 0 {
		return fmt.Errorf("scoring: amplifier max boost must be non-negative, got %v", c.Amplifier.MaxBoost)
	}
	if c.Amplifier.DecayRate <= 0 {
		return fmt.Errorf("scoring: amplifier decay rate must be positive, got %v", c.Amplifier.DecayRate)
	}
	if c.SeasonLength <= 0 {
		return fmt.Errorf("scoring: season length must be positive, got %d", c.SeasonLength)
	}
	return nil
}
