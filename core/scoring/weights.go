package scoring

import "math"

// CurrentWeight returns the share of the projection taken from the current
// season after g games played. The curve is a logistic S shape: near flat
// for small samples, steepest around the inflection point and asymptotic to
// the ceiling. The prior-season share is always 1 - CurrentWeight(g).
//
// The tabulated early-season values in the narrative docs (15% at zero
// games) are rounding of this formula, not a separate floor.
func (w WeightCurve) CurrentWeight(g int) float64 {
	if g < 0 {
		g = 0
	}
	return w.Ceiling / (1 + math.Exp(-w.Steepness*(float64(g)-w.Inflection)))
}

// Amplify returns the multiplicative boost for a player without a prior
// baseline after g games played. It decays exponentially from base+maxBoost
// towards base, mirroring the shrinking variance of a growing sample.
func (a Amplifier) Amplify(g int) float64 {
	if g < 0 {
		g = 0
	}
	return a.Base + a.MaxBoost*math.Exp(-float64(g)/a.DecayRate)
}
