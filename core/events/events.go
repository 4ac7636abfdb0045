// Package events defines the pipeline events emitted on the event bus.
//
// Available event types:
//   - ExclusionEvent: a candidate dropped from the pool
//   - RelaxationEvent: substitute threshold relaxed for a role
//   - SwapEvent: iterative strategy accepted a swap
//   - RunEvent: one optimisation run completed
package events

import "github.com/jsvec/faceoff/core/model"

// ExclusionEvent is emitted when a candidate is excluded from the pool
// (unresolved price, zero cost, missing stats).
type ExclusionEvent struct {
	Player string
	Reason string
}

// RelaxationEvent is emitted when stage B relaxes the substitute value
// threshold for a role rather than leaving slots empty.
type RelaxationEvent struct {
	Position model.Position
	Wanted   int
	Eligible int
}

// SwapEvent is emitted when the iterative strategy accepts a swap.
type SwapEvent struct {
	Position  model.Position
	Set       string
	Out       string
	In        string
	Effective float64
}

// RunEvent is emitted after a run finishes, feasible or not.
type RunEvent struct {
	RunID      string
	Strategy   string
	Infeasible bool
	Effective  float64
}
