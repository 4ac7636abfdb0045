package app

import (
	"github.com/jsvec/faceoff/core/events"
	"github.com/jsvec/faceoff/internal/eventbus"
)

// Events splits the pipeline bus into per-type streams so subscribers pick
// the events they care about without type switching on the raw bus.
type Events struct {
	Exclusions  *eventbus.TypedBus[events.ExclusionEvent]
	Relaxations *eventbus.TypedBus[events.RelaxationEvent]
	Swaps       *eventbus.TypedBus[events.SwapEvent]
	Runs        *eventbus.TypedBus[events.RunEvent]
}

func newEvents() *Events {
	return &Events{
		Exclusions:  eventbus.NewTyped[events.ExclusionEvent](),
		Relaxations: eventbus.NewTyped[events.RelaxationEvent](),
		Swaps:       eventbus.NewTyped[events.SwapEvent](),
		Runs:        eventbus.NewTyped[events.RunEvent](),
	}
}

// forward dispatches events from the source bus onto the matching typed
// stream. It returns, closing every stream, once src is closed.
func (ev *Events) forward(src <-chan eventbus.Event) {
	for e := range src {
		switch e := e.(type) {
		case events.ExclusionEvent:
			ev.Exclusions.Publish(e)
		case events.RelaxationEvent:
			ev.Relaxations.Publish(e)
		case events.SwapEvent:
			ev.Swaps.Publish(e)
		case events.RunEvent:
			ev.Runs.Publish(e)
		}
	}
	ev.Exclusions.Close()
	ev.Relaxations.Close()
	ev.Swaps.Close()
	ev.Runs.Close()
}
