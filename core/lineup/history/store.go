// Package history persists optimisation runs and supports querying them
// back, so past lineups can be inspected and compared.
package history

import (
	"context"
	"time"
)

// RosterEntry is one selected player in a recorded run.
type RosterEntry struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
	Set      string  `json:"set"` // "starters" or "substitutes"
	Cost     float64 `json:"cost"`
	Value    float64 `json:"value"`
}

// RunRecord captures one optimisation run and its result.
type RunRecord struct {
	ID              string        `json:"id"`
	Timestamp       time.Time     `json:"timestamp"`
	Strategy        string        `json:"strategy"`
	TotalCost       float64       `json:"total_cost"`
	RawValue        float64       `json:"raw_value"`
	EffectiveValue  float64       `json:"effective_value"`
	PenaltyFraction float64       `json:"penalty_fraction"`
	Infeasible      bool          `json:"infeasible"`
	Roster          []RosterEntry `json:"roster"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start    time.Time
	End      time.Time
	Strategy string
	Player   string
	Limit    int
}

// Store persists RunRecords and supports querying.
type Store interface {
	Append(ctx context.Context, rec RunRecord) error
	Query(ctx context.Context, q Query) ([]RunRecord, error)
	Close() error
}

// match applies the in-memory filters shared by file-backed stores.
func match(r RunRecord, q Query) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Strategy != "" && r.Strategy != q.Strategy {
		return false
	}
	if q.Player != "" {
		found := false
		for _, e := range r.Roster {
			if e.Name == q.Player {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
