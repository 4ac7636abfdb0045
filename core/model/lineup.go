package model

// RoleQuota defines how many starters and substitutes each role tag needs.
type RoleQuota struct {
	Starters    map[Position]int `json:"starters"`
	Substitutes map[Position]int `json:"substitutes"`
}

// DefaultQuota is the standard 2G+4D+6F roster with one backup per role.
func DefaultQuota() RoleQuota {
	return RoleQuota{
		Starters:    map[Position]int{Goalie: 2, Defense: 4, Forward: 6},
		Substitutes: map[Position]int{Goalie: 1, Defense: 1, Forward: 1},
	}
}

// TotalSlots returns the number of roster slots the quota demands.
func (q RoleQuota) TotalSlots() int {
	n := 0
	for _, c := range q.Starters {
		n += c
	}
	for _, c := range q.Substitutes {
		n += c
	}
	return n
}

// Shortage describes unfilled slots for one role after selection.
type Shortage struct {
	Position   Position `json:"position"`
	Set        string   `json:"set"` // "starters" or "substitutes"
	Wanted     int      `json:"wanted"`
	Filled     int      `json:"filled"`
	Relaxed    bool     `json:"relaxed"` // substitute threshold was relaxed
}

// ShortageReport collects every partial-fulfilment event of a run. An empty
// report means the quota was met exactly.
type ShortageReport struct {
	Shortages []Shortage `json:"shortages,omitempty"`
}

// Infeasible reports whether any slot stayed empty.
func (r ShortageReport) Infeasible() bool {
	for _, s := range r.Shortages {
		if s.Filled < s.Wanted {
			return true
		}
	}
	return false
}

// Relaxations counts roles where the substitute threshold had to be relaxed.
func (r ShortageReport) Relaxations() int {
	n := 0
	for _, s := range r.Shortages {
		if s.Relaxed {
			n++
		}
	}
	return n
}
