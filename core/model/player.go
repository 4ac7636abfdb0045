package model

import (
	"fmt"
	"strings"
)

// Position is the role tag grouping players for quota purposes.
type Position string

const (
	Goalie  Position = "G"
	Defense Position = "D"
	Forward Position = "F"
)

// Positions lists the role tags in report order.
var Positions = []Position{Goalie, Defense, Forward}

// NormalizePosition maps the many position spellings found in source data
// onto the three role tags. Unknown values default to Forward.
func NormalizePosition(raw string) Position {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "G", "GOALIE", "GOALKEEPER", "B", "BRANKÁR", "BRANKAŘ":
		return Goalie
	case "D", "DEFENSE", "DEFENDER", "DEFENSEMAN", "DEFENCEMAN", "O", "OBRANCA", "OBRÁNCE":
		return Defense
	default:
		return Forward
	}
}

// SeasonStats holds one season's raw counting stats for a player.
// All values are season totals, not per-game rates.
type SeasonStats struct {
	GamesPlayed       int     `json:"gamesPlayed"`
	Goals             float64 `json:"goals"`
	Assists           float64 `json:"assists"`
	Points            float64 `json:"points"`
	Shots             float64 `json:"shots"`
	Hits              float64 `json:"hits"`
	BlockedShots      float64 `json:"blockedShots"`
	PowerPlayGoals    float64 `json:"powerPlayGoals"`
	PowerPlayPoints   float64 `json:"powerPlayPoints"`
	ShorthandedGoals  float64 `json:"shorthandedGoals"`
	ShorthandedPoints float64 `json:"shorthandedPoints"`
	GameWinningGoals  float64 `json:"gameWinningGoals"`
	PlusMinus         float64 `json:"plusMinus"`
	PIM               float64 `json:"pim"`

	// Goalie categories.
	Wins         float64 `json:"wins"`
	Losses       float64 `json:"losses"`
	Shutouts     float64 `json:"shutouts"`
	Saves        float64 `json:"saves"`
	ShotsAgainst float64 `json:"shotsAgainst"`
	GoalsAgainst float64 `json:"goalsAgainst"`

	// Context rates used by the bonus scorer.
	SavePct     float64 `json:"savePctg"`
	GAA         float64 `json:"goalsAgainstAverage"`
	ShootingPct float64 `json:"shootingPctg"`
}

// Player is a candidate entering the scoring pipeline. A player either has a
// prior-season baseline or not; the two cases are constructed through
// NewVeteran and NewRookie so the scoring branch is exhaustive by
// construction instead of relying on runtime field-presence checks.
type Player struct {
	ID       int
	Name     string
	Team     string
	Position Position
	Cost     float64

	Current SeasonStats
	Prior   *SeasonStats
}

// NewVeteran builds a player with a prior-season baseline.
func NewVeteran(id int, name, team string, pos Position, current, prior SeasonStats) Player {
	p := prior
	return Player{ID: id, Name: name, Team: team, Position: pos, Current: current, Prior: &p}
}

// NewRookie builds a player without a prior-season baseline.
func NewRookie(id int, name, team string, pos Position, current SeasonStats) Player {
	return Player{ID: id, Name: name, Team: team, Position: pos, Current: current}
}

// HasBaseline reports whether a prior-season record exists.
func (p Player) HasBaseline() bool { return p.Prior != nil }

// Validate checks that the player carries the fields the pipeline requires.
func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player %d: missing name", p.ID)
	}
	if p.Current.GamesPlayed < 0 {
		return fmt.Errorf("player %s: negative games played", p.Name)
	}
	return nil
}

// PriceKey returns the canonical "LastName F." form used by price files.
func (p Player) PriceKey() string {
	fields := strings.Fields(p.Name)
	if len(fields) < 2 {
		return p.Name
	}
	last := fields[len(fields)-1]
	return fmt.Sprintf("%s %c.", last, []rune(fields[0])[0])
}
