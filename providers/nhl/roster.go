package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jsvec/faceoff/core/model"
)

// fallbackTeams is used when the standings endpoint is unreachable.
var fallbackTeams = []string{
	"ANA", "BOS", "BUF", "CAR", "CBJ", "CGY", "CHI", "COL",
	"DAL", "DET", "EDM", "FLA", "LAK", "MIN", "MTL", "NJD",
	"NSH", "NYI", "NYR", "OTT", "PHI", "PIT", "SEA", "SJS",
	"STL", "TBL", "TOR", "UTA", "VAN", "VGK", "WPG", "WSH",
}

type localizedName struct {
	Default string `json:"default"`
}

// Teams returns the abbreviations of all active teams from the standings
// endpoint. The static league list is returned when the call fails.
func (c *Client) Teams(ctx context.Context) ([]string, error) {
	body, err := c.fetch(ctx, "/standings/now", "teams")
	if err != nil {
		if c.log != nil {
			c.log.Warnf("standings unavailable, using static team list: %v", err)
		}
		return fallbackTeams, nil
	}
	var payload struct {
		Standings []struct {
			TeamAbbrev localizedName `json:"teamAbbrev"`
		} `json:"standings"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("nhl: parse standings: %w", err)
	}
	teams := make([]string, 0, len(payload.Standings))
	for _, s := range payload.Standings {
		if s.TeamAbbrev.Default != "" {
			teams = append(teams, s.TeamAbbrev.Default)
		}
	}
	if len(teams) == 0 {
		return fallbackTeams, nil
	}
	return teams, nil
}

// RosterEntry is one player slot on a team roster.
type RosterEntry struct {
	ID       int
	Name     string
	Position model.Position
}

type rosterPlayer struct {
	ID           int           `json:"id"`
	FirstName    localizedName `json:"firstName"`
	LastName     localizedName `json:"lastName"`
	PositionCode string        `json:"positionCode"`
}

// Roster returns the team roster for a season identifier like "20252026".
func (c *Client) Roster(ctx context.Context, team, season string) ([]RosterEntry, error) {
	cacheName := fmt.Sprintf("roster_%s_%s", team, season)
	body, err := c.fetch(ctx, fmt.Sprintf("/roster/%s/%s", team, season), cacheName)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Forwards   []rosterPlayer `json:"forwards"`
		Defensemen []rosterPlayer `json:"defensemen"`
		Goalies    []rosterPlayer `json:"goalies"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("nhl: parse roster %s: %w", team, err)
	}

	var entries []RosterEntry
	add := func(players []rosterPlayer, pos model.Position) {
		for _, p := range players {
			entries = append(entries, RosterEntry{
				ID:       p.ID,
				Name:     p.FirstName.Default + " " + p.LastName.Default,
				Position: pos,
			})
		}
	}
	add(payload.Forwards, model.Forward)
	add(payload.Defensemen, model.Defense)
	add(payload.Goalies, model.Goalie)
	return entries, nil
}

// seasonTotal mirrors one seasonTotals entry of the player landing payload.
type seasonTotal struct {
	Season       int    `json:"season"`
	LeagueAbbrev string `json:"leagueAbbrev"`
	GameTypeID   int    `json:"gameTypeId"`

	GamesPlayed       int     `json:"gamesPlayed"`
	Goals             float64 `json:"goals"`
	Assists           float64 `json:"assists"`
	Points            float64 `json:"points"`
	Shots             float64 `json:"shots"`
	PowerPlayGoals    float64 `json:"powerPlayGoals"`
	PowerPlayPoints   float64 `json:"powerPlayPoints"`
	ShorthandedGoals  float64 `json:"shorthandedGoals"`
	ShorthandedPoints float64 `json:"shorthandedPoints"`
	GameWinningGoals  float64 `json:"gameWinningGoals"`
	PlusMinus         float64 `json:"plusMinus"`
	PIM               float64 `json:"pim"`
	ShootingPct       float64 `json:"shootingPctg"`

	Wins         float64 `json:"wins"`
	Losses       float64 `json:"losses"`
	Shutouts     float64 `json:"shutouts"`
	ShotsAgainst float64 `json:"shotsAgainst"`
	GoalsAgainst float64 `json:"goalsAgainst"`
	GAA          float64 `json:"goalsAgainstAvg"`
	SavePct      float64 `json:"savePctg"`
}

func (t seasonTotal) toStats() model.SeasonStats {
	return model.SeasonStats{
		GamesPlayed:       t.GamesPlayed,
		Goals:             t.Goals,
		Assists:           t.Assists,
		Points:            t.Points,
		Shots:             t.Shots,
		PowerPlayGoals:    t.PowerPlayGoals,
		PowerPlayPoints:   t.PowerPlayPoints,
		ShorthandedGoals:  t.ShorthandedGoals,
		ShorthandedPoints: t.ShorthandedPoints,
		GameWinningGoals:  t.GameWinningGoals,
		PlusMinus:         t.PlusMinus,
		PIM:               t.PIM,
		ShootingPct:       t.ShootingPct,
		Wins:              t.Wins,
		Losses:            t.Losses,
		Shutouts:          t.Shutouts,
		ShotsAgainst:      t.ShotsAgainst,
		GoalsAgainst:      t.GoalsAgainst,
		Saves:             t.ShotsAgainst - t.GoalsAgainst,
		GAA:               t.GAA,
		SavePct:           t.SavePct,
	}
}

// Player fetches the landing page for a player and splits the NHL regular
// season totals into current and prior season. Players with no prior NHL
// season come back as rookies.
func (c *Client) Player(ctx context.Context, id int, season string) (model.Player, error) {
	body, err := c.fetch(ctx, fmt.Sprintf("/player/%d/landing", id), "player_"+strconv.Itoa(id))
	if err != nil {
		return model.Player{}, err
	}
	var payload struct {
		PlayerID          int           `json:"playerId"`
		FirstName         localizedName `json:"firstName"`
		LastName          localizedName `json:"lastName"`
		Position          string        `json:"position"`
		CurrentTeamAbbrev string        `json:"currentTeamAbbrev"`
		SeasonTotals      []seasonTotal `json:"seasonTotals"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.Player{}, fmt.Errorf("nhl: parse player %d: %w", id, err)
	}

	currentID, _ := strconv.Atoi(season)
	priorID, _ := strconv.Atoi(PreviousSeason(season))

	var current model.SeasonStats
	var prior *model.SeasonStats
	for _, t := range payload.SeasonTotals {
		// Regular season NHL entries only.
		if t.LeagueAbbrev != "NHL" || t.GameTypeID != 2 {
			continue
		}
		switch t.Season {
		case currentID:
			current = t.toStats()
		case priorID:
			p := t.toStats()
			prior = &p
		}
	}

	name := payload.FirstName.Default + " " + payload.LastName.Default
	pos := model.NormalizePosition(payload.Position)
	if prior != nil {
		return model.NewVeteran(payload.PlayerID, name, payload.CurrentTeamAbbrev, pos, current, *prior), nil
	}
	return model.NewRookie(payload.PlayerID, name, payload.CurrentTeamAbbrev, pos, current), nil
}
