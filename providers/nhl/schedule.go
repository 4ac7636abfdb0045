package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// TeamsPlaying returns the abbreviations of teams with a game on the given
// day (YYYY-MM-DD), sorted for stable output.
func (c *Client) TeamsPlaying(ctx context.Context, date string) ([]string, error) {
	body, err := c.fetch(ctx, "/schedule/"+date, "schedule_"+date)
	if err != nil {
		return nil, err
	}
	var payload struct {
		GameWeek []struct {
			Date  string `json:"date"`
			Games []struct {
				AwayTeam struct {
					Abbrev string `json:"abbrev"`
				} `json:"awayTeam"`
				HomeTeam struct {
					Abbrev string `json:"abbrev"`
				} `json:"homeTeam"`
			} `json:"games"`
		} `json:"gameWeek"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("nhl: parse schedule %s: %w", date, err)
	}

	seen := make(map[string]struct{})
	for _, day := range payload.GameWeek {
		// The endpoint returns the whole week starting at the requested day.
		if day.Date != date {
			continue
		}
		for _, g := range day.Games {
			if g.AwayTeam.Abbrev != "" {
				seen[g.AwayTeam.Abbrev] = struct{}{}
			}
			if g.HomeTeam.Abbrev != "" {
				seen[g.HomeTeam.Abbrev] = struct{}{}
			}
		}
	}
	teams := make([]string, 0, len(seen))
	for t := range seen {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams, nil
}
