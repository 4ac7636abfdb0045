// Package pool loads candidate pools from local files, as an offline
// alternative to the live league API.
package pool

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jsvec/faceoff/core/model"
)

// record is the JSON wire form of a pool entry. Prior is optional; entries
// without one are treated as rookies.
type record struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Team     string             `json:"team"`
	Position string             `json:"position"`
	Cost     float64            `json:"cost"`
	Current  model.SeasonStats  `json:"current"`
	Prior    *model.SeasonStats `json:"prior"`
}

// LoadFile reads a pool from path, decoding it as the given source format
// ("csv" or "json").
func LoadFile(source, path string) ([]model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch source {
	case "json":
		return LoadJSON(f)
	case "csv":
		return LoadCSV(f)
	default:
		return nil, fmt.Errorf("pool: unknown source %q", source)
	}
}

// LoadJSON decodes an array of pool records.
func LoadJSON(r io.Reader) ([]model.Player, error) {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("pool: decode json: %w", err)
	}
	players := make([]model.Player, 0, len(recs))
	for _, rec := range recs {
		p := toPlayer(rec)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func toPlayer(rec record) model.Player {
	pos := model.NormalizePosition(rec.Position)
	var p model.Player
	if rec.Prior != nil {
		p = model.NewVeteran(rec.ID, rec.Name, rec.Team, pos, rec.Current, *rec.Prior)
	} else {
		p = model.NewRookie(rec.ID, rec.Name, rec.Team, pos, rec.Current)
	}
	p.Cost = rec.Cost
	return p
}

// csv columns recognised in the header row. Columns may appear in any
// order; unknown columns are ignored. prior_* columns are optional and a
// row without any of them is a rookie.
var csvColumns = map[string]func(*record, float64){
	"id":          func(r *record, v float64) { r.ID = int(v) },
	"cost":        func(r *record, v float64) { r.Cost = v },
	"gp":          func(r *record, v float64) { r.Current.GamesPlayed = int(v) },
	"goals":       func(r *record, v float64) { r.Current.Goals = v },
	"assists":     func(r *record, v float64) { r.Current.Assists = v },
	"points":      func(r *record, v float64) { r.Current.Points = v },
	"shots":       func(r *record, v float64) { r.Current.Shots = v },
	"hits":        func(r *record, v float64) { r.Current.Hits = v },
	"blocked":     func(r *record, v float64) { r.Current.BlockedShots = v },
	"ppp":         func(r *record, v float64) { r.Current.PowerPlayPoints = v },
	"pim":         func(r *record, v float64) { r.Current.PIM = v },
	"plus_minus":  func(r *record, v float64) { r.Current.PlusMinus = v },
	"wins":        func(r *record, v float64) { r.Current.Wins = v },
	"shutouts":    func(r *record, v float64) { r.Current.Shutouts = v },
	"saves":       func(r *record, v float64) { r.Current.Saves = v },
	"prior_gp":    func(r *record, v float64) { prior(r).GamesPlayed = int(v) },
	"prior_goals": func(r *record, v float64) { prior(r).Goals = v },
	"prior_assists": func(r *record, v float64) {
		prior(r).Assists = v
	},
	"prior_points": func(r *record, v float64) { prior(r).Points = v },
	"prior_shots":  func(r *record, v float64) { prior(r).Shots = v },
	"prior_ppp":    func(r *record, v float64) { prior(r).PowerPlayPoints = v },
	"prior_wins":   func(r *record, v float64) { prior(r).Wins = v },
	"prior_saves":  func(r *record, v float64) { prior(r).Saves = v },
}

func prior(r *record) *model.SeasonStats {
	if r.Prior == nil {
		r.Prior = &model.SeasonStats{}
	}
	return r.Prior
}

// LoadCSV decodes a pool from a header-driven CSV file. The name, team and
// position columns are textual; every other recognised column is numeric.
func LoadCSV(r io.Reader) ([]model.Player, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("pool: read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("pool: csv needs a header and at least one row")
	}
	header := rows[0]
	var players []model.Player
	for i, row := range rows[1:] {
		rec, err := parseRow(header, row)
		if err != nil {
			return nil, fmt.Errorf("pool: row %d: %w", i+2, err)
		}
		p := toPlayer(rec)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("pool: row %d: %w", i+2, err)
		}
		players = append(players, p)
	}
	return players, nil
}

func parseRow(header, row []string) (record, error) {
	var rec record
	for i, col := range header {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		switch key := strings.ToLower(strings.TrimSpace(col)); key {
		case "name":
			rec.Name = cell
		case "team":
			rec.Team = cell
		case "position":
			rec.Position = cell
		default:
			set, ok := csvColumns[key]
			if !ok || cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return rec, fmt.Errorf("column %s: %w", key, err)
			}
			set(&rec, v)
		}
	}
	return rec, nil
}
