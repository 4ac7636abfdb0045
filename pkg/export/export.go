// Package export renders lineups and player rankings to an io.Writer in
// text, CSV, JSON and markdown form.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jsvec/faceoff/core/model"
)

// Format selects the output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatCSV, FormatJSON, FormatMarkdown:
		return Format(s), nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// positionLabel spells role tags out for human readable output.
func positionLabel(pos model.Position) string {
	switch pos {
	case model.Goalie:
		return "Goalie"
	case model.Defense:
		return "Defense"
	default:
		return "Forward"
	}
}

// WriteLineup renders a built lineup in the requested format.
func WriteLineup(w io.Writer, l model.Lineup, format Format) error {
	switch format {
	case FormatCSV:
		return lineupCSV(w, l)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case FormatMarkdown:
		return lineupMarkdown(w, l)
	default:
		return lineupText(w, l)
	}
}

func lineupText(w io.Writer, l model.Lineup) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	write := func(set string, m map[model.Position][]model.Candidate) {
		for _, pos := range model.Positions {
			for _, c := range m[pos] {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.2f\n",
					set, positionLabel(pos), c.Name, c.Team, c.Cost, c.ProjectedValue)
			}
		}
	}
	fmt.Fprintln(tw, "SET\tPOS\tPLAYER\tTEAM\tCOST\tVALUE")
	write("starter", l.Starters)
	write("substitute", l.Substitutes)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ntotal cost %.1f  raw value %.2f  penalty %.0f%%  effective value %.2f\n",
		l.TotalCost, l.RawValue, l.PenaltyFraction*100, l.EffectiveValue)
	return err
}

func lineupCSV(w io.Writer, l model.Lineup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"set", "position", "player", "team", "cost", "value"}); err != nil {
		return err
	}
	write := func(set string, m map[model.Position][]model.Candidate) error {
		for _, pos := range model.Positions {
			for _, c := range m[pos] {
				rec := []string{
					set,
					positionLabel(pos),
					c.Name,
					c.Team,
					strconv.FormatFloat(c.Cost, 'f', -1, 64),
					strconv.FormatFloat(c.ProjectedValue, 'f', 2, 64),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := write("starter", l.Starters); err != nil {
		return err
	}
	if err := write("substitute", l.Substitutes); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func lineupMarkdown(w io.Writer, l model.Lineup) error {
	if _, err := fmt.Fprintln(w, "| Set | Pos | Player | Team | Cost | Value |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "|-----|-----|--------|------|------|-------|"); err != nil {
		return err
	}
	write := func(set string, m map[model.Position][]model.Candidate) error {
		for _, pos := range model.Positions {
			for _, c := range m[pos] {
				if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %.1f | %.2f |\n",
					set, positionLabel(pos), c.Name, c.Team, c.Cost, c.ProjectedValue); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := write("starter", l.Starters); err != nil {
		return err
	}
	if err := write("substitute", l.Substitutes); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n**Total cost** %.1f · **Effective value** %.2f\n", l.TotalCost, l.EffectiveValue)
	return err
}

// WriteRankings renders scored candidates, best value-per-cost first.
func WriteRankings(w io.Writer, cands []model.Candidate, format Format) error {
	switch format {
	case FormatCSV:
		return rankingsCSV(w, cands)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rankingRows(cands))
	case FormatMarkdown:
		return rankingsMarkdown(w, cands)
	default:
		return rankingsText(w, cands)
	}
}

// rankingRow is the JSON shape of one ranked candidate.
type rankingRow struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	Cost         float64 `json:"cost"`
	Value        float64 `json:"value"`
	ValuePerCost float64 `json:"value_per_cost"`
}

func rankingRows(cands []model.Candidate) []rankingRow {
	rows := make([]rankingRow, len(cands))
	for i, c := range cands {
		rows[i] = rankingRow{
			Rank:         i + 1,
			Name:         c.Name,
			Team:         c.Team,
			Position:     positionLabel(c.Position),
			Cost:         c.Cost,
			Value:        c.ProjectedValue,
			ValuePerCost: c.ValuePerCost,
		}
	}
	return rows
}

func rankingsText(w io.Writer, cands []model.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tTEAM\tPOS\tCOST\tVALUE\tVALUE/COST")
	for _, r := range rankingRows(cands) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%.2f\t%.2f\n",
			r.Rank, r.Name, r.Team, r.Position, r.Cost, r.Value, r.ValuePerCost)
	}
	return tw.Flush()
}

func rankingsCSV(w io.Writer, cands []model.Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "player", "team", "position", "cost", "value", "value_per_cost"}); err != nil {
		return err
	}
	for _, r := range rankingRows(cands) {
		rec := []string{
			strconv.Itoa(r.Rank),
			r.Name,
			r.Team,
			r.Position,
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			strconv.FormatFloat(r.Value, 'f', 2, 64),
			strconv.FormatFloat(r.ValuePerCost, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func rankingsMarkdown(w io.Writer, cands []model.Candidate) error {
	if _, err := fmt.Fprintln(w, "| # | Player | Team | Pos | Cost | Value | Value/Cost |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "|---|--------|------|-----|------|-------|------------|"); err != nil {
		return err
	}
	for _, r := range rankingRows(cands) {
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %s | %.1f | %.2f | %.2f |\n",
			r.Rank, r.Name, r.Team, r.Position, r.Cost, r.Value, r.ValuePerCost); err != nil {
			return err
		}
	}
	return nil
}
