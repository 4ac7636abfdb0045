package scoring

import (
	"fmt"
	"strings"

	"github.com/jsvec/faceoff/core/model"
)

// BreakdownLine is one scored category of a player's fantasy total.
type BreakdownLine struct {
	Category string
	Count    float64
	PerUnit  float64
	Points   float64
}

// Breakdown lists how a player's current-season fantasy points decompose by
// category. Zero-count categories are omitted.
func Breakdown(pos model.Position, s model.SeasonStats) []BreakdownLine {
	var lines []BreakdownLine
	add := func(category string, count, perUnit float64) {
		if count == 0 {
			return
		}
		lines = append(lines, BreakdownLine{Category: category, Count: count, PerUnit: perUnit, Points: count * perUnit})
	}

	if pos == model.Goalie {
		add("wins", s.Wins, goalieWinPoints)
		add("losses", s.Losses, goalieLossPoints)
		add("shutouts", s.Shutouts, goalieShutout)
		saves := s.Saves
		if saves == 0 {
			saves = max0(s.ShotsAgainst - s.GoalsAgainst)
		}
		add("saves", saves, goalieSavePoints)
		add("goals against", s.GoalsAgainst, goalieGoalAgainst)
		add("goals", s.Goals, goalieGoalPoints)
		add("assists", s.Assists, 12)
		return lines
	}

	tbl := forwardTable
	if pos == model.Defense {
		tbl = defenseTable
	}
	evenGoals := max0(s.Goals - s.PowerPlayGoals - s.ShorthandedGoals)
	add("even strength goals", evenGoals, tbl.GoalEven)
	add("power play goals", s.PowerPlayGoals, tbl.GoalPP)
	add("shorthanded goals", s.ShorthandedGoals, tbl.GoalSH)
	add("game winning goals", s.GameWinningGoals, tbl.GameWinningGoal)
	ppAssists := max0(s.PowerPlayPoints - s.PowerPlayGoals)
	shAssists := max0(s.ShorthandedPoints - s.ShorthandedGoals)
	add("assists", max0(s.Assists-ppAssists-shAssists)+ppAssists+shAssists, tbl.Assist)
	add("shots", s.Shots, shotPoints)
	add("hits", s.Hits, hitPoints)
	add("blocked shots", s.BlockedShots, tbl.BlockedShot)
	add("plus/minus", s.PlusMinus, plusMinusPoints)
	if s.PIM > 0 {
		pts := penaltyPoints(s.PIM)
		lines = append(lines, BreakdownLine{Category: "penalties (est)", Count: s.PIM, PerUnit: 0, Points: pts})
	}
	return lines
}

// FormatBreakdown renders the breakdown for human consumption.
func FormatBreakdown(p model.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %s)\n", p.Name, p.Position, p.Team)
	total := 0.0
	for _, l := range Breakdown(p.Position, p.Current) {
		fmt.Fprintf(&b, "  %-22s %8.1f -> %8.1f pts\n", l.Category, l.Count, l.Points)
		total += l.Points
	}
	fmt.Fprintf(&b, "  %-22s %19.1f pts\n", "total", max0(total))
	return b.String()
}
