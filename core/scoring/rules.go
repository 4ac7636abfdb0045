package scoring

import "github.com/jsvec/faceoff/core/model"

// skaterTable holds the per-category point values for skaters. Goal values
// differ between forwards and defenders; everything else is shared.
type skaterTable struct {
	GoalEven        float64
	GoalPP          float64
	GoalSH          float64
	GameWinningGoal float64
	HatTrick        float64
	Assist          float64
	BlockedShot     float64
	// Goal totals at or above HatTrickFrom trigger the estimated hat
	// trick count goals/HatTrickPer.
	HatTrickFrom float64
	HatTrickPer  float64
}

var forwardTable = skaterTable{
	GoalEven: 12, GoalPP: 10, GoalSH: 16,
	GameWinningGoal: 4, HatTrick: 6, Assist: 12, BlockedShot: 4,
	HatTrickFrom: 30, HatTrickPer: 10,
}

var defenseTable = skaterTable{
	GoalEven: 20, GoalPP: 18, GoalSH: 24,
	GameWinningGoal: 4, HatTrick: 6, Assist: 12, BlockedShot: 4,
	HatTrickFrom: 20, HatTrickPer: 15,
}

// Shared categories for every position.
const (
	shotPoints      = 2
	hitPoints       = 2
	plusMinusPoints = 2

	penalty2Min       = -2
	penalty5Min       = -4
	misconduct10Min   = -2
	goalieGoalPoints  = 40
	goalieWinPoints   = 6
	goalieLossPoints  = -6
	goalieShutout     = 10
	goalieSavePoints  = 1
	goalieGoalAgainst = -4
)

// FantasyPoints converts a season's counting stats into Tipsport fantasy
// points for the given role. Totals below zero clamp to zero.
func FantasyPoints(pos model.Position, s model.SeasonStats) float64 {
	if pos == model.Goalie {
		return goaliePoints(s)
	}
	tbl := forwardTable
	if pos == model.Defense {
		tbl = defenseTable
	}
	return skaterPoints(s, tbl)
}

func skaterPoints(s model.SeasonStats, tbl skaterTable) float64 {
	pts := 0.0

	evenGoals := max0(s.Goals - s.PowerPlayGoals - s.ShorthandedGoals)
	pts += evenGoals * tbl.GoalEven
	pts += s.PowerPlayGoals * tbl.GoalPP
	pts += s.ShorthandedGoals * tbl.GoalSH
	pts += s.GameWinningGoals * tbl.GameWinningGoal

	// Hat tricks are not tracked by the stats feed; estimate for high
	// volume scorers only.
	if s.Goals >= tbl.HatTrickFrom {
		hatTricks := float64(int(s.Goals / tbl.HatTrickPer))
		if hatTricks < 1 {
			hatTricks = 1
		}
		pts += hatTricks * tbl.HatTrick
	}

	ppAssists := max0(s.PowerPlayPoints - s.PowerPlayGoals)
	shAssists := max0(s.ShorthandedPoints - s.ShorthandedGoals)
	evenAssists := max0(s.Assists - ppAssists - shAssists)
	pts += (evenAssists + ppAssists + shAssists) * tbl.Assist

	pts += s.Shots * shotPoints
	pts += s.Hits * hitPoints
	pts += s.BlockedShots * tbl.BlockedShot
	pts += s.PlusMinus * plusMinusPoints
	pts += penaltyPoints(s.PIM)

	return max0(pts)
}

func goaliePoints(s model.SeasonStats) float64 {
	pts := 0.0
	pts += s.Wins * goalieWinPoints
	pts += s.Losses * goalieLossPoints
	pts += s.Shutouts * goalieShutout

	saves := s.Saves
	if saves == 0 {
		saves = max0(s.ShotsAgainst - s.GoalsAgainst)
	}
	pts += saves * goalieSavePoints
	pts += s.GoalsAgainst * goalieGoalAgainst

	// Goalie goals and assists are rare but score heavily.
	pts += s.Goals * goalieGoalPoints
	pts += s.Assists * 12

	return max0(pts)
}

// penaltyPoints estimates the penalty distribution from total minutes:
// 80% minor, 15% major, 5% misconduct.
func penaltyPoints(pim float64) float64 {
	twoMin := float64(int(pim * 0.8 / 2))
	fiveMin := float64(int(pim * 0.15 / 5))
	misconduct := float64(int(pim * 0.05 / 10))
	return twoMin*penalty2Min + fiveMin*penalty5Min + misconduct*misconduct10Min
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
