package scoring

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jsvec/faceoff/core/model"
)

// GameScore is a compact per-game production metric used by the rankings
// export as a second opinion next to fantasy points.
func GameScore(pos model.Position, s model.SeasonStats) float64 {
	if s.GamesPlayed <= 0 {
		return 0
	}
	games := float64(s.GamesPlayed)
	if pos == model.Goalie {
		return (s.Wins*0.5 + s.Saves*0.01 - s.GoalsAgainst*0.2) / games
	}
	return (s.Goals*0.75 + s.Assists*0.7 + s.Shots*0.05 + s.BlockedShots*0.05) / games
}

// GameScoreModel is a least-squares fit of fantasy points per game against
// GameScore per game across the pool.
type GameScoreModel struct {
	Alpha float64 // intercept
	Beta  float64 // slope
	R2    float64
}

// minFitSamples is the smallest pool for which a regression is trusted.
const minFitSamples = 10

// FitGameScoreModel regresses fantasy points per game on GameScore per game
// over the pool. It returns false when fewer than minFitSamples players have
// usable values, in which case callers should fall back to raw fantasy
// points.
func FitGameScoreModel(pool []model.Player) (GameScoreModel, bool) {
	var xs, ys []float64
	for _, p := range pool {
		if p.Current.GamesPlayed <= 0 {
			continue
		}
		gs := GameScore(p.Position, p.Current)
		fp := FantasyPoints(p.Position, p.Current) / float64(p.Current.GamesPlayed)
		if gs <= 0 || fp <= 0 {
			continue
		}
		xs = append(xs, gs)
		ys = append(ys, fp)
	}
	if len(xs) < minFitSamples {
		return GameScoreModel{}, false
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	return GameScoreModel{Alpha: alpha, Beta: beta, R2: r2}, true
}

// Project estimates fantasy points per game from a GameScore per game.
// Negative estimates clamp to zero.
func (m GameScoreModel) Project(gameScore float64) float64 {
	fp := m.Alpha + m.Beta*gameScore
	if fp < 0 {
		return 0
	}
	return fp
}
