package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsvec/faceoff/core/model"
)

func TestLoadJSON(t *testing.T) {
	data := `[
  {"id": 1, "name": "Connor McDavid", "team": "EDM", "position": "F", "cost": 14.5,
   "current": {"gamesPlayed": 40, "goals": 20, "assists": 45, "points": 65},
   "prior": {"gamesPlayed": 76, "goals": 64, "assists": 89, "points": 153}},
  {"id": 2, "name": "Connor Bedard", "team": "CHI", "position": "C", "cost": 9.0,
   "current": {"gamesPlayed": 30, "goals": 12, "assists": 18, "points": 30}}
]`
	players, err := LoadJSON(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, players, 2)

	require.Equal(t, "Connor McDavid", players[0].Name)
	require.Equal(t, model.Forward, players[0].Position)
	require.True(t, players[0].HasBaseline())
	require.Equal(t, 153.0, players[0].Prior.Points)

	require.False(t, players[1].HasBaseline())
	require.Equal(t, 30, players[1].Current.GamesPlayed)
}

func TestLoadJSONRejectsNameless(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`[{"id": 9, "team": "BOS"}]`))
	require.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	data := `name,team,position,cost,gp,goals,assists,points,prior_gp,prior_points
David Pastrnak,BOS,F,13.2,41,25,28,53,82,110
Juraj Slafkovsky,MTL,F,7.5,38,10,14,24,,
Jeremy Swayman,BOS,G,11.0,28,,,,,
`
	players, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, players, 3)

	require.True(t, players[0].HasBaseline())
	require.Equal(t, 110.0, players[0].Prior.Points)
	require.Equal(t, 82, players[0].Prior.GamesPlayed)

	require.False(t, players[1].HasBaseline())
	require.Equal(t, 7.5, players[1].Cost)

	require.Equal(t, model.Goalie, players[2].Position)
}

func TestLoadCSVBadNumber(t *testing.T) {
	data := "name,team,position,cost\nBad Row,BOS,F,abc\n"
	_, err := LoadCSV(strings.NewReader(data))
	require.ErrorContains(t, err, "column cost")
}

func TestLoadFileUnknownSource(t *testing.T) {
	_, err := LoadFile("xml", "pool.xml")
	require.Error(t, err)
}
