package render

import (
	"testing"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLayout(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 30}

	cases := []struct {
		name             string
		screenW, screenH int
		want             Layout
	}{
		{"exact fit", 800, 600, Layout{CellSize: 20, Width: 800, Height: 600}},
		{"larger window centers", 1000, 700, Layout{CellSize: 20, OffsetX: 100, OffsetY: 50, Width: 800, Height: 600}},
		{"narrow window shrinks", 400, 600, Layout{CellSize: 10, OffsetX: 0, OffsetY: 150, Width: 400, Height: 300}},
		{"tiny window keeps one unit", 10, 10, Layout{CellSize: 1, Width: 40, Height: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FitLayout(grid, 20, tc.screenW, tc.screenH))
		})
	}
}

func TestSnakeShades(t *testing.T) {
	shades := SnakeShades(4)
	require.Len(t, shades, 4)

	greens := []uint8{shades[0].G, shades[1].G, shades[2].G, shades[3].G}
	assert.Equal(t, []uint8{255, 230, 207, 186}, greens)
	for _, s := range shades {
		assert.Zero(t, s.R)
		assert.Zero(t, s.B)
	}
	assert.Empty(t, SnakeShades(0))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, []string{"Press Space Bar to start!"}, Messages(game.Snapshot{State: types.NotStarted}))
	assert.Nil(t, Messages(game.Snapshot{State: types.Running}))
	assert.Equal(t, []string{
		"Your Score: 7",
		"Highest Score: 12",
		"Press Space Bar to Reset!",
	}, Messages(game.Snapshot{State: types.GameOver, Score: 7, HighScore: 12}))
}

func TestHUD(t *testing.T) {
	snap := game.Snapshot{
		Score:           3,
		HighScore:       12,
		LowScore:        2,
		GamesPlayed:     4,
		AverageScore:    6.5,
		AverageDuration: 1500 * time.Millisecond,
	}
	assert.Equal(t, "Score: 3  High: 12  Low: 2  Games: 4  Avg: 6.5  Time: 1.5s", HUD(snap))
}

func TestBuildFrame(t *testing.T) {
	snap := game.Snapshot{
		State:    types.Running,
		Grid:     types.Grid{Width: 10, Height: 10},
		CellSize: 10,
		Snake:    []types.Point{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Food:     types.Point{X: 5, Y: 5},
		HasFood:  true,
		Score:    2,
	}

	f := BuildFrame(snap, 100, 100)
	assert.True(t, f.ShowBoard)
	require.Len(t, f.Tiles, 3)
	assert.Equal(t, Tile{X: 50, Y: 50, Size: 10, Color: FoodColor}, f.Tiles[0])
	assert.Equal(t, Tile{X: 20, Y: 10, Size: 10, Color: HeadColor}, f.Tiles[1])
	assert.Equal(t, 10, f.Tiles[2].X)
	assert.Contains(t, f.HUD, "Score: 2")
	assert.Empty(t, f.Messages)

	snap.HasFood = false
	assert.Len(t, BuildFrame(snap, 100, 100).Tiles, 2)

	snap.State = types.NotStarted
	f = BuildFrame(snap, 100, 100)
	assert.False(t, f.ShowBoard)
	assert.Empty(t, f.Tiles)
	assert.Len(t, f.Messages, 1)
}
