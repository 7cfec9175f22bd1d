package game

import (
	"time"

	"snake-classic/game/types"
)

// Snapshot is a read-only copy of everything needed to draw one frame.
type Snapshot struct {
	RunID     string
	State     types.State
	Snake     []types.Point // head first
	Food      types.Point
	HasFood   bool
	Direction types.Direction
	Collision types.CollisionType
	Score     int
	HighScore int
	Grid      types.Grid
	CellSize  int

	// Session summary over finished runs.
	GamesPlayed     int
	AverageScore    float64
	LowScore        int
	AverageDuration time.Duration
}

func (g *Game) Snapshot() Snapshot {
	history := g.scores.GetHistory()
	return Snapshot{
		RunID:           g.runID,
		State:           g.state,
		Snake:           g.snake.Body(),
		Food:            g.food,
		HasFood:         g.hasFood,
		Direction:       g.direction,
		Collision:       g.lastCrash,
		Score:           g.snake.Len(),
		HighScore:       g.scores.GetHighScore(),
		Grid:            g.grid,
		CellSize:        g.cellSize,
		GamesPlayed:     history.GamesPlayed(),
		AverageScore:    history.AverageScore(),
		LowScore:        history.MinScore(),
		AverageDuration: time.Duration(history.AverageDuration() * float64(time.Second)),
	}
}

// Head is the first snake cell.
func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}
