// Package render turns a game snapshot into a backend-neutral description of
// one frame. The raylib window and the tcell terminal both draw from it.
package render

import (
	"fmt"
	"image/color"
	"math"

	"snake-classic/game"
	"snake-classic/game/types"
)

var (
	Background = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	FoodColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	HeadColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	TextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HUDColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

const (
	MessageFontSize = 30
	HUDFontSize     = 18
	HUDHeight       = 28 // pixels reserved below the board
	shadeFactor     = 0.9
)

// Layout places the board inside a screen of a given size.
type Layout struct {
	CellSize int
	OffsetX  int
	OffsetY  int
	Width    int
	Height   int
}

// FitLayout uses the preferred cell size when the board fits and shrinks it
// otherwise. The board is centered on both axes.
func FitLayout(grid types.Grid, preferredCell, screenW, screenH int) Layout {
	cell := preferredCell
	if grid.Width > 0 && screenW/grid.Width < cell {
		cell = screenW / grid.Width
	}
	if grid.Height > 0 && screenH/grid.Height < cell {
		cell = screenH / grid.Height
	}
	if cell < 1 {
		cell = 1
	}

	l := Layout{
		CellSize: cell,
		Width:    cell * grid.Width,
		Height:   cell * grid.Height,
	}
	l.OffsetX = max(0, (screenW-l.Width)/2)
	l.OffsetY = max(0, (screenH-l.Height)/2)
	return l
}

// CellOrigin is the top-left pixel of cell p.
func (l Layout) CellOrigin(p types.Point) (int, int) {
	return l.OffsetX + p.X*l.CellSize, l.OffsetY + p.Y*l.CellSize
}

// SnakeShades returns one color per segment, head first: full green for the
// head, each following segment ten percent darker.
func SnakeShades(n int) []color.RGBA {
	shades := make([]color.RGBA, n)
	green := float64(HeadColor.G)
	for i := range shades {
		shades[i] = color.RGBA{R: 0, G: uint8(green), B: 0, A: 255}
		green = math.Round(green * shadeFactor)
	}
	return shades
}

// Messages are the centered overlay lines for the current state.
func Messages(s game.Snapshot) []string {
	switch s.State {
	case types.NotStarted:
		return []string{"Press Space Bar to start!"}
	case types.GameOver:
		return []string{
			fmt.Sprintf("Your Score: %d", s.Score),
			fmt.Sprintf("Highest Score: %d", s.HighScore),
			"Press Space Bar to Reset!",
		}
	default:
		return nil
	}
}

// HUD is the status line drawn under the board.
func HUD(s game.Snapshot) string {
	return fmt.Sprintf("Score: %d  High: %d  Low: %d  Games: %d  Avg: %.1f  Time: %.1fs",
		s.Score, s.HighScore, s.LowScore, s.GamesPlayed, s.AverageScore, s.AverageDuration.Seconds())
}

// Tile is one filled square, in screen units.
type Tile struct {
	X, Y  int
	Size  int
	Color color.RGBA
}

// Frame is everything a backend needs to draw.
type Frame struct {
	Layout    Layout
	ShowBoard bool
	Tiles     []Tile
	Messages  []string
	HUD       string
}

// BuildFrame lays out s on a screen of screenW x screenH units. Before the
// first start only the prompt is shown.
func BuildFrame(s game.Snapshot, screenW, screenH int) Frame {
	f := Frame{
		Layout:   FitLayout(s.Grid, s.CellSize, screenW, screenH),
		Messages: Messages(s),
		HUD:      HUD(s),
	}
	if s.State == types.NotStarted {
		return f
	}

	f.ShowBoard = true
	f.Tiles = make([]Tile, 0, len(s.Snake)+1)
	if s.HasFood {
		x, y := f.Layout.CellOrigin(s.Food)
		f.Tiles = append(f.Tiles, Tile{X: x, Y: y, Size: f.Layout.CellSize, Color: FoodColor})
	}
	for i, shade := range SnakeShades(len(s.Snake)) {
		x, y := f.Layout.CellOrigin(s.Snake[i])
		f.Tiles = append(f.Tiles, Tile{X: x, Y: y, Size: f.Layout.CellSize, Color: shade})
	}
	return f
}
