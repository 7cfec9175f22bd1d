package types

import "fmt"

// Point is a single cell of the board, addressed in cell units.
type Point struct {
	X, Y int
}

// Add returns the point moved by the given offset.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center is the spawn cell of a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	DefaultWidth    = 40
	DefaultHeight   = 40
	DefaultCellSize = 20
	TicksPerSecond  = 20
)
