package types

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionOffsets = [...]Point{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

var opposites = [...]Direction{
	Up:    Down,
	Right: Left,
	Down:  Up,
	Left:  Right,
}

var directionNames = [...]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// ToPoint converts a Direction into a one-cell offset. Y grows downwards.
func (d Direction) ToPoint() Point {
	return directionOffsets[d]
}

// Opposite returns the direction that would reverse the snake onto its neck.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// IsOpposite reports whether d and other point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	if d < Up || d > Left {
		return "unknown"
	}
	return directionNames[d]
}
