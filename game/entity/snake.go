package entity

import (
	"snake-classic/game/types"
)

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		body: []types.Point{startPos},
	}
}

// Move prepends newHead. The tail is kept, so the snake is one cell longer
// until RemoveTail is called.
func (s *Snake) Move(newHead types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}
