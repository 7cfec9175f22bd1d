package entity

import (
	"testing"

	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5})
	assert.Equal(t, 1, s.Len())

	s.Move(types.Point{X: 6, Y: 5})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.GetHead())
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body())

	s.Move(types.Point{X: 7, Y: 5})
	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 7, Y: 5}, {X: 6, Y: 5}}, s.Body())
	assert.True(t, s.Contains(types.Point{X: 6, Y: 5}))
	assert.False(t, s.Contains(types.Point{X: 5, Y: 5}))
}

func TestSnakeRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1})
	s.RemoveTail()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetHead())
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1})
	body := s.Body()
	body[0] = types.Point{X: 9, Y: 9}
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetHead())
}
