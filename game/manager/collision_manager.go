package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks a candidate head against the walls first, then
// against every current segment of the snake. The tail has not been removed
// yet when this runs, so stepping onto it counts as a self collision.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Contains(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// The board has solid walls; there is no wrap-around.
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition reports whether food may appear at pos: on the board
// and off the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) == types.NoCollision
}

// IsFoodCollision reports whether the candidate head lands on the food cell.
func (cm *CollisionManager) IsFoodCollision(pos, food types.Point) bool {
	return pos == food
}
