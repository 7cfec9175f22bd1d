package manager

import (
	"time"
)

// StateManager keeps the process-lifetime score state. The high score is the
// best final score in the history of finished runs. Nothing is written to
// disk.
type StateManager struct {
	history *ScoreHistory
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: NewScoreHistory(),
	}
}

// RecordGame stores a finished run and returns the high score after it.
func (sm *StateManager) RecordGame(score int, startTime, endTime time.Time) int {
	sm.history.AddGame(score, startTime, endTime)
	return sm.GetHighScore()
}

func (sm *StateManager) GetHighScore() int {
	return sm.history.MaxScore()
}

func (sm *StateManager) GetHistory() *ScoreHistory {
	return sm.history
}
