package manager

import (
	"sort"
	"time"
)

// GroupSize is the number of records of one compression level folded into a
// single record of the next level.
const GroupSize = 10

// GameRecord is either a single finished run (CompressionIndex 0) or a group
// of runs folded together.
type GameRecord struct {
	StartTime        time.Time
	EndTime          time.Time
	Score            int
	CompressionIndex int
	GamesCount       int
	AverageScore     float64
	MaxScore         int
	MinScore         int
	AverageDuration  float64
}

// ScoreHistory holds the runs of the current session. Old runs are folded
// into group records so the slice stays small however long the session is.
type ScoreHistory struct {
	games []GameRecord
}

func NewScoreHistory() *ScoreHistory {
	return &ScoreHistory{
		games: make([]GameRecord, 0),
	}
}

// AddGame appends a single run and folds full groups.
func (h *ScoreHistory) AddGame(score int, startTime, endTime time.Time) {
	duration := endTime.Sub(startTime).Seconds()
	h.games = append(h.games, GameRecord{
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
	})
	h.groupGames()
}

func (h *ScoreHistory) groupGames() {
	for level := 0; level <= h.maxLevel(); level++ {
		var records, others []GameRecord
		for _, g := range h.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				others = append(others, g)
			}
		}
		if len(records) < GroupSize {
			continue
		}

		var folded []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				folded = append(folded, records[i:]...)
				break
			}
			folded = append(folded, foldGroup(records[i:end], level+1))
		}
		h.games = append(others, folded...)
	}

	// Groups first, then single runs; chronological inside a level.
	sort.SliceStable(h.games, func(i, j int) bool {
		if h.games[i].CompressionIndex != h.games[j].CompressionIndex {
			return h.games[i].CompressionIndex > h.games[j].CompressionIndex
		}
		return h.games[i].StartTime.Before(h.games[j].StartTime)
	})
}

func (h *ScoreHistory) maxLevel() int {
	level := 0
	for _, g := range h.games {
		if g.CompressionIndex > level {
			level = g.CompressionIndex
		}
	}
	return level
}

func foldGroup(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
	}

	var totalScore, totalDuration float64
	for _, g := range group {
		if g.MaxScore > out.MaxScore {
			out.MaxScore = g.MaxScore
		}
		if g.MinScore < out.MinScore {
			out.MinScore = g.MinScore
		}
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

func (h *ScoreHistory) GamesPlayed() int {
	total := 0
	for _, g := range h.games {
		total += g.GamesCount
	}
	return total
}

func (h *ScoreHistory) AverageScore() float64 {
	var total float64
	var games int
	for _, g := range h.games {
		total += g.AverageScore * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (h *ScoreHistory) MaxScore() int {
	maxScore := 0
	for _, g := range h.games {
		if g.MaxScore > maxScore {
			maxScore = g.MaxScore
		}
	}
	return maxScore
}

// MinScore is the lowest final score of the session, 0 before any game.
func (h *ScoreHistory) MinScore() int {
	if len(h.games) == 0 {
		return 0
	}
	minScore := h.games[0].MinScore
	for _, g := range h.games[1:] {
		if g.MinScore < minScore {
			minScore = g.MinScore
		}
	}
	return minScore
}

// AverageDuration is the mean run length in seconds.
func (h *ScoreHistory) AverageDuration() float64 {
	var total float64
	var games int
	for _, g := range h.games {
		total += g.AverageDuration * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}
