package planner

import (
	"time"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// reviewIntervals are day offsets per repetition level. Levels past the end
// of a table reuse its last entry.
var reviewIntervals = map[domain.Difficulty][5]int{
	domain.DifficultyEasy:   {1, 3, 7, 14, 30},
	domain.DifficultyMedium: {1, 2, 5, 10, 21},
	domain.DifficultyHard:   {1, 1, 2, 3, 5},
}

// ReviewInterval returns the number of days until the next review for a
// topic of the given difficulty at the given repetition level.
// An unknown difficulty yields 0.
func ReviewInterval(difficulty domain.Difficulty, repetitionLevel int) int {
	table, ok := reviewIntervals[difficulty]
	if !ok {
		return 0
	}
	idx := min(max(repetitionLevel, 0), len(table)-1)
	return table[idx]
}

// NextReviewDate computes when a topic should be reviewed again.
// lastReviewed defaults to now when nil.
func NextReviewDate(difficulty domain.Difficulty, lastReviewed *time.Time, repetitionLevel int, now time.Time) time.Time {
	base := now
	if lastReviewed != nil {
		base = *lastReviewed
	}
	return base.AddDate(0, 0, ReviewInterval(difficulty, repetitionLevel))
}
