package planner

import (
	"time"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Priority score weights. The score is an unbounded, unnormalized sum used
// only to order topics against each other.
const (
	overdueBonus     = 20.0
	examWeekBonus    = 15.0
	examTwoWeekBonus = 10.0
	examMonthBonus   = 5.0
	noExamBonus      = 1.0
	stalenessPerDay  = 0.1
)

var statusWeight = map[domain.TopicStatus]float64{
	domain.TopicStatusNew:      5,
	domain.TopicStatusLearning: 3,
	domain.TopicStatusRevised:  1,
}

var difficultyWeight = map[domain.Difficulty]float64{
	domain.DifficultyEasy:   1,
	domain.DifficultyMedium: 2,
	domain.DifficultyHard:   3,
}

// PriorityScore ranks a topic for the top-N priority list. subject and prefs
// may be nil.
func PriorityScore(topic *domain.Topic, subject *domain.Subject, prefs *domain.Preferences, now time.Time) float64 {
	score := statusWeight[topic.Status]

	if w, ok := difficultyWeight[topic.Difficulty]; ok {
		score += w
	} else {
		score += difficultyWeight[domain.DifficultyMedium]
	}

	if prefs != nil {
		switch prefs.TopicPriorityWeight {
		case domain.PriorityWeightFocusHard:
			switch topic.Difficulty {
			case domain.DifficultyHard:
				score += 3
			case domain.DifficultyMedium:
				score++
			}
		case domain.PriorityWeightFocusEasy:
			if topic.Difficulty == domain.DifficultyEasy {
				score += 2
			}
		}
	}

	if topic.NextReviewDate != nil && topic.NextReviewDate.Before(now) {
		score += overdueBonus + fractionalDays(now.Sub(*topic.NextReviewDate))
	}

	if subject != nil && subject.ExamDate != nil {
		daysUntilExam := fractionalDays(subject.ExamDate.Sub(now))
		if daysUntilExam > 0 {
			switch {
			case daysUntilExam <= 7:
				score += examWeekBonus
			case daysUntilExam <= 14:
				score += examTwoWeekBonus
			case daysUntilExam <= 30:
				score += examMonthBonus
			}
		}
	} else {
		score += noExamBonus
	}

	if topic.Status != domain.TopicStatusRevised {
		score += stalenessPerDay * fractionalDays(now.Sub(topic.CreatedAt))
	}

	return score
}

func fractionalDays(d time.Duration) float64 {
	return d.Hours() / 24
}
