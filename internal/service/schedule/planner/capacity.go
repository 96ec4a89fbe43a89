package planner

import "github.com/heartmarshall/studyplan-backend/internal/domain"

const (
	defaultDailyCapacity    = 5
	defaultLegacyTopicLimit = 10
)

var dailyCapacity = map[domain.DailyStudyGoal]int{
	domain.DailyGoal30Minutes: 3,
	domain.DailyGoal1Hour:     5,
	domain.DailyGoal2Hours:    8,
	domain.DailyGoal3Hours:    12,
	domain.DailyGoal4PlusHour: 16,
}

var legacyTopicLimit = map[domain.DailyStudyGoal]int{
	domain.DailyGoal30Minutes: 5,
	domain.DailyGoal1Hour:     8,
	domain.DailyGoal2Hours:    12,
	domain.DailyGoal3Hours:    15,
	domain.DailyGoal4PlusHour: 20,
}

// DailyCapacity returns how many topics the planner may assign to one day.
// A positive TopicsPerDay overrides the study goal.
func DailyCapacity(prefs *domain.Preferences) int {
	if prefs == nil {
		return defaultDailyCapacity
	}
	if prefs.TopicsPerDay != nil && *prefs.TopicsPerDay > 0 {
		return *prefs.TopicsPerDay
	}
	if n, ok := dailyCapacity[prefs.DailyStudyGoal]; ok {
		return n
	}
	return defaultDailyCapacity
}

// LegacyTopicLimit returns the size of the priority-ranked top-N list.
func LegacyTopicLimit(prefs *domain.Preferences) int {
	if prefs == nil {
		return defaultLegacyTopicLimit
	}
	if n, ok := legacyTopicLimit[prefs.DailyStudyGoal]; ok {
		return n
	}
	return defaultLegacyTopicLimit
}
