package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a study planner account. Registration and authentication live
// outside this service; only the fields the planner reads or writes are here.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Timezone          string
	Preferences       Preferences
	Credits           int
	LastScheduleCheck *time.Time

	EmailNotificationsEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Preferences are the user's study settings.
type Preferences struct {
	DailyStudyGoal      DailyStudyGoal
	TopicsPerDay        *int
	TopicPriorityWeight PriorityWeight
	ReviewFrequency     ReviewFrequency
	ReminderTime        string
}

// MinNameLength is the shortest display name a user can set.
const MinNameLength = 2

// DefaultPreferences returns the preferences a new account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		DailyStudyGoal:      DailyGoal1Hour,
		TopicPriorityWeight: PriorityWeightBalanced,
		ReviewFrequency:     ReviewFrequencyStandard,
		ReminderTime:        "09:00",
	}
}

// NeedsScheduleCheck reports whether the daily maintenance pass has not yet
// run on the calendar day starting at dayStart.
func (u *User) NeedsScheduleCheck(dayStart time.Time) bool {
	return u.LastScheduleCheck == nil || u.LastScheduleCheck.Before(dayStart)
}
