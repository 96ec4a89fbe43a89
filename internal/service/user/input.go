package user

import (
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// MaxTopicsPerDay bounds the explicit daily topic override.
const MaxTopicsPerDay = 50

// UpdatePreferencesInput holds parameters for the preferences update.
// All fields are optional (nil = don't change).
type UpdatePreferencesInput struct {
	DailyStudyGoal      *domain.DailyStudyGoal
	TopicsPerDay        *int
	ClearTopicsPerDay   bool
	TopicPriorityWeight *domain.PriorityWeight
	ReviewFrequency     *domain.ReviewFrequency
	ReminderTime        *string
	Timezone            *string
}

// Validate validates the update preferences input.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.DailyStudyGoal != nil && !i.DailyStudyGoal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "daily_study_goal", Message: "invalid value"})
	}

	if i.TopicsPerDay != nil {
		if i.ClearTopicsPerDay {
			errs = append(errs, domain.FieldError{Field: "topics_per_day", Message: "cannot set and clear at once"})
		} else if *i.TopicsPerDay < 1 {
			errs = append(errs, domain.FieldError{Field: "topics_per_day", Message: "must be at least 1"})
		} else if *i.TopicsPerDay > MaxTopicsPerDay {
			errs = append(errs, domain.FieldError{Field: "topics_per_day", Message: "must be at most 50"})
		}
	}

	if i.TopicPriorityWeight != nil && !i.TopicPriorityWeight.IsValid() {
		errs = append(errs, domain.FieldError{Field: "topic_priority_weight", Message: "invalid value"})
	}

	if i.ReviewFrequency != nil && !i.ReviewFrequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "review_frequency", Message: "invalid value"})
	}

	if i.ReminderTime != nil {
		if _, err := time.Parse("15:04", *i.ReminderTime); err != nil {
			errs = append(errs, domain.FieldError{Field: "reminder_time", Message: "must be HH:MM"})
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// affectsPriority reports whether the change can reorder priority scores.
func (i UpdatePreferencesInput) affectsPriority() bool {
	return i.TopicPriorityWeight != nil
}

// maxNameLength bounds the display name.
const maxNameLength = 100

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	Name string
}

// Validate checks the display name after whitespace cleanup.
func (i UpdateProfileInput) Validate() error {
	name := domain.CleanName(i.Name)
	n := utf8.RuneCountInString(name)

	var errs []domain.FieldError
	switch {
	case n < domain.MinNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be at least 2 characters"})
	case n > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEmailSettingsInput toggles reminder emails. Enabled is required.
type UpdateEmailSettingsInput struct {
	Enabled *bool
}

// Validate validates the email settings input.
func (i UpdateEmailSettingsInput) Validate() error {
	if i.Enabled == nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "email_notifications_enabled", Message: "required"},
		}}
	}
	return nil
}
