package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
)

// topicOutput is the JSON shape of a topic. Calendar fields are local
// YYYY-MM-DD dates in the user's timezone.
type topicOutput struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	SubjectID         *uuid.UUID `json:"subject_id,omitempty"`
	SubjectName       string     `json:"subject_name,omitempty"`
	Status            string     `json:"status"`
	Difficulty        string     `json:"difficulty"`
	CompletionPercent int        `json:"completion_percent"`
	PriorityScore     float64    `json:"priority_score"`
	RepetitionLevel   int        `json:"repetition_level"`
	ScheduledDate     string     `json:"scheduled_date,omitempty"`
	Rescheduled       bool       `json:"rescheduled"`
	NextReviewDate    string     `json:"next_review_date,omitempty"`
	LastReviewed      *time.Time `json:"last_reviewed,omitempty"`
}

func newTopicOutput(t *domain.Topic, loc *time.Location) topicOutput {
	out := topicOutput{
		ID:                t.ID.String(),
		Name:              t.Name,
		SubjectID:         t.SubjectID,
		Status:            t.Status.String(),
		Difficulty:        string(t.Difficulty),
		CompletionPercent: t.CompletionPercent,
		PriorityScore:     t.PriorityScore,
		RepetitionLevel:   t.RepetitionLevel,
		Rescheduled:       t.Rescheduled,
		LastReviewed:      t.LastReviewed,
	}
	if t.Subject != nil {
		out.SubjectName = t.Subject.Name
	}
	if t.ScheduledDate != nil {
		out.ScheduledDate = planner.DateKey(*t.ScheduledDate, loc)
	}
	if t.NextReviewDate != nil {
		out.NextReviewDate = planner.DateKey(*t.NextReviewDate, loc)
	}
	return out
}

func newTopicOutputs(topics []*domain.Topic, loc *time.Location) []topicOutput {
	out := make([]topicOutput, 0, len(topics))
	for _, t := range topics {
		out = append(out, newTopicOutput(t, loc))
	}
	return out
}

type subjectOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ExamDate string `json:"exam_date,omitempty"`
}

func newSubjectOutput(s *domain.Subject, loc *time.Location) subjectOutput {
	out := subjectOutput{ID: s.ID.String(), Name: s.Name}
	if s.ExamDate != nil {
		out.ExamDate = planner.DateKey(*s.ExamDate, loc)
	}
	return out
}

type preferencesOutput struct {
	DailyStudyGoal      string `json:"daily_study_goal"`
	TopicsPerDay        *int   `json:"topics_per_day,omitempty"`
	TopicPriorityWeight string `json:"topic_priority_weight"`
	ReviewFrequency     string `json:"review_frequency"`
	ReminderTime        string `json:"reminder_time"`
}

func newPreferencesOutput(p domain.Preferences) preferencesOutput {
	return preferencesOutput{
		DailyStudyGoal:      string(p.DailyStudyGoal),
		TopicsPerDay:        p.TopicsPerDay,
		TopicPriorityWeight: string(p.TopicPriorityWeight),
		ReviewFrequency:     string(p.ReviewFrequency),
		ReminderTime:        p.ReminderTime,
	}
}

type profileOutput struct {
	ID                        string            `json:"id"`
	Email                     string            `json:"email"`
	Name                      string            `json:"name"`
	Timezone                  string            `json:"timezone"`
	Credits                   int               `json:"credits"`
	EmailNotificationsEnabled bool              `json:"email_notifications_enabled"`
	Preferences               preferencesOutput `json:"preferences"`
}

func newProfileOutput(u *domain.User) profileOutput {
	return profileOutput{
		ID:                        u.ID.String(),
		Email:                     u.Email,
		Name:                      u.Name,
		Timezone:                  u.Timezone,
		Credits:                   u.Credits,
		EmailNotificationsEnabled: u.EmailNotificationsEnabled,
		Preferences:               newPreferencesOutput(u.Preferences),
	}
}

// userLocation resolves the timezone calendar dates are printed in.
func userLocation(ctx context.Context, c *app.Container, userID uuid.UUID) (*time.Location, error) {
	u, err := c.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return planner.ParseTimezone(u.Timezone), nil
}

// parseLocalDate parses a YYYY-MM-DD flag value as the start of that day in loc.
func parseLocalDate(flag, raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(planner.DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", flag, raw)
	}
	return d.UTC(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
