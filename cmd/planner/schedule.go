package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

type userFlags struct {
	userID string
	asJSON bool
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user", "", "user id (required)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("user")
}

func (f *userFlags) parse() (uuid.UUID, error) {
	id, err := uuid.Parse(f.userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", f.userID, err)
	}
	return id, nil
}

// userContext parses --user and returns a context acting as that user.
func (f *userFlags) userContext(ctx context.Context) (context.Context, uuid.UUID, error) {
	id, err := f.parse()
	if err != nil {
		return nil, uuid.Nil, err
	}
	return ctxutil.WithUserID(ctx, id), id, nil
}

func newTodayCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's study schedule, running the daily maintenance pass first",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := flags.parse()
			if err != nil {
				return err
			}
			return withContainer(cmd.Context(), func(c *app.Container) error {
				topics, err := c.Schedule.GetStudySchedule(cmd.Context(), userID)
				if err != nil {
					return err
				}
				loc, err := userLocation(cmd.Context(), c, userID)
				if err != nil {
					return err
				}
				if flags.asJSON {
					return writeJSON(cmd.OutOrStdout(), newTopicOutputs(topics, loc))
				}
				return writeTopics(cmd.OutOrStdout(), topics, loc)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newFullCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Print the upcoming schedule grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := flags.parse()
			if err != nil {
				return err
			}
			return withContainer(cmd.Context(), func(c *app.Container) error {
				full, err := c.Schedule.GetFullSchedule(cmd.Context(), userID)
				if err != nil {
					return err
				}
				loc, err := userLocation(cmd.Context(), c, userID)
				if err != nil {
					return err
				}
				if flags.asJSON {
					byDate := make(map[string][]topicOutput, len(full.Days))
					for date, topics := range full.ByDate() {
						byDate[date] = newTopicOutputs(topics, loc)
					}
					return writeJSON(cmd.OutOrStdout(), byDate)
				}
				out := cmd.OutOrStdout()
				for _, day := range full.Days {
					fmt.Fprintf(out, "%s\n", day.Date)
					if err := writeTopics(out, day.Topics, loc); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newPrioritiesCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "priorities",
		Short: "Recompute priority scores and print the top-ranked topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := flags.parse()
			if err != nil {
				return err
			}
			return withContainer(cmd.Context(), func(c *app.Container) error {
				topics, err := c.Schedule.GetPriorityTopics(cmd.Context(), userID)
				if err != nil {
					return err
				}
				loc, err := userLocation(cmd.Context(), c, userID)
				if err != nil {
					return err
				}
				if flags.asJSON {
					return writeJSON(cmd.OutOrStdout(), newTopicOutputs(topics, loc))
				}
				return writeTopics(cmd.OutOrStdout(), topics, loc)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func writeTopics(w io.Writer, topics []*domain.Topic, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\tSUBJECT\tSTATUS\tDIFFICULTY\tDONE\tPRIORITY\tSCHEDULED")
	for _, t := range topics {
		subject := "-"
		if t.Subject != nil {
			subject = t.Subject.Name
		}
		scheduled := "-"
		if t.ScheduledDate != nil {
			scheduled = planner.DateKey(*t.ScheduledDate, loc)
			if t.Rescheduled {
				scheduled += " (moved)"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%.1f\t%s\n",
			strings.TrimSpace(t.Name), subject, t.Status, t.Difficulty,
			t.CompletionPercent, t.PriorityScore, scheduled)
	}
	return tw.Flush()
}
