package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/user"
)

func newPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change a user's study preferences",
	}
	cmd.AddCommand(newPrefsGetCommand(), newPrefsSetCommand())
	return cmd
}

func newPrefsGetCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the study preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				prefs, err := c.Profiles.GetPreferences(ctx)
				if err != nil {
					return err
				}
				return printPreferences(cmd.OutOrStdout(), flags.asJSON, *prefs)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

// prefsSetFlags are the raw values of prefs set; toInput keeps only the
// flags that were given on the command line.
type prefsSetFlags struct {
	dailyGoal         string
	topicsPerDay      int
	clearTopicsPerDay bool
	priorityWeight    string
	reviewFrequency   string
	reminderTime      string
	timezone          string
}

func (f *prefsSetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dailyGoal, "daily-goal", "", `daily study goal, e.g. "1 hour" or "4+ hours"`)
	cmd.Flags().IntVar(&f.topicsPerDay, "topics-per-day", 0, "explicit daily topic count (overrides the goal)")
	cmd.Flags().BoolVar(&f.clearTopicsPerDay, "clear-topics-per-day", false, "derive the daily count from the goal again")
	cmd.Flags().StringVar(&f.priorityWeight, "priority-weight", "", `"Balanced", "Focus on Hard Topics" or "Focus on Easy Topics"`)
	cmd.Flags().StringVar(&f.reviewFrequency, "review-frequency", "", `"Standard", "Frequent" or "Intensive"`)
	cmd.Flags().StringVar(&f.reminderTime, "reminder-time", "", "reminder time, HH:MM")
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA timezone, e.g. Europe/Berlin")
}

func (f *prefsSetFlags) toInput(changed func(name string) bool) user.UpdatePreferencesInput {
	input := user.UpdatePreferencesInput{ClearTopicsPerDay: f.clearTopicsPerDay}
	if changed("daily-goal") {
		g := domain.DailyStudyGoal(f.dailyGoal)
		input.DailyStudyGoal = &g
	}
	if changed("topics-per-day") {
		input.TopicsPerDay = &f.topicsPerDay
	}
	if changed("priority-weight") {
		w := domain.PriorityWeight(f.priorityWeight)
		input.TopicPriorityWeight = &w
	}
	if changed("review-frequency") {
		r := domain.ReviewFrequency(f.reviewFrequency)
		input.ReviewFrequency = &r
	}
	if changed("reminder-time") {
		input.ReminderTime = &f.reminderTime
	}
	if changed("timezone") {
		input.Timezone = &f.timezone
	}
	return input
}

func newPrefsSetCommand() *cobra.Command {
	var (
		flags userFlags
		set   prefsSetFlags
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change study preferences; unset flags are left unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			input := set.toInput(cmd.Flags().Changed)
			return withContainer(ctx, func(c *app.Container) error {
				updated, err := c.Profiles.UpdatePreferences(ctx, input)
				if err != nil {
					return err
				}
				return printPreferences(cmd.OutOrStdout(), flags.asJSON, updated.Preferences)
			})
		},
	}
	flags.register(cmd)
	set.register(cmd)
	return cmd
}

func printPreferences(w io.Writer, asJSON bool, p domain.Preferences) error {
	out := newPreferencesOutput(p)
	if asJSON {
		return writeJSON(w, out)
	}
	topicsPerDay := "from goal"
	if out.TopicsPerDay != nil {
		topicsPerDay = fmt.Sprint(*out.TopicsPerDay)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "daily goal\t%s\n", out.DailyStudyGoal)
	fmt.Fprintf(tw, "topics per day\t%s\n", topicsPerDay)
	fmt.Fprintf(tw, "priority weight\t%s\n", out.TopicPriorityWeight)
	fmt.Fprintf(tw, "review frequency\t%s\n", out.ReviewFrequency)
	fmt.Fprintf(tw, "reminder time\t%s\n", out.ReminderTime)
	return tw.Flush()
}
