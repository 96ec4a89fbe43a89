package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/subject"
)

func newSubjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage a user's subjects and exam dates",
	}
	cmd.AddCommand(
		newSubjectAddCommand(),
		newSubjectUpdateCommand(),
		newSubjectDeleteCommand(),
		newSubjectListCommand(),
	)
	return cmd
}

func newSubjectAddCommand() *cobra.Command {
	var (
		flags    userFlags
		name     string
		examDate string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				loc, err := userLocation(ctx, c, userID)
				if err != nil {
					return err
				}
				input := subject.CreateSubjectInput{Name: name}
				if examDate != "" {
					d, err := parseLocalDate("exam-date", examDate, loc)
					if err != nil {
						return err
					}
					input.ExamDate = &d
				}

				created, err := c.Subjects.CreateSubject(ctx, input)
				if err != nil {
					return err
				}
				return printSubjects(cmd.OutOrStdout(), flags.asJSON, loc, created)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "subject name (required)")
	cmd.Flags().StringVar(&examDate, "exam-date", "", "exam date, YYYY-MM-DD in the user's timezone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSubjectUpdateCommand() *cobra.Command {
	var (
		flags     userFlags
		name      string
		examDate  string
		clearExam bool
	)
	cmd := &cobra.Command{
		Use:   "update <subject-id>",
		Short: "Rename a subject or change its exam date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			subjectID, err := parseID("subject", args[0])
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				loc, err := userLocation(ctx, c, userID)
				if err != nil {
					return err
				}
				input := subject.UpdateSubjectInput{SubjectID: subjectID, ClearExamDate: clearExam}
				if cmd.Flags().Changed("name") {
					input.Name = &name
				}
				if cmd.Flags().Changed("exam-date") {
					d, err := parseLocalDate("exam-date", examDate, loc)
					if err != nil {
						return err
					}
					input.ExamDate = &d
				}

				updated, err := c.Subjects.UpdateSubject(ctx, input)
				if err != nil {
					return err
				}
				return printSubjects(cmd.OutOrStdout(), flags.asJSON, loc, updated)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&examDate, "exam-date", "", "exam date, YYYY-MM-DD in the user's timezone")
	cmd.Flags().BoolVar(&clearExam, "clear-exam-date", false, "remove the exam date")
	return cmd
}

func newSubjectDeleteCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "delete <subject-id>",
		Short: "Delete a subject; its topics are kept without a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			subjectID, err := parseID("subject", args[0])
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				if err := c.Subjects.DeleteSubject(ctx, subjectID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted subject %s\n", subjectID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newSubjectListCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects, nearest exam first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				subjects, err := c.Subjects.ListSubjects(ctx)
				if err != nil {
					return err
				}
				loc, err := userLocation(ctx, c, userID)
				if err != nil {
					return err
				}
				if flags.asJSON {
					out := make([]subjectOutput, 0, len(subjects))
					for _, s := range subjects {
						out = append(out, newSubjectOutput(s, loc))
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				return printSubjects(cmd.OutOrStdout(), false, loc, subjects...)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func printSubjects(w io.Writer, asJSON bool, loc *time.Location, subjects ...*domain.Subject) error {
	if asJSON && len(subjects) == 1 {
		return writeJSON(w, newSubjectOutput(subjects[0], loc))
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSUBJECT\tEXAM")
	for _, s := range subjects {
		out := newSubjectOutput(s, loc)
		exam := out.ExamDate
		if exam == "" {
			exam = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", out.ID, out.Name, exam)
	}
	return tw.Flush()
}
