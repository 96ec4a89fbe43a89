package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/topic"
)

func newTopicCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage a user's topics",
	}
	cmd.AddCommand(
		newTopicAddCommand(),
		newTopicUpdateCommand(),
		newTopicReviewCommand(),
		newTopicDeleteCommand(),
		newTopicListCommand(),
		newTopicGetCommand(),
	)
	return cmd
}

// printTopics writes topics as JSON or a table in the user's timezone.
func printTopics(cmd *cobra.Command, c *app.Container, flags userFlags, userID uuid.UUID, topics ...*domain.Topic) error {
	loc, err := userLocation(cmd.Context(), c, userID)
	if err != nil {
		return err
	}
	if flags.asJSON {
		if len(topics) == 1 {
			return writeJSON(cmd.OutOrStdout(), newTopicOutput(topics[0], loc))
		}
		return writeJSON(cmd.OutOrStdout(), newTopicOutputs(topics, loc))
	}
	return writeTopics(cmd.OutOrStdout(), topics, loc)
}

func newTopicAddCommand() *cobra.Command {
	var (
		flags      userFlags
		name       string
		subjectID  string
		status     string
		difficulty string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			input := topic.CreateTopicInput{
				Name:       name,
				Status:     domain.TopicStatus(status),
				Difficulty: domain.Difficulty(difficulty),
			}
			if input.SubjectID, err = optionalID("subject", subjectID); err != nil {
				return err
			}

			return withContainer(ctx, func(c *app.Container) error {
				created, err := c.Topics.CreateTopic(ctx, input)
				if err != nil {
					return err
				}
				return printTopics(cmd, c, flags, userID, created)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "topic name (required)")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject id")
	cmd.Flags().StringVar(&status, "status", "", "new, learning, revised or completed (default new)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard (default medium)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTopicUpdateCommand() *cobra.Command {
	var (
		flags        userFlags
		name         string
		subjectID    string
		clearSubject bool
		status       string
		difficulty   string
		completion   int
	)
	cmd := &cobra.Command{
		Use:   "update <topic-id>",
		Short: "Change a topic's fields; unset flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			topicID, err := parseID("topic", args[0])
			if err != nil {
				return err
			}

			input := topic.UpdateTopicInput{TopicID: topicID, ClearSubject: clearSubject}
			set := cmd.Flags().Changed
			if set("name") {
				input.Name = &name
			}
			if set("subject") {
				if input.SubjectID, err = optionalID("subject", subjectID); err != nil {
					return err
				}
			}
			if set("status") {
				s := domain.TopicStatus(status)
				input.Status = &s
			}
			if set("difficulty") {
				d := domain.Difficulty(difficulty)
				input.Difficulty = &d
			}
			if set("completion") {
				input.CompletionPercent = &completion
			}

			return withContainer(ctx, func(c *app.Container) error {
				updated, err := c.Topics.UpdateTopic(ctx, input)
				if err != nil {
					return err
				}
				return printTopics(cmd, c, flags, userID, updated)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&subjectID, "subject", "", "move to this subject id")
	cmd.Flags().BoolVar(&clearSubject, "clear-subject", false, "detach the topic from its subject")
	cmd.Flags().StringVar(&status, "status", "", "new, learning, revised or completed")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().IntVar(&completion, "completion", 0, "completion percent (0-100)")
	return cmd
}

func newTopicReviewCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "review <topic-id>",
		Short: "Record a completed review and move the topic up one repetition level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			topicID, err := parseID("topic", args[0])
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				reviewed, err := c.Topics.ReviewTopic(ctx, topicID)
				if err != nil {
					return err
				}
				return printTopics(cmd, c, flags, userID, reviewed)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newTopicDeleteCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "delete <topic-id>",
		Short: "Delete a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			topicID, err := parseID("topic", args[0])
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				if err := c.Topics.DeleteTopic(ctx, topicID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted topic %s\n", topicID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newTopicListCommand() *cobra.Command {
	var (
		flags            userFlags
		subjectID        string
		excludeCompleted bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topics, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			input := topic.ListTopicsInput{ExcludeCompleted: excludeCompleted}
			if input.SubjectID, err = optionalID("subject", subjectID); err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				topics, err := c.Topics.ListTopics(ctx, input)
				if err != nil {
					return err
				}
				loc, err := userLocation(ctx, c, userID)
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
	cmd.Flags().StringVar(&subjectID, "subject", "", "only topics of this subject id")
	cmd.Flags().BoolVar(&excludeCompleted, "exclude-completed", false, "hide completed topics")
	return cmd
}

func newTopicGetCommand() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "get <topic-id>",
		Short: "Print one topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID, err := flags.userContext(cmd.Context())
			if err != nil {
				return err
			}
			topicID, err := parseID("topic", args[0])
			if err != nil {
				return err
			}
			return withContainer(ctx, func(c *app.Container) error {
				t, err := c.Topics.GetTopic(ctx, topicID)
				if err != nil {
					return err
				}
				return printTopics(cmd, c, flags, userID, t)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", kind, raw, err)
	}
	return id, nil
}

// optionalID parses an optional id flag; empty means unset.
func optionalID(kind, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(kind, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
