package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/app/worker"
)

func newMaintainCommand() *cobra.Command {
	var userIDs []string
	cmd := &cobra.Command{
		Use:   "maintain",
		Short: "Run the daily maintenance pass once (all users, or the given --user ids)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, 0, len(userIDs))
			for _, raw := range userIDs {
				id, err := uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid --user %q: %w", raw, err)
				}
				ids = append(ids, id)
			}

			return withContainer(cmd.Context(), func(c *app.Container) error {
				var (
					report worker.Report
					err    error
				)
				if len(ids) == 0 {
					report, err = c.Worker.RunOnce(cmd.Context())
				} else {
					report, err = c.Worker.RunForUsers(cmd.Context(), ids)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "run %s: maintained %d users, %d failed in %s\n",
					report.RunID, report.Users, report.Failed, report.Duration)
				if report.Failed > 0 {
					return fmt.Errorf("%d users failed", report.Failed)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&userIDs, "user", nil, "restrict the pass to these user ids")
	return cmd
}
