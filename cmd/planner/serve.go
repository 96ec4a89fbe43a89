package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daily maintenance worker until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context())
		},
	}
}
