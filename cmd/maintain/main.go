// Command maintain runs the daily schedule maintenance pass once for every
// user. It is intended to be invoked by an external cron job when the
// in-process worker of "planner serve" is not running.
//
// Exit codes: 0 = success, 1 = error or at least one user failed.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Worker.RunTimeout)
	defer cancel()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	report, err := c.Worker.RunOnce(ctx)
	if err != nil {
		logger.Error("maintenance failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if report.Failed > 0 {
		logger.Error("maintenance incomplete",
			slog.Int("users", report.Users),
			slog.Int("failed", report.Failed),
		)
		os.Exit(1)
	}

	logger.Info("maintenance completed",
		slog.Int("users", report.Users),
		slog.Duration("duration", report.Duration),
	)
}
