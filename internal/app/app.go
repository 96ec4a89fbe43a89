package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/config"
)

// Run is the long-running entry point. It loads configuration, connects to
// the database, starts the daily maintenance worker and blocks until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		versionAttr(),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("horizon_days", cfg.Planner.HorizonDays),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Worker.Start(ctx); err != nil {
		return err
	}
	defer c.Worker.Stop()

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
