package config

import (
	"fmt"
	"slices"
	"time"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if err := c.Planner.validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.Worker.validate(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}

	return nil
}

func (p *PlannerConfig) validate() error {
	if p.HorizonDays < 1 || p.HorizonDays > 365 {
		return fmt.Errorf("horizon_days must be in [1, 365] (got %d)", p.HorizonDays)
	}
	if p.FullWindowDays < 1 || p.FullWindowDays > 365 {
		return fmt.Errorf("full_window_days must be in [1, 365] (got %d)", p.FullWindowDays)
	}
	return nil
}

func (w *WorkerConfig) validate() error {
	if _, err := time.Parse("15:04", w.DailyAt); err != nil {
		return fmt.Errorf("daily_at must be HH:MM (got %q)", w.DailyAt)
	}
	if w.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", w.Concurrency)
	}
	if w.RunTimeout <= 0 {
		return fmt.Errorf("run_timeout must be > 0 (got %s)", w.RunTimeout)
	}
	return nil
}
