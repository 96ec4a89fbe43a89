package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Planner  PlannerConfig  `yaml:"planner"`
	Worker   WorkerConfig   `yaml:"worker"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PlannerConfig holds schedule planning windows.
type PlannerConfig struct {
	HorizonDays    int `yaml:"horizon_days"     env:"PLANNER_HORIZON_DAYS"     env-default:"14"`
	FullWindowDays int `yaml:"full_window_days" env:"PLANNER_FULL_WINDOW_DAYS" env-default:"30"`
}

// WorkerConfig holds the daily maintenance job settings.
type WorkerConfig struct {
	DailyAt     string        `yaml:"daily_at"    env:"WORKER_DAILY_AT"    env-default:"00:05"`
	Concurrency int           `yaml:"concurrency" env:"WORKER_CONCURRENCY" env-default:"4"`
	RunTimeout  time.Duration `yaml:"run_timeout" env:"WORKER_RUN_TIMEOUT" env-default:"10m"`
}
