// Command planner is the operator CLI: it runs the daily maintenance
// service, applies migrations, prints schedules and manages the topics,
// subjects and settings of a single user.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/config"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

var configFile string

func main() {
	rootCommand := cobra.Command{
		Use:           "planner",
		Short:         "Adaptive study schedule planner",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (overrides CONFIG_PATH)")

	rootCommand.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newTodayCommand(),
		newFullCommand(),
		newPrioritiesCommand(),
		newMaintainCommand(),
		newTopicCommand(),
		newSubjectCommand(),
		newPrefsCommand(),
		newProfileCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, _ = ctxutil.EnsureRequestID(ctx)
	err := rootCommand.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}
}

// withContainer loads configuration, wires the services and runs fn.
func withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

// loadConfig reads --config when given, CONFIG_PATH otherwise.
func loadConfig() (*config.Config, error) {
	return config.LoadFrom(configFileOrEnv())
}

func configFileOrEnv() string {
	if configFile != "" {
		return configFile
	}
	return os.Getenv("CONFIG_PATH")
}
