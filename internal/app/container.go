package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	subjectrepo "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/subject"
	topicrepo "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/studyplan-backend/internal/app/worker"
	"github.com/heartmarshall/studyplan-backend/internal/config"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule"
	"github.com/heartmarshall/studyplan-backend/internal/service/subject"
	"github.com/heartmarshall/studyplan-backend/internal/service/topic"
	"github.com/heartmarshall/studyplan-backend/internal/service/user"
)

// Container holds the wired services of one process.
type Container struct {
	Pool *pgxpool.Pool
	Log  *slog.Logger

	Users *userrepo.Repo

	Schedule *schedule.Service
	Topics   *topic.Service
	Subjects *subject.Service
	Profiles *user.Service
	Worker   *worker.Worker
}

// Build connects to the database and wires repositories and services.
// The caller must call Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	users := userrepo.New(pool)
	subjects := subjectrepo.New(pool)
	topics := topicrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	scheduleSvc := schedule.NewService(logger, users, topics, tx, schedule.Config{
		HorizonDays:    cfg.Planner.HorizonDays,
		FullWindowDays: cfg.Planner.FullWindowDays,
	})

	return &Container{
		Pool:     pool,
		Log:      logger,
		Users:    users,
		Schedule: scheduleSvc,
		Topics:   topic.NewService(logger, topics, subjects, scheduleSvc, tx),
		Subjects: subject.NewService(logger, subjects, scheduleSvc),
		Profiles: user.NewService(logger, users, scheduleSvc, tx),
		Worker:   worker.New(logger, users, scheduleSvc, cfg.Worker),
	}, nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
