// Package worker runs the daily schedule maintenance pass for every user.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyplan-backend/internal/config"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

type userLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type maintainer interface {
	GetStudySchedule(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
}

// Report summarises one maintenance run.
type Report struct {
	RunID    string
	Users    int
	Failed   int
	Duration time.Duration
}

// Worker fans the maintenance pass out across users on a daily schedule.
type Worker struct {
	users     userLister
	schedules maintainer
	cfg       config.WorkerConfig
	log       *slog.Logger
	scheduler *gocron.Scheduler
}

// New creates a worker. Start must be called to register the daily job.
func New(log *slog.Logger, users userLister, schedules maintainer, cfg config.WorkerConfig) *Worker {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &Worker{
		users:     users,
		schedules: schedules,
		cfg:       cfg,
		log:       log.With("component", "worker"),
		scheduler: scheduler,
	}
}

// Start registers the daily job at cfg.DailyAt (UTC) and starts the
// scheduler in the background. Runs are bound to ctx.
func (w *Worker) Start(ctx context.Context) error {
	_, err := w.scheduler.Every(1).Day().At(w.cfg.DailyAt).Do(w.runScheduled, ctx)
	if err != nil {
		return fmt.Errorf("schedule daily maintenance: %w", err)
	}
	w.scheduler.StartAsync()

	w.log.Info("maintenance scheduled", slog.String("daily_at", w.cfg.DailyAt))
	return nil
}

// Stop halts the scheduler. A run in progress is not interrupted.
func (w *Worker) Stop() {
	w.scheduler.Stop()
}

func (w *Worker) runScheduled(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := w.RunOnce(ctx); err != nil {
		w.log.ErrorContext(ctx, "maintenance run failed", slog.String("error", err.Error()))
	}
}

// RunOnce runs the maintenance pass for every user. A failure for one user
// is logged and counted; it does not stop the others. Every log line of the
// run carries the run's correlation id.
func (w *Worker) RunOnce(ctx context.Context) (Report, error) {
	start := time.Now()
	ctx, runID := ctxutil.EnsureRequestID(ctx)

	if w.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.RunTimeout)
		defer cancel()
	}

	ids, err := w.users.ListIDs(ctx)
	if err != nil {
		return Report{RunID: runID}, fmt.Errorf("list users: %w", err)
	}

	report, err := w.maintain(ctx, ids)
	report.RunID = runID
	report.Duration = time.Since(start)

	w.log.InfoContext(ctx, "maintenance run finished",
		slog.Int("users", report.Users),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.Duration),
	)
	return report, err
}

// RunForUsers runs the maintenance pass for the given users only.
func (w *Worker) RunForUsers(ctx context.Context, ids []uuid.UUID) (Report, error) {
	start := time.Now()
	ctx, runID := ctxutil.EnsureRequestID(ctx)

	report, err := w.maintain(ctx, ids)
	report.RunID = runID
	report.Duration = time.Since(start)
	return report, err
}

func (w *Worker) maintain(ctx context.Context, ids []uuid.UUID) (Report, error) {
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Concurrency)

	for _, id := range ids {
		g.Go(func() error {
			if gctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			if _, err := w.schedules.GetStudySchedule(gctx, id); err != nil {
				failed.Add(1)
				w.log.WarnContext(gctx, "maintenance failed for user",
					slog.String("user_id", id.String()),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Users: len(ids), Failed: int(failed.Load())}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("maintenance interrupted: %w", err)
	}
	return report, nil
}
