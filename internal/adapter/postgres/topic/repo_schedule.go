package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const applyScheduleSQL = `
UPDATE topics SET
    scheduled_date        = $3,
    rescheduled           = $4,
    last_snapshot_percent = COALESCE($5, last_snapshot_percent),
    last_studied_at       = COALESCE($6, last_studied_at),
    updated_at            = now()
WHERE id = $1 AND user_id = $2`

const insertHistorySQL = `
INSERT INTO topic_schedule_history (topic_id, date, action, reason, recorded_at)
VALUES ($1, $2, $3, $4, $5)`

const updatePrioritySQL = `
UPDATE topics SET priority_score = $3
WHERE id = $1 AND user_id = $2`

const snapshotProgressSQL = `
UPDATE topics SET last_snapshot_percent = completion_percent
WHERE user_id = $1`

const listHistorySQL = `
SELECT h.date, h.action, h.reason, h.recorded_at
FROM topic_schedule_history h
JOIN topics t ON t.id = h.topic_id
WHERE h.topic_id = $1 AND t.user_id = $2
ORDER BY h.recorded_at, h.id`

// ---------------------------------------------------------------------------
// Batched schedule writes (pgx.Batch API)
// ---------------------------------------------------------------------------

// ApplyScheduleUpdates writes every update and appends its history entry in
// one batch. A topic that does not belong to userID fails the whole batch
// with domain.ErrNotFound; run it inside a transaction to roll back.
func (r *Repo) ApplyScheduleUpdates(ctx context.Context, userID uuid.UUID, updates []domain.ScheduleUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(applyScheduleSQL,
			u.TopicID, userID, u.ScheduledDate, u.Rescheduled, u.LastSnapshotPercent, u.LastStudiedAt,
		)
		batch.Queue(insertHistorySQL,
			u.TopicID, u.History.Date, string(u.History.Action), u.History.Reason, u.History.Timestamp,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	for _, u := range updates {
		tag, err := results.Exec()
		if err != nil {
			return postgres.MapError(err, "topic", u.TopicID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("topic %s: %w", u.TopicID, domain.ErrNotFound)
		}
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert schedule history for topic %s: %w", u.TopicID, err)
		}
	}

	return nil
}

// UpdatePriorityScores persists recomputed priority scores in one batch.
// Topics of other users are left untouched.
func (r *Repo) UpdatePriorityScores(ctx context.Context, userID uuid.UUID, updates []domain.PriorityUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(updatePrioritySQL, u.TopicID, userID, u.Score)
	}

	_, err := r.sendBatchExec(ctx, batch)
	return err
}

// SnapshotProgress copies completion_percent into last_snapshot_percent for
// every topic of the user and returns the number of topics touched.
func (r *Repo) SnapshotProgress(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, snapshotProgressSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("snapshot progress: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListHistory returns the schedule history of a topic in recording order.
func (r *Repo) ListHistory(ctx context.Context, userID, topicID uuid.UUID) ([]domain.ScheduleHistoryEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listHistorySQL, topicID, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedule history: %w", err)
	}

	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduleHistoryEntry, error) {
		var (
			e      domain.ScheduleHistoryEntry
			action string
		)
		err := row.Scan(&e.Date, &action, &e.Reason, &e.Timestamp)
		e.Action = domain.ScheduleAction(action)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("list schedule history: %w", err)
	}
	if history == nil {
		history = []domain.ScheduleHistoryEntry{}
	}
	return history, nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}
