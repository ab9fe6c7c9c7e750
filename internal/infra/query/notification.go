package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationJobRow struct {
	ID       uuid.UUID `db:"id"`
	Kind     string    `db:"kind"`
	Topic    string    `db:"topic"`
	Payload  []byte    `db:"payload"`
	Attempts int32     `db:"attempts"`
}

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

const createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateNotificationJob(ctx context.Context, dbtx db.DBTX, arg CreateNotificationJobParams) error {
	_, err := exec(ctx, dbtx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}

const claimDueNotificationJobs = `SELECT id, kind, topic, payload, attempts
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]NotificationJobRow, error) {
	return collect[NotificationJobRow](ctx, dbtx, claimDueNotificationJobs, now, limit)
}

const markNotificationSent = `UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = $2
WHERE id = $1`

func (q *Queries) MarkNotificationSent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) (int64, error) {
	return exec(ctx, dbtx, markNotificationSent, id, at)
}

const markNotificationFailed = `UPDATE notification_jobs
SET attempts = attempts + 1,
	last_error = $2,
	run_at = $3,
	status = CASE WHEN $4::bool THEN 'failed' ELSE 'queued' END,
	updated_at = now()
WHERE id = $1`

func (q *Queries) MarkNotificationFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, lastError string, retryAt time.Time, terminal bool) (int64, error) {
	return exec(ctx, dbtx, markNotificationFailed, id, lastError, retryAt, terminal)
}
