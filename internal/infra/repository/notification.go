package repository

import (
	"context"
	"time"

	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db db.DBTX, arg query.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db db.DBTX, now time.Time, limit int32) ([]query.NotificationJobRow, error)
	MarkNotificationSent(ctx context.Context, db db.DBTX, id uuid.UUID, at time.Time) (int64, error)
	MarkNotificationFailed(ctx context.Context, db db.DBTX, id uuid.UUID, lastError string, retryAt time.Time, terminal bool) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      db.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db db.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks due jobs until the surrounding transaction ends; concurrent relays skip them.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	if _, err := r.queries.MarkNotificationSent(ctx, tx, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, retryAt time.Time, terminal bool) error {
	if _, err := r.queries.MarkNotificationFailed(ctx, tx, id, lastError, retryAt, terminal); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
