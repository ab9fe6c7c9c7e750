// Package query holds the SQL of the service and the row shapes it scans into.
// Stores and repositories depend on narrow interfaces over *Queries.
package query

import (
	"context"

	"groundio/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

func collect[T any](ctx context.Context, dbtx db.DBTX, sql string, args ...any) ([]T, error) {
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func collectOne[T any](ctx context.Context, dbtx db.DBTX, sql string, args ...any) (T, error) {
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

func exec(ctx context.Context, dbtx db.DBTX, sql string, args ...any) (int64, error) {
	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
