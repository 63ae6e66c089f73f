package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes fn within a transaction carried by the context handed
// to fn. A nested call joins the outer transaction. The transaction is not
// tied to the caller's cancellation: once started it commits or rolls back
// on its own.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	ctx = context.WithoutCancel(ctx)
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// conn returns the transaction carried by ctx, or the pool.
func (r *BaseRepository) conn(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.db
}

// observe records the outcome of one repository call. Use it deferred with
// a named error result.
func (r *BaseRepository) observe(operation string, start time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	r.metrics.ObserveDatabase(operation, e, time.Since(start))
}

func (r *BaseRepository) get(ctx context.Context, resource string, dest interface{}, query string, args ...interface{}) error {
	if err := sqlx.GetContext(ctx, r.conn(ctx), dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewNotFound(resource, err)
		}
		return fmt.Errorf("failed to get %s: %w", resource, err)
	}
	return nil
}

func (r *BaseRepository) insert(ctx context.Context, resource, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := sqlx.GetContext(ctx, r.conn(ctx), &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", resource, err)
	}
	return id, nil
}

// exec runs a statement that must affect at least one row.
func (r *BaseRepository) exec(ctx context.Context, resource, query string, args ...interface{}) error {
	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", resource, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound(resource, nil)
	}
	return nil
}

func (r *BaseRepository) deleteByID(ctx context.Context, table, resource string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1`, quote(table))
	return r.exec(ctx, resource, query, id)
}

func (r *BaseRepository) update(ctx context.Context, table, resource string, id int64, set *setList) error {
	if set.empty() {
		return apperrors.NewBadRequest("no field to update", nil)
	}
	query, args := set.build(table, id)
	return r.exec(ctx, resource, query, args...)
}

// selectPage runs the page query and its count for a list spec.
func selectPage[T any](ctx context.Context, r *BaseRepository, spec listSpec, q params.List) ([]T, uint64, error) {
	built, err := spec.build(q)
	if err != nil {
		return nil, 0, err
	}

	items := []T{}
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &items, built.query, built.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", spec.resource, err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, r.conn(ctx), &total, built.countQuery, built.countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", spec.resource, err)
	}
	return items, uint64(total), nil
}
