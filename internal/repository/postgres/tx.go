package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type connKey struct{}

// DB is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type DB interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the transaction bound to the context if the call runs inside
// WithTx, and the plain connection otherwise.
func (r *Repository) Chk(ctx context.Context) DB {
	if tx, ok := ctx.Value(connKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, connKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}
