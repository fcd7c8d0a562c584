package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// txBeginner exposes the minimal pgx pool behaviour needed by TenantDB.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TenantDB wraps a pgx pool to execute statements inside a transaction bound to a single tenant.
// The tenant id is published as the transaction-local app.tenant_id setting, which the
// row-level-security policies of every timetable table compare against.
type TenantDB struct {
	pool txBeginner
}

// NewTenantDB constructs a TenantDB on top of the shared pool.
func NewTenantDB(pool *pgxpool.Pool) *TenantDB {
	if pool == nil {
		panic("TenantDB requires pool")
	}
	return &TenantDB{pool: pool}
}

// WithTenant executes fn inside a read-write transaction scoped to tenantID.
// The transaction commits only when fn returns nil; cancellation of ctx rolls it back.
func (db *TenantDB) WithTenant(ctx context.Context, tenantID uuid.UUID, fn func(tx pgx.Tx) error) error {
	return db.run(ctx, tenantID, pgx.TxOptions{}, fn)
}

// ReadTenant executes fn inside a read-only transaction scoped to tenantID.
func (db *TenantDB) ReadTenant(ctx context.Context, tenantID uuid.UUID, fn func(tx pgx.Tx) error) error {
	return db.run(ctx, tenantID, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (db *TenantDB) run(ctx context.Context, tenantID uuid.UUID, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	if tenantID == uuid.Nil {
		return errors.New("tenant id is required")
	}

	tx, err := db.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT set_config('app.tenant_id', $1, true)`, tenantID.String()); err != nil {
		return fmt.Errorf("set tenant scope: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
