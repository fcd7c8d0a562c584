package persistence

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeTx satisfies pgx.Tx and records Exec statements invoked.
type fakeTx struct {
	stmts      []string
	args       [][]any
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}
func (f *fakeTx) Rollback(ctx context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}
func (f *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (f *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakeTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (f *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return &pgconn.StatementDescription{}, errors.New("not implemented")
}
func (f *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row { return nil }
func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.stmts = append(f.stmts, sql)
	f.args = append(f.args, args)
	return pgconn.CommandTag{}, nil
}
func (f *fakeTx) Conn() *pgx.Conn { return nil }

// fakePool returns a preconstructed transaction.
type fakePool struct {
	tx   *fakeTx
	opts pgx.TxOptions
}

func (p *fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	p.opts = txOptions
	return p.tx, nil
}

func TestTenantDBWithTenantPublishesTenantSetting(t *testing.T) {
	ftx := &fakeTx{}
	db := &TenantDB{pool: &fakePool{tx: ftx}}
	tenantID := uuid.New()

	called := false
	err := db.WithTenant(context.Background(), tenantID, func(tx pgx.Tx) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
	require.Len(t, ftx.stmts, 1)
	require.Contains(t, strings.ToLower(ftx.stmts[0]), "set_config('app.tenant_id'")
	require.Equal(t, tenantID.String(), ftx.args[0][0])
	require.True(t, ftx.committed)
}

func TestTenantDBReadTenantUsesReadOnlyTransaction(t *testing.T) {
	ftx := &fakeTx{}
	pool := &fakePool{tx: ftx}
	db := &TenantDB{pool: pool}

	err := db.ReadTenant(context.Background(), uuid.New(), func(tx pgx.Tx) error { return nil })
	require.NoError(t, err)
	require.Equal(t, pgx.ReadOnly, pool.opts.AccessMode)
}

func TestTenantDBRejectsNilTenant(t *testing.T) {
	ftx := &fakeTx{}
	db := &TenantDB{pool: &fakePool{tx: ftx}}

	err := db.WithTenant(context.Background(), uuid.Nil, func(tx pgx.Tx) error {
		t.Fatal("callback must not run without a tenant")
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tenant id is required")
	require.Empty(t, ftx.stmts)
}

func TestTenantDBCallbackErrorSkipsCommit(t *testing.T) {
	ftx := &fakeTx{}
	db := &TenantDB{pool: &fakePool{tx: ftx}}
	boom := errors.New("boom")

	err := db.WithTenant(context.Background(), uuid.New(), func(tx pgx.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	require.False(t, ftx.committed)
	require.True(t, ftx.rolledBack)
}
