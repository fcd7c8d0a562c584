package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ErrNotFound indicates that no row matched the tenant-scoped lookup.
var ErrNotFound = errors.New("record not found")

// UniqueViolation reports the unique index or constraint that rejected a write.
type UniqueViolation struct {
	Constraint string
	Err        error
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("unique violation on %s", e.Constraint)
}

func (e *UniqueViolation) Unwrap() error { return e.Err }

// ForeignKeyViolation reports a write that referenced a row missing from the tenant.
type ForeignKeyViolation struct {
	Constraint string
	Err        error
}

func (e *ForeignKeyViolation) Error() string {
	return fmt.Sprintf("foreign key violation on %s", e.Constraint)
}

func (e *ForeignKeyViolation) Unwrap() error { return e.Err }

// CheckViolation reports a write rejected by a CHECK constraint.
type CheckViolation struct {
	Constraint string
	Err        error
}

func (e *CheckViolation) Error() string {
	return fmt.Sprintf("check violation on %s", e.Constraint)
}

func (e *CheckViolation) Unwrap() error { return e.Err }

// translateWriteError converts constraint failures into the typed errors above so callers never
// need to import pgconn. Any other error is returned unchanged.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return &UniqueViolation{Constraint: pgErr.ConstraintName, Err: err}
	case pgForeignKeyViolation:
		return &ForeignKeyViolation{Constraint: pgErr.ConstraintName, Err: err}
	case pgCheckViolation:
		return &CheckViolation{Constraint: pgErr.ConstraintName, Err: err}
	default:
		return err
	}
}
