package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	sqlassets "github.com/zenGate-Global/palmyra-timetable/database"
)

// BootstrapSchema applies the timetable DDL in a single transaction, in this order:
//  1. timetable/time_slots.sql
//  2. timetable/rooms.sql
//  3. timetable/timetable_entries.sql
//
// SQL is embedded at build time so binaries stay self-contained. Every statement is
// idempotent, so the helper is safe to run on each deploy and from tests.
func BootstrapSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return fmt.Errorf("bootstrap schema: pool is required")
	}

	var statements []string
	statements = append(statements, splitStatements(sqlassets.TimeSlotsSQL)...)
	statements = append(statements, splitStatements(sqlassets.RoomsSQL)...)
	statements = append(statements, splitStatements(sqlassets.TimetableEntriesSQL)...)

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply ddl: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// splitStatements breaks a DDL script on semicolons. The embedded scripts avoid
// dollar-quoted bodies so a plain split is enough.
func splitStatements(script string) []string {
	raw := strings.Split(script, ";")
	statements := make([]string, 0, len(raw))
	for _, part := range raw {
		stmt := strings.TrimSpace(stripLineComments(part))
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

func stripLineComments(sql string) string {
	lines := strings.Split(sql, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
