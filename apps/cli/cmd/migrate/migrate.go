package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
)

// Command applies the embedded timetable DDL. Statements are idempotent, so reruns are safe.
func Command() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the timetable schema (tables, partial unique indexes, RLS policies)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: databaseURL, ApplicationName: "timetable-cli"})
			if err != nil {
				return fmt.Errorf("init pool: %w", err)
			}
			defer persistence.ClosePool(pool)

			if err := persistence.BootstrapSchema(ctx, pool); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "timetable schema applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string")
	_ = cmd.MarkFlagRequired("database-url")
	return cmd
}
