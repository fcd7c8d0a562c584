package entries

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	roomsrepo "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/repo"
	roomsservice "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timeslotsrepo "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/repo"
	timeslotsservice "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	timetablerepo "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/repo"
	timetableservice "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
)

// Command groups timetable entry utilities.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Timetable entry utilities (bulk import)",
	}

	cmd.AddCommand(importCommand())
	return cmd
}

func importCommand() *cobra.Command {
	var (
		databaseURL       string
		tenantInput       string
		file              string
		skipConflictCheck bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk create entries from a YAML file; each entry succeeds or fails on its own",
		Example: `  timetable entries import --database-url "$DATABASE_URL" \
    --tenant-id 0b6a8f4e-5d1c-4f39-8e2a-7c4b9d0e1f23 --file term1.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenantID, err := uuid.Parse(tenantInput)
			if err != nil {
				return fmt.Errorf("tenant-id must be a valid UUID: %w", err)
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			inputs, err := parseImportFile(raw)
			if err != nil {
				return err
			}
			for i := range inputs {
				inputs[i].SkipConflictCheck = skipConflictCheck
			}

			ctx := context.Background()
			svc, cleanup, err := newEntryService(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer cleanup()

			return runImport(ctx, svc, tenantID, inputs, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string")
	cmd.Flags().StringVar(&tenantInput, "tenant-id", "", "tenant UUID the entries belong to")
	cmd.Flags().StringVar(&file, "file", "", "YAML file with a top-level entries list")
	cmd.Flags().BoolVar(&skipConflictCheck, "skip-conflict-check", false, "skip the pre-check; storage constraints still reject double bookings")
	_ = cmd.MarkFlagRequired("database-url")
	_ = cmd.MarkFlagRequired("tenant-id")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newEntryService(ctx context.Context, databaseURL string) (timetableservice.Service, func(), error) {
	pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: databaseURL, ApplicationName: "timetable-cli"})
	if err != nil {
		return nil, nil, fmt.Errorf("init pool: %w", err)
	}

	tenantDB := persistence.NewTenantDB(pool)

	slotStore, err := persistence.NewTimeSlotStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, nil, fmt.Errorf("init time slot store: %w", err)
	}
	roomStore, err := persistence.NewRoomStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, nil, fmt.Errorf("init room store: %w", err)
	}
	entryStore, err := persistence.NewEntryStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, nil, fmt.Errorf("init entry store: %w", err)
	}

	svc := timetableservice.New(timetableservice.Dependencies{
		Repo:  timetablerepo.NewPostgresRepository(entryStore),
		Slots: timeslotsservice.New(timeslotsrepo.NewPostgresRepository(slotStore)),
		Rooms: roomsservice.New(roomsrepo.NewPostgresRepository(roomStore)),
	})

	cleanup := func() {
		persistence.ClosePool(pool)
	}

	return svc, cleanup, nil
}
