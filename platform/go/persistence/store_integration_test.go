package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("timetable"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(wait.ForListeningPort("5432/tcp").WithStartupTimeout(2*time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	connString, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, PoolConfig{ConnString: connString, MaxConns: 16})
	require.NoError(t, err)
	t.Cleanup(func() {
		ClosePool(pool)
	})

	require.NoError(t, BootstrapSchema(ctx, pool))
	// Applying twice must be harmless.
	require.NoError(t, BootstrapSchema(ctx, pool))

	return pool
}

func TestTimetableStoresIntegration(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("skipping timetable store integration test in short mode")
	}

	ctx := context.Background()
	pool := startPostgres(t)
	db := NewTenantDB(pool)

	slots, err := NewTimeSlotStore(ctx, db)
	require.NoError(t, err)
	rooms, err := NewRoomStore(ctx, db)
	require.NoError(t, err)
	entries, err := NewEntryStore(ctx, db)
	require.NoError(t, err)

	tenantID := uuid.New()
	otherTenant := uuid.New()
	year := "2025-2026"

	period1, err := slots.CreateTimeSlot(ctx, tenantID, CreateTimeSlotParams{
		TimeSlotID: uuid.New(),
		Name:       "Period 1",
		StartTime:  8 * time.Hour,
		EndTime:    8*time.Hour + 45*time.Minute,
		Kind:       "class",
		Position:   1,
		Days:       []int16{1, 2, 3, 4, 5},
	})
	require.NoError(t, err)
	require.Equal(t, 8*time.Hour+45*time.Minute, period1.EndTime)
	require.Nil(t, period1.AcademicYear)

	_, err = slots.CreateTimeSlot(ctx, tenantID, CreateTimeSlotParams{
		TimeSlotID: uuid.New(),
		Name:       "Broken",
		StartTime:  10 * time.Hour,
		EndTime:    9 * time.Hour,
		Kind:       "class",
		Days:       []int16{1},
	})
	var check *CheckViolation
	require.True(t, errors.As(err, &check))

	room, err := rooms.CreateRoom(ctx, tenantID, CreateRoomParams{
		RoomID:     uuid.New(),
		Name:       "Lab 1",
		RoomType:   "laboratory",
		Facilities: []string{"projector"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"projector"}, room.Facilities)

	found, err := rooms.GetRoomsByIDs(ctx, tenantID, []uuid.UUID{room.RoomID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = rooms.GetRoom(ctx, otherTenant, room.RoomID)
	require.ErrorIs(t, err, ErrNotFound)

	teacher := uuid.New()
	first, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
		EntryID: uuid.New(),
		Fields: EntryFields{
			TimeSlotID:   period1.TimeSlotID,
			Weekday:      1,
			TeacherID:    &teacher,
			RoomID:       &room.RoomID,
			ClassName:    strPtr("10"),
			Section:      strPtr("A"),
			SubjectName:  strPtr("Physics"),
			AcademicYear: &year,
			Status:       "active",
		},
		CreatedBy: strPtr("user-1"),
	})
	require.NoError(t, err)

	t.Run("teacher index rejects a second active booking", func(t *testing.T) {
		_, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
			EntryID: uuid.New(),
			Fields: EntryFields{
				TimeSlotID:   period1.TimeSlotID,
				Weekday:      1,
				TeacherID:    &teacher,
				ClassName:    strPtr("9"),
				AcademicYear: &year,
				Status:       "active",
			},
		})
		var unique *UniqueViolation
		require.True(t, errors.As(err, &unique))
		require.Equal(t, TeacherActiveIndex, unique.Constraint)
	})

	t.Run("class index treats missing section as one value", func(t *testing.T) {
		_, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
			EntryID: uuid.New(),
			Fields: EntryFields{
				TimeSlotID: period1.TimeSlotID,
				Weekday:    2,
				ClassName:  strPtr("11"),
				Status:     "active",
			},
		})
		require.NoError(t, err)

		_, err = entries.CreateEntry(ctx, tenantID, CreateEntryParams{
			EntryID: uuid.New(),
			Fields: EntryFields{
				TimeSlotID: period1.TimeSlotID,
				Weekday:    2,
				ClassName:  strPtr("11"),
				Status:     "active",
			},
		})
		var unique *UniqueViolation
		require.True(t, errors.As(err, &unique))
		require.Equal(t, ClassActiveIndex, unique.Constraint)
	})

	t.Run("draft rows are outside the guarantee", func(t *testing.T) {
		_, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
			EntryID: uuid.New(),
			Fields: EntryFields{
				TimeSlotID:   period1.TimeSlotID,
				Weekday:      1,
				TeacherID:    &teacher,
				RoomID:       &room.RoomID,
				AcademicYear: &year,
				Status:       "draft",
			},
		})
		require.NoError(t, err)
	})

	t.Run("unknown room is a foreign key violation", func(t *testing.T) {
		missing := uuid.New()
		_, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
			EntryID: uuid.New(),
			Fields: EntryFields{
				TimeSlotID: period1.TimeSlotID,
				Weekday:    3,
				RoomID:     &missing,
				Status:     "active",
			},
		})
		var fk *ForeignKeyViolation
		require.True(t, errors.As(err, &fk))
		require.Equal(t, EntryRoomForeignKey, fk.Constraint)
	})

	t.Run("find active entry honours exclusion", func(t *testing.T) {
		hit, ok, err := entries.FindActiveEntry(ctx, tenantID, ActiveEntryLookup{
			TimeSlotID: period1.TimeSlotID,
			Weekday:    1,
			RoomID:     &room.RoomID,
		})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, first.EntryID, hit.EntryID)

		_, ok, err = entries.FindActiveEntry(ctx, tenantID, ActiveEntryLookup{
			TimeSlotID:     period1.TimeSlotID,
			Weekday:        1,
			RoomID:         &room.RoomID,
			ExcludeEntryID: &first.EntryID,
		})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("archiving frees the slot", func(t *testing.T) {
		fields := EntryFields{
			TimeSlotID:   first.TimeSlotID,
			Weekday:      first.Weekday,
			TeacherID:    first.TeacherID,
			RoomID:       first.RoomID,
			ClassName:    first.ClassName,
			Section:      first.Section,
			SubjectName:  first.SubjectName,
			AcademicYear: first.AcademicYear,
			Status:       "archived",
		}
		archived, err := entries.ReplaceEntry(ctx, tenantID, first.EntryID, fields)
		require.NoError(t, err)
		require.Equal(t, "archived", archived.Status)

		_, ok, err := entries.FindActiveEntry(ctx, tenantID, ActiveEntryLookup{
			TimeSlotID: period1.TimeSlotID,
			Weekday:    1,
			TeacherID:  &teacher,
		})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("list filters by status and tenant", func(t *testing.T) {
		listed, err := entries.ListEntries(ctx, tenantID, ListEntriesParams{Statuses: []string{"active"}})
		require.NoError(t, err)
		for _, entry := range listed {
			require.Equal(t, "active", entry.Status)
		}

		foreign, err := entries.ListEntries(ctx, otherTenant, ListEntriesParams{})
		require.NoError(t, err)
		require.Empty(t, foreign)
	})
}

func TestConcurrentInsertsHaveExactlyOneWinner(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("skipping concurrent insert integration test in short mode")
	}

	ctx := context.Background()
	pool := startPostgres(t)
	db := NewTenantDB(pool)

	slots, err := NewTimeSlotStore(ctx, db)
	require.NoError(t, err)
	entries, err := NewEntryStore(ctx, db)
	require.NoError(t, err)

	tenantID := uuid.New()
	slot, err := slots.CreateTimeSlot(ctx, tenantID, CreateTimeSlotParams{
		TimeSlotID: uuid.New(),
		Name:       "Period 2",
		StartTime:  9 * time.Hour,
		EndTime:    9*time.Hour + 45*time.Minute,
		Kind:       "class",
		Days:       []int16{1, 2, 3, 4, 5},
	})
	require.NoError(t, err)

	teacher := uuid.New()
	const writers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := entries.CreateEntry(ctx, tenantID, CreateEntryParams{
				EntryID: uuid.New(),
				Fields: EntryFields{
					TimeSlotID: slot.TimeSlotID,
					Weekday:    4,
					TeacherID:  &teacher,
					Status:     "active",
				},
			})

			mu.Lock()
			defer mu.Unlock()
			var unique *UniqueViolation
			switch {
			case err == nil:
				successes++
			case errors.As(err, &unique):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	require.Equal(t, writers-1, conflicts)
}

func strPtr(v string) *string { return &v }
