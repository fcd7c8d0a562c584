package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const EntriesTable = "timetable_entries"

// Partial unique indexes guarding active entries, and the foreign keys of timetable_entries.
const (
	TeacherActiveIndex = "timetable_entries_teacher_active_uq"
	RoomActiveIndex    = "timetable_entries_room_active_uq"
	ClassActiveIndex   = "timetable_entries_class_active_uq"

	EntryTimeSlotForeignKey = "timetable_entries_time_slot_id_fkey"
	EntryRoomForeignKey     = "timetable_entries_room_id_fkey"
)

const entryColumns = `e.entry_id, e.tenant_id, e.time_slot_id, e.weekday, e.course_id, e.subject_name, e.teacher_id,
        e.room_id, e.class_name, e.section, e.academic_year, e.term, e.effective_from, e.effective_until,
        e.status, e.notes, e.created_by, e.created_at, e.updated_at`

// Entry represents a row in the timetable_entries table.
type Entry struct {
	EntryID        uuid.UUID  `db:"entry_id" json:"entryId"`
	TenantID       uuid.UUID  `db:"tenant_id" json:"tenantId"`
	TimeSlotID     uuid.UUID  `db:"time_slot_id" json:"timeSlotId"`
	Weekday        int16      `db:"weekday" json:"weekday"`
	CourseID       *uuid.UUID `db:"course_id" json:"courseId,omitempty"`
	SubjectName    *string    `db:"subject_name" json:"subjectName,omitempty"`
	TeacherID      *uuid.UUID `db:"teacher_id" json:"teacherId,omitempty"`
	RoomID         *uuid.UUID `db:"room_id" json:"roomId,omitempty"`
	ClassName      *string    `db:"class_name" json:"className,omitempty"`
	Section        *string    `db:"section" json:"section,omitempty"`
	AcademicYear   *string    `db:"academic_year" json:"academicYear,omitempty"`
	Term           *string    `db:"term" json:"term,omitempty"`
	EffectiveFrom  *time.Time `db:"effective_from" json:"effectiveFrom,omitempty"`
	EffectiveUntil *time.Time `db:"effective_until" json:"effectiveUntil,omitempty"`
	Status         string     `db:"status" json:"status"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	CreatedBy      *string    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// EntryFields holds every writable column of an entry. Writes always carry the complete set.
type EntryFields struct {
	TimeSlotID     uuid.UUID
	Weekday        int16
	CourseID       *uuid.UUID
	SubjectName    *string
	TeacherID      *uuid.UUID
	RoomID         *uuid.UUID
	ClassName      *string
	Section        *string
	AcademicYear   *string
	Term           *string
	EffectiveFrom  *time.Time
	EffectiveUntil *time.Time
	Status         string
	Notes          *string
}

// CreateEntryParams captures the fields required to insert a new entry.
type CreateEntryParams struct {
	EntryID   uuid.UUID
	Fields    EntryFields
	CreatedBy *string
}

// ListEntriesParams filters ListEntries; nil filters are ignored.
type ListEntriesParams struct {
	ClassName    *string
	Section      *string
	TeacherID    *uuid.UUID
	RoomID       *uuid.UUID
	TimeSlotID   *uuid.UUID
	Weekday      *int16
	AcademicYear *string
	Statuses     []string
}

// ActiveEntryLookup describes a lookup for an active entry occupying a slot and weekday.
// Every non-nil axis must match. Section is only compared when ClassName is set.
type ActiveEntryLookup struct {
	TimeSlotID     uuid.UUID
	Weekday        int16
	AcademicYear   *string
	ExcludeEntryID *uuid.UUID
	TeacherID      *uuid.UUID
	RoomID         *uuid.UUID
	ClassName      *string
	Section        *string
}

// EntryStore exposes persistence helpers for the timetable_entries table.
type EntryStore struct {
	db *TenantDB
}

// NewEntryStore returns a store bound to the tenant-scoped database wrapper.
func NewEntryStore(ctx context.Context, db *TenantDB) (*EntryStore, error) {
	if db == nil {
		return nil, errors.New("tenant db is required")
	}
	return &EntryStore{db: db}, nil
}

// CreateEntry inserts a new entry in a single statement. Unique index and foreign key failures
// surface as *UniqueViolation and *ForeignKeyViolation.
func (s *EntryStore) CreateEntry(ctx context.Context, tenantID uuid.UUID, params CreateEntryParams) (Entry, error) {
	if params.EntryID == uuid.Nil {
		return Entry{}, errors.New("entry id is required")
	}

	f := params.Fields
	var entry Entry
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s AS e (entry_id, tenant_id, time_slot_id, weekday, course_id, subject_name, teacher_id,
                             room_id, class_name, section, academic_year, term, effective_from,
                             effective_until, status, notes, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING %s
    `, EntriesTable, entryColumns),
			params.EntryID,
			tenantID,
			f.TimeSlotID,
			f.Weekday,
			f.CourseID,
			nullIfBlank(f.SubjectName),
			f.TeacherID,
			f.RoomID,
			nullIfBlank(f.ClassName),
			nullIfBlank(f.Section),
			nullIfBlank(f.AcademicYear),
			nullIfBlank(f.Term),
			f.EffectiveFrom,
			f.EffectiveUntil,
			f.Status,
			nullIfBlank(f.Notes),
			nullIfBlank(params.CreatedBy),
		)

		var scanErr error
		entry, scanErr = scanEntry(row)
		return scanErr
	})
	if err != nil {
		return Entry{}, translateWriteError(err)
	}

	return entry, nil
}

// ReplaceEntry overwrites every writable column of an existing entry in a single statement.
func (s *EntryStore) ReplaceEntry(ctx context.Context, tenantID, id uuid.UUID, f EntryFields) (Entry, error) {
	var entry Entry
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        UPDATE %s AS e
        SET time_slot_id = $3, weekday = $4, course_id = $5, subject_name = $6, teacher_id = $7,
            room_id = $8, class_name = $9, section = $10, academic_year = $11, term = $12,
            effective_from = $13, effective_until = $14, status = $15, notes = $16, updated_at = NOW()
        WHERE e.tenant_id = $1 AND e.entry_id = $2
        RETURNING %s
    `, EntriesTable, entryColumns),
			tenantID,
			id,
			f.TimeSlotID,
			f.Weekday,
			f.CourseID,
			nullIfBlank(f.SubjectName),
			f.TeacherID,
			f.RoomID,
			nullIfBlank(f.ClassName),
			nullIfBlank(f.Section),
			nullIfBlank(f.AcademicYear),
			nullIfBlank(f.Term),
			f.EffectiveFrom,
			f.EffectiveUntil,
			f.Status,
			nullIfBlank(f.Notes),
		)

		var scanErr error
		entry, scanErr = scanEntry(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, translateWriteError(err)
	}

	return entry, nil
}

// GetEntry returns a single entry by identifier.
func (s *EntryStore) GetEntry(ctx context.Context, tenantID, id uuid.UUID) (Entry, error) {
	var entry Entry
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        SELECT %s FROM %s AS e WHERE e.tenant_id = $1 AND e.entry_id = $2
    `, entryColumns, EntriesTable), tenantID, id)

		var scanErr error
		entry, scanErr = scanEntry(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}

	return entry, nil
}

// ListEntries returns matching entries ordered by weekday, slot position and class.
func (s *EntryStore) ListEntries(ctx context.Context, tenantID uuid.UUID, params ListEntriesParams) ([]Entry, error) {
	whereParts := []string{"e.tenant_id = $1"}
	args := []any{tenantID}

	addFilter := func(format string, value any) {
		args = append(args, value)
		whereParts = append(whereParts, fmt.Sprintf(format, len(args)))
	}

	if v := nullIfBlank(params.ClassName); v != nil {
		addFilter("e.class_name = $%d", *v)
	}
	if v := nullIfBlank(params.Section); v != nil {
		addFilter("e.section = $%d", *v)
	}
	if params.TeacherID != nil {
		addFilter("e.teacher_id = $%d", *params.TeacherID)
	}
	if params.RoomID != nil {
		addFilter("e.room_id = $%d", *params.RoomID)
	}
	if params.TimeSlotID != nil {
		addFilter("e.time_slot_id = $%d", *params.TimeSlotID)
	}
	if params.Weekday != nil {
		addFilter("e.weekday = $%d", *params.Weekday)
	}
	if v := nullIfBlank(params.AcademicYear); v != nil {
		addFilter("e.academic_year = $%d", *v)
	}
	if len(params.Statuses) > 0 {
		addFilter("e.status = ANY($%d::text[])", params.Statuses)
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s AS e
        JOIN %s AS ts ON ts.time_slot_id = e.time_slot_id
        WHERE %s
        ORDER BY e.weekday ASC, ts.position ASC, ts.start_time ASC, e.class_name ASC NULLS LAST,
                 e.section ASC NULLS FIRST, e.created_at ASC
    `, entryColumns, EntriesTable, TimeSlotsTable, strings.Join(whereParts, " AND "))

	entries := make([]Entry, 0)
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			entry, scanErr := scanEntry(rows)
			if scanErr != nil {
				return fmt.Errorf("scan entry: %w", scanErr)
			}
			entries = append(entries, entry)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindActiveEntry returns the oldest active entry matching the lookup, if any.
func (s *EntryStore) FindActiveEntry(ctx context.Context, tenantID uuid.UUID, lookup ActiveEntryLookup) (Entry, bool, error) {
	whereParts := []string{
		"e.tenant_id = $1",
		"e.time_slot_id = $2",
		"e.weekday = $3",
		"e.status = 'active'",
	}
	args := []any{tenantID, lookup.TimeSlotID, lookup.Weekday}

	addFilter := func(format string, value any) {
		args = append(args, value)
		whereParts = append(whereParts, fmt.Sprintf(format, len(args)))
	}

	if v := nullIfBlank(lookup.AcademicYear); v != nil {
		addFilter("e.academic_year = $%d", *v)
	}
	if lookup.ExcludeEntryID != nil {
		addFilter("e.entry_id <> $%d", *lookup.ExcludeEntryID)
	}
	if lookup.TeacherID != nil {
		addFilter("e.teacher_id = $%d", *lookup.TeacherID)
	}
	if lookup.RoomID != nil {
		addFilter("e.room_id = $%d", *lookup.RoomID)
	}
	if className := nullIfBlank(lookup.ClassName); className != nil {
		addFilter("e.class_name = $%d", *className)
		if section := nullIfBlank(lookup.Section); section != nil {
			addFilter("e.section = $%d", *section)
		}
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s AS e
        WHERE %s
        ORDER BY e.created_at ASC
        LIMIT 1
    `, entryColumns, EntriesTable, strings.Join(whereParts, " AND "))

	var entry Entry
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		var scanErr error
		entry, scanErr = scanEntry(tx.QueryRow(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("find active entry: %w", err)
	}

	return entry, true, nil
}

func scanEntry(row pgx.Row) (Entry, error) {
	var entry Entry
	if err := row.Scan(
		&entry.EntryID,
		&entry.TenantID,
		&entry.TimeSlotID,
		&entry.Weekday,
		&entry.CourseID,
		&entry.SubjectName,
		&entry.TeacherID,
		&entry.RoomID,
		&entry.ClassName,
		&entry.Section,
		&entry.AcademicYear,
		&entry.Term,
		&entry.EffectiveFrom,
		&entry.EffectiveUntil,
		&entry.Status,
		&entry.Notes,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
