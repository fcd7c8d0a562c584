package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const TimeSlotsTable = "time_slots"

const timeSlotColumns = `time_slot_id, tenant_id, name, code, start_time, end_time, slot_kind, position,
        applicable_days, academic_year, term, is_active, created_at, updated_at`

// TimeSlot represents a row in the time_slots table.
// StartTime and EndTime are offsets from midnight.
type TimeSlot struct {
	TimeSlotID   uuid.UUID     `db:"time_slot_id" json:"timeSlotId"`
	TenantID     uuid.UUID     `db:"tenant_id" json:"tenantId"`
	Name         string        `db:"name" json:"name"`
	Code         *string       `db:"code" json:"code,omitempty"`
	StartTime    time.Duration `db:"start_time" json:"startTime"`
	EndTime      time.Duration `db:"end_time" json:"endTime"`
	Kind         string        `db:"slot_kind" json:"kind"`
	Position     int           `db:"position" json:"position"`
	Days         []int16       `db:"applicable_days" json:"days"`
	AcademicYear *string       `db:"academic_year" json:"academicYear,omitempty"`
	Term         *string       `db:"term" json:"term,omitempty"`
	IsActive     bool          `db:"is_active" json:"isActive"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}

// TimeSlotStore exposes persistence helpers for the time_slots table.
type TimeSlotStore struct {
	db *TenantDB
}

// NewTimeSlotStore returns a store bound to the tenant-scoped database wrapper.
func NewTimeSlotStore(ctx context.Context, db *TenantDB) (*TimeSlotStore, error) {
	if db == nil {
		return nil, errors.New("tenant db is required")
	}
	return &TimeSlotStore{db: db}, nil
}

// CreateTimeSlotParams captures the fields required to insert a new time slot.
type CreateTimeSlotParams struct {
	TimeSlotID   uuid.UUID
	Name         string
	Code         *string
	StartTime    time.Duration
	EndTime      time.Duration
	Kind         string
	Position     int
	Days         []int16
	AcademicYear *string
	Term         *string
}

// ListTimeSlotsParams filters ListTimeSlots. With AcademicYear set, slots of that year and
// slots without a year are both returned.
type ListTimeSlotsParams struct {
	AcademicYear *string
	ActiveOnly   bool
}

// UpdateTimeSlotParams represents editable fields; nil leaves a column untouched.
type UpdateTimeSlotParams struct {
	Name         *string
	Code         *string
	StartTime    *time.Duration
	EndTime      *time.Duration
	Kind         *string
	Position     *int
	Days         []int16
	AcademicYear *string
	Term         *string
	IsActive     *bool
}

// CreateTimeSlot inserts a new time slot and returns the persisted record.
func (s *TimeSlotStore) CreateTimeSlot(ctx context.Context, tenantID uuid.UUID, params CreateTimeSlotParams) (TimeSlot, error) {
	if params.TimeSlotID == uuid.Nil {
		return TimeSlot{}, errors.New("time slot id is required")
	}

	var slot TimeSlot
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s (time_slot_id, tenant_id, name, code, start_time, end_time, slot_kind, position,
                        applicable_days, academic_year, term)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING %s
    `, TimeSlotsTable, timeSlotColumns),
			params.TimeSlotID,
			tenantID,
			strings.TrimSpace(params.Name),
			nullIfBlank(params.Code),
			toPGTime(params.StartTime),
			toPGTime(params.EndTime),
			params.Kind,
			params.Position,
			params.Days,
			nullIfBlank(params.AcademicYear),
			nullIfBlank(params.Term),
		)

		var scanErr error
		slot, scanErr = scanTimeSlot(row)
		return scanErr
	})
	if err != nil {
		return TimeSlot{}, translateWriteError(err)
	}

	return slot, nil
}

// ListTimeSlots returns the tenant's time slots ordered by position, then start time.
func (s *TimeSlotStore) ListTimeSlots(ctx context.Context, tenantID uuid.UUID, params ListTimeSlotsParams) ([]TimeSlot, error) {
	whereParts := []string{"tenant_id = $1"}
	args := []any{tenantID}

	if params.ActiveOnly {
		whereParts = append(whereParts, "is_active")
	}
	if params.AcademicYear != nil && strings.TrimSpace(*params.AcademicYear) != "" {
		args = append(args, strings.TrimSpace(*params.AcademicYear))
		whereParts = append(whereParts, fmt.Sprintf("(academic_year = $%d OR academic_year IS NULL)", len(args)))
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE %s
        ORDER BY position ASC, start_time ASC, name ASC
    `, timeSlotColumns, TimeSlotsTable, strings.Join(whereParts, " AND "))

	slots := make([]TimeSlot, 0)
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("list time slots: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			slot, scanErr := scanTimeSlot(rows)
			if scanErr != nil {
				return fmt.Errorf("scan time slot: %w", scanErr)
			}
			slots = append(slots, slot)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate time slots: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// GetTimeSlot returns a single time slot by identifier.
func (s *TimeSlotStore) GetTimeSlot(ctx context.Context, tenantID, id uuid.UUID) (TimeSlot, error) {
	var slot TimeSlot
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        SELECT %s FROM %s WHERE tenant_id = $1 AND time_slot_id = $2
    `, timeSlotColumns, TimeSlotsTable), tenantID, id)

		var scanErr error
		slot, scanErr = scanTimeSlot(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TimeSlot{}, ErrNotFound
		}
		return TimeSlot{}, err
	}

	return slot, nil
}

// UpdateTimeSlot applies the provided fields and returns the updated record.
func (s *TimeSlotStore) UpdateTimeSlot(ctx context.Context, tenantID, id uuid.UUID, params UpdateTimeSlotParams) (TimeSlot, error) {
	setParts := []string{}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", strings.TrimSpace(*params.Name))
	}
	if params.Code != nil {
		add("code", nullIfBlank(params.Code))
	}
	if params.StartTime != nil {
		add("start_time", toPGTime(*params.StartTime))
	}
	if params.EndTime != nil {
		add("end_time", toPGTime(*params.EndTime))
	}
	if params.Kind != nil {
		add("slot_kind", *params.Kind)
	}
	if params.Position != nil {
		add("position", *params.Position)
	}
	if params.Days != nil {
		add("applicable_days", params.Days)
	}
	if params.AcademicYear != nil {
		add("academic_year", nullIfBlank(params.AcademicYear))
	}
	if params.Term != nil {
		add("term", nullIfBlank(params.Term))
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(setParts) == 0 {
		return TimeSlot{}, errors.New("no fields to update")
	}

	args = append(args, tenantID, id)
	query := fmt.Sprintf(`
        UPDATE %s
        SET %s, updated_at = NOW()
        WHERE tenant_id = $%d AND time_slot_id = $%d
        RETURNING %s
    `, TimeSlotsTable, strings.Join(setParts, ", "), len(args)-1, len(args), timeSlotColumns)

	var slot TimeSlot
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		var scanErr error
		slot, scanErr = scanTimeSlot(tx.QueryRow(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TimeSlot{}, ErrNotFound
		}
		return TimeSlot{}, translateWriteError(err)
	}

	return slot, nil
}

func scanTimeSlot(row pgx.Row) (TimeSlot, error) {
	var (
		slot       TimeSlot
		start, end pgtype.Time
	)

	if err := row.Scan(
		&slot.TimeSlotID,
		&slot.TenantID,
		&slot.Name,
		&slot.Code,
		&start,
		&end,
		&slot.Kind,
		&slot.Position,
		&slot.Days,
		&slot.AcademicYear,
		&slot.Term,
		&slot.IsActive,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	); err != nil {
		return TimeSlot{}, err
	}

	slot.StartTime = fromPGTime(start)
	slot.EndTime = fromPGTime(end)
	return slot, nil
}

func toPGTime(offset time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: offset.Microseconds(), Valid: true}
}

func fromPGTime(t pgtype.Time) time.Duration {
	if !t.Valid {
		return 0
	}
	return time.Duration(t.Microseconds) * time.Microsecond
}

// nullIfBlank maps nil and whitespace-only strings to SQL NULL.
func nullIfBlank(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
