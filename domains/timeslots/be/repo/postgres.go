package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

type postgresRepository struct {
	store *persistence.TimeSlotStore
}

// NewPostgresRepository constructs a repository backed by the shared persistence layer.
func NewPostgresRepository(store *persistence.TimeSlotStore) service.Repository {
	if store == nil {
		panic("time slot store is required")
	}
	return &postgresRepository{store: store}
}

func (r *postgresRepository) Create(ctx context.Context, slot service.TimeSlot) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	record, err := r.store.CreateTimeSlot(ctx, space.TenantID, persistence.CreateTimeSlotParams{
		TimeSlotID:   slot.ID,
		Name:         slot.Name,
		Code:         slot.Code,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Kind:         string(slot.Kind),
		Position:     slot.Position,
		Days:         toSmallInts(slot.Days),
		AcademicYear: slot.AcademicYear,
		Term:         slot.Term,
	})
	if err != nil {
		return service.TimeSlot{}, mapPersistenceError(err)
	}
	return mapTimeSlot(record), nil
}

func (r *postgresRepository) List(ctx context.Context, opts service.ListOptions) ([]service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	records, err := r.store.ListTimeSlots(ctx, space.TenantID, persistence.ListTimeSlotsParams{
		AcademicYear: opts.AcademicYear,
		ActiveOnly:   opts.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	slots := make([]service.TimeSlot, 0, len(records))
	for _, record := range records {
		slots = append(slots, mapTimeSlot(record))
	}
	return slots, nil
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	record, err := r.store.GetTimeSlot(ctx, space.TenantID, id)
	if err != nil {
		return service.TimeSlot{}, mapPersistenceError(err)
	}
	return mapTimeSlot(record), nil
}

func (r *postgresRepository) Update(ctx context.Context, slot service.TimeSlot) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	kind := string(slot.Kind)
	record, err := r.store.UpdateTimeSlot(ctx, space.TenantID, slot.ID, persistence.UpdateTimeSlotParams{
		Name:         &slot.Name,
		Code:         textOrClear(slot.Code),
		StartTime:    &slot.StartTime,
		EndTime:      &slot.EndTime,
		Kind:         &kind,
		Position:     &slot.Position,
		Days:         toSmallInts(slot.Days),
		AcademicYear: textOrClear(slot.AcademicYear),
		Term:         textOrClear(slot.Term),
		IsActive:     &slot.IsActive,
	})
	if err != nil {
		return service.TimeSlot{}, mapPersistenceError(err)
	}
	return mapTimeSlot(record), nil
}

func mapTimeSlot(record persistence.TimeSlot) service.TimeSlot {
	days := make([]int, 0, len(record.Days))
	for _, day := range record.Days {
		days = append(days, int(day))
	}

	return service.TimeSlot{
		ID:           record.TimeSlotID,
		Name:         record.Name,
		Code:         record.Code,
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
		Kind:         service.Kind(record.Kind),
		Position:     record.Position,
		Days:         days,
		AcademicYear: record.AcademicYear,
		Term:         record.Term,
		IsActive:     record.IsActive,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func mapPersistenceError(err error) error {
	var check *persistence.CheckViolation
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return service.ErrNotFound
	case errors.As(err, &check):
		return &service.ValidationError{Fields: service.FieldErrors{
			"payload": {"time slot violates " + check.Constraint},
		}}
	default:
		return err
	}
}

// textOrClear turns an absent optional value into "", which the store writes as NULL.
func textOrClear(value *string) *string {
	if value == nil {
		empty := ""
		return &empty
	}
	return value
}

func toSmallInts(days []int) []int16 {
	out := make([]int16, 0, len(days))
	for _, day := range days {
		out = append(out, int16(day))
	}
	return out
}
