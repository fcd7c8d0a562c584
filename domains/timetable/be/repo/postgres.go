package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

type postgresRepository struct {
	store *persistence.EntryStore
}

// NewPostgresRepository constructs a repository backed by the shared persistence layer.
func NewPostgresRepository(store *persistence.EntryStore) service.Repository {
	if store == nil {
		panic("entry store is required")
	}
	return &postgresRepository{store: store}
}

func (r *postgresRepository) Create(ctx context.Context, entry service.Entry) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	record, err := r.store.CreateEntry(ctx, space.TenantID, persistence.CreateEntryParams{
		EntryID:   entry.ID,
		Fields:    toFields(entry),
		CreatedBy: entry.CreatedBy,
	})
	if err != nil {
		return service.Entry{}, mapPersistenceError(err)
	}
	return mapEntry(record), nil
}

func (r *postgresRepository) Update(ctx context.Context, entry service.Entry) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	record, err := r.store.ReplaceEntry(ctx, space.TenantID, entry.ID, toFields(entry))
	if err != nil {
		return service.Entry{}, mapPersistenceError(err)
	}
	return mapEntry(record), nil
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	record, err := r.store.GetEntry(ctx, space.TenantID, id)
	if err != nil {
		return service.Entry{}, mapPersistenceError(err)
	}
	return mapEntry(record), nil
}

func (r *postgresRepository) List(ctx context.Context, filter service.ListFilter) ([]service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	params := persistence.ListEntriesParams{
		ClassName:    filter.ClassName,
		Section:      filter.Section,
		TeacherID:    filter.TeacherID,
		RoomID:       filter.RoomID,
		TimeSlotID:   filter.TimeSlotID,
		AcademicYear: filter.AcademicYear,
	}
	if filter.Weekday != nil {
		weekday := int16(*filter.Weekday)
		params.Weekday = &weekday
	}
	for _, status := range filter.Statuses {
		params.Statuses = append(params.Statuses, string(status))
	}

	records, err := r.store.ListEntries(ctx, space.TenantID, params)
	if err != nil {
		return nil, err
	}

	entries := make([]service.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, mapEntry(record))
	}
	return entries, nil
}

func (r *postgresRepository) FindActive(ctx context.Context, lookup service.ActiveLookup) (service.Entry, bool, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, false, err
	}

	record, found, err := r.store.FindActiveEntry(ctx, space.TenantID, persistence.ActiveEntryLookup{
		TimeSlotID:     lookup.TimeSlotID,
		Weekday:        int16(lookup.Weekday),
		AcademicYear:   lookup.AcademicYear,
		ExcludeEntryID: lookup.ExcludeEntryID,
		TeacherID:      lookup.TeacherID,
		RoomID:         lookup.RoomID,
		ClassName:      lookup.ClassName,
		Section:        lookup.Section,
	})
	if err != nil || !found {
		return service.Entry{}, false, err
	}
	return mapEntry(record), true, nil
}

func toFields(entry service.Entry) persistence.EntryFields {
	return persistence.EntryFields{
		TimeSlotID:     entry.TimeSlotID,
		Weekday:        int16(entry.Weekday),
		CourseID:       entry.CourseID,
		SubjectName:    entry.SubjectName,
		TeacherID:      entry.TeacherID,
		RoomID:         entry.RoomID,
		ClassName:      entry.ClassName,
		Section:        entry.Section,
		AcademicYear:   entry.AcademicYear,
		Term:           entry.Term,
		EffectiveFrom:  entry.EffectiveFrom,
		EffectiveUntil: entry.EffectiveUntil,
		Status:         string(entry.Status),
		Notes:          entry.Notes,
	}
}

func mapEntry(record persistence.Entry) service.Entry {
	return service.Entry{
		ID:             record.EntryID,
		TimeSlotID:     record.TimeSlotID,
		Weekday:        int(record.Weekday),
		CourseID:       record.CourseID,
		SubjectName:    record.SubjectName,
		TeacherID:      record.TeacherID,
		RoomID:         record.RoomID,
		ClassName:      record.ClassName,
		Section:        record.Section,
		AcademicYear:   record.AcademicYear,
		Term:           record.Term,
		EffectiveFrom:  record.EffectiveFrom,
		EffectiveUntil: record.EffectiveUntil,
		Status:         service.Status(record.Status),
		Notes:          record.Notes,
		CreatedBy:      record.CreatedBy,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// mapPersistenceError translates constraint failures into domain errors so pgx types never leave
// this package.
func mapPersistenceError(err error) error {
	var (
		unique *persistence.UniqueViolation
		fk     *persistence.ForeignKeyViolation
		check  *persistence.CheckViolation
	)

	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return service.ErrNotFound
	case errors.As(err, &unique):
		if axis, ok := axisForIndex(unique.Constraint); ok {
			return &service.StorageConflictError{Axis: axis, Err: err}
		}
		return err
	case errors.As(err, &fk):
		switch fk.Constraint {
		case persistence.EntryTimeSlotForeignKey:
			return service.ErrTimeSlotNotFound
		case persistence.EntryRoomForeignKey:
			return service.ErrRoomNotFound
		}
		return err
	case errors.As(err, &check):
		return &service.ValidationError{Fields: service.FieldErrors{
			"payload": {"entry violates " + check.Constraint},
		}}
	default:
		return err
	}
}

func axisForIndex(name string) (service.Axis, bool) {
	switch name {
	case persistence.TeacherActiveIndex:
		return service.AxisTeacher, true
	case persistence.RoomActiveIndex:
		return service.AxisRoom, true
	case persistence.ClassActiveIndex:
		return service.AxisClass, true
	default:
		return "", false
	}
}
