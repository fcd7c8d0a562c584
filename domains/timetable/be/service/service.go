package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	roomsvc "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	slotsvc "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/metrics"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/requesttrace"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/staffdir"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/validation"
)

// FieldErrors maps request fields to validation issues.
type FieldErrors map[string][]string

// ValidationError is returned when the input payload is invalid.
type ValidationError struct {
	Fields FieldErrors
}

func (v *ValidationError) Error() string {
	return "validation error"
}

var (
	// ErrNotFound is returned when the entry does not exist in the tenant.
	ErrNotFound = errors.New("timetable entry not found")
	// ErrTimeSlotNotFound is returned when the referenced time slot does not exist in the tenant.
	ErrTimeSlotNotFound = errors.New("time slot not found")
	// ErrRoomNotFound is returned when the referenced room does not exist in the tenant.
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidTransition is returned for status changes the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Status is the lifecycle state of an entry. Only active entries take part in conflict checks.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Entry assigns a subject, teacher, room and class to one time slot on one weekday.
type Entry struct {
	ID             uuid.UUID
	TimeSlotID     uuid.UUID
	Weekday        int
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
	Status         Status
	Notes          *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateInput represents the payload required to schedule an entry.
type CreateInput struct {
	TimeSlotID     uuid.UUID  `json:"timeSlotId"`
	Weekday        int        `json:"weekday" validate:"min=1,max=7"`
	CourseID       *uuid.UUID `json:"courseId"`
	SubjectName    *string    `json:"subjectName" validate:"omitempty,max=200"`
	TeacherID      *uuid.UUID `json:"teacherId"`
	RoomID         *uuid.UUID `json:"roomId"`
	ClassName      *string    `json:"className" validate:"omitempty,max=100"`
	Section        *string    `json:"section" validate:"omitempty,max=50"`
	AcademicYear   *string    `json:"academicYear" validate:"omitempty,max=20"`
	Term           *string    `json:"term" validate:"omitempty,max=50"`
	EffectiveFrom  *time.Time `json:"effectiveFrom"`
	EffectiveUntil *time.Time `json:"effectiveUntil"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft active"`
	Notes          *string    `json:"notes" validate:"omitempty,max=2000"`

	// SkipConflictCheck skips the pre-flight check only. Storage still rejects double-booked
	// active entries.
	SkipConflictCheck bool `json:"-"`
}

// UpdateInput holds editable fields. Clear lists optional fields to reset to empty.
type UpdateInput struct {
	TimeSlotID     *uuid.UUID `json:"timeSlotId"`
	Weekday        *int       `json:"weekday" validate:"omitempty,min=1,max=7"`
	CourseID       *uuid.UUID `json:"courseId"`
	SubjectName    *string    `json:"subjectName" validate:"omitempty,max=200"`
	TeacherID      *uuid.UUID `json:"teacherId"`
	RoomID         *uuid.UUID `json:"roomId"`
	ClassName      *string    `json:"className" validate:"omitempty,max=100"`
	Section        *string    `json:"section" validate:"omitempty,max=50"`
	AcademicYear   *string    `json:"academicYear" validate:"omitempty,max=20"`
	Term           *string    `json:"term" validate:"omitempty,max=50"`
	EffectiveFrom  *time.Time `json:"effectiveFrom"`
	EffectiveUntil *time.Time `json:"effectiveUntil"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft active archived"`
	Notes          *string    `json:"notes" validate:"omitempty,max=2000"`
	Clear          []string   `json:"clear" validate:"omitempty,dive,oneof=teacherId roomId courseId subjectName className section term notes effectiveFrom effectiveUntil academicYear"`

	SkipConflictCheck bool `json:"-"`
}

// ListFilter narrows List. Nil filters are ignored.
type ListFilter struct {
	ClassName    *string
	Section      *string
	TeacherID    *uuid.UUID
	RoomID       *uuid.UUID
	TimeSlotID   *uuid.UUID
	Weekday      *int
	AcademicYear *string
	Statuses     []Status
}

// Repository persists entries for the tenant attached to the context. Writes that would
// double-book an active entry fail with *StorageConflictError.
type Repository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	FindActive(ctx context.Context, lookup ActiveLookup) (Entry, bool, error)
}

// SlotCatalog is the subset of the time slot catalog the timetable depends on.
type SlotCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (slotsvc.TimeSlot, error)
	List(ctx context.Context, opts slotsvc.ListOptions) ([]slotsvc.TimeSlot, error)
}

// RoomRegistry is the subset of the room registry the timetable depends on.
type RoomRegistry interface {
	Get(ctx context.Context, id uuid.UUID) (roomsvc.Room, error)
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]roomsvc.Room, error)
}

// Service defines the timetable operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Entry, error)
	Archive(ctx context.Context, id uuid.UUID) (Entry, error)
	Activate(ctx context.Context, id uuid.UUID) (Entry, error)
	BulkCreate(ctx context.Context, inputs []CreateInput) (BulkResult, error)
	Check(ctx context.Context, query CheckQuery) ([]Conflict, error)
	BuildGrid(ctx context.Context, query GridQuery) (Grid, error)
}

// Dependencies wires the timetable service to its collaborators.
type Dependencies struct {
	Repo   Repository
	Slots  SlotCatalog
	Rooms  RoomRegistry
	Staff  staffdir.Directory
	Logger *zap.Logger
}

type service struct {
	repo    Repository
	slots   SlotCatalog
	rooms   RoomRegistry
	staff   staffdir.Directory
	checker *Checker
	logger  *zap.Logger
}

// New constructs the timetable Service.
func New(deps Dependencies) Service {
	if deps.Repo == nil {
		panic("entry repository is required")
	}
	if deps.Slots == nil {
		panic("time slot catalog is required")
	}
	if deps.Rooms == nil {
		panic("room registry is required")
	}
	if deps.Staff == nil {
		deps.Staff = staffdir.Noop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:    deps.Repo,
		slots:   deps.Slots,
		rooms:   deps.Rooms,
		staff:   deps.Staff,
		checker: NewChecker(deps.Repo),
		logger:  deps.Logger,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (entry Entry, err error) {
	defer func() { recordWrite("create", err) }()

	if fields := validation.Struct(input); len(fields) > 0 {
		return Entry{}, &ValidationError{Fields: fields}
	}

	status := StatusActive
	if input.Status != "" {
		status = Status(input.Status)
	}

	candidate := Entry{
		ID:             uuid.New(),
		TimeSlotID:     input.TimeSlotID,
		Weekday:        input.Weekday,
		CourseID:       presentID(input.CourseID),
		SubjectName:    trimmed(input.SubjectName),
		TeacherID:      presentID(input.TeacherID),
		RoomID:         presentID(input.RoomID),
		ClassName:      trimmed(input.ClassName),
		Section:        trimmed(input.Section),
		AcademicYear:   trimmed(input.AcademicYear),
		Term:           trimmed(input.Term),
		EffectiveFrom:  input.EffectiveFrom,
		EffectiveUntil: input.EffectiveUntil,
		Status:         status,
		Notes:          trimmed(input.Notes),
		CreatedBy:      requesttrace.FromContextOrAnonymous(ctx).ActorID(),
	}

	if err := s.validateEntry(ctx, candidate); err != nil {
		return Entry{}, err
	}

	if candidate.Status == StatusActive && !input.SkipConflictCheck {
		if err := s.precheck(ctx, candidate); err != nil {
			return Entry{}, err
		}
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return Entry{}, s.translateStorageError(ctx, candidate, err)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	if id == uuid.Nil {
		return Entry{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	filter.ClassName = trimmed(filter.ClassName)
	filter.Section = trimmed(filter.Section)
	filter.AcademicYear = trimmed(filter.AcademicYear)
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (entry Entry, err error) {
	defer func() { recordWrite("update", err) }()

	if id == uuid.Nil {
		return Entry{}, ErrNotFound
	}
	if fields := validation.Struct(input); len(fields) > 0 {
		return Entry{}, &ValidationError{Fields: fields}
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if current.Status == StatusArchived {
		return Entry{}, fmt.Errorf("%w: archived entries cannot be modified", ErrInvalidTransition)
	}

	merged, changed := applyUpdate(current, input)
	if !changed {
		return Entry{}, &ValidationError{Fields: FieldErrors{"payload": {"at least one field must be provided"}}}
	}
	if !canTransition(current.Status, merged.Status) {
		return Entry{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, merged.Status)
	}

	if err := s.validateEntry(ctx, merged); err != nil {
		return Entry{}, err
	}

	if merged.Status == StatusActive && !input.SkipConflictCheck {
		if err := s.precheck(ctx, merged); err != nil {
			return Entry{}, err
		}
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return Entry{}, s.translateStorageError(ctx, merged, err)
	}
	return updated, nil
}

// Archive retires an entry. Archiving an archived entry returns it unchanged.
func (s *service) Archive(ctx context.Context, id uuid.UUID) (entry Entry, err error) {
	defer func() { recordWrite("archive", err) }()

	current, err := s.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if current.Status == StatusArchived {
		return current, nil
	}

	current.Status = StatusArchived
	return s.repo.Update(ctx, current)
}

// Activate promotes a draft entry after checking it against the active timetable.
func (s *service) Activate(ctx context.Context, id uuid.UUID) (entry Entry, err error) {
	defer func() { recordWrite("activate", err) }()

	current, err := s.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	switch current.Status {
	case StatusActive:
		return current, nil
	case StatusArchived:
		return Entry{}, fmt.Errorf("%w: archived entries cannot be reactivated", ErrInvalidTransition)
	}

	current.Status = StatusActive
	if err := s.validateEntry(ctx, current); err != nil {
		return Entry{}, err
	}
	if err := s.precheck(ctx, current); err != nil {
		return Entry{}, err
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return Entry{}, s.translateStorageError(ctx, current, err)
	}
	return updated, nil
}

func (s *service) Check(ctx context.Context, query CheckQuery) ([]Conflict, error) {
	fields := FieldErrors(validation.Struct(query))
	if fields == nil {
		fields = FieldErrors{}
	}
	if query.TimeSlotID == uuid.Nil {
		fields.add("timeSlotId", "timeSlotId is required")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return s.checker.Check(ctx, query)
}

// validateEntry checks the merged entry and resolves its time slot and room in the tenant.
func (s *service) validateEntry(ctx context.Context, entry Entry) error {
	fields := FieldErrors{}

	if entry.TimeSlotID == uuid.Nil {
		fields.add("timeSlotId", "timeSlotId is required")
	}
	if entry.Section != nil && entry.ClassName == nil {
		fields.add("section", "section requires className")
	}
	if entry.EffectiveFrom != nil && entry.EffectiveUntil != nil && !entry.EffectiveFrom.Before(*entry.EffectiveUntil) {
		fields.add("effectiveUntil", "effectiveUntil must be after effectiveFrom")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	slot, err := s.slots.Get(ctx, entry.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotsvc.ErrNotFound) {
			return ErrTimeSlotNotFound
		}
		return fmt.Errorf("resolve time slot: %w", err)
	}
	if !slot.AppliesOn(entry.Weekday) {
		fields.add("weekday", fmt.Sprintf("time slot %q does not run on weekday %d", slot.Name, entry.Weekday))
	}
	if entry.Status == StatusActive && !slot.IsActive {
		fields.add("timeSlotId", "time slot is inactive")
	}

	if entry.RoomID != nil {
		if _, err := s.rooms.Get(ctx, *entry.RoomID); err != nil {
			if errors.Is(err, roomsvc.ErrNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("resolve room: %w", err)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *service) precheck(ctx context.Context, entry Entry) error {
	query := checkQueryFor(entry)
	query.ExcludeEntryID = &entry.ID

	conflicts, err := s.checker.Check(ctx, query)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return nil
	}

	for _, c := range conflicts {
		metrics.IncConflict(string(c.Type), metrics.SourcePrecheck)
	}
	s.loggerFrom(ctx).Info("entry rejected by conflict check",
		zap.String("timeSlotId", entry.TimeSlotID.String()),
		zap.Int("weekday", entry.Weekday),
		zap.Int("conflicts", len(conflicts)),
	)
	return &ConflictError{Conflicts: conflicts}
}

// translateStorageError converts a uniqueness rejection into the same ConflictError a failed
// pre-check produces. The winning row is described when visible, otherwise synthesized.
func (s *service) translateStorageError(ctx context.Context, entry Entry, err error) error {
	var storageErr *StorageConflictError
	if !errors.As(err, &storageErr) {
		return err
	}

	metrics.IncConflict(string(storageErr.Axis), metrics.SourceStorage)
	s.loggerFrom(ctx).Warn("entry rejected by storage constraint",
		zap.String("axis", string(storageErr.Axis)),
		zap.String("timeSlotId", entry.TimeSlotID.String()),
		zap.Int("weekday", entry.Weekday),
	)

	query := checkQueryFor(entry)
	query.ExcludeEntryID = &entry.ID
	conflicts, checkErr := s.checker.Check(ctx, query)
	if checkErr != nil {
		s.loggerFrom(ctx).Warn("describe storage conflict", zap.Error(checkErr))
		conflicts = nil
	}

	for _, c := range conflicts {
		if c.Type == storageErr.Axis {
			return &ConflictError{Conflicts: conflicts}
		}
	}
	return &ConflictError{Conflicts: append(conflicts, synthesize(storageErr.Axis, entry))}
}

func (s *service) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return s.logger
}

func checkQueryFor(entry Entry) CheckQuery {
	return CheckQuery{
		TimeSlotID:   entry.TimeSlotID,
		Weekday:      entry.Weekday,
		AcademicYear: entry.AcademicYear,
		TeacherID:    entry.TeacherID,
		RoomID:       entry.RoomID,
		ClassName:    entry.ClassName,
		Section:      entry.Section,
	}
}

// canTransition reports whether an entry may move between statuses. Archived is terminal.
func canTransition(from, to Status) bool {
	switch {
	case from == StatusArchived:
		return false
	case from == to:
		return true
	case from == StatusDraft:
		return to == StatusActive || to == StatusArchived
	case from == StatusActive:
		return to == StatusArchived
	default:
		return false
	}
}

func applyUpdate(entry Entry, input UpdateInput) (Entry, bool) {
	changed := false

	if input.TimeSlotID != nil {
		entry.TimeSlotID = *input.TimeSlotID
		changed = true
	}
	if input.Weekday != nil {
		entry.Weekday = *input.Weekday
		changed = true
	}
	if input.CourseID != nil {
		entry.CourseID = presentID(input.CourseID)
		changed = true
	}
	if input.SubjectName != nil {
		entry.SubjectName = trimmed(input.SubjectName)
		changed = true
	}
	if input.TeacherID != nil {
		entry.TeacherID = presentID(input.TeacherID)
		changed = true
	}
	if input.RoomID != nil {
		entry.RoomID = presentID(input.RoomID)
		changed = true
	}
	if input.ClassName != nil {
		entry.ClassName = trimmed(input.ClassName)
		changed = true
	}
	if input.Section != nil {
		entry.Section = trimmed(input.Section)
		changed = true
	}
	if input.AcademicYear != nil {
		entry.AcademicYear = trimmed(input.AcademicYear)
		changed = true
	}
	if input.Term != nil {
		entry.Term = trimmed(input.Term)
		changed = true
	}
	if input.EffectiveFrom != nil {
		entry.EffectiveFrom = input.EffectiveFrom
		changed = true
	}
	if input.EffectiveUntil != nil {
		entry.EffectiveUntil = input.EffectiveUntil
		changed = true
	}
	if input.Status != nil {
		entry.Status = Status(*input.Status)
		changed = true
	}
	if input.Notes != nil {
		entry.Notes = trimmed(input.Notes)
		changed = true
	}

	for _, field := range input.Clear {
		switch field {
		case "teacherId":
			entry.TeacherID = nil
		case "roomId":
			entry.RoomID = nil
		case "courseId":
			entry.CourseID = nil
		case "subjectName":
			entry.SubjectName = nil
		case "className":
			entry.ClassName = nil
		case "section":
			entry.Section = nil
		case "term":
			entry.Term = nil
		case "notes":
			entry.Notes = nil
		case "effectiveFrom":
			entry.EffectiveFrom = nil
		case "effectiveUntil":
			entry.EffectiveUntil = nil
		case "academicYear":
			entry.AcademicYear = nil
		}
		changed = true
	}

	return entry, changed
}

func recordWrite(operation string, err error) {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
	)

	outcome := "ok"
	switch {
	case err == nil:
	case errors.As(err, &conflictErr):
		outcome = "conflict"
	case errors.As(err, &validationErr), errors.Is(err, ErrInvalidTransition):
		outcome = "rejected"
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTimeSlotNotFound), errors.Is(err, ErrRoomNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.IncEntryWrite(operation, outcome)
}

func presentID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	v := *id
	return &v
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	t := strings.TrimSpace(*value)
	if t == "" {
		return nil
	}
	return &t
}

func (f FieldErrors) add(field, message string) {
	if f == nil {
		return
	}
	f[field] = append(f[field], message)
}
