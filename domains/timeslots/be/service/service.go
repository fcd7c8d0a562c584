package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/platform/go/clock"
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

// ErrNotFound is returned when the slot does not exist in the tenant.
var ErrNotFound = errors.New("time slot not found")

// ErrInUse is returned when deactivating a slot that active timetable entries still reference.
var ErrInUse = errors.New("time slot is used by active timetable entries")

// Kind classifies what happens during a slot.
type Kind string

const (
	KindClass    Kind = "class"
	KindBreak    Kind = "break"
	KindLunch    Kind = "lunch"
	KindAssembly Kind = "assembly"
	KindFree     Kind = "free"
	KindExam     Kind = "exam"
)

// DefaultDays is Monday to Friday.
var DefaultDays = []int{1, 2, 3, 4, 5}

// TimeSlot is a recurring period of the school day. StartTime and EndTime are offsets from midnight.
type TimeSlot struct {
	ID           uuid.UUID
	Name         string
	Code         *string
	StartTime    time.Duration
	EndTime      time.Duration
	Kind         Kind
	Position     int
	Days         []int
	AcademicYear *string
	Term         *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DurationMinutes is the slot length used for display.
func (s TimeSlot) DurationMinutes() int {
	return clock.Minutes(s.StartTime, s.EndTime)
}

// AppliesOn reports whether the slot runs on weekday. A slot without days applies every day.
func (s TimeSlot) AppliesOn(weekday int) bool {
	if len(s.Days) == 0 {
		return true
	}
	for _, day := range s.Days {
		if day == weekday {
			return true
		}
	}
	return false
}

// CreateInput represents the payload required to create a time slot. Times are "HH:MM".
type CreateInput struct {
	Name         string  `json:"name" validate:"notblank,max=100"`
	Code         *string `json:"code" validate:"omitempty,max=32"`
	StartTime    string  `json:"startTime" validate:"timeofday"`
	EndTime      string  `json:"endTime" validate:"timeofday"`
	Kind         string  `json:"kind" validate:"omitempty,oneof=class break lunch assembly free exam"`
	Position     int     `json:"position" validate:"gte=0"`
	Days         []int   `json:"days" validate:"omitempty,dive,min=1,max=7"`
	AcademicYear *string `json:"academicYear" validate:"omitempty,max=32"`
	Term         *string `json:"term" validate:"omitempty,max=32"`
}

// UpdateInput holds editable fields; nil leaves a field untouched and "" clears an optional text field.
type UpdateInput struct {
	Name         *string `json:"name" validate:"omitempty,notblank,max=100"`
	Code         *string `json:"code" validate:"omitempty,max=32"`
	StartTime    *string `json:"startTime" validate:"omitempty,timeofday"`
	EndTime      *string `json:"endTime" validate:"omitempty,timeofday"`
	Kind         *string `json:"kind" validate:"omitempty,oneof=class break lunch assembly free exam"`
	Position     *int    `json:"position" validate:"omitempty,gte=0"`
	Days         []int   `json:"days" validate:"omitempty,dive,min=1,max=7"`
	AcademicYear *string `json:"academicYear" validate:"omitempty,max=32"`
	Term         *string `json:"term" validate:"omitempty,max=32"`
	IsActive     *bool   `json:"isActive"`
}

// ListOptions filters List. With AcademicYear set, slots without a year are included as global defaults.
type ListOptions struct {
	AcademicYear *string
	ActiveOnly   bool
}

// Repository persists time slots for the tenant attached to the context.
type Repository interface {
	Create(ctx context.Context, slot TimeSlot) (TimeSlot, error)
	List(ctx context.Context, opts ListOptions) ([]TimeSlot, error)
	Get(ctx context.Context, id uuid.UUID) (TimeSlot, error)
	Update(ctx context.Context, slot TimeSlot) (TimeSlot, error)
}

// Service defines the business operations of the time slot catalog.
type Service interface {
	Create(ctx context.Context, input CreateInput) (TimeSlot, error)
	List(ctx context.Context, opts ListOptions) ([]TimeSlot, error)
	Get(ctx context.Context, id uuid.UUID) (TimeSlot, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (TimeSlot, error)
	Deactivate(ctx context.Context, id uuid.UUID) (TimeSlot, error)
}

// UsageChecker reports whether active timetable entries still reference a slot.
type UsageChecker interface {
	SlotInUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// Option customises the Service returned by New.
type Option func(*service)

// WithUsageChecker refuses to deactivate slots that active entries still reference.
func WithUsageChecker(usage UsageChecker) Option {
	return func(s *service) {
		s.usage = usage
	}
}

type service struct {
	repo  Repository
	usage UsageChecker
}

// New constructs a time slot Service backed by the provided repository.
func New(r Repository, opts ...Option) Service {
	if r == nil {
		panic("time slot repository is required")
	}
	s := &service{repo: r}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, input CreateInput) (TimeSlot, error) {
	fieldErrors := FieldErrors(validation.Struct(input))
	if fieldErrors == nil {
		fieldErrors = FieldErrors{}
	}

	start, startErr := clock.ParseTimeOfDay(input.StartTime)
	end, endErr := clock.ParseTimeOfDay(input.EndTime)
	if startErr == nil && endErr == nil && start >= end {
		fieldErrors.add("endTime", "endTime must be after startTime")
	}

	if len(fieldErrors) > 0 {
		return TimeSlot{}, &ValidationError{Fields: fieldErrors}
	}

	kind := KindClass
	if strings.TrimSpace(input.Kind) != "" {
		kind = Kind(input.Kind)
	}

	days := normalizeDays(input.Days)
	if len(days) == 0 {
		days = append([]int(nil), DefaultDays...)
	}

	return s.repo.Create(ctx, TimeSlot{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Code:         trimmed(input.Code),
		StartTime:    start,
		EndTime:      end,
		Kind:         kind,
		Position:     input.Position,
		Days:         days,
		AcademicYear: trimmed(input.AcademicYear),
		Term:         trimmed(input.Term),
		IsActive:     true,
	})
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]TimeSlot, error) {
	opts.AcademicYear = trimmed(opts.AcademicYear)
	return s.repo.List(ctx, opts)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (TimeSlot, error) {
	if id == uuid.Nil {
		return TimeSlot{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (TimeSlot, error) {
	if id == uuid.Nil {
		return TimeSlot{}, ErrNotFound
	}

	fieldErrors := FieldErrors(validation.Struct(input))
	if fieldErrors == nil {
		fieldErrors = FieldErrors{}
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fieldErrors.add("name", "name cannot be empty")
	}
	if len(fieldErrors) > 0 {
		return TimeSlot{}, &ValidationError{Fields: fieldErrors}
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return TimeSlot{}, err
	}

	merged, changed := applyUpdate(current, input)
	if !changed {
		return TimeSlot{}, newValidationError(map[string]string{"payload": "at least one field must be provided"})
	}
	if merged.StartTime >= merged.EndTime {
		return TimeSlot{}, newValidationError(map[string]string{"endTime": "endTime must be after startTime"})
	}
	if current.IsActive && !merged.IsActive {
		if err := s.ensureUnused(ctx, id); err != nil {
			return TimeSlot{}, err
		}
	}

	return s.repo.Update(ctx, merged)
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) (TimeSlot, error) {
	inactive := false
	current, err := s.Get(ctx, id)
	if err != nil {
		return TimeSlot{}, err
	}
	if !current.IsActive {
		return current, nil
	}
	if err := s.ensureUnused(ctx, id); err != nil {
		return TimeSlot{}, err
	}

	merged, _ := applyUpdate(current, UpdateInput{IsActive: &inactive})
	return s.repo.Update(ctx, merged)
}

// ensureUnused keeps the weekly grid complete: it only lists active slots.
func (s *service) ensureUnused(ctx context.Context, id uuid.UUID) error {
	if s.usage == nil {
		return nil
	}
	inUse, err := s.usage.SlotInUse(ctx, id)
	if err != nil {
		return fmt.Errorf("check time slot usage: %w", err)
	}
	if inUse {
		return ErrInUse
	}
	return nil
}

func applyUpdate(slot TimeSlot, input UpdateInput) (TimeSlot, bool) {
	changed := false

	if input.Name != nil {
		slot.Name = strings.TrimSpace(*input.Name)
		changed = true
	}
	if input.Code != nil {
		slot.Code = trimmed(input.Code)
		changed = true
	}
	if input.StartTime != nil {
		// Already validated by the timeofday tag.
		slot.StartTime, _ = clock.ParseTimeOfDay(*input.StartTime)
		changed = true
	}
	if input.EndTime != nil {
		slot.EndTime, _ = clock.ParseTimeOfDay(*input.EndTime)
		changed = true
	}
	if input.Kind != nil {
		slot.Kind = Kind(*input.Kind)
		changed = true
	}
	if input.Position != nil {
		slot.Position = *input.Position
		changed = true
	}
	if input.Days != nil {
		slot.Days = normalizeDays(input.Days)
		if len(slot.Days) == 0 {
			slot.Days = append([]int(nil), DefaultDays...)
		}
		changed = true
	}
	if input.AcademicYear != nil {
		slot.AcademicYear = trimmed(input.AcademicYear)
		changed = true
	}
	if input.Term != nil {
		slot.Term = trimmed(input.Term)
		changed = true
	}
	if input.IsActive != nil {
		slot.IsActive = *input.IsActive
		changed = true
	}

	return slot, changed
}

// normalizeDays deduplicates and sorts weekdays.
func normalizeDays(days []int) []int {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Ints(out)
	return out
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

func newValidationError(fields map[string]string) error {
	fe := FieldErrors{}
	for key, message := range fields {
		fe.add(key, message)
	}
	return &ValidationError{Fields: fe}
}

func (f FieldErrors) add(field, message string) {
	if f == nil {
		return
	}
	f[field] = append(f[field], message)
}
