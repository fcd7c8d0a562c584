package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

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

// ErrNotFound is returned when the room does not exist in the tenant.
var ErrNotFound = errors.New("room not found")

// Type classifies a room.
type Type string

const (
	TypeClassroom  Type = "classroom"
	TypeLaboratory Type = "laboratory"
	TypeLibrary    Type = "library"
	TypeHall       Type = "hall"
	TypeGym        Type = "gym"
	TypeAuditorium Type = "auditorium"
	TypeVirtual    Type = "virtual"
	TypeOther      Type = "other"
)

// Room is a bookable teaching space.
type Room struct {
	ID         uuid.UUID
	Name       string
	Code       *string
	Building   *string
	Floor      *string
	Capacity   *int
	RoomType   Type
	Facilities []string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateInput represents the payload required to register a room.
type CreateInput struct {
	Name       string   `json:"name" validate:"notblank,max=100"`
	Code       *string  `json:"code" validate:"omitempty,max=32"`
	Building   *string  `json:"building" validate:"omitempty,max=100"`
	Floor      *string  `json:"floor" validate:"omitempty,max=32"`
	Capacity   *int     `json:"capacity" validate:"omitempty,gte=0"`
	RoomType   string   `json:"roomType" validate:"omitempty,oneof=classroom laboratory library hall gym auditorium virtual other"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,notblank,max=64"`
}

// UpdateInput holds editable fields. Clear lists optional fields to reset to empty.
type UpdateInput struct {
	Name       *string  `json:"name" validate:"omitempty,max=100"`
	Code       *string  `json:"code" validate:"omitempty,max=32"`
	Building   *string  `json:"building" validate:"omitempty,max=100"`
	Floor      *string  `json:"floor" validate:"omitempty,max=32"`
	Capacity   *int     `json:"capacity" validate:"omitempty,gte=0"`
	RoomType   *string  `json:"roomType" validate:"omitempty,oneof=classroom laboratory library hall gym auditorium virtual other"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,notblank,max=64"`
	IsActive   *bool    `json:"isActive"`
	Clear      []string `json:"clear" validate:"omitempty,dive,oneof=code building floor capacity facilities"`
}

// ListOptions filters List.
type ListOptions struct {
	ActiveOnly bool
	RoomType   *string
}

// Repository persists rooms for the tenant attached to the context.
type Repository interface {
	Create(ctx context.Context, room Room) (Room, error)
	List(ctx context.Context, opts ListOptions) ([]Room, error)
	Get(ctx context.Context, id uuid.UUID) (Room, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]Room, error)
	Update(ctx context.Context, room Room) (Room, error)
}

// Service defines the business operations of the room registry.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Room, error)
	List(ctx context.Context, opts ListOptions) ([]Room, error)
	Get(ctx context.Context, id uuid.UUID) (Room, error)
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Room, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Room, error)
	Deactivate(ctx context.Context, id uuid.UUID) (Room, error)
}

type service struct {
	repo Repository
}

// New constructs a room Service backed by the provided repository.
func New(r Repository) Service {
	if r == nil {
		panic("room repository is required")
	}
	return &service{repo: r}
}

func (s *service) Create(ctx context.Context, input CreateInput) (Room, error) {
	if fields := validation.Struct(input); len(fields) > 0 {
		return Room{}, &ValidationError{Fields: fields}
	}

	roomType := TypeClassroom
	if strings.TrimSpace(input.RoomType) != "" {
		roomType = Type(input.RoomType)
	}

	return s.repo.Create(ctx, Room{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(input.Name),
		Code:       trimmed(input.Code),
		Building:   trimmed(input.Building),
		Floor:      trimmed(input.Floor),
		Capacity:   input.Capacity,
		RoomType:   roomType,
		Facilities: normalizeFacilities(input.Facilities),
		IsActive:   true,
	})
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Room, error) {
	opts.RoomType = trimmed(opts.RoomType)
	return s.repo.List(ctx, opts)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Room, error) {
	if id == uuid.Nil {
		return Room{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// GetMany resolves rooms in one batch. Unknown ids are absent from the result.
func (s *service) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Room, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	byID := make(map[uuid.UUID]Room, len(unique))
	if len(unique) == 0 {
		return byID, nil
	}

	rooms, err := s.repo.GetMany(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		byID[room.ID] = room
	}
	return byID, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Room, error) {
	if id == uuid.Nil {
		return Room{}, ErrNotFound
	}

	fieldErrors := FieldErrors(validation.Struct(input))
	if fieldErrors == nil {
		fieldErrors = FieldErrors{}
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fieldErrors.add("name", "name cannot be empty")
	}
	if len(fieldErrors) > 0 {
		return Room{}, &ValidationError{Fields: fieldErrors}
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Room{}, err
	}

	merged, changed := applyUpdate(current, input)
	if !changed {
		return Room{}, &ValidationError{Fields: FieldErrors{"payload": {"at least one field must be provided"}}}
	}

	return s.repo.Update(ctx, merged)
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) (Room, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Room{}, err
	}
	if !current.IsActive {
		return current, nil
	}

	current.IsActive = false
	return s.repo.Update(ctx, current)
}

func applyUpdate(room Room, input UpdateInput) (Room, bool) {
	changed := false

	if input.Name != nil {
		room.Name = strings.TrimSpace(*input.Name)
		changed = true
	}
	if input.Code != nil {
		room.Code = trimmed(input.Code)
		changed = true
	}
	if input.Building != nil {
		room.Building = trimmed(input.Building)
		changed = true
	}
	if input.Floor != nil {
		room.Floor = trimmed(input.Floor)
		changed = true
	}
	if input.Capacity != nil {
		capacity := *input.Capacity
		room.Capacity = &capacity
		changed = true
	}
	if input.RoomType != nil {
		room.RoomType = Type(*input.RoomType)
		changed = true
	}
	if input.Facilities != nil {
		room.Facilities = normalizeFacilities(input.Facilities)
		changed = true
	}
	if input.IsActive != nil {
		room.IsActive = *input.IsActive
		changed = true
	}

	for _, field := range input.Clear {
		switch field {
		case "code":
			room.Code = nil
		case "building":
			room.Building = nil
		case "floor":
			room.Floor = nil
		case "capacity":
			room.Capacity = nil
		case "facilities":
			room.Facilities = []string{}
		}
		changed = true
	}

	return room, changed
}

// normalizeFacilities trims, lowercases, deduplicates and sorts facility tags.
func normalizeFacilities(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
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

func (f FieldErrors) add(field, message string) {
	if f == nil {
		return
	}
	f[field] = append(f[field], message)
}
