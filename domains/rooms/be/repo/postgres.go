package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

type postgresRepository struct {
	store *persistence.RoomStore
}

// NewPostgresRepository constructs a repository backed by the shared persistence layer.
func NewPostgresRepository(store *persistence.RoomStore) service.Repository {
	if store == nil {
		panic("room store is required")
	}
	return &postgresRepository{store: store}
}

func (r *postgresRepository) Create(ctx context.Context, room service.Room) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	record, err := r.store.CreateRoom(ctx, space.TenantID, persistence.CreateRoomParams{
		RoomID:     room.ID,
		Name:       room.Name,
		Code:       room.Code,
		Building:   room.Building,
		Floor:      room.Floor,
		Capacity:   room.Capacity,
		RoomType:   string(room.RoomType),
		Facilities: room.Facilities,
	})
	if err != nil {
		return service.Room{}, mapPersistenceError(err)
	}
	return mapRoom(record), nil
}

func (r *postgresRepository) List(ctx context.Context, opts service.ListOptions) ([]service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	records, err := r.store.ListRooms(ctx, space.TenantID, persistence.ListRoomsParams{
		ActiveOnly: opts.ActiveOnly,
		RoomType:   opts.RoomType,
	})
	if err != nil {
		return nil, err
	}
	return mapRooms(records), nil
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	record, err := r.store.GetRoom(ctx, space.TenantID, id)
	if err != nil {
		return service.Room{}, mapPersistenceError(err)
	}
	return mapRoom(record), nil
}

func (r *postgresRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	records, err := r.store.GetRoomsByIDs(ctx, space.TenantID, ids)
	if err != nil {
		return nil, err
	}
	return mapRooms(records), nil
}

func (r *postgresRepository) Update(ctx context.Context, room service.Room) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	roomType := string(room.RoomType)
	facilities := room.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	record, err := r.store.UpdateRoom(ctx, space.TenantID, room.ID, persistence.UpdateRoomParams{
		Name:          &room.Name,
		Code:          textOrClear(room.Code),
		Building:      textOrClear(room.Building),
		Floor:         textOrClear(room.Floor),
		Capacity:      room.Capacity,
		ClearCapacity: room.Capacity == nil,
		RoomType:      &roomType,
		Facilities:    facilities,
		IsActive:      &room.IsActive,
	})
	if err != nil {
		return service.Room{}, mapPersistenceError(err)
	}
	return mapRoom(record), nil
}

func mapRooms(records []persistence.Room) []service.Room {
	rooms := make([]service.Room, 0, len(records))
	for _, record := range records {
		rooms = append(rooms, mapRoom(record))
	}
	return rooms
}

func mapRoom(record persistence.Room) service.Room {
	return service.Room{
		ID:         record.RoomID,
		Name:       record.Name,
		Code:       record.Code,
		Building:   record.Building,
		Floor:      record.Floor,
		Capacity:   record.Capacity,
		RoomType:   service.Type(record.RoomType),
		Facilities: record.Facilities,
		IsActive:   record.IsActive,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

func mapPersistenceError(err error) error {
	var check *persistence.CheckViolation
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return service.ErrNotFound
	case errors.As(err, &check):
		return &service.ValidationError{Fields: service.FieldErrors{
			"payload": {"room violates " + check.Constraint},
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
