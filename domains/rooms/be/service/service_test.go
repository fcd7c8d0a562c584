package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/repo"
	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

func tenantCtx() context.Context {
	return tenant.WithSpace(context.Background(), tenant.Space{TenantID: uuid.New()})
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestCreateRoomValidation(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())

	_, err := svc.Create(tenantCtx(), service.CreateInput{
		Name:       " ",
		Capacity:   intPtr(-1),
		RoomType:   "kitchen",
		Facilities: []string{"projector", " "},
	})
	require.Error(t, err)

	var validationErr *service.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "name")
	require.Contains(t, validationErr.Fields, "capacity")
	require.Contains(t, validationErr.Fields, "roomType")
	require.Contains(t, validationErr.Fields, "facilities[1]")
}

func TestCreateRoomDefaultsAndFacilities(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())

	room, err := svc.Create(tenantCtx(), service.CreateInput{
		Name:       "Room 101",
		Capacity:   intPtr(0),
		Facilities: []string{"Whiteboard", "projector", "whiteboard "},
	})
	require.NoError(t, err)
	require.Equal(t, service.TypeClassroom, room.RoomType)
	require.Equal(t, []string{"projector", "whiteboard"}, room.Facilities)
	require.Equal(t, 0, *room.Capacity)
	require.True(t, room.IsActive)
}

func TestListRoomsFiltersAndOrders(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	lab, err := svc.Create(ctx, service.CreateInput{Name: "Chem Lab", RoomType: "laboratory"})
	require.NoError(t, err)
	hall, err := svc.Create(ctx, service.CreateInput{Name: "Assembly Hall", RoomType: "hall"})
	require.NoError(t, err)
	_, err = svc.Deactivate(ctx, hall.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx, service.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Assembly Hall", all[0].Name)

	active, err := svc.List(ctx, service.ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, lab.ID, active[0].ID)

	labs, err := svc.List(ctx, service.ListOptions{RoomType: strPtr("laboratory")})
	require.NoError(t, err)
	require.Len(t, labs, 1)
}

func TestGetManyResolvesKnownRooms(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	room, err := svc.Create(ctx, service.CreateInput{Name: "Room 1"})
	require.NoError(t, err)

	rooms, err := svc.GetMany(ctx, []uuid.UUID{room.ID, room.ID, uuid.New(), uuid.Nil})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "Room 1", rooms[room.ID].Name)

	empty, err := svc.GetMany(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestUpdateRoomClearsFields(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	room, err := svc.Create(ctx, service.CreateInput{
		Name:       "Room 1",
		Building:   strPtr("North"),
		Capacity:   intPtr(30),
		Facilities: []string{"projector"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, room.ID, service.UpdateInput{
		Name:  strPtr("Room 1A"),
		Clear: []string{"building", "capacity", "facilities"},
	})
	require.NoError(t, err)
	require.Equal(t, "Room 1A", updated.Name)
	require.Nil(t, updated.Building)
	require.Nil(t, updated.Capacity)
	require.Empty(t, updated.Facilities)

	_, err = svc.Update(ctx, room.ID, service.UpdateInput{Clear: []string{"name"}})
	var validationErr *service.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "clear[0]")

	_, err = svc.Update(ctx, uuid.New(), service.UpdateInput{Name: strPtr("x")})
	require.ErrorIs(t, err, service.ErrNotFound)
}
