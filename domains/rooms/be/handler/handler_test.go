package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

type mockService struct {
	createFn     func(ctx context.Context, input service.CreateInput) (service.Room, error)
	listFn       func(ctx context.Context, opts service.ListOptions) ([]service.Room, error)
	getFn        func(ctx context.Context, id uuid.UUID) (service.Room, error)
	getManyFn    func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]service.Room, error)
	updateFn     func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Room, error)
	deactivateFn func(ctx context.Context, id uuid.UUID) (service.Room, error)
}

func (m *mockService) Create(ctx context.Context, input service.CreateInput) (service.Room, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, input)
}

func (m *mockService) List(ctx context.Context, opts service.ListOptions) ([]service.Room, error) {
	if m.listFn == nil {
		panic("listFn not configured")
	}
	return m.listFn(ctx, opts)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (service.Room, error) {
	if m.getFn == nil {
		panic("getFn not configured")
	}
	return m.getFn(ctx, id)
}

func (m *mockService) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]service.Room, error) {
	if m.getManyFn == nil {
		panic("getManyFn not configured")
	}
	return m.getManyFn(ctx, ids)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Room, error) {
	if m.updateFn == nil {
		panic("updateFn not configured")
	}
	return m.updateFn(ctx, id, input)
}

func (m *mockService) Deactivate(ctx context.Context, id uuid.UUID) (service.Room, error) {
	if m.deactivateFn == nil {
		panic("deactivateFn not configured")
	}
	return m.deactivateFn(ctx, id)
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &mockService{}
	svc.createFn = func(ctx context.Context, input service.CreateInput) (service.Room, error) {
		require.Equal(t, "Lab 2", input.Name)
		require.Equal(t, "laboratory", input.RoomType)
		return service.Room{ID: id, Name: input.Name, RoomType: service.TypeLaboratory, IsActive: true}, nil
	}

	roomType := timetableapi.RoomTypeLaboratory
	resp, err := New(svc, zaptest.NewLogger(t)).CreateRoom(context.Background(), timetableapi.CreateRoomRequestObject{
		Body: &timetableapi.CreateRoomJSONRequestBody{Name: "Lab 2", RoomType: &roomType},
	})
	require.NoError(t, err)

	created, ok := resp.(timetableapi.CreateRoom201JSONResponse)
	require.True(t, ok)
	require.Equal(t, "/api/v1/rooms/"+id.String(), created.Headers.Location)
	require.Equal(t, timetableapi.RoomTypeLaboratory, created.Body.RoomType)
	require.Equal(t, []string{}, created.Body.Facilities)
}

func TestCreateRoomRequiresBody(t *testing.T) {
	t.Parallel()

	resp, err := New(&mockService{}, zaptest.NewLogger(t)).CreateRoom(context.Background(), timetableapi.CreateRoomRequestObject{})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.CreateRoomdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problemResp.StatusCode)
	require.NotNil(t, problemResp.Body.Type)
	require.Equal(t, problem.TypeValidation, *problemResp.Body.Type)
}

func TestListRoomsPassesFilters(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.listFn = func(ctx context.Context, opts service.ListOptions) ([]service.Room, error) {
		require.True(t, opts.ActiveOnly)
		require.NotNil(t, opts.RoomType)
		require.Equal(t, "hall", *opts.RoomType)
		return []service.Room{{ID: uuid.New(), Name: "Main Hall", RoomType: service.TypeHall}}, nil
	}

	activeOnly := true
	roomType := timetableapi.RoomTypeHall
	resp, err := New(svc, zaptest.NewLogger(t)).ListRooms(context.Background(), timetableapi.ListRoomsRequestObject{
		Params: timetableapi.ListRoomsParams{ActiveOnly: &activeOnly, RoomType: &roomType},
	})
	require.NoError(t, err)

	list, ok := resp.(timetableapi.ListRooms200JSONResponse)
	require.True(t, ok)
	require.Len(t, list.Items, 1)
	require.Equal(t, "Main Hall", list.Items[0].Name)
	require.Equal(t, []string{}, list.Items[0].Facilities)
}

func TestGetRoomNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.getFn = func(ctx context.Context, id uuid.UUID) (service.Room, error) {
		return service.Room{}, service.ErrNotFound
	}

	resp, err := New(svc, zaptest.NewLogger(t)).GetRoom(context.Background(), timetableapi.GetRoomRequestObject{RoomId: uuid.New()})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.GetRoomdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, problemResp.StatusCode)
	require.Equal(t, "Resource not found", problemResp.Body.Title)
}

func TestUpdateRoomValidationAndDeactivate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, gotID uuid.UUID, input service.UpdateInput) (service.Room, error) {
		require.Equal(t, id, gotID)
		require.Equal(t, []string{"capacity"}, input.Clear)
		return service.Room{}, &service.ValidationError{Fields: service.FieldErrors{"capacity": {"must be at least 0"}}}
	}
	svc.deactivateFn = func(ctx context.Context, gotID uuid.UUID) (service.Room, error) {
		return service.Room{}, errors.New("boom")
	}
	handler := New(svc, zaptest.NewLogger(t))

	clearFields := []string{"capacity"}
	resp, err := handler.UpdateRoom(context.Background(), timetableapi.UpdateRoomRequestObject{
		RoomId: id,
		Body:   &timetableapi.UpdateRoomJSONRequestBody{Clear: &clearFields},
	})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.UpdateRoomdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problemResp.StatusCode)
	require.NotNil(t, problemResp.Body.Errors)
	require.Contains(t, *problemResp.Body.Errors, "capacity")

	deactivateResp, err := handler.DeactivateRoom(context.Background(), timetableapi.DeactivateRoomRequestObject{RoomId: id})
	require.NoError(t, err)

	internal, ok := deactivateResp.(timetableapi.DeactivateRoomdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, internal.StatusCode)
	require.Equal(t, "an unexpected error occurred", *internal.Body.Detail)
}

func TestDeactivateRoomReturnsNoContent(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.deactivateFn = func(ctx context.Context, id uuid.UUID) (service.Room, error) {
		return service.Room{ID: id}, nil
	}

	resp, err := New(svc, zaptest.NewLogger(t)).DeactivateRoom(context.Background(), timetableapi.DeactivateRoomRequestObject{RoomId: uuid.New()})
	require.NoError(t, err)
	require.IsType(t, timetableapi.DeactivateRoom204Response{}, resp)
}
