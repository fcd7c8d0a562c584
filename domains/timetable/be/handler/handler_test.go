package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	slotsvc "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

type mockService struct {
	createFn   func(ctx context.Context, input service.CreateInput) (service.Entry, error)
	getFn      func(ctx context.Context, id uuid.UUID) (service.Entry, error)
	listFn     func(ctx context.Context, filter service.ListFilter) ([]service.Entry, error)
	updateFn   func(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Entry, error)
	archiveFn  func(ctx context.Context, id uuid.UUID) (service.Entry, error)
	activateFn func(ctx context.Context, id uuid.UUID) (service.Entry, error)
	bulkFn     func(ctx context.Context, inputs []service.CreateInput) (service.BulkResult, error)
	checkFn    func(ctx context.Context, query service.CheckQuery) ([]service.Conflict, error)
	gridFn     func(ctx context.Context, query service.GridQuery) (service.Grid, error)
}

func (m *mockService) Create(ctx context.Context, input service.CreateInput) (service.Entry, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, input)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (service.Entry, error) {
	if m.getFn == nil {
		panic("getFn not configured")
	}
	return m.getFn(ctx, id)
}

func (m *mockService) List(ctx context.Context, filter service.ListFilter) ([]service.Entry, error) {
	if m.listFn == nil {
		panic("listFn not configured")
	}
	return m.listFn(ctx, filter)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, input service.UpdateInput) (service.Entry, error) {
	if m.updateFn == nil {
		panic("updateFn not configured")
	}
	return m.updateFn(ctx, id, input)
}

func (m *mockService) Archive(ctx context.Context, id uuid.UUID) (service.Entry, error) {
	if m.archiveFn == nil {
		panic("archiveFn not configured")
	}
	return m.archiveFn(ctx, id)
}

func (m *mockService) Activate(ctx context.Context, id uuid.UUID) (service.Entry, error) {
	if m.activateFn == nil {
		panic("activateFn not configured")
	}
	return m.activateFn(ctx, id)
}

func (m *mockService) BulkCreate(ctx context.Context, inputs []service.CreateInput) (service.BulkResult, error) {
	if m.bulkFn == nil {
		panic("bulkFn not configured")
	}
	return m.bulkFn(ctx, inputs)
}

func (m *mockService) Check(ctx context.Context, query service.CheckQuery) ([]service.Conflict, error) {
	if m.checkFn == nil {
		panic("checkFn not configured")
	}
	return m.checkFn(ctx, query)
}

func (m *mockService) BuildGrid(ctx context.Context, query service.GridQuery) (service.Grid, error) {
	if m.gridFn == nil {
		panic("gridFn not configured")
	}
	return m.gridFn(ctx, query)
}

func newHandler(t *testing.T, svc service.Service) *Handler {
	t.Helper()
	return New(svc, zaptest.NewLogger(t))
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	slotID := uuid.New()
	svc := &mockService{}
	svc.createFn = func(ctx context.Context, input service.CreateInput) (service.Entry, error) {
		require.Equal(t, slotID, input.TimeSlotID)
		require.Equal(t, 2, input.Weekday)
		require.Equal(t, "draft", input.Status)
		require.False(t, input.SkipConflictCheck)
		return service.Entry{ID: id, TimeSlotID: slotID, Weekday: 2, Status: service.StatusDraft}, nil
	}

	status := timetableapi.EntryCreateStatusDraft
	resp, err := newHandler(t, svc).CreateEntry(context.Background(), timetableapi.CreateEntryRequestObject{
		Body: &timetableapi.CreateEntryJSONRequestBody{TimeSlotId: slotID, Weekday: 2, Status: &status},
	})
	require.NoError(t, err)

	created, ok := resp.(timetableapi.CreateEntry201JSONResponse)
	require.True(t, ok)
	require.Equal(t, "/api/v1/timetable/entries/"+id.String(), created.Headers.Location)
	require.Equal(t, timetableapi.EntryStatusDraft, created.Body.Status)
}

func TestCreateEntryRequiresBody(t *testing.T) {
	t.Parallel()

	resp, err := newHandler(t, &mockService{}).CreateEntry(context.Background(), timetableapi.CreateEntryRequestObject{})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.CreateEntrydefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problemResp.StatusCode)
	require.Equal(t, problem.TypeValidation, *problemResp.Body.Type)
}

func TestCreateEntryHonoursCheckConflictsFlag(t *testing.T) {
	t.Parallel()

	var skipped []bool
	svc := &mockService{}
	svc.createFn = func(ctx context.Context, input service.CreateInput) (service.Entry, error) {
		skipped = append(skipped, input.SkipConflictCheck)
		return service.Entry{ID: uuid.New(), Status: service.StatusDraft}, nil
	}
	handler := newHandler(t, svc)

	for _, check := range []*bool{nil, boolPtr(true), boolPtr(false)} {
		_, err := handler.CreateEntry(context.Background(), timetableapi.CreateEntryRequestObject{
			Params: timetableapi.CreateEntryParams{CheckConflicts: check},
			Body:   &timetableapi.CreateEntryJSONRequestBody{Weekday: 1},
		})
		require.NoError(t, err)
	}

	require.Equal(t, []bool{false, false, true}, skipped)
}

func TestCreateEntryConflictProblem(t *testing.T) {
	t.Parallel()

	existing := uuid.New()
	className, section := "10", "A"
	svc := &mockService{}
	svc.createFn = func(ctx context.Context, input service.CreateInput) (service.Entry, error) {
		return service.Entry{}, &service.ConflictError{Conflicts: []service.Conflict{{
			Type:      service.AxisTeacher,
			EntryID:   &existing,
			Message:   "teacher is already assigned to class 10 section A in this slot",
			ClassName: &className,
			Section:   &section,
		}}}
	}

	resp, err := newHandler(t, svc).CreateEntry(context.Background(), timetableapi.CreateEntryRequestObject{
		Body: &timetableapi.CreateEntryJSONRequestBody{Weekday: 1},
	})
	require.NoError(t, err)

	conflict, ok := resp.(timetableapi.CreateEntry409ApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, conflict.Status)
	require.Equal(t, problem.TypeConflict, *conflict.Type)
	require.Len(t, conflict.Conflicts, 1)
	require.Equal(t, timetableapi.ConflictTypeTeacher, conflict.Conflicts[0].Type)
	require.Equal(t, existing, *conflict.Conflicts[0].EntryId)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.VisitCreateEntryResponse(rec))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var payload struct {
		Conflicts []struct {
			Type      string `json:"type"`
			EntryID   string `json:"entryId"`
			ClassName string `json:"className"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "teacher", payload.Conflicts[0].Type)
	require.Equal(t, existing.String(), payload.Conflicts[0].EntryID)
	require.Equal(t, "10", payload.Conflicts[0].ClassName)
}

func TestActivateEntryErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: &service.ValidationError{Fields: service.FieldErrors{"weekday": {"bad"}}}, status: http.StatusBadRequest},
		{name: "entry missing", err: service.ErrNotFound, status: http.StatusNotFound},
		{name: "slot missing", err: service.ErrTimeSlotNotFound, status: http.StatusNotFound},
		{name: "room missing", err: service.ErrRoomNotFound, status: http.StatusNotFound},
		{name: "archived", err: fmt.Errorf("%w: archived", service.ErrInvalidTransition), status: http.StatusUnprocessableEntity},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{}
			svc.activateFn = func(ctx context.Context, id uuid.UUID) (service.Entry, error) {
				return service.Entry{}, tc.err
			}

			resp, err := newHandler(t, svc).ActivateEntry(context.Background(), timetableapi.ActivateEntryRequestObject{EntryId: uuid.New()})
			require.NoError(t, err)

			problemResp, ok := resp.(timetableapi.ActivateEntrydefaultApplicationProblemPlusJSONResponse)
			require.True(t, ok)
			require.Equal(t, tc.status, problemResp.StatusCode)
			require.Equal(t, tc.status, problemResp.Body.Status)
		})
	}

	t.Run("conflict", func(t *testing.T) {
		t.Parallel()

		svc := &mockService{}
		svc.activateFn = func(ctx context.Context, id uuid.UUID) (service.Entry, error) {
			return service.Entry{}, &service.ConflictError{Conflicts: []service.Conflict{{Type: service.AxisRoom, Message: "room is already booked in this slot"}}}
		}

		resp, err := newHandler(t, svc).ActivateEntry(context.Background(), timetableapi.ActivateEntryRequestObject{EntryId: uuid.New()})
		require.NoError(t, err)

		conflict, ok := resp.(timetableapi.ActivateEntry409ApplicationProblemPlusJSONResponse)
		require.True(t, ok)
		require.Equal(t, timetableapi.ConflictTypeRoom, conflict.Conflicts[0].Type)
	})
}

func TestListEntriesPassesFilters(t *testing.T) {
	t.Parallel()

	teacher := uuid.New()
	svc := &mockService{}
	svc.listFn = func(ctx context.Context, filter service.ListFilter) ([]service.Entry, error) {
		require.Equal(t, "10", *filter.ClassName)
		require.Nil(t, filter.Section)
		require.Equal(t, teacher, *filter.TeacherID)
		require.Equal(t, 3, *filter.Weekday)
		require.Equal(t, []service.Status{service.StatusArchived}, filter.Statuses)
		return []service.Entry{{ID: uuid.New(), Weekday: 3, Status: service.StatusArchived}}, nil
	}

	weekday := 3
	status := timetableapi.EntryStatusArchived
	resp, err := newHandler(t, svc).ListEntries(context.Background(), timetableapi.ListEntriesRequestObject{
		Params: timetableapi.ListEntriesParams{
			ClassName:  strPtr(" 10 "),
			Section:    strPtr("  "),
			TeacherId:  &teacher,
			Weekday:    &weekday,
			Status:     &status,
			ActiveOnly: boolPtr(true),
		},
	})
	require.NoError(t, err)

	list, ok := resp.(timetableapi.ListEntries200JSONResponse)
	require.True(t, ok)
	require.Len(t, list.Items, 1)
	require.Equal(t, timetableapi.EntryStatusArchived, list.Items[0].Status)
}

func TestListEntriesDefaultsToActive(t *testing.T) {
	t.Parallel()

	var seen [][]service.Status
	svc := &mockService{}
	svc.listFn = func(ctx context.Context, filter service.ListFilter) ([]service.Entry, error) {
		seen = append(seen, filter.Statuses)
		return nil, nil
	}
	handler := newHandler(t, svc)

	for _, activeOnly := range []*bool{nil, boolPtr(true), boolPtr(false)} {
		resp, err := handler.ListEntries(context.Background(), timetableapi.ListEntriesRequestObject{
			Params: timetableapi.ListEntriesParams{ClassName: strPtr("10"), ActiveOnly: activeOnly},
		})
		require.NoError(t, err)

		list, ok := resp.(timetableapi.ListEntries200JSONResponse)
		require.True(t, ok)
		require.NotNil(t, list.Items)
	}

	require.Equal(t, []service.Status{service.StatusActive}, seen[0])
	require.Equal(t, []service.Status{service.StatusActive}, seen[1])
	require.Nil(t, seen[2])
}

func TestListEntriesRejectsBadFilters(t *testing.T) {
	t.Parallel()

	weekday := 9
	status := timetableapi.EntryStatus("paused")
	resp, err := newHandler(t, &mockService{}).ListEntries(context.Background(), timetableapi.ListEntriesRequestObject{
		Params: timetableapi.ListEntriesParams{Weekday: &weekday, Status: &status},
	})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.ListEntriesdefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, problemResp.StatusCode)
	require.Contains(t, *problemResp.Body.Errors, "weekday")
	require.Contains(t, *problemResp.Body.Errors, "status")
}

func TestUpdateAndArchiveEntry(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &mockService{}
	svc.updateFn = func(ctx context.Context, gotID uuid.UUID, input service.UpdateInput) (service.Entry, error) {
		require.Equal(t, id, gotID)
		require.Equal(t, "moved", *input.Notes)
		require.Equal(t, "archived", *input.Status)
		require.Equal(t, []string{"roomId"}, input.Clear)
		require.True(t, input.SkipConflictCheck)
		return service.Entry{ID: id, Status: service.StatusActive, Notes: input.Notes}, nil
	}
	svc.archiveFn = func(ctx context.Context, gotID uuid.UUID) (service.Entry, error) {
		return service.Entry{ID: gotID, Status: service.StatusArchived}, nil
	}
	handler := newHandler(t, svc)

	clearFields := []string{"roomId"}
	status := timetableapi.EntryStatusArchived
	resp, err := handler.UpdateEntry(context.Background(), timetableapi.UpdateEntryRequestObject{
		EntryId: id,
		Params:  timetableapi.UpdateEntryParams{CheckConflicts: boolPtr(false)},
		Body:    &timetableapi.UpdateEntryJSONRequestBody{Notes: strPtr("moved"), Status: &status, Clear: &clearFields},
	})
	require.NoError(t, err)

	updated, ok := resp.(timetableapi.UpdateEntry200JSONResponse)
	require.True(t, ok)
	require.Equal(t, "moved", *updated.Notes)

	archiveResp, err := handler.ArchiveEntry(context.Background(), timetableapi.ArchiveEntryRequestObject{EntryId: id})
	require.NoError(t, err)

	archived, ok := archiveResp.(timetableapi.ArchiveEntry200JSONResponse)
	require.True(t, ok)
	require.Equal(t, timetableapi.EntryStatusArchived, archived.Status)
}

func TestGetEntryNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.getFn = func(ctx context.Context, id uuid.UUID) (service.Entry, error) {
		return service.Entry{}, service.ErrNotFound
	}

	resp, err := newHandler(t, svc).GetEntry(context.Background(), timetableapi.GetEntryRequestObject{EntryId: uuid.New()})
	require.NoError(t, err)

	problemResp, ok := resp.(timetableapi.GetEntrydefaultApplicationProblemPlusJSONResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, problemResp.StatusCode)
	require.Equal(t, "timetable entry not found", *problemResp.Body.Detail)
}

func TestBulkCreateReportsEachItem(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.bulkFn = func(ctx context.Context, inputs []service.CreateInput) (service.BulkResult, error) {
		require.Len(t, inputs, 2)
		require.True(t, inputs[0].SkipConflictCheck)
		require.True(t, inputs[1].SkipConflictCheck)
		entry := service.Entry{ID: uuid.New(), Status: service.StatusActive}
		return service.BulkResult{
			Created: 1,
			Failed:  1,
			Items: []service.BulkItemResult{
				{Index: 0, Entry: &entry},
				{Index: 1, Err: &service.ConflictError{Conflicts: []service.Conflict{{Type: service.AxisRoom, Message: "room is already booked in this slot"}}}},
			},
		}, nil
	}

	resp, err := newHandler(t, svc).BulkCreateEntries(context.Background(), timetableapi.BulkCreateEntriesRequestObject{
		Params: timetableapi.BulkCreateEntriesParams{CheckConflicts: boolPtr(false)},
		Body: &timetableapi.BulkCreateEntriesJSONRequestBody{Entries: []timetableapi.EntryCreate{
			{Weekday: 1},
			{Weekday: 2},
		}},
	})
	require.NoError(t, err)

	result, ok := resp.(timetableapi.BulkCreateEntries200JSONResponse)
	require.True(t, ok)
	require.Equal(t, 1, result.Created)
	require.Equal(t, 1, result.Failed)
	require.Equal(t, timetableapi.BulkItemStatusCreated, result.Items[0].Status)
	require.NotNil(t, result.Items[0].Entry)

	failed := result.Items[1]
	require.Equal(t, timetableapi.BulkItemStatusFailed, failed.Status)
	require.Equal(t, http.StatusConflict, failed.Error.Status)
	require.NotNil(t, failed.Conflicts)
	require.Equal(t, timetableapi.ConflictTypeRoom, (*failed.Conflicts)[0].Type)
}

func TestCheckConflictsEndpoint(t *testing.T) {
	t.Parallel()

	svc := &mockService{}
	svc.checkFn = func(ctx context.Context, query service.CheckQuery) ([]service.Conflict, error) {
		require.Equal(t, 4, query.Weekday)
		require.Equal(t, "Physics Lab", *query.ClassName)
		return nil, nil
	}

	resp, err := newHandler(t, svc).CheckConflicts(context.Background(), timetableapi.CheckConflictsRequestObject{
		Body: &timetableapi.CheckConflictsJSONRequestBody{TimeSlotId: uuid.New(), Weekday: 4, ClassName: strPtr("Physics Lab")},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.VisitCheckConflictsResponse(rec))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"hasConflicts":false,"conflicts":[]}`, rec.Body.String())
}

func TestBuildGridEndpoint(t *testing.T) {
	t.Parallel()

	slotID := uuid.New()
	subject := "History"
	svc := &mockService{}
	svc.gridFn = func(ctx context.Context, query service.GridQuery) (service.Grid, error) {
		require.True(t, query.IncludeSunday)
		require.Equal(t, "7", *query.ClassName)
		return service.Grid{
			TimeSlots: []slotsvc.TimeSlot{{ID: slotID, Name: "P1", StartTime: 8 * time.Hour, EndTime: 8*time.Hour + 40*time.Minute}},
			Days:      []int{1, 7},
			Cells: map[uuid.UUID]map[int]service.GridCell{
				slotID: {1: {SubjectName: &subject}, 7: {IsEmpty: true}},
			},
		}, nil
	}

	resp, err := newHandler(t, svc).BuildGrid(context.Background(), timetableapi.BuildGridRequestObject{
		Params: timetableapi.BuildGridParams{ClassName: strPtr("7"), IncludeSunday: boolPtr(true)},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.VisitBuildGridResponse(rec))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		TimeSlots []timetableapi.GridTimeSlot          `json:"timeSlots"`
		Days      []int                                `json:"days"`
		Grid      map[string]map[string]map[string]any `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "08:40", payload.TimeSlots[0].EndTime)
	require.Equal(t, []int{1, 7}, payload.Days)
	require.Equal(t, "History", payload.Grid[slotID.String()]["1"]["subjectName"])
	require.Equal(t, true, payload.Grid[slotID.String()]["7"]["isEmpty"])
	require.Contains(t, payload.Grid[slotID.String()]["7"], "teacherName")
	require.Nil(t, payload.Grid[slotID.String()]["7"]["teacherName"])
}
