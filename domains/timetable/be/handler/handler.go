package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

const entriesBasePath = "/api/v1/timetable/entries"

type operation string

const (
	createOperation   operation = "timetableCreateEntry"
	listOperation     operation = "timetableListEntries"
	getOperation      operation = "timetableGetEntry"
	updateOperation   operation = "timetableUpdateEntry"
	archiveOperation  operation = "timetableArchiveEntry"
	activateOperation operation = "timetableActivateEntry"
	bulkOperation     operation = "timetableBulkCreate"
	checkOperation    operation = "timetableCheckConflicts"
	gridOperation     operation = "timetableBuildGrid"
)

// Handler exposes timetable entries, conflict checks and the weekly grid over HTTP.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("timetable service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) CreateEntry(ctx context.Context, request timetableapi.CreateEntryRequestObject) (timetableapi.CreateEntryResponseObject, error) {
	if request.Body == nil {
		return timetableapi.CreateEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	input := toCreateInput(*request.Body)
	input.SkipConflictCheck = skipConflictCheck(request.Params.CheckConflicts)

	created, err := h.svc.Create(ctx, input)
	if err != nil {
		if conflict, ok := h.conflictFor(ctx, err, createOperation); ok {
			return timetableapi.CreateEntry409ApplicationProblemPlusJSONResponse(conflict), nil
		}
		status, details := h.problemForError(ctx, err, createOperation)
		return timetableapi.CreateEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.CreateEntry201JSONResponse{
		Body:    toAPIEntry(created),
		Headers: timetableapi.CreateEntry201ResponseHeaders{Location: fmt.Sprintf("%s/%s", entriesBasePath, created.ID)},
	}, nil
}

// ListEntries returns active entries unless activeOnly=false or an explicit status is requested.
func (h *Handler) ListEntries(ctx context.Context, request timetableapi.ListEntriesRequestObject) (timetableapi.ListEntriesResponseObject, error) {
	params := request.Params
	fields := service.FieldErrors{}
	filter := service.ListFilter{
		ClassName:    optionalString(params.ClassName),
		Section:      optionalString(params.Section),
		AcademicYear: optionalString(params.AcademicYear),
		TeacherID:    params.TeacherId,
		RoomID:       params.RoomId,
		TimeSlotID:   params.TimeSlotId,
	}

	if params.Weekday != nil {
		if weekday := *params.Weekday; weekday < 1 || weekday > 7 {
			fields["weekday"] = append(fields["weekday"], "weekday must be between 1 and 7")
		} else {
			filter.Weekday = &weekday
		}
	}

	switch {
	case params.Status != nil:
		switch status := service.Status(*params.Status); status {
		case service.StatusDraft, service.StatusActive, service.StatusArchived:
			filter.Statuses = []service.Status{status}
		default:
			fields["status"] = append(fields["status"], "status must be one of draft, active, archived")
		}
	case params.ActiveOnly == nil || *params.ActiveOnly:
		filter.Statuses = []service.Status{service.StatusActive}
	}

	if len(fields) > 0 {
		status, details := h.problemForError(ctx, &service.ValidationError{Fields: fields}, listOperation)
		return timetableapi.ListEntriesdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	entries, err := h.svc.List(ctx, filter)
	if err != nil {
		status, details := h.problemForError(ctx, err, listOperation)
		return timetableapi.ListEntriesdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	items := make([]timetableapi.Entry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toAPIEntry(entry))
	}
	return timetableapi.ListEntries200JSONResponse(timetableapi.EntryList{Items: items}), nil
}

func (h *Handler) GetEntry(ctx context.Context, request timetableapi.GetEntryRequestObject) (timetableapi.GetEntryResponseObject, error) {
	entry, err := h.svc.Get(ctx, uuid.UUID(request.EntryId))
	if err != nil {
		status, details := h.problemForError(ctx, err, getOperation)
		return timetableapi.GetEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.GetEntry200JSONResponse(toAPIEntry(entry)), nil
}

func (h *Handler) UpdateEntry(ctx context.Context, request timetableapi.UpdateEntryRequestObject) (timetableapi.UpdateEntryResponseObject, error) {
	if request.Body == nil {
		return timetableapi.UpdateEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	input := toUpdateInput(*request.Body)
	input.SkipConflictCheck = skipConflictCheck(request.Params.CheckConflicts)

	updated, err := h.svc.Update(ctx, uuid.UUID(request.EntryId), input)
	if err != nil {
		if conflict, ok := h.conflictFor(ctx, err, updateOperation); ok {
			return timetableapi.UpdateEntry409ApplicationProblemPlusJSONResponse(conflict), nil
		}
		status, details := h.problemForError(ctx, err, updateOperation)
		return timetableapi.UpdateEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.UpdateEntry200JSONResponse(toAPIEntry(updated)), nil
}

func (h *Handler) ArchiveEntry(ctx context.Context, request timetableapi.ArchiveEntryRequestObject) (timetableapi.ArchiveEntryResponseObject, error) {
	entry, err := h.svc.Archive(ctx, uuid.UUID(request.EntryId))
	if err != nil {
		status, details := h.problemForError(ctx, err, archiveOperation)
		return timetableapi.ArchiveEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.ArchiveEntry200JSONResponse(toAPIEntry(entry)), nil
}

func (h *Handler) ActivateEntry(ctx context.Context, request timetableapi.ActivateEntryRequestObject) (timetableapi.ActivateEntryResponseObject, error) {
	entry, err := h.svc.Activate(ctx, uuid.UUID(request.EntryId))
	if err != nil {
		if conflict, ok := h.conflictFor(ctx, err, activateOperation); ok {
			return timetableapi.ActivateEntry409ApplicationProblemPlusJSONResponse(conflict), nil
		}
		status, details := h.problemForError(ctx, err, activateOperation)
		return timetableapi.ActivateEntrydefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.ActivateEntry200JSONResponse(toAPIEntry(entry)), nil
}

func (h *Handler) BulkCreateEntries(ctx context.Context, request timetableapi.BulkCreateEntriesRequestObject) (timetableapi.BulkCreateEntriesResponseObject, error) {
	if request.Body == nil {
		return timetableapi.BulkCreateEntriesdefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	skip := skipConflictCheck(request.Params.CheckConflicts)
	inputs := make([]service.CreateInput, 0, len(request.Body.Entries))
	for _, body := range request.Body.Entries {
		input := toCreateInput(body)
		input.SkipConflictCheck = skip
		inputs = append(inputs, input)
	}

	result, err := h.svc.BulkCreate(ctx, inputs)
	if err != nil {
		status, details := h.problemForError(ctx, err, bulkOperation)
		return timetableapi.BulkCreateEntriesdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	resp := timetableapi.BulkResult{
		Created: result.Created,
		Failed:  result.Failed,
		Items:   make([]timetableapi.BulkItem, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		if item.Err != nil {
			_, details, conflicts := describe(item.Err)
			failed := timetableapi.BulkItem{Index: item.Index, Status: timetableapi.BulkItemStatusFailed, Error: &details}
			if len(conflicts) > 0 {
				failed.Conflicts = &conflicts
			}
			resp.Items = append(resp.Items, failed)
			continue
		}
		entry := toAPIEntry(*item.Entry)
		resp.Items = append(resp.Items, timetableapi.BulkItem{Index: item.Index, Status: timetableapi.BulkItemStatusCreated, Entry: &entry})
	}
	return timetableapi.BulkCreateEntries200JSONResponse(resp), nil
}

func (h *Handler) CheckConflicts(ctx context.Context, request timetableapi.CheckConflictsRequestObject) (timetableapi.CheckConflictsResponseObject, error) {
	if request.Body == nil {
		return timetableapi.CheckConflictsdefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	body := request.Body
	conflicts, err := h.svc.Check(ctx, service.CheckQuery{
		TimeSlotID:     body.TimeSlotId,
		Weekday:        body.Weekday,
		AcademicYear:   body.AcademicYear,
		TeacherID:      body.TeacherId,
		RoomID:         body.RoomId,
		ClassName:      body.ClassName,
		Section:        body.Section,
		ExcludeEntryID: body.ExcludeEntryId,
	})
	if err != nil {
		status, details := h.problemForError(ctx, err, checkOperation)
		return timetableapi.CheckConflictsdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.CheckConflicts200JSONResponse(timetableapi.ConflictCheckResult{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    toAPIConflicts(conflicts),
	}), nil
}

func (h *Handler) BuildGrid(ctx context.Context, request timetableapi.BuildGridRequestObject) (timetableapi.BuildGridResponseObject, error) {
	params := request.Params
	query := service.GridQuery{
		ClassName:    optionalString(params.ClassName),
		Section:      optionalString(params.Section),
		AcademicYear: optionalString(params.AcademicYear),
		TeacherID:    params.TeacherId,
		RoomID:       params.RoomId,
	}
	if params.IncludeSunday != nil {
		query.IncludeSunday = *params.IncludeSunday
	}

	grid, err := h.svc.BuildGrid(ctx, query)
	if err != nil {
		status, details := h.problemForError(ctx, err, gridOperation)
		return timetableapi.BuildGriddefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.BuildGrid200JSONResponse(toAPIGrid(grid)), nil
}

// skipConflictCheck reads the checkConflicts query parameter, which defaults to true.
func skipConflictCheck(check *timetableapi.CheckConflicts) bool {
	return check != nil && !*check
}

// conflictFor logs and converts scheduling conflicts. Other errors are left to problemForError.
func (h *Handler) conflictFor(ctx context.Context, err error, op operation) (timetableapi.ConflictProblem, bool) {
	var conflictErr *service.ConflictError
	if !errors.As(err, &conflictErr) {
		return timetableapi.ConflictProblem{}, false
	}

	h.loggerFrom(ctx).Warn("timetable request rejected",
		zap.String("operation", string(op)),
		zap.Int("status", http.StatusConflict),
		zap.Error(err),
	)

	detail := conflictErr.Error()
	problemType := problem.TypeConflict
	return timetableapi.ConflictProblem{
		Title:     "Scheduling conflict",
		Status:    http.StatusConflict,
		Detail:    &detail,
		Type:      &problemType,
		Conflicts: toAPIConflicts(conflictErr.Conflicts),
	}, true
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, timetableapi.ProblemDetails) {
	status, details, _ := describe(err)

	logger := h.loggerFrom(ctx)
	fields := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("timetable operation failed", append(fields, zap.Error(err))...)
	case status == http.StatusNotFound:
		logger.Info("timetable resource not found", append(fields, zap.Error(err))...)
	default:
		logger.Warn("timetable request rejected", append(fields, zap.Error(err))...)
	}

	return status, details
}

// describe maps a service error to its problem document without logging. Conflicts are
// returned separately for callers that embed them next to the problem.
func describe(err error) (int, timetableapi.ProblemDetails, []timetableapi.Conflict) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest,
			buildProblem("Validation failed", "one or more fields are invalid", problem.TypeValidation, http.StatusBadRequest, validationErr.Fields),
			nil
	case errors.As(err, &conflictErr):
		return http.StatusConflict,
			buildProblem("Scheduling conflict", conflictErr.Error(), problem.TypeConflict, http.StatusConflict, nil),
			toAPIConflicts(conflictErr.Conflicts)
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound,
			buildProblem("Resource not found", "timetable entry not found", problem.TypeNotFound, http.StatusNotFound, nil),
			nil
	case errors.Is(err, service.ErrTimeSlotNotFound):
		return http.StatusNotFound,
			buildProblem("Resource not found", "time slot not found", problem.TypeNotFound, http.StatusNotFound, nil),
			nil
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusNotFound,
			buildProblem("Resource not found", "room not found", problem.TypeNotFound, http.StatusNotFound, nil),
			nil
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusUnprocessableEntity,
			buildProblem("Invalid status transition", err.Error(), problem.TypeInvalidTransition, http.StatusUnprocessableEntity, nil),
			nil
	default:
		return http.StatusInternalServerError,
			buildProblem("Internal server error", "an unexpected error occurred", problem.TypeInternal, http.StatusInternalServerError, nil),
			nil
	}
}

func buildProblem(title, detail, problemType string, status int, fieldErrors service.FieldErrors) timetableapi.ProblemDetails {
	details := timetableapi.ProblemDetails{
		Title:  title,
		Status: status,
	}

	if detail != "" {
		details.Detail = &detail
	}
	if problemType != "" {
		details.Type = &problemType
	}

	if len(fieldErrors) > 0 {
		copied := make(map[string][]string, len(fieldErrors))
		for field, messages := range fieldErrors {
			copied[field] = append([]string(nil), messages...)
		}
		details.Errors = &copied
	}

	return details
}

func missingBody() timetableapi.ProblemDetails {
	return buildProblem("Invalid request body", "request body is required", problem.TypeValidation, http.StatusBadRequest, nil)
}

func (h *Handler) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return h.logger
}

func optionalString(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	return &value
}
