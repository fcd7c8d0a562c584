package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/clock"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

const timeSlotsBasePath = "/api/v1/time-slots"

type operation string

const (
	createOperation     operation = "createTimeSlot"
	listOperation       operation = "listTimeSlots"
	getOperation        operation = "getTimeSlot"
	updateOperation     operation = "updateTimeSlot"
	deactivateOperation operation = "deactivateTimeSlot"
)

// Handler wires the time slot catalog to the generated HTTP contract.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("time slot service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) CreateTimeSlot(ctx context.Context, request timetableapi.CreateTimeSlotRequestObject) (timetableapi.CreateTimeSlotResponseObject, error) {
	if request.Body == nil {
		return timetableapi.CreateTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	body := request.Body
	input := service.CreateInput{
		Name:         body.Name,
		Code:         body.Code,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		AcademicYear: body.AcademicYear,
		Term:         body.Term,
	}
	if body.Kind != nil {
		input.Kind = string(*body.Kind)
	}
	if body.Position != nil {
		input.Position = *body.Position
	}
	if body.Days != nil {
		input.Days = *body.Days
	}

	created, err := h.svc.Create(ctx, input)
	if err != nil {
		status, details := h.problemForError(ctx, err, createOperation)
		return timetableapi.CreateTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.CreateTimeSlot201JSONResponse{
		Body:    toAPITimeSlot(created),
		Headers: timetableapi.CreateTimeSlot201ResponseHeaders{Location: fmt.Sprintf("%s/%s", timeSlotsBasePath, created.ID)},
	}, nil
}

func (h *Handler) ListTimeSlots(ctx context.Context, request timetableapi.ListTimeSlotsRequestObject) (timetableapi.ListTimeSlotsResponseObject, error) {
	opts := service.ListOptions{AcademicYear: request.Params.AcademicYear}
	if request.Params.ActiveOnly != nil {
		opts.ActiveOnly = *request.Params.ActiveOnly
	}

	slots, err := h.svc.List(ctx, opts)
	if err != nil {
		status, details := h.problemForError(ctx, err, listOperation)
		return timetableapi.ListTimeSlotsdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	items := make([]timetableapi.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		items = append(items, toAPITimeSlot(slot))
	}
	return timetableapi.ListTimeSlots200JSONResponse(timetableapi.TimeSlotList{Items: items}), nil
}

func (h *Handler) GetTimeSlot(ctx context.Context, request timetableapi.GetTimeSlotRequestObject) (timetableapi.GetTimeSlotResponseObject, error) {
	slot, err := h.svc.Get(ctx, uuid.UUID(request.TimeSlotId))
	if err != nil {
		status, details := h.problemForError(ctx, err, getOperation)
		return timetableapi.GetTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.GetTimeSlot200JSONResponse(toAPITimeSlot(slot)), nil
}

func (h *Handler) UpdateTimeSlot(ctx context.Context, request timetableapi.UpdateTimeSlotRequestObject) (timetableapi.UpdateTimeSlotResponseObject, error) {
	if request.Body == nil {
		return timetableapi.UpdateTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       missingBody(),
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	body := request.Body
	input := service.UpdateInput{
		Name:         body.Name,
		Code:         body.Code,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Position:     body.Position,
		AcademicYear: body.AcademicYear,
		Term:         body.Term,
		IsActive:     body.IsActive,
	}
	if body.Kind != nil {
		kind := string(*body.Kind)
		input.Kind = &kind
	}
	if body.Days != nil {
		input.Days = *body.Days
	}

	updated, err := h.svc.Update(ctx, uuid.UUID(request.TimeSlotId), input)
	if err != nil {
		status, details := h.problemForError(ctx, err, updateOperation)
		return timetableapi.UpdateTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.UpdateTimeSlot200JSONResponse(toAPITimeSlot(updated)), nil
}

func (h *Handler) DeactivateTimeSlot(ctx context.Context, request timetableapi.DeactivateTimeSlotRequestObject) (timetableapi.DeactivateTimeSlotResponseObject, error) {
	if _, err := h.svc.Deactivate(ctx, uuid.UUID(request.TimeSlotId)); err != nil {
		status, details := h.problemForError(ctx, err, deactivateOperation)
		return timetableapi.DeactivateTimeSlotdefaultApplicationProblemPlusJSONResponse{
			Body:       details,
			StatusCode: status,
		}, nil
	}

	return timetableapi.DeactivateTimeSlot204Response{}, nil
}

func toAPITimeSlot(slot service.TimeSlot) timetableapi.TimeSlot {
	days := append([]timetableapi.Weekday{}, slot.Days...)

	return timetableapi.TimeSlot{
		Id:              slot.ID,
		Name:            slot.Name,
		Code:            slot.Code,
		StartTime:       clock.FormatTimeOfDay(slot.StartTime),
		EndTime:         clock.FormatTimeOfDay(slot.EndTime),
		DurationMinutes: slot.DurationMinutes(),
		Kind:            timetableapi.SlotKind(slot.Kind),
		Position:        slot.Position,
		Days:            days,
		AcademicYear:    slot.AcademicYear,
		Term:            slot.Term,
		IsActive:        slot.IsActive,
		CreatedAt:       slot.CreatedAt,
		UpdatedAt:       slot.UpdatedAt,
	}
}

func (h *Handler) problemForError(ctx context.Context, err error, op operation) (int, timetableapi.ProblemDetails) {
	status, title, detail, problemType, fieldErrors := h.classifyError(err)

	logger := h.loggerFrom(ctx)
	fields := []zap.Field{
		zap.String("operation", string(op)),
		zap.Int("status", status),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("time slot operation failed", append(fields, zap.Error(err))...)
	case status == http.StatusNotFound:
		logger.Info("time slot not found", append(fields, zap.Error(err))...)
	default:
		logger.Warn("time slot request rejected", append(fields, zap.Error(err))...)
	}

	return status, buildProblem(title, detail, problemType, status, fieldErrors)
}

func (h *Handler) classifyError(err error) (status int, title, detail, problemType string, fieldErrors service.FieldErrors) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest,
			"Validation failed",
			"one or more fields are invalid",
			problem.TypeValidation,
			validationErr.Fields
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound,
			"Resource not found",
			"time slot not found",
			problem.TypeNotFound,
			nil
	case errors.Is(err, service.ErrInUse):
		return http.StatusConflict,
			"Time slot in use",
			"archive or move the active entries scheduled in this slot first",
			problem.TypeConflict,
			nil
	default:
		return http.StatusInternalServerError,
			"Internal server error",
			"an unexpected error occurred",
			problem.TypeInternal,
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
