package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
)

const roomsBasePath = "/api/v1/rooms"

type operation string

const (
	createOperation     operation = "createRoom"
	listOperation       operation = "listRooms"
	getOperation        operation = "getRoom"
	updateOperation     operation = "updateRoom"
	deactivateOperation operation = "deactivateRoom"
)

// Handler wires the room registry to the generated HTTP contract.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("room service is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) CreateRoom(ctx context.Context, request timetableapi.CreateRoomRequestObject) (timetableapi.CreateRoomResponseObject, error) {
	if request.Body == nil {
		problemBody := h.buildProblem("Invalid request body", "request body is required", problem.TypeValidation, http.StatusBadRequest, nil)
		return timetableapi.CreateRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	body := request.Body
	input := service.CreateInput{
		Name:     body.Name,
		Code:     body.Code,
		Building: body.Building,
		Floor:    body.Floor,
		Capacity: body.Capacity,
	}
	if body.RoomType != nil {
		input.RoomType = string(*body.RoomType)
	}
	if body.Facilities != nil {
		input.Facilities = *body.Facilities
	}

	room, err := h.svc.Create(ctx, input)
	if err != nil {
		status, problemBody := h.problemForError(ctx, err, createOperation)
		return timetableapi.CreateRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: status,
		}, nil
	}

	return timetableapi.CreateRoom201JSONResponse{
		Body:    toAPIRoom(room),
		Headers: timetableapi.CreateRoom201ResponseHeaders{Location: fmt.Sprintf("%s/%s", roomsBasePath, room.ID)},
	}, nil
}

func (h *Handler) ListRooms(ctx context.Context, request timetableapi.ListRoomsRequestObject) (timetableapi.ListRoomsResponseObject, error) {
	opts := service.ListOptions{}
	if request.Params.ActiveOnly != nil {
		opts.ActiveOnly = *request.Params.ActiveOnly
	}
	if request.Params.RoomType != nil {
		roomType := string(*request.Params.RoomType)
		opts.RoomType = &roomType
	}

	rooms, err := h.svc.List(ctx, opts)
	if err != nil {
		status, problemBody := h.problemForError(ctx, err, listOperation)
		return timetableapi.ListRoomsdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: status,
		}, nil
	}

	items := make([]timetableapi.Room, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, toAPIRoom(room))
	}
	return timetableapi.ListRooms200JSONResponse(timetableapi.RoomList{Items: items}), nil
}

func (h *Handler) GetRoom(ctx context.Context, request timetableapi.GetRoomRequestObject) (timetableapi.GetRoomResponseObject, error) {
	room, err := h.svc.Get(ctx, uuid.UUID(request.RoomId))
	if err != nil {
		status, problemBody := h.problemForError(ctx, err, getOperation)
		return timetableapi.GetRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: status,
		}, nil
	}

	return timetableapi.GetRoom200JSONResponse(toAPIRoom(room)), nil
}

func (h *Handler) UpdateRoom(ctx context.Context, request timetableapi.UpdateRoomRequestObject) (timetableapi.UpdateRoomResponseObject, error) {
	if request.Body == nil {
		problemBody := h.buildProblem("Invalid request body", "request body is required", problem.TypeValidation, http.StatusBadRequest, nil)
		return timetableapi.UpdateRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	body := request.Body
	input := service.UpdateInput{
		Name:     body.Name,
		Code:     body.Code,
		Building: body.Building,
		Floor:    body.Floor,
		Capacity: body.Capacity,
		IsActive: body.IsActive,
	}
	if body.RoomType != nil {
		roomType := string(*body.RoomType)
		input.RoomType = &roomType
	}
	if body.Facilities != nil {
		input.Facilities = *body.Facilities
	}
	if body.Clear != nil {
		input.Clear = *body.Clear
	}

	room, err := h.svc.Update(ctx, uuid.UUID(request.RoomId), input)
	if err != nil {
		status, problemBody := h.problemForError(ctx, err, updateOperation)
		return timetableapi.UpdateRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: status,
		}, nil
	}

	return timetableapi.UpdateRoom200JSONResponse(toAPIRoom(room)), nil
}

func (h *Handler) DeactivateRoom(ctx context.Context, request timetableapi.DeactivateRoomRequestObject) (timetableapi.DeactivateRoomResponseObject, error) {
	if _, err := h.svc.Deactivate(ctx, uuid.UUID(request.RoomId)); err != nil {
		status, problemBody := h.problemForError(ctx, err, deactivateOperation)
		return timetableapi.DeactivateRoomdefaultApplicationProblemPlusJSONResponse{
			Body:       problemBody,
			StatusCode: status,
		}, nil
	}

	return timetableapi.DeactivateRoom204Response{}, nil
}

func toAPIRoom(room service.Room) timetableapi.Room {
	facilities := room.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return timetableapi.Room{
		Id:         room.ID,
		Name:       room.Name,
		Code:       room.Code,
		Building:   room.Building,
		Floor:      room.Floor,
		Capacity:   room.Capacity,
		RoomType:   timetableapi.RoomType(room.RoomType),
		Facilities: facilities,
		IsActive:   room.IsActive,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
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
		logger.Error("room operation failed", append(fields, zap.Error(err))...)
	case status == http.StatusNotFound:
		logger.Info("room not found", append(fields, zap.Error(err))...)
	default:
		logger.Warn("room request rejected", append(fields, zap.Error(err))...)
	}

	return status, h.buildProblem(title, detail, problemType, status, fieldErrors)
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
			"room not found",
			problem.TypeNotFound,
			nil
	default:
		return http.StatusInternalServerError,
			"Internal server error",
			"an unexpected error occurred",
			problem.TypeInternal,
			nil
	}
}

func (h *Handler) buildProblem(title, detail, problemType string, status int, fieldErrors service.FieldErrors) timetableapi.ProblemDetails {
	problemBody := timetableapi.ProblemDetails{
		Title:  title,
		Status: status,
	}

	if detail != "" {
		problemBody.Detail = &detail
	}
	if problemType != "" {
		problemBody.Type = &problemType
	}

	if len(fieldErrors) > 0 {
		copied := make(map[string][]string, len(fieldErrors))
		for field, messages := range fieldErrors {
			copied[field] = append([]string(nil), messages...)
		}
		problemBody.Errors = &copied
	}

	return problemBody
}

func (h *Handler) loggerFrom(ctx context.Context) *zap.Logger {
	if logger, ok := platformlogging.FromContext(ctx); ok {
		return logger
	}
	return h.logger
}
