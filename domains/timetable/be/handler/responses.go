package handler

import (
	"strconv"

	slotsvc "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/clock"
)

func toCreateInput(body timetableapi.EntryCreate) service.CreateInput {
	input := service.CreateInput{
		TimeSlotID:     body.TimeSlotId,
		Weekday:        body.Weekday,
		CourseID:       body.CourseId,
		SubjectName:    body.SubjectName,
		TeacherID:      body.TeacherId,
		RoomID:         body.RoomId,
		ClassName:      body.ClassName,
		Section:        body.Section,
		AcademicYear:   body.AcademicYear,
		Term:           body.Term,
		EffectiveFrom:  body.EffectiveFrom,
		EffectiveUntil: body.EffectiveUntil,
		Notes:          body.Notes,
	}
	if body.Status != nil {
		input.Status = string(*body.Status)
	}
	return input
}

func toUpdateInput(body timetableapi.EntryUpdate) service.UpdateInput {
	input := service.UpdateInput{
		TimeSlotID:     body.TimeSlotId,
		Weekday:        body.Weekday,
		CourseID:       body.CourseId,
		SubjectName:    body.SubjectName,
		TeacherID:      body.TeacherId,
		RoomID:         body.RoomId,
		ClassName:      body.ClassName,
		Section:        body.Section,
		AcademicYear:   body.AcademicYear,
		Term:           body.Term,
		EffectiveFrom:  body.EffectiveFrom,
		EffectiveUntil: body.EffectiveUntil,
		Notes:          body.Notes,
	}
	if body.Status != nil {
		status := string(*body.Status)
		input.Status = &status
	}
	if body.Clear != nil {
		input.Clear = *body.Clear
	}
	return input
}

func toAPIEntry(entry service.Entry) timetableapi.Entry {
	return timetableapi.Entry{
		Id:             entry.ID,
		TimeSlotId:     entry.TimeSlotID,
		Weekday:        entry.Weekday,
		CourseId:       entry.CourseID,
		SubjectName:    entry.SubjectName,
		TeacherId:      entry.TeacherID,
		RoomId:         entry.RoomID,
		ClassName:      entry.ClassName,
		Section:        entry.Section,
		AcademicYear:   entry.AcademicYear,
		Term:           entry.Term,
		EffectiveFrom:  entry.EffectiveFrom,
		EffectiveUntil: entry.EffectiveUntil,
		Status:         timetableapi.EntryStatus(entry.Status),
		Notes:          entry.Notes,
		CreatedBy:      entry.CreatedBy,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

// toAPIConflicts never returns nil so an empty result serialises as [].
func toAPIConflicts(conflicts []service.Conflict) []timetableapi.Conflict {
	out := make([]timetableapi.Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, timetableapi.Conflict{
			Type:        timetableapi.ConflictType(c.Type),
			EntryId:     c.EntryID,
			Message:     c.Message,
			ClassName:   c.ClassName,
			Section:     c.Section,
			SubjectName: c.SubjectName,
			TeacherId:   c.TeacherID,
			RoomId:      c.RoomID,
		})
	}
	return out
}

func toGridSlot(slot slotsvc.TimeSlot) timetableapi.GridTimeSlot {
	return timetableapi.GridTimeSlot{
		Id:              slot.ID,
		Name:            slot.Name,
		Code:            slot.Code,
		StartTime:       clock.FormatTimeOfDay(slot.StartTime),
		EndTime:         clock.FormatTimeOfDay(slot.EndTime),
		DurationMinutes: slot.DurationMinutes(),
		Kind:            timetableapi.SlotKind(slot.Kind),
		Position:        slot.Position,
	}
}

// toAPIGrid keys rows by slot id and columns by weekday number.
func toAPIGrid(grid service.Grid) timetableapi.Grid {
	resp := timetableapi.Grid{
		TimeSlots: make([]timetableapi.GridTimeSlot, 0, len(grid.TimeSlots)),
		Days:      append([]timetableapi.Weekday{}, grid.Days...),
		Grid:      make(map[string]map[string]timetableapi.GridCell, len(grid.Cells)),
	}
	for _, slot := range grid.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, toGridSlot(slot))
	}
	for slotID, row := range grid.Cells {
		cells := make(map[string]timetableapi.GridCell, len(row))
		for day, cell := range row {
			cells[strconv.Itoa(day)] = timetableapi.GridCell{
				IsEmpty:           cell.IsEmpty,
				EntryId:           cell.EntryID,
				SubjectName:       cell.SubjectName,
				TeacherId:         cell.TeacherID,
				TeacherName:       cell.TeacherName,
				RoomId:            cell.RoomID,
				RoomName:          cell.RoomName,
				ClassName:         cell.ClassName,
				Section:           cell.Section,
				AdditionalEntries: cell.AdditionalEntries,
			}
		}
		resp.Grid[slotID.String()] = cells
	}
	return resp
}
