package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	roomsvc "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	slotsvc "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/metrics"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

// GridQuery selects whose week to project. Nil filters are ignored.
type GridQuery struct {
	ClassName     *string
	Section       *string
	TeacherID     *uuid.UUID
	RoomID        *uuid.UUID
	AcademicYear  *string
	IncludeSunday bool
}

// GridCell is one (time slot, weekday) position of the grid.
type GridCell struct {
	IsEmpty           bool
	EntryID           *uuid.UUID
	SubjectName       *string
	TeacherID         *uuid.UUID
	TeacherName       *string
	RoomID            *uuid.UUID
	RoomName          *string
	ClassName         *string
	Section           *string
	AdditionalEntries int
}

// Grid is the weekly projection of active entries. Cells holds exactly one cell per slot and day.
type Grid struct {
	TimeSlots []slotsvc.TimeSlot
	Days      []int
	Cells     map[uuid.UUID]map[int]GridCell
}

// BuildGrid projects active entries onto active time slots. Teacher and room names are resolved
// with one batched lookup each.
func (s *service) BuildGrid(ctx context.Context, query GridQuery) (Grid, error) {
	started := time.Now()
	defer func() { metrics.ObserveGridBuild(time.Since(started)) }()

	space, err := tenant.Require(ctx)
	if err != nil {
		return Grid{}, err
	}

	days := []int{1, 2, 3, 4, 5, 6}
	if query.IncludeSunday {
		days = append(days, 7)
	}

	var (
		slots   []slotsvc.TimeSlot
		entries []Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.slots.List(gctx, slotsvc.ListOptions{AcademicYear: trimmed(query.AcademicYear), ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("list time slots: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.List(gctx, ListFilter{
			ClassName:    query.ClassName,
			Section:      query.Section,
			TeacherID:    presentID(query.TeacherID),
			RoomID:       presentID(query.RoomID),
			AcademicYear: query.AcademicYear,
			Statuses:     []Status{StatusActive},
		})
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Grid{}, err
	}

	cells := make(map[uuid.UUID]map[int]GridCell, len(slots))
	for _, slot := range slots {
		row := make(map[int]GridCell, len(days))
		for _, day := range days {
			row[day] = GridCell{IsEmpty: true}
		}
		cells[slot.ID] = row
	}

	sortForPlacement(entries)

	var (
		teacherIDs   []uuid.UUID
		roomIDs      []uuid.UUID
		seenTeachers = make(map[uuid.UUID]struct{})
		seenRooms    = make(map[uuid.UUID]struct{})
	)
	collect := func(ids *[]uuid.UUID, seen map[uuid.UUID]struct{}, id *uuid.UUID) {
		if id == nil {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		*ids = append(*ids, *id)
	}

	for _, entry := range entries {
		row, ok := cells[entry.TimeSlotID]
		if !ok {
			continue
		}
		cell, ok := row[entry.Weekday]
		if !ok {
			continue
		}
		if !cell.IsEmpty {
			cell.AdditionalEntries++
			row[entry.Weekday] = cell
			continue
		}

		id := entry.ID
		row[entry.Weekday] = GridCell{
			EntryID:     &id,
			SubjectName: entry.SubjectName,
			TeacherID:   entry.TeacherID,
			RoomID:      entry.RoomID,
			ClassName:   entry.ClassName,
			Section:     entry.Section,
		}
		collect(&teacherIDs, seenTeachers, entry.TeacherID)
		collect(&roomIDs, seenRooms, entry.RoomID)
	}

	var (
		teacherNames map[uuid.UUID]string
		rooms        map[uuid.UUID]roomsvc.Room
	)

	g, gctx = errgroup.WithContext(ctx)
	if len(teacherIDs) > 0 {
		g.Go(func() error {
			names, err := s.staff.DisplayNames(gctx, space.TenantID, teacherIDs)
			if err != nil {
				// Names are decorative; the grid still renders without them.
				s.loggerFrom(ctx).Warn("resolve teacher names", zap.Error(err), zap.Int("teachers", len(teacherIDs)))
				return nil
			}
			teacherNames = names
			return nil
		})
	}
	if len(roomIDs) > 0 {
		g.Go(func() error {
			var err error
			rooms, err = s.rooms.GetMany(gctx, roomIDs)
			if err != nil {
				return fmt.Errorf("resolve rooms: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Grid{}, err
	}

	for _, row := range cells {
		for day, cell := range row {
			if cell.IsEmpty {
				continue
			}
			if cell.TeacherID != nil {
				if name, ok := teacherNames[*cell.TeacherID]; ok {
					cell.TeacherName = &name
				}
			}
			if cell.RoomID != nil {
				if room, ok := rooms[*cell.RoomID]; ok {
					name := room.Name
					cell.RoomName = &name
				}
			}
			row[day] = cell
		}
	}

	return Grid{TimeSlots: slots, Days: days, Cells: cells}, nil
}

// sortForPlacement orders entries by class, section and creation time so the first entry to
// reach a cell is deterministic.
func sortForPlacement(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if ac, bc := deref(a.ClassName), deref(b.ClassName); ac != bc {
			return ac < bc
		}
		if as, bs := deref(a.Section), deref(b.Section); as != bs {
			return as < bs
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
