package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Axis names one dimension along which double-booking is disallowed.
type Axis string

const (
	AxisTeacher Axis = "teacher"
	AxisRoom    Axis = "room"
	AxisClass   Axis = "class"
)

// Conflict describes an active entry that already occupies the requested cell on one axis.
type Conflict struct {
	Type        Axis       `json:"type"`
	EntryID     *uuid.UUID `json:"entryId,omitempty"`
	Message     string     `json:"message"`
	ClassName   *string    `json:"className,omitempty"`
	Section     *string    `json:"section,omitempty"`
	SubjectName *string    `json:"subjectName,omitempty"`
	TeacherID   *uuid.UUID `json:"teacherId,omitempty"`
	RoomID      *uuid.UUID `json:"roomId,omitempty"`
}

// ConflictError is returned when a write would double-book a teacher, room or class.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	axes := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		axes = append(axes, string(c.Type))
	}
	return fmt.Sprintf("scheduling conflict on %s", strings.Join(axes, ", "))
}

// StorageConflictError is returned by repositories when a uniqueness guard on active entries
// rejected a write. The service turns it into a ConflictError.
type StorageConflictError struct {
	Axis Axis
	Err  error
}

func (e *StorageConflictError) Error() string {
	return fmt.Sprintf("active %s already booked", e.Axis)
}

func (e *StorageConflictError) Unwrap() error { return e.Err }

// CheckQuery describes a candidate placement. Nil or blank axes impose no constraint.
type CheckQuery struct {
	TimeSlotID     uuid.UUID  `json:"timeSlotId"`
	Weekday        int        `json:"weekday" validate:"min=1,max=7"`
	AcademicYear   *string    `json:"academicYear" validate:"omitempty,max=20"`
	TeacherID      *uuid.UUID `json:"teacherId"`
	RoomID         *uuid.UUID `json:"roomId"`
	ClassName      *string    `json:"className" validate:"omitempty,max=100"`
	Section        *string    `json:"section" validate:"omitempty,max=50"`
	ExcludeEntryID *uuid.UUID `json:"excludeEntryId"`
}

// ActiveLookup is the repository lookup behind each axis check. Every non-nil axis must match;
// Section is only compared when ClassName is set.
type ActiveLookup struct {
	TimeSlotID     uuid.UUID
	Weekday        int
	AcademicYear   *string
	ExcludeEntryID *uuid.UUID
	TeacherID      *uuid.UUID
	RoomID         *uuid.UUID
	ClassName      *string
	Section        *string
}

// Checker answers whether a candidate placement collides with existing active entries.
// It only reads.
type Checker struct {
	repo Repository
}

// NewChecker constructs a Checker over the entry repository.
func NewChecker(repo Repository) *Checker {
	if repo == nil {
		panic("entry repository is required")
	}
	return &Checker{repo: repo}
}

// Check runs the teacher, room and class lookups independently and returns every collision found,
// in that order.
func (c *Checker) Check(ctx context.Context, q CheckQuery) ([]Conflict, error) {
	base := ActiveLookup{
		TimeSlotID:     q.TimeSlotID,
		Weekday:        q.Weekday,
		AcademicYear:   trimmed(q.AcademicYear),
		ExcludeEntryID: q.ExcludeEntryID,
	}

	conflicts := make([]Conflict, 0)

	if q.TeacherID != nil && *q.TeacherID != uuid.Nil {
		lookup := base
		lookup.TeacherID = q.TeacherID
		entry, found, err := c.repo.FindActive(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("teacher lookup: %w", err)
		}
		if found {
			conflicts = append(conflicts, describe(AxisTeacher, entry))
		}
	}

	if q.RoomID != nil && *q.RoomID != uuid.Nil {
		lookup := base
		lookup.RoomID = q.RoomID
		entry, found, err := c.repo.FindActive(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("room lookup: %w", err)
		}
		if found {
			conflicts = append(conflicts, describe(AxisRoom, entry))
		}
	}

	if className := trimmed(q.ClassName); className != nil {
		lookup := base
		lookup.ClassName = className
		lookup.Section = trimmed(q.Section)
		entry, found, err := c.repo.FindActive(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("class lookup: %w", err)
		}
		if found {
			conflicts = append(conflicts, describe(AxisClass, entry))
		}
	}

	return conflicts, nil
}

func describe(axis Axis, entry Entry) Conflict {
	id := entry.ID
	conflict := Conflict{
		Type:      axis,
		EntryID:   &id,
		ClassName: entry.ClassName,
		Section:   entry.Section,
		TeacherID: entry.TeacherID,
		RoomID:    entry.RoomID,
	}

	switch axis {
	case AxisTeacher:
		conflict.Message = fmt.Sprintf("teacher is already assigned to %s in this slot", classLabel(entry.ClassName, entry.Section))
	case AxisRoom:
		conflict.Message = fmt.Sprintf("room is already booked by %s in this slot", classLabel(entry.ClassName, entry.Section))
	case AxisClass:
		conflict.SubjectName = entry.SubjectName
		subject := "another subject"
		if entry.SubjectName != nil {
			subject = *entry.SubjectName
		}
		conflict.Message = fmt.Sprintf("%s already has %s in this slot", classLabel(entry.ClassName, entry.Section), subject)
	}
	return conflict
}

// synthesize builds a descriptor for a storage rejection whose winning row could not be read back.
func synthesize(axis Axis, entry Entry) Conflict {
	conflict := Conflict{Type: axis}
	switch axis {
	case AxisTeacher:
		conflict.TeacherID = entry.TeacherID
		conflict.Message = "teacher is already assigned in this slot"
	case AxisRoom:
		conflict.RoomID = entry.RoomID
		conflict.Message = "room is already booked in this slot"
	case AxisClass:
		conflict.ClassName = entry.ClassName
		conflict.Section = entry.Section
		conflict.Message = fmt.Sprintf("%s is already scheduled in this slot", classLabel(entry.ClassName, entry.Section))
	}
	return conflict
}

func classLabel(className, section *string) string {
	if className == nil {
		return "another entry"
	}
	if section == nil {
		return "class " + *className
	}
	return fmt.Sprintf("class %s section %s", *className, *section)
}
