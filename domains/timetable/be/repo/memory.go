package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

// MemoryRepository is an in-memory implementation suitable for tests and local development.
// It enforces the same one-active-booking-per-axis guarantee as the Postgres indexes.
type MemoryRepository struct {
	mu       sync.RWMutex
	byTenant map[uuid.UUID]map[uuid.UUID]service.Entry
	now      func() time.Time
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byTenant: make(map[uuid.UUID]map[uuid.UUID]service.Entry),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Create(ctx context.Context, entry service.Entry) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, ok := r.byTenant[space.TenantID]
	if !ok {
		entries = make(map[uuid.UUID]service.Entry)
		r.byTenant[space.TenantID] = entries
	}

	if err := violatedAxis(entries, entry); err != nil {
		return service.Entry{}, err
	}

	now := r.now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entries[entry.ID] = entry
	return entry, nil
}

func (r *MemoryRepository) Update(ctx context.Context, entry service.Entry) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.byTenant[space.TenantID]
	current, ok := entries[entry.ID]
	if !ok {
		return service.Entry{}, service.ErrNotFound
	}
	if err := violatedAxis(entries, entry); err != nil {
		return service.Entry{}, err
	}

	entry.CreatedAt = current.CreatedAt
	entry.CreatedBy = current.CreatedBy
	entry.UpdatedAt = r.now()
	entries[entry.ID] = entry
	return entry, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byTenant[space.TenantID][id]
	if !ok {
		return service.Entry{}, service.ErrNotFound
	}
	return entry, nil
}

func (r *MemoryRepository) List(ctx context.Context, filter service.ListFilter) ([]service.Entry, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]service.Entry, 0)
	for _, entry := range r.byTenant[space.TenantID] {
		if matchesFilter(entry, filter) {
			items = append(items, entry)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		if a.TimeSlotID != b.TimeSlotID {
			return a.TimeSlotID.String() < b.TimeSlotID.String()
		}
		if ac, bc := value(a.ClassName), value(b.ClassName); ac != bc {
			return ac < bc
		}
		if as, bs := value(a.Section), value(b.Section); as != bs {
			return as < bs
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return items, nil
}

func (r *MemoryRepository) FindActive(ctx context.Context, lookup service.ActiveLookup) (service.Entry, bool, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Entry{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		match service.Entry
		found bool
	)
	for _, entry := range r.byTenant[space.TenantID] {
		if !matchesLookup(entry, lookup) {
			continue
		}
		if !found || entry.CreatedAt.Before(match.CreatedAt) {
			match = entry
			found = true
		}
	}
	return match, found, nil
}

// violatedAxis reports which guard a write of candidate would break, mirroring the partial
// unique indexes on active entries.
func violatedAxis(entries map[uuid.UUID]service.Entry, candidate service.Entry) error {
	if candidate.Status != service.StatusActive {
		return nil
	}

	for _, other := range entries {
		if other.ID == candidate.ID || other.Status != service.StatusActive {
			continue
		}
		if other.TimeSlotID != candidate.TimeSlotID || other.Weekday != candidate.Weekday {
			continue
		}
		if value(other.AcademicYear) != value(candidate.AcademicYear) {
			continue
		}

		switch {
		case sameID(other.TeacherID, candidate.TeacherID):
			return &service.StorageConflictError{Axis: service.AxisTeacher}
		case sameID(other.RoomID, candidate.RoomID):
			return &service.StorageConflictError{Axis: service.AxisRoom}
		case other.ClassName != nil && candidate.ClassName != nil &&
			*other.ClassName == *candidate.ClassName && value(other.Section) == value(candidate.Section):
			return &service.StorageConflictError{Axis: service.AxisClass}
		}
	}
	return nil
}

func matchesLookup(entry service.Entry, lookup service.ActiveLookup) bool {
	if entry.Status != service.StatusActive || entry.TimeSlotID != lookup.TimeSlotID || entry.Weekday != lookup.Weekday {
		return false
	}
	if lookup.AcademicYear != nil && value(entry.AcademicYear) != *lookup.AcademicYear {
		return false
	}
	if lookup.ExcludeEntryID != nil && entry.ID == *lookup.ExcludeEntryID {
		return false
	}
	if lookup.TeacherID != nil && !sameID(entry.TeacherID, lookup.TeacherID) {
		return false
	}
	if lookup.RoomID != nil && !sameID(entry.RoomID, lookup.RoomID) {
		return false
	}
	if lookup.ClassName != nil {
		if value(entry.ClassName) != *lookup.ClassName {
			return false
		}
		if lookup.Section != nil && value(entry.Section) != *lookup.Section {
			return false
		}
	}
	return true
}

func matchesFilter(entry service.Entry, filter service.ListFilter) bool {
	if filter.ClassName != nil && value(entry.ClassName) != *filter.ClassName {
		return false
	}
	if filter.Section != nil && value(entry.Section) != *filter.Section {
		return false
	}
	if filter.TeacherID != nil && !sameID(entry.TeacherID, filter.TeacherID) {
		return false
	}
	if filter.RoomID != nil && !sameID(entry.RoomID, filter.RoomID) {
		return false
	}
	if filter.TimeSlotID != nil && entry.TimeSlotID != *filter.TimeSlotID {
		return false
	}
	if filter.Weekday != nil && entry.Weekday != *filter.Weekday {
		return false
	}
	if filter.AcademicYear != nil && value(entry.AcademicYear) != *filter.AcademicYear {
		return false
	}
	if len(filter.Statuses) > 0 {
		for _, status := range filter.Statuses {
			if entry.Status == status {
				return true
			}
		}
		return false
	}
	return true
}

func sameID(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
