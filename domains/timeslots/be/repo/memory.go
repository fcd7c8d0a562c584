package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

// MemoryRepository is a simple in-memory implementation suitable for tests and local development.
type MemoryRepository struct {
	mu       sync.RWMutex
	byTenant map[uuid.UUID]map[uuid.UUID]service.TimeSlot
	now      func() time.Time
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byTenant: make(map[uuid.UUID]map[uuid.UUID]service.TimeSlot),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Create(ctx context.Context, slot service.TimeSlot) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slots, ok := r.byTenant[space.TenantID]
	if !ok {
		slots = make(map[uuid.UUID]service.TimeSlot)
		r.byTenant[space.TenantID] = slots
	}

	now := r.now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	slot.Days = append([]int(nil), slot.Days...)
	slots[slot.ID] = slot
	return slot, nil
}

func (r *MemoryRepository) List(ctx context.Context, opts service.ListOptions) ([]service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]service.TimeSlot, 0)
	for _, slot := range r.byTenant[space.TenantID] {
		if opts.ActiveOnly && !slot.IsActive {
			continue
		}
		if opts.AcademicYear != nil && slot.AcademicYear != nil && *slot.AcademicYear != *opts.AcademicYear {
			continue
		}
		items = append(items, slot)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		if items[i].StartTime != items[j].StartTime {
			return items[i].StartTime < items[j].StartTime
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.byTenant[space.TenantID][id]
	if !ok {
		return service.TimeSlot{}, service.ErrNotFound
	}
	return slot, nil
}

func (r *MemoryRepository) Update(ctx context.Context, slot service.TimeSlot) (service.TimeSlot, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.TimeSlot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byTenant[space.TenantID][slot.ID]
	if !ok {
		return service.TimeSlot{}, service.ErrNotFound
	}

	slot.CreatedAt = current.CreatedAt
	slot.UpdatedAt = r.now()
	slot.Days = append([]int(nil), slot.Days...)
	r.byTenant[space.TenantID][slot.ID] = slot
	return slot, nil
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
