package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

// MemoryRepository is a simple in-memory implementation suitable for tests and local development.
type MemoryRepository struct {
	mu       sync.RWMutex
	byTenant map[uuid.UUID]map[uuid.UUID]service.Room
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byTenant: make(map[uuid.UUID]map[uuid.UUID]service.Room)}
}

func (r *MemoryRepository) Create(ctx context.Context, room service.Room) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, ok := r.byTenant[space.TenantID]
	if !ok {
		rooms = make(map[uuid.UUID]service.Room)
		r.byTenant[space.TenantID] = rooms
	}

	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	room.Facilities = append([]string{}, room.Facilities...)
	rooms[room.ID] = room
	return room, nil
}

func (r *MemoryRepository) List(ctx context.Context, opts service.ListOptions) ([]service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]service.Room, 0)
	for _, room := range r.byTenant[space.TenantID] {
		if opts.ActiveOnly && !room.IsActive {
			continue
		}
		if opts.RoomType != nil && string(room.RoomType) != *opts.RoomType {
			continue
		}
		items = append(items, room)
	}

	sortByName(items)
	return items, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byTenant[space.TenantID][id]
	if !ok {
		return service.Room{}, service.ErrNotFound
	}
	return room, nil
}

func (r *MemoryRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]service.Room, 0, len(ids))
	for _, id := range ids {
		if room, ok := r.byTenant[space.TenantID][id]; ok {
			items = append(items, room)
		}
	}

	sortByName(items)
	return items, nil
}

func (r *MemoryRepository) Update(ctx context.Context, room service.Room) (service.Room, error) {
	space, err := tenant.Require(ctx)
	if err != nil {
		return service.Room{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byTenant[space.TenantID][room.ID]
	if !ok {
		return service.Room{}, service.ErrNotFound
	}

	room.CreatedAt = current.CreatedAt
	room.UpdatedAt = time.Now().UTC()
	room.Facilities = append([]string{}, room.Facilities...)
	r.byTenant[space.TenantID][room.ID] = room
	return room, nil
}

func sortByName(items []service.Room) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID.String() < items[j].ID.String()
	})
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
