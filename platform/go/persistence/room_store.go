package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const RoomsTable = "rooms"

const roomColumns = `room_id, tenant_id, name, code, building, floor, capacity, room_type, facilities,
        is_active, created_at, updated_at`

// Room represents a row in the rooms table.
type Room struct {
	RoomID     uuid.UUID `db:"room_id" json:"roomId"`
	TenantID   uuid.UUID `db:"tenant_id" json:"tenantId"`
	Name       string    `db:"name" json:"name"`
	Code       *string   `db:"code" json:"code,omitempty"`
	Building   *string   `db:"building" json:"building,omitempty"`
	Floor      *string   `db:"floor" json:"floor,omitempty"`
	Capacity   *int      `db:"capacity" json:"capacity,omitempty"`
	RoomType   string    `db:"room_type" json:"roomType"`
	Facilities []string  `db:"facilities" json:"facilities"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// RoomStore exposes persistence helpers for the rooms table.
type RoomStore struct {
	db *TenantDB
}

// NewRoomStore returns a store bound to the tenant-scoped database wrapper.
func NewRoomStore(ctx context.Context, db *TenantDB) (*RoomStore, error) {
	if db == nil {
		return nil, errors.New("tenant db is required")
	}
	return &RoomStore{db: db}, nil
}

// CreateRoomParams captures the fields required to insert a new room.
type CreateRoomParams struct {
	RoomID     uuid.UUID
	Name       string
	Code       *string
	Building   *string
	Floor      *string
	Capacity   *int
	RoomType   string
	Facilities []string
}

// ListRoomsParams filters ListRooms.
type ListRoomsParams struct {
	ActiveOnly bool
	RoomType   *string
}

// UpdateRoomParams represents editable fields; nil leaves a column untouched.
type UpdateRoomParams struct {
	Name          *string
	Code          *string
	Building      *string
	Floor         *string
	Capacity      *int
	ClearCapacity bool
	RoomType      *string
	Facilities    []string
	IsActive      *bool
}

// CreateRoom inserts a new room and returns the persisted record.
func (s *RoomStore) CreateRoom(ctx context.Context, tenantID uuid.UUID, params CreateRoomParams) (Room, error) {
	if params.RoomID == uuid.Nil {
		return Room{}, errors.New("room id is required")
	}

	facilities := params.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	var room Room
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s (room_id, tenant_id, name, code, building, floor, capacity, room_type, facilities)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING %s
    `, RoomsTable, roomColumns),
			params.RoomID,
			tenantID,
			strings.TrimSpace(params.Name),
			nullIfBlank(params.Code),
			nullIfBlank(params.Building),
			nullIfBlank(params.Floor),
			params.Capacity,
			params.RoomType,
			facilities,
		)

		var scanErr error
		room, scanErr = scanRoom(row)
		return scanErr
	})
	if err != nil {
		return Room{}, translateWriteError(err)
	}

	return room, nil
}

// ListRooms returns the tenant's rooms ordered by name.
func (s *RoomStore) ListRooms(ctx context.Context, tenantID uuid.UUID, params ListRoomsParams) ([]Room, error) {
	whereParts := []string{"tenant_id = $1"}
	args := []any{tenantID}

	if params.ActiveOnly {
		whereParts = append(whereParts, "is_active")
	}
	if params.RoomType != nil && strings.TrimSpace(*params.RoomType) != "" {
		args = append(args, strings.TrimSpace(*params.RoomType))
		whereParts = append(whereParts, fmt.Sprintf("room_type = $%d", len(args)))
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE %s
        ORDER BY name ASC, room_id ASC
    `, roomColumns, RoomsTable, strings.Join(whereParts, " AND "))

	return s.queryRooms(ctx, tenantID, query, args...)
}

// GetRoomsByIDs returns the rooms of the tenant matching ids. Unknown ids are skipped.
func (s *RoomStore) GetRoomsByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Room, error) {
	if len(ids) == 0 {
		return []Room{}, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE tenant_id = $1 AND room_id = ANY($2::uuid[])
        ORDER BY name ASC
    `, roomColumns, RoomsTable)

	return s.queryRooms(ctx, tenantID, query, tenantID, raw)
}

// GetRoom returns a single room by identifier.
func (s *RoomStore) GetRoom(ctx context.Context, tenantID, id uuid.UUID) (Room, error) {
	var room Room
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, fmt.Sprintf(`
        SELECT %s FROM %s WHERE tenant_id = $1 AND room_id = $2
    `, roomColumns, RoomsTable), tenantID, id)

		var scanErr error
		room, scanErr = scanRoom(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Room{}, ErrNotFound
		}
		return Room{}, err
	}

	return room, nil
}

// UpdateRoom applies the provided fields and returns the updated record.
func (s *RoomStore) UpdateRoom(ctx context.Context, tenantID, id uuid.UUID, params UpdateRoomParams) (Room, error) {
	setParts := []string{}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", strings.TrimSpace(*params.Name))
	}
	if params.Code != nil {
		add("code", nullIfBlank(params.Code))
	}
	if params.Building != nil {
		add("building", nullIfBlank(params.Building))
	}
	if params.Floor != nil {
		add("floor", nullIfBlank(params.Floor))
	}
	if params.ClearCapacity {
		add("capacity", nil)
	} else if params.Capacity != nil {
		add("capacity", *params.Capacity)
	}
	if params.RoomType != nil {
		add("room_type", *params.RoomType)
	}
	if params.Facilities != nil {
		add("facilities", params.Facilities)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(setParts) == 0 {
		return Room{}, errors.New("no fields to update")
	}

	args = append(args, tenantID, id)
	query := fmt.Sprintf(`
        UPDATE %s
        SET %s, updated_at = NOW()
        WHERE tenant_id = $%d AND room_id = $%d
        RETURNING %s
    `, RoomsTable, strings.Join(setParts, ", "), len(args)-1, len(args), roomColumns)

	var room Room
	err := s.db.WithTenant(ctx, tenantID, func(tx pgx.Tx) error {
		var scanErr error
		room, scanErr = scanRoom(tx.QueryRow(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Room{}, ErrNotFound
		}
		return Room{}, translateWriteError(err)
	}

	return room, nil
}

func (s *RoomStore) queryRooms(ctx context.Context, tenantID uuid.UUID, query string, args ...any) ([]Room, error) {
	rooms := make([]Room, 0)
	err := s.db.ReadTenant(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			room, scanErr := scanRoom(rows)
			if scanErr != nil {
				return fmt.Errorf("scan room: %w", scanErr)
			}
			rooms = append(rooms, room)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate rooms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func scanRoom(row pgx.Row) (Room, error) {
	var (
		room     Room
		capacity *int32
	)

	if err := row.Scan(
		&room.RoomID,
		&room.TenantID,
		&room.Name,
		&room.Code,
		&room.Building,
		&room.Floor,
		&capacity,
		&room.RoomType,
		&room.Facilities,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	); err != nil {
		return Room{}, err
	}

	if capacity != nil {
		c := int(*capacity)
		room.Capacity = &c
	}
	if room.Facilities == nil {
		room.Facilities = []string{}
	}
	return room, nil
}
