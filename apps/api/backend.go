package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	roomsrepo "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/repo"
	roomsservice "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timeslotsrepo "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/repo"
	timeslotsservice "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	timetablerepo "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/repo"
	timetableservice "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/persistence"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/staffdir"
)

// backend bundles the three domain repositories behind one storage choice.
type backend struct {
	TimeSlots timeslotsservice.Repository
	Rooms     roomsservice.Repository
	Entries   timetableservice.Repository

	pool *pgxpool.Pool
}

// Ping reports storage readiness. The memory backend is always ready.
func (b *backend) Ping(ctx context.Context) error {
	if b.pool == nil {
		return nil
	}
	return b.pool.Ping(ctx)
}

func (b *backend) Close() {
	if b.pool != nil {
		persistence.ClosePool(b.pool)
	}
}

func newMemoryBackend() *backend {
	return &backend{
		TimeSlots: timeslotsrepo.NewMemoryRepository(),
		Rooms:     roomsrepo.NewMemoryRepository(),
		Entries:   timetablerepo.NewMemoryRepository(),
	}
}

func openBackend(ctx context.Context, cfg config, logger *zap.Logger) (*backend, error) {
	switch cfg.StoreBackend {
	case "memory":
		logger.Warn("using in-memory store; data is lost on restart")
		return newMemoryBackend(), nil
	case "postgres":
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q (use postgres or memory)", cfg.StoreBackend)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is required when STORE_BACKEND=postgres")
	}

	pool, err := persistence.NewPool(ctx, persistence.PoolConfig{
		ConnString:      cfg.DatabaseURL,
		MaxConns:        cfg.DBMaxConns,
		ApplicationName: "timetable-api",
	})
	if err != nil {
		return nil, fmt.Errorf("init postgres pool: %w", err)
	}

	if cfg.BootstrapSchema {
		if err := persistence.BootstrapSchema(ctx, pool); err != nil {
			persistence.ClosePool(pool)
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
		logger.Info("timetable schema applied")
	}

	tenantDB := persistence.NewTenantDB(pool)

	slotStore, err := persistence.NewTimeSlotStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, fmt.Errorf("init time slot store: %w", err)
	}
	roomStore, err := persistence.NewRoomStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, fmt.Errorf("init room store: %w", err)
	}
	entryStore, err := persistence.NewEntryStore(ctx, tenantDB)
	if err != nil {
		persistence.ClosePool(pool)
		return nil, fmt.Errorf("init entry store: %w", err)
	}

	return &backend{
		TimeSlots: timeslotsrepo.NewPostgresRepository(slotStore),
		Rooms:     roomsrepo.NewPostgresRepository(roomStore),
		Entries:   timetablerepo.NewPostgresRepository(entryStore),
		pool:      pool,
	}, nil
}

// buildStaffDirectory returns the HTTP staff directory when configured, with
// an optional Redis name cache, or a directory that resolves no names.
func buildStaffDirectory(cfg config, logger *zap.Logger) (staffdir.Directory, func(), error) {
	if strings.TrimSpace(cfg.StaffDirectoryURL) == "" {
		logger.Info("staff directory not configured; grid teacher names will be empty")
		return staffdir.Noop{}, func() {}, nil
	}

	client := staffdir.NewClient(cfg.StaffDirectoryURL, cfg.StaffDirectoryAPIKey)
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return client, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	redisClient := redis.NewClient(opts)
	client.UseRedisCache(redisClient, cfg.StaffCacheTTL)
	logger.Info("staff name cache enabled", zap.Duration("ttl", cfg.StaffCacheTTL))

	return client, func() { _ = redisClient.Close() }, nil
}
