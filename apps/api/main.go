package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/metrics"
)

type config struct {
	Port                    string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout         time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout          time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	StoreBackend            string        `env:"STORE_BACKEND" envDefault:"postgres"` // postgres | memory
	DatabaseURL             string        `env:"DATABASE_URL"`                        // required when STORE_BACKEND=postgres
	DBMaxConns              int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	BootstrapSchema         bool          `env:"BOOTSTRAP_SCHEMA" envDefault:"false"`
	AuthProvider            string        `env:"AUTH_PROVIDER" envDefault:"firebase"` // firebase | dev
	FirebaseCredentialsFile string        `env:"FIREBASE_CREDENTIALS_FILE"`
	CORSOrigins             []string      `env:"CORS_ORIGINS" envSeparator:","`
	StaffDirectoryURL       string        `env:"STAFF_DIRECTORY_URL"`
	StaffDirectoryAPIKey    string        `env:"STAFF_DIRECTORY_API_KEY"`
	RedisURL                string        `env:"REDIS_URL"`
	StaffCacheTTL           time.Duration `env:"STAFF_CACHE_TTL" envDefault:"5m"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "timetable-api",
		Level:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	metrics.Register()

	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init store backend", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer backend.Close()

	staff, closeStaff, err := buildStaffDirectory(cfg, logger)
	if err != nil {
		logger.Fatal("init staff directory", zap.Error(err))
	}
	defer closeStaff()

	verify, err := buildTokenVerifier(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init auth", zap.String("provider", cfg.AuthProvider), zap.Error(err))
	}

	router, err := buildRouter(routerDeps{
		Config:  cfg,
		Logger:  logger,
		Backend: backend,
		Staff:   staff,
		Verify:  verify,
	})
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("starting api server",
			zap.String("port", cfg.Port),
			zap.String("store_backend", cfg.StoreBackend),
			zap.String("auth_provider", cfg.AuthProvider),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
