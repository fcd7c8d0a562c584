package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	roomshandler "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/handler"
	roomsservice "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timeslotshandler "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/handler"
	timeslotsservice "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	timetablehandler "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/handler"
	timetableservice "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
	platformauth "github.com/zenGate-Global/palmyra-timetable/platform/go/auth"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	platformmiddleware "github.com/zenGate-Global/palmyra-timetable/platform/go/middleware"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/staffdir"
	tenantmiddleware "github.com/zenGate-Global/palmyra-timetable/platform/go/tenant/middleware"
)

type (
	timeSlotsServer = timeslotshandler.Handler
	roomsServer     = roomshandler.Handler
	timetableServer = timetablehandler.Handler
)

// apiServer joins the per-domain handlers into the single strict server the contract generates.
type apiServer struct {
	*timeSlotsServer
	*roomsServer
	*timetableServer
}

var _ timetableapi.StrictServerInterface = apiServer{}

type routerDeps struct {
	Config  config
	Logger  *zap.Logger
	Backend *backend
	Staff   staffdir.Directory
	Verify  platformauth.VerifyFunc
}

// buildRouter assembles the health endpoints, docs and the tenant-scoped /api/v1 surface.
func buildRouter(deps routerDeps) (http.Handler, error) {
	logger := deps.Logger

	spec, err := timetableapi.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load timetable contract: %w", err)
	}

	slotService := timeslotsservice.New(
		deps.Backend.TimeSlots,
		timeslotsservice.WithUsageChecker(timetableservice.SlotUsage{Repo: deps.Backend.Entries}),
	)
	roomService := roomsservice.New(deps.Backend.Rooms)
	entryService := timetableservice.New(timetableservice.Dependencies{
		Repo:   deps.Backend.Entries,
		Slots:  slotService,
		Rooms:  roomService,
		Staff:  deps.Staff,
		Logger: logger.Named("timetable"),
	})

	rootRouter := chi.NewRouter()
	rootRouter.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.Timeout(deps.Config.RequestTimeout),
		platformmiddleware.CORS(deps.Config.CORSOrigins),
	)
	rootRouter.Use(platformlogging.RequestLogger(logger))

	rootRouter.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rootRouter.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Backend.Ping(r.Context()); err != nil {
			platformlogging.FromRequest(r, logger).Warn("readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	rootRouter.Method(http.MethodGet, "/metrics", promhttp.Handler())

	registerDocsRoutes(rootRouter, spec, logger)

	apiRouter := chi.NewRouter()
	apiRouter.Use(platformauth.JWT(deps.Verify, tenantCredentialExtractor))
	apiRouter.Use(platformmiddleware.RequestTrace)
	apiRouter.Use(tenantmiddleware.WithTenantSpace())

	server := apiServer{
		timeSlotsServer: timeslotshandler.New(slotService, logger),
		roomsServer:     roomshandler.New(roomService, logger),
		timetableServer: timetablehandler.New(entryService, logger),
	}
	apiRouter.Group(func(r chi.Router) {
		r.Use(platformmiddleware.SpecValidator(spec))
		_ = timetableapi.HandlerWithOptions(
			timetableapi.NewStrictHandlerWithOptions(server, nil, timetableapi.StrictHTTPServerOptions{
				RequestErrorHandlerFunc:  requestErrorHandler(logger),
				ResponseErrorHandlerFunc: responseErrorHandler(logger),
			}),
			timetableapi.ChiServerOptions{
				BaseRouter:       r,
				ErrorHandlerFunc: requestErrorHandler(logger),
			},
		)
	})

	rootRouter.Mount("/api/v1", apiRouter)
	return rootRouter, nil
}

// requestErrorHandler answers unbindable parameters and bodies with a validation problem.
func requestErrorHandler(logger *zap.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		platformlogging.FromRequest(r, logger).Warn("request rejected", zap.Error(err))
		problem.Write(w, problem.New("Invalid request", err.Error(), problem.TypeValidation, http.StatusBadRequest, nil))
	}
}

func responseErrorHandler(logger *zap.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		platformlogging.FromRequest(r, logger).Error("write response", zap.Error(err))
		problem.Write(w, problem.New("Internal server error", "an unexpected error occurred", problem.TypeInternal, http.StatusInternalServerError, nil))
	}
}
