package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	platformauth "github.com/zenGate-Global/palmyra-timetable/platform/go/auth"
	platformlogging "github.com/zenGate-Global/palmyra-timetable/platform/go/logging"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/requesttrace"
)

// RequestTrace attaches the request's AuditInfo so services can stamp created_by.
// It must run after the JWT middleware; callers without credentials are recorded as anonymous.
func RequestTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := platformlogging.FromRequest(r, nil)
		requestID := middleware.GetReqID(r.Context())

		audit := requesttrace.Anonymous(requestID)
		if creds, ok := platformauth.UserFromContext(r.Context()); ok && creds != nil {
			var err error
			audit, err = requesttrace.FromCredentials(creds, requestID)
			if err != nil {
				if logger != nil {
					logger.Warn("rejecting credentials without a user id", zap.Error(err))
				}
				problem.Write(w, problem.New("Unauthorized", "credentials carry no user id", problem.TypeUnauthorized, http.StatusUnauthorized, nil))
				return
			}
		}

		ctx := requesttrace.IntoContext(r.Context(), audit)
		if logger != nil {
			fields := []zap.Field{zap.String("actor_kind", string(audit.ActorKind))}
			if actor := audit.ActorID(); actor != nil {
				fields = append(fields, zap.String("actor_id", *actor))
			}
			if audit.TenantID != nil {
				fields = append(fields, zap.String("tenant_claim", *audit.TenantID))
			}
			ctx = platformlogging.WithLogger(ctx, logger.With(fields...))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
