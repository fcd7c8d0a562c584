package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	platformauth "github.com/zenGate-Global/palmyra-timetable/platform/go/auth"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/problem"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

// WithTenantSpace reads the tenant claim from the authenticated credentials and attaches tenant.Space to context.
// Requests without credentials or with a malformed tenant claim are rejected.
func WithTenantSpace() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, ok := platformauth.UserFromContext(r.Context())
			if !ok || creds == nil || creds.TenantID == nil || strings.TrimSpace(*creds.TenantID) == "" {
				writeUnauthorized(w, "tenant claim required")
				return
			}

			// Tenant claim is expected to be the tenant UUID.
			tid, err := uuid.Parse(strings.TrimSpace(*creds.TenantID))
			if err != nil || tid == uuid.Nil {
				writeUnauthorized(w, "tenant claim must be a UUID")
				return
			}

			ctx := tenant.WithSpace(r.Context(), tenant.Space{TenantID: tid})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	problem.Write(w, problem.New("Unauthorized", detail, problem.TypeUnauthorized, http.StatusUnauthorized, nil))
}
