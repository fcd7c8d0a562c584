package middleware

import (
	"net/http"
	"strings"
)

const (
	corsMethods = "GET,POST,PATCH,DELETE,OPTIONS"
	corsHeaders = "Authorization,Content-Type,X-Request-Id"
)

// DefaultCORS allows every origin. Suitable for local development only.
func DefaultCORS() func(http.Handler) http.Handler {
	return CORS(nil)
}

// CORS answers preflight requests and sets the allow headers for the given origins.
// An empty list, or a list containing "*", allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	wildcard := len(origins) == 0
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			wildcard = true
		}
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "":
				if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
			}
			w.Header().Set("Access-Control-Allow-Methods", corsMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
			w.Header().Set("Access-Control-Expose-Headers", "Location")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
