package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{name: "wildcard by default", method: http.MethodGet, origin: "https://a.test", wantStatus: http.StatusOK, wantAllowed: "*"},
		{name: "explicit wildcard", origins: []string{"*"}, method: http.MethodGet, origin: "https://a.test", wantStatus: http.StatusOK, wantAllowed: "*"},
		{name: "listed origin echoed", origins: []string{"https://a.test"}, method: http.MethodGet, origin: "https://a.test", wantStatus: http.StatusOK, wantAllowed: "https://a.test"},
		{name: "unlisted origin", origins: []string{"https://a.test"}, method: http.MethodGet, origin: "https://b.test", wantStatus: http.StatusOK, wantAllowed: ""},
		{name: "preflight short-circuits", origins: []string{"https://a.test"}, method: http.MethodOptions, origin: "https://a.test", wantStatus: http.StatusNoContent, wantAllowed: "https://a.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/timetable/grid", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			CORS(tt.origins)(ok).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
		})
	}
}
