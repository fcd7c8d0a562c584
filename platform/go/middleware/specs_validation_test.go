package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	timetableapi "github.com/zenGate-Global/palmyra-timetable/generated/go/timetable"
)

func newValidatedHandler(t *testing.T) http.Handler {
	t.Helper()

	spec, err := timetableapi.GetSwagger()
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	return SpecValidator(spec)(ok)
}

func TestSpecValidatorAcceptsContractRequests(t *testing.T) {
	t.Parallel()

	handler := newValidatedHandler(t)
	body := `{"timeSlotId":"` + uuid.NewString() + `","weekday":3,"className":"10","section":"A"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timetable/entries?checkConflicts=true", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestSpecValidatorRejectsWithProblem(t *testing.T) {
	t.Parallel()

	handler := newValidatedHandler(t)

	cases := []struct {
		name   string
		method string
		target string
		body   string
		auth   bool
		status int
	}{
		{name: "weekday out of range", method: http.MethodPost, target: "/api/v1/timetable/entries", body: `{"timeSlotId":"` + uuid.NewString() + `","weekday":9}`, auth: true, status: http.StatusBadRequest},
		{name: "missing weekday", method: http.MethodPost, target: "/api/v1/timetable/conflicts/check", body: `{"timeSlotId":"` + uuid.NewString() + `"}`, auth: true, status: http.StatusBadRequest},
		{name: "bad boolean query", method: http.MethodGet, target: "/api/v1/rooms?activeOnly=perhaps", auth: true, status: http.StatusBadRequest},
		{name: "missing bearer", method: http.MethodGet, target: "/api/v1/time-slots", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}
			if tc.auth {
				req.Header.Set("Authorization", "Bearer token")
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var payload map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			require.NotEmpty(t, payload["detail"])
		})
	}
}
