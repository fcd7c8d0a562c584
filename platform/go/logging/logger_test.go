package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerEmitsCloudLoggingFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Component: "timetable-api", Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.Warn("slot rejected", zap.String("slot", "p1"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "WARNING", entry["severity"])
	require.Equal(t, "slot rejected", entry["message"])
	require.Equal(t, "timetable-api", entry["component"])
	require.Equal(t, "p1", entry["slot"])
	require.Contains(t, entry, "timestamp")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "chatty"})
	require.Error(t, err)
}

func TestRequestLoggerStoresLogger(t *testing.T) {
	base := zaptest.NewLogger(t)

	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger, ok := FromContext(r.Context())
		require.True(t, ok)
		require.NotNil(t, logger)
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/timetable/grid", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Equal(t, base, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil), base))
}

func TestRequestLoggerCompletionEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(RequestLogger(zap.New(core)))
	r.Get("/timetable/entries/{entryId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/timetable/entries/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.EqualValues(t, http.StatusNotFound, first["status"])
	require.Equal(t, "/timetable/entries/{entryId}", first["route"])
	require.Equal(t, "/timetable/entries/abc", first["path"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
