package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSendsProblemDocument(t *testing.T) {
	details := New("Unauthorized", "missing bearer token", TypeUnauthorized, http.StatusUnauthorized, nil)

	rec := httptest.NewRecorder()
	Write(rec, details)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Unauthorized", body["title"])
	require.Equal(t, TypeUnauthorized, body["type"])
	require.EqualValues(t, http.StatusUnauthorized, body["status"])
	require.NotContains(t, body, "errors")
}

func TestNewCopiesFieldErrors(t *testing.T) {
	fields := map[string][]string{"name": {"name is required"}}
	details := New("Validation failed", "", TypeValidation, http.StatusBadRequest, fields)

	fields["name"][0] = "mutated"
	require.Equal(t, "name is required", details.Errors["name"][0])
}
