// Package problem writes RFC 7807 problem documents from middleware that runs ahead of the
// generated handlers.
package problem

import (
	"encoding/json"
	"net/http"
)

const (
	TypeValidation        = "https://tcg.land/problems/validation-error"
	TypeNotFound          = "https://tcg.land/problems/not-found"
	TypeConflict          = "https://tcg.land/problems/conflict"
	TypeInvalidTransition = "https://tcg.land/problems/invalid-transition"
	TypeUnauthorized      = "https://tcg.land/problems/unauthorized"
	TypeInternal          = "https://tcg.land/problems/internal-error"
)

const ContentType = "application/problem+json"

// Details is a problem document.
type Details struct {
	Type     string              `json:"type,omitempty"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// New builds a problem document, copying fieldErrors so callers can keep mutating theirs.
func New(title, detail, problemType string, status int, fieldErrors map[string][]string) Details {
	details := Details{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}

	if len(fieldErrors) > 0 {
		copied := make(map[string][]string, len(fieldErrors))
		for field, messages := range fieldErrors {
			copied[field] = append([]string(nil), messages...)
		}
		details.Errors = copied
	}

	return details
}

// Write sends the problem document with its status code.
func Write(w http.ResponseWriter, details Details) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(details.Status)
	_ = json.NewEncoder(w).Encode(details)
}
