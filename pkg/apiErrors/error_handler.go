package apiErrors

import (
	"encoding/json"
	"net/http"
)

// APIError is the error envelope every endpoint returns: a human summary of
// what failed plus the raw underlying message. There are no structured error
// codes; the dashboard only displays these strings.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError writes the standard error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, summary string, err error) {
	apiErr := APIError{
		Error: summary,
	}

	if err != nil {
		apiErr.Details = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteInternalError writes the envelope with HTTP 500, the status used for
// every upstream or database failure.
func WriteInternalError(w http.ResponseWriter, summary string, err error) {
	WriteError(w, http.StatusInternalServerError, summary, err)
}

// WriteNotFound writes the envelope with HTTP 404.
func WriteNotFound(w http.ResponseWriter, summary string) {
	WriteError(w, http.StatusNotFound, summary, nil)
}
