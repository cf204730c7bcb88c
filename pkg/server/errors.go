package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPError represents an HTTP error with a status code and message.
// It implements the error interface and is what handlers return to map
// failures onto status codes.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // Message returned to the client
	Err     error  // Optional underlying error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(err error) *HTTPError {
	msg := "bad request"
	if err != nil {
		msg = err.Error()
	}
	return &HTTPError{Code: http.StatusBadRequest, Message: msg, Err: err}
}

// BadRequestf creates a 400 Bad Request error with a formatted message.
func BadRequestf(format string, args ...any) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message}
}

// writeError sends an HTTPError (or a generic 500 for other errors) as a
// JSON body.
func writeError(w http.ResponseWriter, err error) {
	he, ok := err.(*HTTPError)
	if !ok {
		he = &HTTPError{Code: http.StatusInternalServerError, Message: "internal server error", Err: err}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.Code)
	json.NewEncoder(w).Encode(map[string]any{
		"error": he.Message,
		"code":  he.Code,
	})
}

// writeJSON sends v as a JSON body with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
