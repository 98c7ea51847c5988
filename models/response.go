package models

import (
	"net/http"
	"time"
)

// APIResponse is the envelope for successful API responses.
type APIResponse[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Data      T         `json:"data"`
}

// NewAPIResponse stamps a success envelope with the current UTC time.
func NewAPIResponse[T any](status int, message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Message:   message,
		Data:      data,
	}
}

// OK is NewAPIResponse with status 200.
func OK[T any](message string, data T) APIResponse[T] {
	return NewAPIResponse(http.StatusOK, message, data)
}

// APIErrorResponse is the envelope for failed API responses. Errors carries
// per-field details such as validation failures and may be empty.
type APIErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Errors    []string  `json:"errors,omitempty"`
}

// NewAPIErrorResponse builds an error envelope. Error is the HTTP reason
// phrase for status, e.g. "Bad Request".
func NewAPIErrorResponse(status int, message, path string, errs ...string) APIErrorResponse {
	return APIErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
		Errors:    errs,
	}
}
