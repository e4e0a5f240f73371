package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	// Fields holds per-field reasons for validation failures
	Fields map[string]string
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation is returned for malformed or missing input.
func Validation(message string, fields map[string]string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest, Fields: fields}
}

// NotFound is returned when the primary resource of a request does not exist.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Reference is returned when a related entity referenced by id does not exist.
func Reference(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Precondition is returned when a referenced entity is in a state that forbids the operation,
// e.g. an inactive dominio.
func Precondition(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Conflict is returned on unique or referential integrity violations.
func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

// StatusCode returns the http status carried by err, or 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
