package api

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned when the backend has no task with the given id.
var ErrTaskNotFound = errors.New("task not found")

// BackendError is a well-formed backend response with success=false.
// Transport and timeout failures are returned as plain wrapped errors instead,
// so callers can tell "the backend said no" apart from "the backend is gone".
type BackendError struct {
	Op      string // the endpoint that failed, e.g. "start workflow"
	Message string // backend-provided error text
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend error: %s", e.Op, e.Message)
}

// IsBackendError reports whether err is a success=false backend response.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
