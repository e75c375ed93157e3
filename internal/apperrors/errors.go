package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnavailableAction indicates that an action is not offered for the entity's current state.
var ErrUnavailableAction = errors.New("action not available")

// ErrUpstream indicates that the resale backend rejected a call or could not be reached.
var ErrUpstream = errors.New("upstream request failed")

// ErrSuperseded indicates that a screen refresh was replaced by a newer one before it finished.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// UpstreamError carries the status and user-facing message of a failed upstream call.
// Status is 0 when the backend could not be reached at all.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream unreachable: %s", e.Message)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is match both ErrUpstream and the transport cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// HTTPStatus maps the upstream status to the status the console answers with.
// Client errors pass through; server and transport failures become 502.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}
	return http.StatusBadGateway
}

// detailedError pairs a sentinel kind with the message shown to the operator.
type detailedError struct {
	kind error
	msg  string
}

func (e *detailedError) Error() string { return e.msg }
func (e *detailedError) Unwrap() error { return e.kind }

// NewValidationError wraps ErrValidation with a user-facing message.
func NewValidationError(format string, args ...any) error {
	return &detailedError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NewUnavailableActionError wraps ErrUnavailableAction for the named action.
func NewUnavailableActionError(action, entity string, id int64) error {
	return &detailedError{
		kind: ErrUnavailableAction,
		msg:  fmt.Sprintf("%s is not available for %s %d in its current state", action, entity, id),
	}
}

// Message returns the user-facing part of err: the upstream message when err came
// from the backend, the local message for validation failures, otherwise the error text.
func Message(err error) string {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Message
	}
	var detErr *detailedError
	if errors.As(err, &detErr) {
		return detErr.msg
	}
	return err.Error()
}
