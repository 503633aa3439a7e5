package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/slugkit/internal/reservation"
	"github.com/dmitrymomot/slugkit/pkg/slug"
	"github.com/dmitrymomot/slugkit/pkg/slugstore"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeTableNotAllowed = "table_not_allowed"
	CodeExhausted       = "uniqueness_exhausted"
	CodeCheckFailed     = "existence_check_failed"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeNotConfigured   = "not_configured"
	CodeInternal        = "internal_error"
)

// HTTPError is the error returned by handlers and rendered as JSON.
// Err is logged, never exposed.
type HTTPError struct {
	Err       error  `json:"-"`
	Message   string `json:"message"`
	ErrorCode string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
	Code      int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func newHTTPError(code int, errorCode, message string, err error) *HTTPError {
	return &HTTPError{Code: code, ErrorCode: errorCode, Message: message, Err: err}
}

func errBadRequest(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

func errInternal(err error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, CodeInternal, http.StatusText(http.StatusInternalServerError), err)
}

// toHTTPError maps domain errors to responses. Unknown errors become 500.
func toHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, slug.ErrExhaustedUniquenessAttempts):
		return newHTTPError(http.StatusConflict, CodeExhausted, "no free slug found", err)
	case errors.Is(err, reservation.ErrConflict):
		return newHTTPError(http.StatusConflict, CodeConflict, "slug reserved concurrently, retry", err)
	case errors.Is(err, reservation.ErrNotFound):
		return newHTTPError(http.StatusNotFound, CodeNotFound, "reservation not found", err)
	case errors.Is(err, reservation.ErrInvalidRequest):
		return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, "scope, text and key are required", err)
	case errors.Is(err, slugstore.ErrInvalidIdentifier):
		return newHTTPError(http.StatusBadRequest, CodeInvalidRequest, "table and column are required", err)
	case errors.Is(err, slugstore.ErrCheckFailed), errors.Is(err, reservation.ErrStore):
		return newHTTPError(http.StatusBadGateway, CodeCheckFailed, "slug store unavailable", err)
	default:
		return errInternal(err)
	}
}
