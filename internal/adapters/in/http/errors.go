package http

import (
	"errors"
	"net/http"

	"winetrade/internal/pkg/errs"
)

// statusOf maps domain errors to HTTP status codes. Transition conflicts and
// lost races are 409 so callers know to re-read and retry; unmet workflow
// prerequisites are 422.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrStaleStatus),
		errors.Is(err, errs.ErrIntegrityMismatch):
		return http.StatusConflict
	case errors.Is(err, errs.ErrMissingDependency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTenantMismatch),
		errors.Is(err, errs.ErrOwnershipViolation):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
