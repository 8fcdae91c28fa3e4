// Package server provides the HTTP API for proof scanning.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/snehagrian/proofmap/internal/github"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream client errors (bad username, missing repo) pass through
// unchanged; upstream server failures surface as 502.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}
	var quotaErr *github.QuotaError
	if errors.As(err, &quotaErr) {
		return http.StatusTooManyRequests
	}
	var upstreamErr *github.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.StatusCode >= 400 && upstreamErr.StatusCode < 500 {
			return upstreamErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
