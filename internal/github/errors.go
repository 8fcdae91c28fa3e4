// Package github is the repository source adapter over the GitHub REST API.
package github

import (
	"fmt"
	"time"
)

// UpstreamError reports a provider failure on a call whose failure aborts
// the scan (repository listing). StatusCode is 0 when the request never
// reached the provider.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("github: %s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("github: %s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// QuotaError reports that the remaining rate-limit quota is below the
// safety floor, so the scan was refused before doing any repository work.
type QuotaError struct {
	Remaining int
	Reset     time.Time
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("github rate limit too low to scan: %d remaining, resets at %s",
		e.Remaining, e.Reset.UTC().Format(time.RFC3339))
}
