package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoSource = errors.New("no data source configured")
	ErrNoFetch  = errors.New("nil page-fetch function")
)

// FetchError represents a data-source failure for one page request. It is
// caught at the controller boundary and rendered as the error state; it never
// propagates into the host event loop.
type FetchError struct {
	Page  int    // 1-based page that was requested
	Query string // Search query active for the request
	Err   error  // Underlying error
}

func (e *FetchError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("fetch page %d [%q]: %v", e.Page, e.Query, e.Err)
	}
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
