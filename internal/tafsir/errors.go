package tafsir

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError is a failed fetch: transport failure, timeout or a non-200
// status. StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Temporary reports whether another attempt may succeed.
func (e *NetworkError) Temporary() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 500:
		return true
	}
	return false
}

// ExtractionError means the page was fetched but had no commentary where the
// author's selector expects it.
type ExtractionError struct {
	URL      string
	Selector string
	Reason   string
}

func (e *ExtractionError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("extract %s: %s", e.Selector, e.Reason)
	}
	return fmt.Sprintf("extract %s from %s: %s", e.Selector, e.URL, e.Reason)
}

// IsSkippable reports whether err only concerns the current ayah.
func IsSkippable(err error) bool {
	var netErr *NetworkError
	var extErr *ExtractionError
	return errors.As(err, &netErr) || errors.As(err, &extErr)
}
