package fourchan

import (
	"fmt"
	"net/http"
)

// FetchError reports a transport or HTTP failure while reaching the API.
type FetchError struct {
	Resource   string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("fetch %s failed with status %d: %s", e.Resource, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("fetch %s failed with status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s request failed: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the board or thread does not resolve.
func (e *FetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// FormatError reports a payload that arrived but cannot be interpreted.
type FormatError struct {
	Resource string
	Reason   string
	Err      error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected %s payload: %s: %v", e.Resource, e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected %s payload: %s", e.Resource, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
