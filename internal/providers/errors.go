package providers

import (
	"errors"
	"fmt"
)

// EndpointError captures a single failed endpoint attempt: a transport
// failure, an error status, or a redirect (redirects are not followed).
type EndpointError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Snippet    string
	Err        error
}

func (e *EndpointError) Error() string {
	msg := fmt.Sprintf("%s: endpoint %s failed", e.Provider, e.Endpoint)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Snippet)
	}
	return msg
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// AsEndpointError attempts to unwrap an error into an EndpointError.
func AsEndpointError(err error) (*EndpointError, bool) {
	var epErr *EndpointError
	if errors.As(err, &epErr) {
		return epErr, true
	}
	return nil, false
}

// ContentError marks a downloaded payload that failed validation: a non-JSON
// content type, an empty body, or content that does not parse. These are
// always fatal; there is no further endpoint to fall back to.
type ContentError struct {
	Provider    string
	ContentType string
	Snippet     string
	Err         error
}

func (e *ContentError) Error() string {
	msg := fmt.Sprintf("%s: unusable content", e.Provider)
	if e.ContentType != "" {
		msg = fmt.Sprintf("%s (content-type=%s)", msg, e.ContentType)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Snippet)
	}
	return msg
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// Snip bounds diagnostic snippets taken from offending payloads.
func Snip(body []byte, max int) string {
	if max <= 0 || len(body) <= max {
		return string(body)
	}
	return string(body[:max])
}
