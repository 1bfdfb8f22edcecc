package espn

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns a client that never auto-follows redirects; a
// redirect response must surface so the endpoint can be failed over.
func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if client.CheckRedirect == nil {
		clone := *client
		clone.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return &clone
	}
	return client
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// isJSONContentType reports whether a Content-Type header indicates JSON.
// An absent header is treated as acceptable; the body shape check catches
// the rest.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	return strings.Contains(strings.ToLower(contentType), "json")
}
