package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEndpointErrorMessage(t *testing.T) {
	err := &EndpointError{
		Provider:   "espn",
		Endpoint:   "players",
		StatusCode: 502,
		Snippet:    "bad gateway",
	}
	msg := err.Error()
	for _, want := range []string{"espn", "players", "status=502", "bad gateway"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestAsEndpointErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := &EndpointError{Provider: "espn", Endpoint: "leaguedefaults", Err: errors.New("boom")}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	got, ok := AsEndpointError(wrapped)
	if !ok {
		t.Fatal("expected to unwrap EndpointError")
	}
	if got.Endpoint != "leaguedefaults" {
		t.Fatalf("unexpected endpoint %q", got.Endpoint)
	}

	if _, ok := AsEndpointError(errors.New("plain")); ok {
		t.Fatal("plain error should not unwrap")
	}
}

func TestContentErrorMessage(t *testing.T) {
	err := &ContentError{Provider: "espn", ContentType: "text/html", Snippet: "<html>"}
	msg := err.Error()
	if !strings.Contains(msg, "text/html") || !strings.Contains(msg, "<html>") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSnipBoundsOutput(t *testing.T) {
	if got := Snip([]byte("abcdef"), 3); got != "abc" {
		t.Fatalf("expected truncated snippet, got %q", got)
	}
	if got := Snip([]byte("ab"), 3); got != "ab" {
		t.Fatalf("expected full snippet, got %q", got)
	}
	if got := Snip([]byte("ab"), 0); got != "ab" {
		t.Fatalf("expected full snippet for non-positive max, got %q", got)
	}
}
