package espn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"ffl-projections/internal/logging"
	"ffl-projections/internal/metrics"
	"ffl-projections/internal/providers"
)

// ArtifactSink receives best-effort debug artifacts. Implementations must
// swallow their own failures; a sink error never affects the run.
type ArtifactSink interface {
	SaveArtifact(name string, data []byte)
}

// Config controls how the espn client reaches the upstream API.
type Config struct {
	BaseURL    string
	Season     int
	SWID       string
	S2         string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Artifacts  ArtifactSink
	Metrics    *metrics.Recorder
}

// Client fetches the raw players payload from the ESPN fantasy API, trying
// the primary players endpoint first and falling back to the league-defaults
// and generic season endpoints. Requests are sequential; there is no retry
// beyond the ordered fallback.
type Client struct {
	baseURL    string
	season     int
	swid       string
	s2         string
	httpClient httpDoer
	logger     *slog.Logger
	artifacts  ArtifactSink
	metrics    *metrics.Recorder
}

// NewClient constructs an espn client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     cfg.Season,
		swid:       cfg.SWID,
		s2:         cfg.S2,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		artifacts:  cfg.Artifacts,
		metrics:    cfg.Metrics,
	}
}

type endpoint struct {
	name       string
	url        string
	withFilter bool
}

func (c *Client) endpoints() []endpoint {
	return []endpoint{
		{endpointPlayers, c.baseURL + fmt.Sprintf(pathPlayers, c.season), true},
		{endpointLeagueDefaults, c.baseURL + fmt.Sprintf(pathLeagueDefaults, c.season), false},
		{endpointSeason, c.baseURL + fmt.Sprintf(pathSeason, c.season), false},
	}
}

// FetchPlayersRaw tries each candidate endpoint in order and returns the
// first successful response body. The accepted response must carry a
// JSON-indicating content type (or none at all); anything else is fatal
// since the remaining endpoints would serve the same representation.
func (c *Client) FetchPlayersRaw(ctx context.Context) (providers.RawResult, error) {
	filter, err := encodeFilter(c.season)
	if err != nil {
		return providers.RawResult{}, fmt.Errorf("espn: encoding filter: %w", err)
	}
	c.saveArtifact("filter.json", filter)

	var attemptErrs []error
	for _, ep := range c.endpoints() {
		start := time.Now()
		res, err := c.tryEndpoint(ctx, ep, filter)
		c.metrics.RecordEndpointAttempt(providerName, ep.name, time.Since(start), err)

		if err == nil {
			if !isJSONContentType(res.ContentType) {
				return providers.RawResult{}, &providers.ContentError{
					Provider:    providerName,
					ContentType: res.ContentType,
					Snippet:     providers.Snip(res.Body, snippetLen),
				}
			}
			logging.Info(c.logger, "fetched players payload",
				logging.FieldProvider, providerName,
				logging.FieldEndpoint, ep.name,
				"bytes", len(res.Body),
			)
			return res, nil
		}

		if ctx.Err() != nil {
			return providers.RawResult{}, ctx.Err()
		}
		attrs := []any{
			logging.FieldProvider, providerName,
			logging.FieldEndpoint, ep.name,
			"error", err,
		}
		if epErr, ok := providers.AsEndpointError(err); ok && epErr.StatusCode != 0 {
			attrs = append(attrs, logging.FieldStatusCode, epErr.StatusCode)
		}
		logging.Warn(c.logger, "endpoint attempt failed", attrs...)
		attemptErrs = append(attemptErrs, err)
	}

	return providers.RawResult{}, fmt.Errorf("espn: all endpoints failed: %w", errors.Join(attemptErrs...))
}

func (c *Client) tryEndpoint(ctx context.Context, ep endpoint, filter []byte) (providers.RawResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.url, nil)
	if err != nil {
		return providers.RawResult{}, &providers.EndpointError{Provider: providerName, Endpoint: ep.name, Err: err}
	}
	c.setHeaders(req)
	if ep.withFilter {
		req.Header.Set(headerFantasyFilter, string(filter))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.RawResult{}, &providers.EndpointError{Provider: providerName, Endpoint: ep.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		c.saveArtifact(ep.name+"-redirect-headers.txt", dumpHeaders(resp))
		return providers.RawResult{}, &providers.EndpointError{
			Provider:   providerName,
			Endpoint:   ep.name,
			StatusCode: resp.StatusCode,
			Err:        errors.New("redirect not followed"),
		}
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLen))
		c.saveArtifact(ep.name+"-error-headers.txt", dumpHeaders(resp))
		c.saveArtifact(ep.name+"-error-body.txt", body)
		return providers.RawResult{}, &providers.EndpointError{
			Provider:   providerName,
			Endpoint:   ep.name,
			StatusCode: resp.StatusCode,
			Snippet:    strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.RawResult{}, &providers.EndpointError{Provider: providerName, Endpoint: ep.name, Err: err}
	}

	c.saveArtifact(ep.name+"-response-headers.txt", dumpHeaders(resp))
	c.saveArtifact(ep.name+"-body-snippet.txt", []byte(providers.Snip(body, snippetLen)))

	return providers.RawResult{
		Body:        body,
		Endpoint:    ep.name,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", acceptValue)
	req.Header.Set("Accept-Language", acceptLanguageValue)
	req.Header.Set("User-Agent", userAgentValue)
	req.Header.Set("Referer", refererValue)
	req.Header.Set("Origin", originValue)
	req.Header.Set("x-fantasy-source", fantasySourceValue)
	req.Header.Set("x-fantasy-platform", fantasyPlatformVal)
	req.Header.Set("x-fantasy-site", fantasySiteValue)

	req.AddCookie(&http.Cookie{Name: cookieSWID, Value: c.swid})
	req.AddCookie(&http.Cookie{Name: cookieS2, Value: c.s2})
}

func (c *Client) saveArtifact(name string, data []byte) {
	if c.artifacts == nil {
		return
	}
	c.artifacts.SaveArtifact(name, data)
}

func dumpHeaders(resp *http.Response) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", resp.Proto, resp.Status)

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range resp.Header[k] {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	return []byte(b.String())
}
