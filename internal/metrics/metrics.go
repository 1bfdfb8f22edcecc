package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	attempts    int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a run. It is
// nil-safe so callers can pass it around without guarding, and it mirrors
// everything into OTel instruments when telemetry is enabled.
type Recorder struct {
	mu        sync.Mutex
	endpoints map[string]*endpointStats
	players   int
	rows      int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		endpoints: make(map[string]*endpointStats),
		otel:      otel,
	}
}

// RecordEndpointAttempt counts one fetch attempt against a candidate
// endpoint and stores the observed latency. The provider name only labels
// the exported instruments; in-memory stats stay keyed by endpoint.
func (r *Recorder) RecordEndpointAttempt(provider, endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(endpoint)
	r.mu.Lock()
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEndpointAttempt(provider, endpoint, duration, err)
	}
}

// RecordPlayersParsed stores how many players the payload yielded.
func (r *Recorder) RecordPlayersParsed(count int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.players = count
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPlayersParsed(count)
	}
}

// RecordRowsExported stores how many rows reached the export file.
func (r *Recorder) RecordRowsExported(count int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rows = count
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRowsExported(count)
	}
}

// RecordRun tracks one full pipeline run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// Snapshot is a copy of the counters recorded for one endpoint.
type Snapshot struct {
	Attempts    int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) EndpointSnapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.endpoints[endpoint]; ok && stats != nil {
		return Snapshot{Attempts: stats.attempts, Errors: stats.errors, LastLatency: stats.lastLatency}
	}
	return Snapshot{}
}

// PlayersParsed returns the last recorded player count.
func (r *Recorder) PlayersParsed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players
}

// RowsExported returns the last recorded row count.
func (r *Recorder) RowsExported() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}

func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.endpoints[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.endpoints[endpoint] = stats
	}
	return stats
}
