package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP push exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function that flushes pending exports.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "ffl-projections"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	endpointAttempts  metric.Int64Counter
	endpointErrors    metric.Int64Counter
	endpointLatencyMs metric.Float64Histogram
	playersParsed     metric.Int64Counter
	rowsExported      metric.Int64Counter
	runCycles         metric.Int64Counter
	runErrors         metric.Int64Counter
	runLatencyMs      metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("ffl-projections")
	ctx := context.Background()

	endpointAttempts, err := meter.Int64Counter("fetch_endpoint_attempts_total")
	if err != nil {
		return nil, err
	}
	endpointErrors, err := meter.Int64Counter("fetch_endpoint_errors_total")
	if err != nil {
		return nil, err
	}
	endpointLatency, err := meter.Float64Histogram("fetch_endpoint_duration_ms")
	if err != nil {
		return nil, err
	}
	playersParsed, err := meter.Int64Counter("players_parsed_total")
	if err != nil {
		return nil, err
	}
	rowsExported, err := meter.Int64Counter("rows_exported_total")
	if err != nil {
		return nil, err
	}
	runCycles, err := meter.Int64Counter("run_cycles_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		endpointAttempts:  endpointAttempts,
		endpointErrors:    endpointErrors,
		endpointLatencyMs: endpointLatency,
		playersParsed:     playersParsed,
		rowsExported:      rowsExported,
		runCycles:         runCycles,
		runErrors:         runErrors,
		runLatencyMs:      runLatency,
	}, nil
}

func (o *otelInstruments) recordEndpointAttempt(provider, endpoint string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrProvider, provider),
		attribute.String(AttrEndpoint, endpoint),
	}
	o.recordCounter(o.endpointAttempts, 1, attrs...)
	o.recordHistogram(o.endpointLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.endpointErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordPlayersParsed(count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.playersParsed, int64(count))
}

func (o *otelInstruments) recordRowsExported(count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.rowsExported, int64(count))
}

func (o *otelInstruments) recordRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.runCycles, 1)
	o.recordHistogram(o.runLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.runErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
