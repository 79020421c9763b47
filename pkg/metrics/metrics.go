// Package metrics defines the instruments recorded by the service. HTTP
// traffic goes straight to a Prometheus registry; the naming pipeline records
// through OpenTelemetry so it can be exported the same way as everything else
// served on the metrics endpoint.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20} //nolint: gochecknoglobals

const meterName = "smartdomain"

// Instruments groups the pipeline instruments.
type Instruments struct {
	// RegistrarChecks counts domain checks by result
	// (available, taken, error, unconfigured, cached).
	RegistrarChecks metric.Int64Counter
	// RegistrarLatency records registrar round trips in seconds.
	RegistrarLatency metric.Float64Histogram
	// LLMLatency records LLM completions in seconds, by stage.
	LLMLatency metric.Float64Histogram
	// GenerateDuration records whole pipeline runs in seconds, by outcome.
	GenerateDuration metric.Float64Histogram
}

// New creates the pipeline instruments on the given meter provider.
func New(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(meterName)

	checks, err := meter.Int64Counter("registrar_checks_total",
		metric.WithDescription("Domain availability checks by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create registrar checks counter: %w", err)
	}
	registrar, err := meter.Float64Histogram("registrar_request_duration_seconds",
		metric.WithDescription("Registrar API latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create registrar latency histogram: %w", err)
	}
	llm, err := meter.Float64Histogram("llm_request_duration_seconds",
		metric.WithDescription("LLM completion latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create llm latency histogram: %w", err)
	}
	generate, err := meter.Float64Histogram("generate_duration_seconds",
		metric.WithDescription("End to end name generation latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create generate histogram: %w", err)
	}

	return &Instruments{
		RegistrarChecks:  checks,
		RegistrarLatency: registrar,
		LLMLatency:       llm,
		GenerateDuration: generate,
	}, nil
}

// Noop returns instruments that record nothing. Used in tests and tools.
func Noop() *Instruments {
	i, _ := New(noop.NewMeterProvider())

	return i
}

// NewHTTPDuration registers the HTTP request latency histogram on reg.
func NewHTTPDuration(reg prometheus.Registerer) (*prometheus.HistogramVec, error) {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status code.",
		Buckets: DefaultBuckets,
	}, []string{"route", "method", "code"})
	if err := reg.Register(h); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return h, nil
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
