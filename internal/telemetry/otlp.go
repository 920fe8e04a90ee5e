// Package telemetry exports navigation spans over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// DefaultServiceName is used when no service name is configured.
	DefaultServiceName = "slidedeck"
	instrumentation    = "slidedeck/nav"
	tracesPath         = "/v1/traces"
)

// Config selects the OTLP endpoint. An empty Endpoint falls back to
// OTEL_EXPORTER_OTLP_ENDPOINT; if that is empty too, tracing is disabled.
type Config struct {
	Endpoint    string `yaml:"endpoint" koanf:"endpoint"`
	ServiceName string `yaml:"service_name" koanf:"service_name"`
}

// Provider hands out the deck tracer. A nil *Provider is valid and traces
// nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New builds a provider with a batching OTLP/HTTP exporter, or a no-op
// provider when no endpoint is configured.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if endpoint == "" {
		return nil, nil
	}

	opts, err := endpointOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = os.Getenv("OTEL_SERVICE_NAME")
	}
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return NewWithTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// endpointOptions accepts either a collector base URL
// ("http://collector:4318") or a bare host:port. URLs get the standard
// /v1/traces path appended unless they already carry it; host:port
// endpoints are plain HTTP since collectors for presenter laptops are local.
func endpointOptions(endpoint string) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("otlp endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("otlp endpoint %q: missing host", endpoint)
	}
	if !strings.HasSuffix(u.Path, tracesPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + tracesPath
	}
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

// NewWithTracerProvider wraps an existing SDK provider.
func NewWithTracerProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, tracer: tp.Tracer(instrumentation)}
}

// Tracer returns the deck tracer, or a no-op tracer when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentation)
	}
	return p.tracer
}

// Navigation describes one slide transition.
type Navigation struct {
	Host    string // "terminal" or "web"
	Session string // web connection id, empty for the terminal
	Trigger string // e.g. "key:ArrowRight", "click:next"
	From    int
	To      int
	Total   int
}

// RecordNavigation emits a zero-length deck.navigate span.
func (p *Provider) RecordNavigation(ctx context.Context, n Navigation) {
	if p == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("slidedeck.host", n.Host),
		attribute.String("slidedeck.trigger", n.Trigger),
		attribute.Int("slidedeck.slide.from", n.From+1),
		attribute.Int("slidedeck.slide.to", n.To+1),
		attribute.Int("slidedeck.slide.total", n.Total),
	}
	if n.Session != "" {
		attrs = append(attrs, attribute.String("slidedeck.session", n.Session))
	}
	_, span := p.tracer.Start(ctx, "deck.navigate", oteltrace.WithAttributes(attrs...))
	span.End()
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
