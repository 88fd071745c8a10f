// Package telemetry wires OpenTelemetry tracing for pickupdeck.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const tracesPath = "/v1/traces"

// Settings selects where spans go.
type Settings struct {
	Endpoint    string // host:port or base URL of an OTLP/HTTP collector; empty disables export
	ServiceName string
	Insecure    bool // plain HTTP, for local collectors
}

// Provider owns the SDK tracer provider. A nil *Provider is valid and does
// nothing, which is what Setup returns when export is disabled.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup installs a global tracer provider exporting to s.Endpoint.
// Returns nil (and leaves the global no-op provider in place) if no
// endpoint is configured.
func Setup(ctx context.Context, s Settings) (*Provider, error) {
	if s.Endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(s)...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create otlp exporter: %w", err)
	}

	return install(exporter, s.ServiceName), nil
}

// exporterOptions accepts either a bare host:port or a collector base URL
// such as http://localhost:4318. A URL gets the traces path appended and its
// scheme decides TLS.
func exporterOptions(s Settings) []otlptracehttp.Option {
	if strings.Contains(s.Endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpointURL(strings.TrimRight(s.Endpoint, "/") + tracesPath),
		}
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(s.Endpoint)}
	if s.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

// install builds a provider around exporter and makes it global.
func install(exporter sdktrace.SpanExporter, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "pickupdeck"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
