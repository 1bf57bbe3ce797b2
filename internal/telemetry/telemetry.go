// Package telemetry sets up OpenTelemetry tracing. Spans are exported over
// OTLP/HTTP when an endpoint is configured; otherwise a no-op tracer is used.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer handed to the directory client.
const InstrumentationName = "userdir/directory"

// Options configures Setup.
type Options struct {
	Endpoint    string // OTLP/HTTP endpoint, "host:port" or a full URL; empty disables export
	ServiceName string
	SessionID   string
}

// Provider owns the tracer provider for the process lifetime.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates a Provider. With no endpoint it returns a provider whose
// tracer records nothing and whose Shutdown is a no-op.
func Setup(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(opts.Endpoint)...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "userdir"
	}
	attrs := []attribute.KeyValue{semconv.ServiceNameKey.String(serviceName)}
	if opts.SessionID != "" {
		attrs = append(attrs, attribute.String("userdir.session.id", opts.SessionID))
	}
	res := resource.NewWithAttributes(semconv.SchemaURL, attrs...)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}, nil
}

// endpointOptions accepts both the bare host:port form and a URL with scheme.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
		if strings.HasPrefix(endpoint, "http://") {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // bare host:port is treated as local dev
	}
}

// Tracer returns the tracer for instrumented code.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
