package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const DefaultGRPCEndpoint = "localhost:4317"

// Options selects where spans go. Any combination may be set; with none set
// Setup installs nothing and returns a no-op shutdown.
type Options struct {
	ServiceName  string
	Stdout       bool
	StdoutWriter io.Writer
	HTTPEndpoint string
	GRPCEndpoint string
}

func (o Options) Enabled() bool {
	return o.Stdout || o.HTTPEndpoint != "" || o.GRPCEndpoint != ""
}

type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup builds the requested exporters and installs a global tracer
// provider. Call the returned func before exit to flush spans.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if !opts.Enabled() {
		return noopShutdown, nil
	}

	exporters, err := newExporters(ctx, opts)
	if err != nil {
		return noopShutdown, err
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(Resource(opts.ServiceName)),
	}
	for _, exp := range exporters {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		return errors.Wrap(tp.Shutdown(ctx), "shutting down tracer provider")
	}, nil
}

func newExporters(ctx context.Context, opts Options) ([]sdktrace.SpanExporter, error) {
	var exporters []sdktrace.SpanExporter

	if opts.Stdout {
		w := opts.StdoutWriter
		if w == nil {
			w = os.Stdout
		}
		exp, err := NewStdoutExporter(w)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	if opts.HTTPEndpoint != "" {
		exp, err := NewHTTPExporter(ctx, opts.HTTPEndpoint)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	if opts.GRPCEndpoint != "" {
		exp, err := NewGRPCExporter(ctx, opts.GRPCEndpoint)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	return exporters, nil
}

func NewStdoutExporter(w io.Writer) (sdktrace.SpanExporter, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stdout exporter")
	}
	return exp, nil
}

// NewHTTPExporter speaks OTLP/HTTP, which local viewers such as
// otel-desktop-viewer accept by default.
func NewHTTPExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create OTLP/HTTP exporter for %s", endpoint)
	}
	return exp, nil
}

// NewGRPCExporter connects lazily, so it succeeds without a collector.
func NewGRPCExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create OTLP/gRPC exporter for %s", endpoint)
	}
	return exp, nil
}

func Resource(serviceName string) *resource.Resource {
	if serviceName == "" {
		serviceName = "gh-explorer"
	}
	return resource.NewSchemaless(attribute.String("service.name", serviceName))
}
