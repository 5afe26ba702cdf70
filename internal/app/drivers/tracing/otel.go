package tracing

import (
	"context"
	"dashboard-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// NewTracerProvider registers a global OTLP/HTTP tracer provider.
//
// Tracing is opt-in: with no endpoint configured, or tracing disabled, it
// returns a no-op shutdown and the global no-op provider stays in place, so
// gateway spans cost nothing.
func NewTracerProvider(ctx context.Context, internalConfig *config.InternalConfig) func(context.Context) error {
	noop := func(context.Context) error { return nil }

	if !internalConfig.Tracing.Enabled || internalConfig.Tracing.Endpoint == "" {
		return noop
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(internalConfig.Tracing.Endpoint),
	)
	if err != nil {
		logrus.Warnf("Tracing disabled, failed to create OTLP exporter: %v", err)
		return noop
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(internalConfig.Tracing.ServiceName),
			semconv.ServiceVersion(internalConfig.App.Version),
			semconv.DeploymentEnvironment(internalConfig.App.Env),
		),
	)
	if err != nil {
		logrus.Warnf("Tracing disabled, failed to build resource: %v", err)
		return noop
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	logrus.Printf("Tracing enabled, exporting to %s", internalConfig.Tracing.Endpoint)
	return tp.Shutdown
}
