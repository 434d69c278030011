// Package tracing настраивает экспорт трейсов OpenTelemetry.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

// ServiceName: имя сервиса в трейсах.
const ServiceName = "rentco-api"

// Init включает OTLP/HTTP экспорт, если задан endpoint; иначе трейсинг остаётся no-op.
// Возвращает функцию остановки провайдера.
func Init(ctx context.Context, logger *zap.SugaredLogger, endpoint, environment string) (func(context.Context) error, error) {
	if endpoint == "" {
		logger.Infow("tracing disabled: OTEL_EXPORTER_OTLP_ENDPOINT not set")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	logger.Infow("tracing initialized", "endpoint", endpoint)
	return tp.Shutdown, nil
}
