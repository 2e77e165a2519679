package otel

import (
	"context"
	"os"
	"strings"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

func Setup(name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	ctx := context.Background()

	resource := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
		semconv.ServiceVersion(version),
	)

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	return nil
}

// exporterProtocol resolves the OTLP protocol for one signal; the
// signal-specific variable wins over the generic one.
func exporterProtocol(signal string) string {
	if p := os.Getenv("OTEL_EXPORTER_OTLP_" + signal + "_PROTOCOL"); p != "" {
		return strings.ToLower(p)
	}

	return strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"))
}
