package otel

import (
	"context"
	"os"

	"github.com/glidefleet/intake/pkg/auth"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/glidefleet/intake"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

// startSpan opens a span, tagging it with the authenticated end user when the
// request carried one.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	var opts []trace.SpanStartOption

	if user := auth.User(ctx); user != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("enduser.id", user)))
	}

	if email := auth.Email(ctx); email != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("enduser.email", email)))
	}

	return otel.Tracer(instrumentationName).Start(ctx, name, opts...)
}
