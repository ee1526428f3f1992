package tracing

import (
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fittrack-backend")

// HoneycombSetup configures the OpenTelemetry SDK with the honeycomb distro.
// HONEYCOMB_API_KEY and OTEL_* env vars are read by otelconfig itself.
// The returned func must be called on shutdown, it is a no-op when disabled.
func HoneycombSetup(enabled bool, serviceName string, rdb *redis.Client) (func(), error) {
	if !enabled {
		log.Debugln("honeycomb tracing not enabled, skipping otel setup")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	log.Debugf("honeycomb tracing set up for service [%s]", serviceName)
	return otelShutdown, nil
}

// EndSpanWithErrCheck marks the span as failed when err is set, then ends it.
// Meant to be deferred with a named error return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
