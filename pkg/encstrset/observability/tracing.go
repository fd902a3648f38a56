package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the encstrset tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("encstrset")

// SpanManager turns finished calls into trace spans.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// RecordCallSpan emits a completed span covering the call.
	// The span is a child of any span carried by ctx.
	RecordCallSpan(ctx context.Context, call Call)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// RecordCallSpan emits a span named "encstrset.<op>" stamped with the
// call's own start and end times.
func (m *otelSpanManager) RecordCallSpan(ctx context.Context, call Call) {
	_, span := tracer.Start(ctx, "encstrset."+string(call.Op),
		trace.WithTimestamp(call.Start),
		trace.WithAttributes(callAttributes(call)...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	for _, e := range call.Elements {
		name := "copied"
		if !e.Inserted {
			name = "already present"
		}
		span.AddEvent(name, trace.WithAttributes(attribute.Int("cipher.len", len(e.Cipher))))
	}

	span.SetStatus(codes.Ok, "")
	span.End(trace.WithTimestamp(call.Start.Add(call.Duration)))
}

func callAttributes(call Call) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("store.id", call.StoreID),
		attribute.String("set.handle", call.Handle.String()),
		attribute.String("outcome", string(call.Outcome)),
	}
	switch {
	case call.HasValueArgs():
		attrs = append(attrs,
			attribute.Bool("value.present", call.Value != nil),
			attribute.Bool("key.present", call.Key != nil),
			attribute.Int("cipher.len", len(call.Encoded)),
		)
	case call.Op == OpCopy:
		attrs = append(attrs, attribute.String("set.dst", call.Dst.String()))
	case call.Op == OpSize:
		attrs = append(attrs, attribute.Int("set.size", call.Size))
	}
	return attrs
}
