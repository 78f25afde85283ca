// Package otelsuffix provides an OpenTelemetry-backed observer for the
// suffix codec.
//
// Install it during program initialization:
//
//	suffix.SetObserver(otelsuffix.New())
//
// Each encode and decode then produces a span from the configured
// tracer provider. The observer is purely diagnostic; codec results
// are never affected by it.
package otelsuffix

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lab2439/suffix"
)

const tracerName = "github.com/lab2439/suffix/otelsuffix"

// Observer emits a span per codec operation.
type Observer struct {
	tracer trace.Tracer
}

var _ suffix.Observer = (*Observer)(nil)

// New returns an Observer backed by the globally registered tracer
// provider. When no provider is registered the spans are no-ops.
func New() *Observer {
	return NewWithTracerProvider(otel.GetTracerProvider())
}

// NewWithTracerProvider returns an Observer backed by tp.
func NewWithTracerProvider(tp trace.TracerProvider) *Observer {
	return &Observer{tracer: tp.Tracer(tracerName)}
}

// ObserveEncode implements suffix.Observer.
func (o *Observer) ObserveEncode(encoded string) {
	_, span := o.tracer.Start(context.Background(), "suffix.Encode")
	span.SetAttributes(attribute.String("suffix.encoded", encoded))
	span.End()
}

// ObserveDecode implements suffix.Observer. Only the input length is
// recorded as an attribute; malformed input may be arbitrary bytes and
// does not belong in span attributes.
func (o *Observer) ObserveDecode(input string, err error) {
	_, span := o.tracer.Start(context.Background(), "suffix.Decode")
	span.SetAttributes(attribute.Int("suffix.input_length", len(input)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
