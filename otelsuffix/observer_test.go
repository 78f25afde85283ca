package otelsuffix_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/lab2439/suffix"
	"github.com/lab2439/suffix/otelsuffix"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *otelsuffix.Observer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown tracer provider: %v", err)
		}
	})
	return sr, otelsuffix.NewWithTracerProvider(tp)
}

func TestObserveEncode(t *testing.T) {
	sr, obs := newRecorder(t)

	obs.ObserveEncode("01h455vb4pex5vsknk084sn02q")

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "suffix.Encode" {
		t.Errorf("span name = %q, want suffix.Encode", spans[0].Name())
	}
}

func TestObserveDecode_Success(t *testing.T) {
	sr, obs := newRecorder(t)

	obs.ObserveDecode("01h455vb4pex5vsknk084sn02q", nil)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Ok {
		t.Errorf("span status = %v, want Ok", spans[0].Status().Code)
	}
}

func TestObserveDecode_Failure(t *testing.T) {
	sr, obs := newRecorder(t)

	obs.ObserveDecode("invalid_suffix", suffix.ErrInvalidLength)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("span status = %v, want Error", spans[0].Status().Code)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("expected a recorded error event")
	}
}

func TestInstalledObserver(t *testing.T) {
	sr, obs := newRecorder(t)
	suffix.SetObserver(obs)
	defer suffix.SetObserver(nil)

	s, err := suffix.Parse("01h455vb4pex5vsknk084sn02q")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	_ = s.String()
	if _, err := suffix.Parse("invalid_suffix"); !errors.Is(err, suffix.ErrInvalidLength) {
		t.Fatalf("Parse error = %v, want ErrInvalidLength", err)
	}

	if got := len(sr.Ended()); got != 3 {
		t.Errorf("ended spans = %d, want 3", got)
	}
}
