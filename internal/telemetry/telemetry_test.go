package telemetry

import (
	"context"
	"os"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstallRecordsSpans(t *testing.T) {
	ctx := context.Background()
	sr := tracetest.NewSpanRecorder()

	tp, err := Install(ctx, sdktrace.WithSpanProcessor(sr))
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	t.Cleanup(func() {
		_ = tp.Shutdown(ctx)
		Disable()
	})

	_, span := Tracer("test").Start(ctx, "unit")
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].Name(); got != "unit" {
		t.Errorf("span name = %q, want %q", got, "unit")
	}
	if got := ended[0].InstrumentationScope().Name; got != "torchlit/test" {
		t.Errorf("tracer name = %q, want %q", got, "torchlit/test")
	}
}

func TestHoneycombExport(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	h := Honeycomb{APIKey: "key123", Dataset: "caves"}
	if !h.Enabled() {
		t.Fatal("Enabled() = false with API key set")
	}
	h.Export()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if !strings.Contains(headers, "x-honeycomb-team=key123") || !strings.Contains(headers, "x-honeycomb-dataset=caves") {
		t.Errorf("headers = %q, missing team or dataset", headers)
	}

	if (Honeycomb{}).Enabled() {
		t.Error("Enabled() = true without API key")
	}
}
