package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goBearer "github.com/MrEthical07/goBearer"
	"github.com/google/uuid"
)

type fakeSource struct {
	snapshot goBearer.MetricsSnapshot
}

func (f fakeSource) MetricsSnapshot() goBearer.MetricsSnapshot { return f.snapshot }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goBearer.MetricsSnapshot{
			Counters:   map[goBearer.MetricID]uint64{},
			Histograms: map[goBearer.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderNilExporter(t *testing.T) {
	var exp *PrometheusExporter
	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderDeterministicIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goBearer.MetricsSnapshot{
			Counters: map[goBearer.MetricID]uint64{
				goBearer.MetricDecodeSuccess: 7,
			},
			Histograms: map[goBearer.MetricID][]uint64{
				goBearer.MetricDecodeLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
	})

	out := exp.Render()
	if !strings.Contains(out, "gobearer_decode_success_total 7") {
		t.Fatalf("expected decode_success counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gobearer_decode_expired_total 0") {
		t.Fatalf("expected zero-valued counters in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gobearer_decode_latency_seconds_bucket{le=\"0.00001\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gobearer_decode_latency_seconds_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gobearer_decode_latency_seconds_count 36") {
		t.Fatalf("expected histogram count in output, got:\n%s", out)
	}
	if out != exp.Render() {
		t.Fatalf("render is not deterministic")
	}
}

func TestRenderOmitsHistogramWhenLatencyDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goBearer.MetricsSnapshot{
			Counters:   map[goBearer.MetricID]uint64{goBearer.MetricEncodeSuccess: 1},
			Histograms: map[goBearer.MetricID][]uint64{},
		},
	})

	if out := exp.Render(); strings.Contains(out, "latency") {
		t.Fatalf("unexpected histogram in output:\n%s", out)
	}
}

func TestRenderFromCodec(t *testing.T) {
	codec, err := goBearer.New().WithMetricsEnabled(true).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, _, err := codec.IssueBrand(uuid.New()); err != nil {
		t.Fatalf("issue: %v", err)
	}

	out := NewPrometheusExporter(codec).Render()
	if !strings.Contains(out, "gobearer_encode_success_total 1") {
		t.Fatalf("expected encode counter from codec, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goBearer.MetricsSnapshot{
			Counters:   map[goBearer.MetricID]uint64{goBearer.MetricDecodeSuccess: 1},
			Histograms: map[goBearer.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goBearer.MetricsSnapshot{
			Counters: map[goBearer.MetricID]uint64{
				goBearer.MetricEncodeSuccess: 1000,
				goBearer.MetricDecodeSuccess: 800,
				goBearer.MetricDecodeInvalid: 10,
				goBearer.MetricDecodeExpired: 20,
			},
			Histograms: map[goBearer.MetricID][]uint64{
				goBearer.MetricDecodeLatency: {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
