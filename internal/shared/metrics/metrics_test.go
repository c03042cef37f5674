package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 50, 100})
	h.Observe(5)
	h.Observe(7)
	h.Observe(42)
	h.Observe(99)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_metric", "help text", h.Snapshot())
	out := buf.String()

	expected := []string{
		`test_metric_bucket{le="10"} 2`,
		`test_metric_bucket{le="50"} 3`,
		`test_metric_bucket{le="100"} 4`,
		`test_metric_bucket{le="+Inf"} 5`,
		"test_metric_count 5",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Fatalf("expected output to contain %q, got:\n%s", line, out)
		}
	}
}

func TestHistogramSum(t *testing.T) {
	h := newHistogram([]float64{100})
	h.Observe(12.5)
	h.Observe(30)

	snap := h.Snapshot()
	if snap.sum != 42.5 {
		t.Fatalf("expected sum 42.5, got %v", snap.sum)
	}
	if snap.count != 2 {
		t.Fatalf("expected count 2, got %d", snap.count)
	}
}

func TestRenderIncludesScreeningSeries(t *testing.T) {
	out := Render()
	for _, name := range []string{
		"screenings_started_total",
		"screenings_completed_total",
		"screenings_failed_total",
		"candidates_processed_total",
		"candidates_skipped_total",
		"screening_duration_ms",
		"candidate_fit_score",
	} {
		if !strings.Contains(out, "# TYPE "+name) {
			t.Fatalf("expected render to include series %q, got:\n%s", name, out)
		}
	}
}
