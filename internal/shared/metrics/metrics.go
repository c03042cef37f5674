package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	screeningsStartedTotal   atomic.Uint64
	screeningsCompletedTotal atomic.Uint64
	screeningsFailedTotal    atomic.Uint64

	candidatesProcessedTotal atomic.Uint64
	candidatesSkippedTotal   atomic.Uint64

	screeningDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
	fitScore          = newHistogram([]float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
)

// IncScreeningStarted increments the started counter.
func IncScreeningStarted() {
	screeningsStartedTotal.Add(1)
}

// IncScreeningCompleted increments the completed counter.
func IncScreeningCompleted() {
	screeningsCompletedTotal.Add(1)
}

// IncScreeningFailed increments the failed counter.
func IncScreeningFailed() {
	screeningsFailedTotal.Add(1)
}

// AddCandidatesProcessed adds the number of CVs scored in a screening.
func AddCandidatesProcessed(n int) {
	if n > 0 {
		candidatesProcessedTotal.Add(uint64(n))
	}
}

// AddCandidatesSkipped adds the number of CVs skipped in a screening.
func AddCandidatesSkipped(n int) {
	if n > 0 {
		candidatesSkippedTotal.Add(uint64(n))
	}
}

// ObserveScreeningDurationMs records a screening duration in milliseconds.
func ObserveScreeningDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	screeningDuration.Observe(value)
}

// ObserveFitScore records a candidate fit score on the 0-100 scale.
func ObserveFitScore(value float64) {
	if value < 0 {
		value = 0
	}
	fitScore.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "screenings_started_total", "Total screenings started", screeningsStartedTotal.Load())
	writeCounter(&buf, "screenings_completed_total", "Total screenings completed", screeningsCompletedTotal.Load())
	writeCounter(&buf, "screenings_failed_total", "Total screenings failed", screeningsFailedTotal.Load())
	writeCounter(&buf, "candidates_processed_total", "Total candidate CVs scored", candidatesProcessedTotal.Load())
	writeCounter(&buf, "candidates_skipped_total", "Total candidate CVs skipped", candidatesSkippedTotal.Load())
	writeHistogram(&buf, "screening_duration_ms", "Screening duration in milliseconds", screeningDuration.Snapshot())
	writeHistogram(&buf, "candidate_fit_score", "Candidate fit score distribution", fitScore.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value into the first bucket whose bound contains it.
// Buckets hold per-interval counts; rendering accumulates them.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
