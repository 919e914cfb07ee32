package metrics

import (
	"strings"
	"testing"
)

func TestRenderContainsCounters(t *testing.T) {
	IncAuditStarted()
	IncAuditCompleted()
	IncAuditJobsReceived()
	ObserveAuditDurationMs(1200)

	out := Render()
	for _, want := range []string{
		"# TYPE audit_started_total counter",
		"# TYPE audit_completed_total counter",
		"# TYPE audit_jobs_received_total counter",
		"# TYPE audit_duration_ms histogram",
		"audit_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q in:\n%s", want, out)
		}
	}
}

func TestHistogramBucketsCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count=3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("expected sum=555, got %v", snap.sum)
	}
}
