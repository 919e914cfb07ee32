package audits

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"seo-audit-backend/internal/keywords"
	"seo-audit-backend/internal/llm"
	"seo-audit-backend/internal/queue"
)

type stubLLM struct {
	raw json.RawMessage
	err error
}

func (s stubLLM) GenerateInsights(ctx context.Context, input llm.GenerateInput) (json.RawMessage, error) {
	return s.raw, s.err
}

type stubQueue struct {
	sent []queue.Message
	err  error
}

func (q *stubQueue) Send(ctx context.Context, msg queue.Message) error {
	if q.err != nil {
		return q.err
	}
	q.sent = append(q.sent, msg)
	return nil
}

func validSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Visibility: map[string]float64{"impressions": 10000},
		Keywords: []keywords.KeywordRow{
			{Query: "buy red shoes", Position: 2, Impressions: 200000, Clicks: 30000},
		},
	}
}

func insightsPayload(t *testing.T) json.RawMessage {
	t.Helper()
	payload := map[string]any{
		"executive_summary": "Visibility is strong; metadata needs work.",
		"recommendations": []map[string]any{
			{
				"title":       "Optimize Meta Descriptions",
				"description": "47 pages are missing meta descriptions.",
				"action_type": "meta_update",
			},
		},
		"enhanced_business_context": map[string]string{
			"business_model": "online store",
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return raw
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: &stubQueue{}}

	if _, err := svc.Create(context.Background(), "example.com", validSnapshot(), ""); err == nil {
		t.Fatalf("expected invalid site url to be rejected")
	}
	if _, err := svc.Create(context.Background(), "https://example.com", MetricsSnapshot{}, ""); err == nil {
		t.Fatalf("expected empty snapshot to be rejected")
	}
}

func TestCreateEnqueuesWhenQueueConfigured(t *testing.T) {
	q := &stubQueue{}
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: q, PromptVersion: "v1"}

	audit, err := svc.Create(context.Background(), "https://example.com", validSnapshot(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if audit.Status != StatusQueued {
		t.Fatalf("expected status queued, got %s", audit.Status)
	}
	if len(q.sent) != 1 {
		t.Fatalf("expected one queued message, got %d", len(q.sent))
	}
	if q.sent[0].AuditID != audit.ID || q.sent[0].Version != 1 {
		t.Fatalf("unexpected message: %+v", q.sent[0])
	}
}

func TestCreateFailsWhenEnqueueFails(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), JobQueue: &stubQueue{err: errors.New("sqs down")}}

	if _, err := svc.Create(context.Background(), "https://example.com", validSnapshot(), ""); err == nil {
		t.Fatalf("expected enqueue failure to surface")
	}
}

func TestProcessCompletesAudit(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:     repo,
		LLM:      stubLLM{raw: insightsPayload(t)},
		JobQueue: &stubQueue{},
	}

	audit, err := svc.Create(context.Background(), "https://example.com", validSnapshot(), "v1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Process(context.Background(), audit.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got, err := repo.GetByID(context.Background(), audit.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatalf("expected completedAt to be set")
	}
	result := got.Result
	if result == nil {
		t.Fatalf("expected result to be populated")
	}

	if result.BenchmarkSummary.OverallScore != 100 {
		t.Fatalf("expected overall score 100, got %d", result.BenchmarkSummary.OverallScore)
	}
	if len(result.KeywordInsights.Keywords) != 1 {
		t.Fatalf("expected one scored keyword, got %d", len(result.KeywordInsights.Keywords))
	}
	kw := result.KeywordInsights.Keywords[0]
	if kw.Intent != keywords.IntentTransactional || kw.Priority != "High" {
		t.Fatalf("unexpected keyword scoring: %+v", kw)
	}

	if result.ExecutiveSummary != "Visibility is strong; metadata needs work." {
		t.Fatalf("unexpected executive summary: %q", result.ExecutiveSummary)
	}

	// The LLM's enhanced context resolves through the option vocabulary.
	if result.BusinessProfile.BusinessModel != "E-commerce" {
		t.Fatalf("expected enhanced business model E-commerce, got %q", result.BusinessProfile.BusinessModel)
	}

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(result.Recommendations))
	}
	rec := result.Recommendations[0]
	if rec.Subcategory != "meta_optimization" {
		t.Fatalf("expected meta_optimization subcategory, got %q", rec.Subcategory)
	}
	if result.PlanSummary.TotalRecommendations != 1 {
		t.Fatalf("unexpected plan summary: %+v", result.PlanSummary)
	}
}

func TestProcessFallsBackWhenLLMFails(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:     repo,
		LLM:      stubLLM{err: errors.New("provider unavailable")},
		JobQueue: &stubQueue{},
	}

	audit, err := svc.Create(context.Background(), "https://example.com", validSnapshot(), "v1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Process(context.Background(), audit.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got, err := repo.GetByID(context.Background(), audit.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected audit to complete with fallback insights, got %s", got.Status)
	}
	if !strings.Contains(got.Result.ExecutiveSummary, "Analysis unavailable") {
		t.Fatalf("expected fallback summary, got %q", got.Result.ExecutiveSummary)
	}
	if len(got.Result.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got.Result.Recommendations))
	}
	// Classification still runs without insights.
	if got.Result.BusinessProfile.BusinessModel == "" {
		t.Fatalf("expected classified business profile")
	}
}

func TestProcessUnknownAuditFails(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if err := svc.Process(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for unknown audit")
	}
}

func TestApplyEnhancedContextSkipsUnknownFields(t *testing.T) {
	svc := &Service{
		Repo: NewMemoryRepo(),
		LLM: stubLLM{raw: json.RawMessage(`{
			"executive_summary": "ok",
			"recommendations": [],
			"enhanced_business_context": {"favorite_color": "blue", "target_market": "enterprise"}
		}`)},
		JobQueue: &stubQueue{},
	}

	audit, err := svc.Create(context.Background(), "https://example.com", validSnapshot(), "v1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Process(context.Background(), audit.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got, err := svc.Get(context.Background(), audit.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Result.BusinessProfile.TargetMarket != "B2B" {
		t.Fatalf("expected enterprise to map to B2B, got %q", got.Result.BusinessProfile.TargetMarket)
	}
}
