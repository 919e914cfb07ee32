package audits

import (
	"time"

	"seo-audit-backend/internal/benchmarks"
	"seo-audit-backend/internal/bizprofile"
	"seo-audit-backend/internal/keywords"
	"seo-audit-backend/internal/plan"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Audit represents one site audit job.
type Audit struct {
	ID            string           `json:"id"`
	SiteURL       string           `json:"siteUrl"`
	Status        string           `json:"status"`
	ErrorMessage  *string          `json:"errorMessage,omitempty"`
	Metrics       *MetricsSnapshot `json:"metrics,omitempty"`
	Result        *Result          `json:"result,omitempty"`
	PromptVersion string           `json:"promptVersion"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
}

// KeywordInsights bundles scored keywords with the cannibalization check.
type KeywordInsights struct {
	Keywords        []keywords.ScoredKeyword       `json:"keywords"`
	Cannibalization keywords.CannibalizationReport `json:"cannibalization"`
}

// Result is the full outcome of a completed audit.
type Result struct {
	BenchmarkSummary benchmarks.Summary          `json:"benchmark_summary"`
	KeywordInsights  KeywordInsights             `json:"keyword_insights"`
	BusinessProfile  bizprofile.Profile          `json:"business_profile"`
	ExecutiveSummary string                      `json:"executive_summary"`
	Recommendations  []plan.ScoredRecommendation `json:"recommendations"`
	PlanSummary      plan.Summary                `json:"plan_summary"`
}
