package audits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"seo-audit-backend/internal/benchmarks"
	"seo-audit-backend/internal/bizprofile"
	"seo-audit-backend/internal/keywords"
	"seo-audit-backend/internal/llm"
	"seo-audit-backend/internal/options"
	"seo-audit-backend/internal/plan"
	"seo-audit-backend/internal/queue"
	"seo-audit-backend/internal/shared/metrics"
	"seo-audit-backend/internal/shared/storage/object"
	"seo-audit-backend/internal/shared/telemetry"
)

// Service contains business logic for audits.
type Service struct {
	Repo          Repo
	Store         object.ObjectStore
	LLM           llm.Client
	JobQueue      queue.Client
	Benchmarks    *benchmarks.Evaluator
	Options       *options.Mapper
	PromptVersion string
}

// Create enqueues a new audit. With a job queue configured the audit is
// handed to the worker; otherwise processing runs in-process.
func (s *Service) Create(ctx context.Context, siteURL string, snapshot MetricsSnapshot, promptVersion string) (Audit, error) {
	if err := ValidateSiteURL(siteURL); err != nil {
		return Audit{}, err
	}
	if err := snapshot.Validate(); err != nil {
		return Audit{}, err
	}
	if promptVersion == "" {
		promptVersion = s.PromptVersion
	}
	if promptVersion == "" {
		promptVersion = "v1"
	}

	now := time.Now().UTC()
	audit := Audit{
		ID:            uuid.NewString(),
		SiteURL:       strings.TrimSpace(siteURL),
		Status:        StatusQueued,
		Metrics:       &snapshot,
		PromptVersion: promptVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, audit); err != nil {
		return Audit{}, err
	}

	if s.JobQueue != nil {
		msg := queue.Message{
			AuditID:    audit.ID,
			RequestID:  requestIDFromContext(ctx),
			EnqueuedAt: now.Format(time.RFC3339),
			Version:    1,
		}
		if err := s.JobQueue.Send(ctx, msg); err != nil {
			telemetry.Error("audit.enqueue_failed", map[string]any{
				"audit_id": audit.ID,
				"error":    err.Error(),
			})
			return Audit{}, fmt.Errorf("enqueue audit: %w", err)
		}
		return audit, nil
	}

	go func(bg context.Context, auditID string) {
		if err := s.Process(bg, auditID); err != nil {
			telemetry.Error("audit.process_failed", map[string]any{
				"request_id": requestIDFromContext(bg),
				"audit_id":   auditID,
				"error":      err.Error(),
			})
		}
	}(backgroundWithRequestID(ctx), audit.ID)

	return audit, nil
}

// Get returns an audit by ID.
func (s *Service) Get(ctx context.Context, auditID string) (Audit, error) {
	if auditID == "" {
		return Audit{}, errors.New("auditID is required")
	}
	return s.Repo.GetByID(ctx, auditID)
}

// List returns audits ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Audit, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Process runs the full audit pipeline for a queued audit. It is invoked
// either by the in-process goroutine or by the queue worker.
func (s *Service) Process(ctx context.Context, auditID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.failAudit(ctx, auditID, err, nil)
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, auditID, StatusProcessing, nil, nil, nil); err != nil {
		wrapped := fmt.Errorf("set processing failed: %w", err)
		s.failAudit(ctx, auditID, wrapped, &startedAt)
		return wrapped
	}

	audit, err := s.Repo.GetByID(ctx, auditID)
	if err != nil {
		wrapped := fmt.Errorf("audit lookup: %w", err)
		s.failAudit(ctx, auditID, wrapped, &startedAt)
		return wrapped
	}
	metrics.IncAuditStarted()
	telemetry.Info("audit.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"audit_id":          audit.ID,
		"site_url":          audit.SiteURL,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	if audit.Metrics == nil {
		wrapped := errors.New("audit has no metrics snapshot")
		s.failAudit(ctx, auditID, wrapped, &startedAt)
		return wrapped
	}

	result, err := s.buildResult(ctx, audit)
	if err != nil {
		s.failAudit(ctx, auditID, err, &startedAt)
		return err
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, auditID, StatusCompleted, result, nil, &completedAt); err != nil {
		wrapped := fmt.Errorf("set audit result failed: %w", err)
		s.failAudit(ctx, auditID, wrapped, &startedAt)
		return wrapped
	}
	metrics.IncAuditCompleted()
	metrics.ObserveAuditDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("audit.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"audit_id":          audit.ID,
		"site_url":          audit.SiteURL,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
	return nil
}

func (s *Service) buildResult(ctx context.Context, audit Audit) (*Result, error) {
	snapshot := audit.Metrics

	evaluator := s.Benchmarks
	if evaluator == nil {
		evaluator = benchmarks.Default()
	}
	mapper := s.Options
	if mapper == nil {
		mapper = options.Default()
	}

	result := &Result{
		BenchmarkSummary: evaluator.Summarize(snapshot.Sections()),
		KeywordInsights: KeywordInsights{
			Keywords:        scoreKeywords(snapshot.Keywords),
			Cannibalization: keywords.DetectCannibalization(snapshot.Keywords),
		},
	}

	profile := classifyBusiness(snapshot.HomepageHTML, audit.SiteURL)

	analysis := s.generateInsights(ctx, audit, result, profile)
	profile = applyEnhancedContext(profile, analysis.EnhancedBusinessContext, mapper)
	result.BusinessProfile = mapper.MapProfile(profile)
	result.ExecutiveSummary = analysis.ExecutiveSummary

	aggregator := plan.New(result.BusinessProfile)
	aggregator.Add(analysis.Recommendations)
	result.Recommendations = aggregator.Ranked()
	result.PlanSummary = aggregator.Summary()

	s.archiveResult(ctx, audit, result)

	return result, nil
}

func scoreKeywords(rows []keywords.KeywordRow) []keywords.ScoredKeyword {
	scored := make([]keywords.ScoredKeyword, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, keywords.Score(row))
	}
	return scored
}

func classifyBusiness(homepageHTML, siteURL string) bizprofile.Profile {
	if strings.TrimSpace(homepageHTML) == "" {
		return bizprofile.Default()
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(homepageHTML))
	if err != nil {
		telemetry.Warn("audit.homepage_parse_failed", map[string]any{
			"site_url": siteURL,
			"error":    err.Error(),
		})
		return bizprofile.Default()
	}
	return bizprofile.ClassifyDocument(doc, siteURL)
}

// generateInsights calls the LLM and degrades to the fallback analysis when
// the provider is unavailable or returns an unusable payload. An audit never
// fails because insights could not be generated.
func (s *Service) generateInsights(ctx context.Context, audit Audit, result *Result, profile bizprofile.Profile) llm.Analysis {
	if s.LLM == nil {
		return llm.FallbackAnalysis()
	}

	metricsJSON, err := json.Marshal(map[string]any{
		"benchmark_summary": result.BenchmarkSummary,
		"keyword_insights":  result.KeywordInsights,
	})
	if err != nil {
		telemetry.Warn("audit.metrics_encode_failed", map[string]any{
			"audit_id": audit.ID,
			"error":    err.Error(),
		})
		return llm.FallbackAnalysis()
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return llm.FallbackAnalysis()
	}

	raw, err := s.LLM.GenerateInsights(ctx, llm.GenerateInput{
		SiteURL:         audit.SiteURL,
		MetricsJSON:     string(metricsJSON),
		BusinessProfile: string(profileJSON),
		PromptVersion:   audit.PromptVersion,
	})
	if err != nil {
		telemetry.Warn("audit.llm_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"audit_id":   audit.ID,
			"error":      err.Error(),
		})
		return llm.FallbackAnalysis()
	}

	s.archiveRaw(ctx, audit, raw)
	return llm.DecodeAnalysis(raw)
}

// applyEnhancedContext folds LLM refinements into the classified profile.
// Values pass through the option mapper so free-text answers still land on
// vocabulary options.
func applyEnhancedContext(profile bizprofile.Profile, enhanced map[string]string, mapper *options.Mapper) bizprofile.Profile {
	if len(enhanced) == 0 {
		return profile
	}
	for field, value := range enhanced {
		if strings.TrimSpace(value) == "" {
			continue
		}
		mapped := mapper.Map(value, field)
		switch field {
		case "business_model":
			profile.BusinessModel = mapped
		case "target_market":
			profile.TargetMarket = mapped
		case "industry_sector":
			profile.IndustrySector = mapped
		case "company_size":
			profile.CompanySize = mapped
		case "geographic_scope":
			profile.GeographicScope = mapped
		case "business_maturity":
			profile.BusinessMaturity = mapped
		case "tech_sophistication":
			profile.TechSophistication = mapped
		case "content_maturity":
			profile.ContentMaturity = mapped
		case "competitive_positioning":
			profile.CompetitivePositioning = mapped
		case "positioning_strength":
			profile.PositioningStrength = mapped
		case "brand_strength":
			profile.BrandStrength = mapped
		case "audience_sophistication":
			profile.AudienceSophistication = mapped
		case "primary_age_group":
			profile.PrimaryAgeGroup = mapped
		case "income_level":
			profile.IncomeLevel = mapped
		default:
			telemetry.Info("audit.enhanced_context_skipped", map[string]any{
				"field": field,
			})
		}
	}
	return profile
}

func (s *Service) archiveRaw(ctx context.Context, audit Audit, raw json.RawMessage) {
	if s.Store == nil || len(raw) == 0 {
		return
	}
	name := fmt.Sprintf("%s_llm_raw.json", audit.ID)
	if _, _, _, err := s.Store.Save(ctx, audit.SiteURL, name, bytes.NewReader(raw)); err != nil {
		telemetry.Warn("audit.archive_failed", map[string]any{
			"audit_id": audit.ID,
			"artifact": "llm_raw",
			"error":    err.Error(),
		})
	}
}

func (s *Service) archiveResult(ctx context.Context, audit Audit, result *Result) {
	if s.Store == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s_result.json", audit.ID)
	if _, _, _, err := s.Store.Save(ctx, audit.SiteURL, name, bytes.NewReader(payload)); err != nil {
		telemetry.Warn("audit.archive_failed", map[string]any{
			"audit_id": audit.ID,
			"artifact": "result",
			"error":    err.Error(),
		})
	}
}

func (s *Service) failAudit(ctx context.Context, auditID string, err error, startedAt *time.Time) {
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.UpdateStatus(context.Background(), auditID, StatusFailed, nil, &msg, &completedAt); updateErr != nil {
		telemetry.Error("audit.fail_update_failed", map[string]any{
			"audit_id": auditID,
			"error":    updateErr.Error(),
			"original": msg,
		})
	}
	metrics.IncAuditFailed()
	if startedAt != nil {
		metrics.ObserveAuditDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("audit.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"audit_id":          auditID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
