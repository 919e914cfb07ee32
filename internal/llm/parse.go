package llm

import (
	"encoding/json"
	"strings"

	"seo-audit-backend/internal/plan"
	"seo-audit-backend/internal/shared/telemetry"
)

// Analysis is the decoded insights payload.
type Analysis struct {
	ExecutiveSummary string                   `json:"executive_summary"`
	Recommendations  []plan.RawRecommendation `json:"recommendations"`
	// Optional refinements of classified business attributes, keyed by
	// profile field name. Values are normalized downstream before
	// persistence.
	EnhancedBusinessContext map[string]string `json:"enhanced_business_context,omitempty"`
}

// FallbackAnalysis is the well-typed empty payload used when a provider
// response cannot be decoded.
func FallbackAnalysis() Analysis {
	return Analysis{
		ExecutiveSummary: "Analysis unavailable; see collected metrics for raw findings.",
		Recommendations:  []plan.RawRecommendation{},
	}
}

// DecodeAnalysis decodes a provider payload tolerantly: markdown code
// fences are stripped, and anything unusable degrades to the fallback
// payload rather than an error.
func DecodeAnalysis(raw json.RawMessage) Analysis {
	content := stripCodeFences(string(raw))
	if strings.TrimSpace(content) == "" {
		telemetry.Warn("llm.empty_payload", nil)
		return FallbackAnalysis()
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		telemetry.Warn("llm.payload_decode_failed", map[string]any{
			"error": err.Error(),
		})
		return FallbackAnalysis()
	}
	if analysis.ExecutiveSummary == "" || analysis.Recommendations == nil {
		telemetry.Warn("llm.payload_incomplete", map[string]any{
			"has_summary":         analysis.ExecutiveSummary != "",
			"has_recommendations": analysis.Recommendations != nil,
		})
		return FallbackAnalysis()
	}
	return analysis
}

// stripCodeFences removes a surrounding markdown fence, with or without a
// language tag.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		first := strings.TrimSpace(trimmed[:idx])
		if first == "" || !strings.ContainsAny(first, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
