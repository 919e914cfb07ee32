package audits

import (
	"fmt"
	"net/url"
	"strings"

	"seo-audit-backend/internal/benchmarks"
	"seo-audit-backend/internal/keywords"
)

// MetricsSnapshot is the collected raw material for one audit: numeric
// metrics grouped by benchmark category, search keyword rows, and optionally
// the homepage HTML for business context classification.
type MetricsSnapshot struct {
	Visibility   map[string]float64    `json:"visibility"`
	Performance  map[string]float64    `json:"performance"`
	Metadata     map[string]float64    `json:"metadata"`
	Keywords     []keywords.KeywordRow `json:"keywords,omitempty"`
	HomepageHTML string                `json:"homepageHtml,omitempty"`
}

const maxKeywordRows = 5000

// ValidateSiteURL checks that the audited site is an absolute http(s) URL.
func ValidateSiteURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("siteUrl is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("siteUrl is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("siteUrl must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("siteUrl must include a host")
	}
	return nil
}

// Validate rejects snapshots that cannot be scored.
func (s *MetricsSnapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("metrics snapshot is required")
	}
	if len(s.Visibility) == 0 && len(s.Performance) == 0 && len(s.Metadata) == 0 {
		return fmt.Errorf("metrics snapshot has no metric sections")
	}
	if len(s.Keywords) > maxKeywordRows {
		return fmt.Errorf("too many keyword rows: %d (max %d)", len(s.Keywords), maxKeywordRows)
	}
	for i, row := range s.Keywords {
		if strings.TrimSpace(row.Query) == "" {
			return fmt.Errorf("keyword row %d: query is required", i)
		}
		if row.Position < 0 || row.Impressions < 0 || row.Clicks < 0 || row.CTR < 0 {
			return fmt.Errorf("keyword row %d: negative metric", i)
		}
	}
	return nil
}

// Sections arranges the snapshot metrics by benchmark category name.
func (s *MetricsSnapshot) Sections() map[string]map[string]float64 {
	sections := make(map[string]map[string]float64, 3)
	if len(s.Visibility) > 0 {
		sections[benchmarks.CategoryVisibility] = s.Visibility
	}
	if len(s.Performance) > 0 {
		sections[benchmarks.CategoryPerformance] = s.Performance
	}
	if len(s.Metadata) > 0 {
		sections[benchmarks.CategoryMetadata] = s.Metadata
	}
	return sections
}
