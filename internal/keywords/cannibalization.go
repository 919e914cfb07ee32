package keywords

import (
	"strings"

	"seo-audit-backend/internal/shared/telemetry"
)

// Risk is the overall cannibalization risk level for a keyword set.
type Risk string

const (
	RiskHigh   Risk = "High"
	RiskMedium Risk = "Medium"
	RiskLow    Risk = "Low"
)

// Pairwise comparison is quadratic; batches past this size are truncated.
const maxCannibalizationRows = 1000

// CannibalizationGroup is one cluster of near-duplicate queries.
type CannibalizationGroup struct {
	Lead     string   `json:"lead"`
	Keywords []string `json:"keywords"`
	Risk     Risk     `json:"risk"`
}

// CannibalizationReport is the overall risk plus the groups behind it.
type CannibalizationReport struct {
	Risk   Risk                   `json:"risk"`
	Groups []CannibalizationGroup `json:"groups"`
}

// DetectCannibalization clusters queries whose word sets overlap by Jaccard
// similarity above 0.7. A cluster with more than three similar queries is
// high risk, more than one is medium. Rows beyond the batch cap are dropped
// and logged, never an error.
func DetectCannibalization(rows []KeywordRow) CannibalizationReport {
	if len(rows) > maxCannibalizationRows {
		telemetry.Info("keywords.cannibalization_truncated", map[string]any{
			"rows":    len(rows),
			"cap":     maxCannibalizationRows,
			"dropped": len(rows) - maxCannibalizationRows,
		})
		rows = rows[:maxCannibalizationRows]
	}

	type cluster struct {
		lead    string
		words   map[string]struct{}
		members []string
	}
	var clusters []*cluster

rowLoop:
	for _, row := range rows {
		query := strings.ToLower(strings.TrimSpace(row.Query))
		if query == "" {
			continue
		}
		words := wordSet(query)

		for _, c := range clusters {
			if jaccard(words, c.words) > 0.7 {
				if query != c.lead && !contains(c.members, query) {
					c.members = append(c.members, query)
				}
				continue rowLoop
			}
		}
		clusters = append(clusters, &cluster{lead: query, words: words})
	}

	report := CannibalizationReport{Risk: RiskLow}
	for _, c := range clusters {
		if len(c.members) == 0 {
			continue
		}
		group := CannibalizationGroup{
			Lead:     c.lead,
			Keywords: append([]string{c.lead}, c.members...),
			Risk:     RiskMedium,
		}
		if len(c.members) > 3 {
			group.Risk = RiskHigh
		}
		report.Groups = append(report.Groups, group)

		if group.Risk == RiskHigh {
			report.Risk = RiskHigh
		} else if report.Risk != RiskHigh {
			report.Risk = RiskMedium
		}
	}
	return report
}

func wordSet(query string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(query) {
		words[w] = struct{}{}
	}
	return words
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	var intersection int
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
