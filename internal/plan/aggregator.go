package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"seo-audit-backend/internal/bizprofile"
	"seo-audit-backend/internal/shared/telemetry"
)

// Aggregator consolidates recommendations for one analysis run. It is not
// safe for concurrent use; construct one per run.
type Aggregator struct {
	businessContext bizprofile.Profile
	recommendations []ScoredRecommendation
	seq             int
}

// New constructs an aggregator biased by the site's business context.
func New(businessContext bizprofile.Profile) *Aggregator {
	return &Aggregator{businessContext: businessContext}
}

// Add scores and appends the technical recommendations from a batch.
// Non-technical items are dropped; scoring other channels is not supported
// yet.
func (a *Aggregator) Add(raws []RawRecommendation) {
	accepted := 0
	for _, raw := range raws {
		if !isTechnical(raw) {
			continue
		}
		a.recommendations = append(a.recommendations, a.score(raw))
		accepted++
	}
	telemetry.Info("plan.recommendations_added", map[string]any{
		"received": len(raws),
		"accepted": accepted,
		"dropped":  len(raws) - accepted,
	})
}

// Priority Score = Business Impact x 0.4 + SEO Impact x 0.3 +
// Urgency x 0.2 + (10 - Implementation Effort) x 0.1
func (a *Aggregator) score(raw RawRecommendation) ScoredRecommendation {
	title := strings.ToLower(raw.Title)
	desc := strings.ToLower(raw.Description)
	model := a.businessContext.BusinessModel

	impact := businessImpact(title, desc, model)
	seo := seoImpact(title, desc)
	urg := urgency(title, desc)
	effort := implementationEffort(title, desc, strings.ToLower(raw.ActionType))

	priority := float64(impact)*0.4 + float64(seo)*0.3 +
		float64(urg)*0.2 + float64(10-effort)*0.1

	a.seq++
	return ScoredRecommendation{
		RecommendationID:          recommendationID(raw.Title, a.seq),
		Title:                     raw.Title,
		Category:                  "technical",
		Subcategory:               subcategory(title, desc),
		PriorityScore:             math.Round(priority*100) / 100,
		BusinessImpact:            impact,
		SEOImpact:                 seo,
		Urgency:                   urg,
		ImplementationEffort:      effort,
		Description:               raw.Description,
		ActionType:                raw.ActionType,
		ImplementationSteps:       raw.ImplementationSteps,
		SuccessMetrics:            successMetrics(title),
		Timeline:                  timeline(effort),
		Dependencies:              []string{},
		BusinessContextAdjustment: contextAdjustment(title, desc, model),
	}
}

// recommendationID is stable for identical titles within a run: a title
// digest plus the insertion sequence number.
func recommendationID(title string, seq int) string {
	digest := sha256.Sum256([]byte(title))
	return fmt.Sprintf("tech_%s_%d", hex.EncodeToString(digest[:4]), seq)
}

// Ranked returns all recommendations sorted by priority score descending.
// Equal scores keep insertion order.
func (a *Aggregator) Ranked() []ScoredRecommendation {
	ranked := make([]ScoredRecommendation, len(a.recommendations))
	copy(ranked, a.recommendations)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}

// QuickWins returns high-priority, low-effort recommendations sorted by
// priority descending.
func (a *Aggregator) QuickWins(maxEffort int) []ScoredRecommendation {
	var wins []ScoredRecommendation
	for _, rec := range a.recommendations {
		if rec.ImplementationEffort <= maxEffort && rec.PriorityScore >= 7.0 {
			wins = append(wins, rec)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].PriorityScore > wins[j].PriorityScore
	})
	return wins
}

// Summary builds the action plan overview.
func (a *Aggregator) Summary() Summary {
	ranked := a.Ranked()
	wins := a.QuickWins(3)

	summary := Summary{
		TotalRecommendations:     len(a.recommendations),
		TechnicalRecommendations: len(ranked),
		QuickWins:                len(wins),
		BusinessModel:            a.businessModel(),
		RecommendedFirstActions:  wins,
	}
	if len(summary.RecommendedFirstActions) > 3 {
		summary.RecommendedFirstActions = summary.RecommendedFirstActions[:3]
	}
	if len(ranked) > 0 {
		top := ranked[0]
		summary.TopPriority = &top

		var total float64
		for _, rec := range a.recommendations {
			total += rec.PriorityScore
		}
		summary.AveragePriorityScore = math.Round(total/float64(len(a.recommendations))*100) / 100
	}
	return summary
}

func (a *Aggregator) businessModel() string {
	if a.businessContext.BusinessModel == "" {
		return "Unknown"
	}
	return a.businessContext.BusinessModel
}

type export struct {
	GeneratedAt     time.Time              `json:"generated_at"`
	BusinessContext bizprofile.Profile     `json:"business_context"`
	Recommendations []ScoredRecommendation `json:"recommendations"`
	Summary         Summary                `json:"summary"`
}

// ExportJSON renders the full plan for storage or API responses.
func (a *Aggregator) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(export{
		GeneratedAt:     time.Now().UTC(),
		BusinessContext: a.businessContext,
		Recommendations: a.Ranked(),
		Summary:         a.Summary(),
	}, "", "  ")
}
