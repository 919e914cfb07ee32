// Package plan consolidates analysis recommendations into a prioritized
// action plan with unified scoring.
package plan

// RawRecommendation is one recommendation as produced by the insights
// collaborator, before scoring.
type RawRecommendation struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	ActionType          string   `json:"action_type"`
	ImplementationSteps []string `json:"implementation_steps,omitempty"`
}

// ScoredRecommendation is a scored, categorized recommendation. Instances
// are read-only once created.
type ScoredRecommendation struct {
	RecommendationID          string   `json:"recommendation_id"`
	Title                     string   `json:"title"`
	Category                  string   `json:"category"`
	Subcategory               string   `json:"subcategory"`
	PriorityScore             float64  `json:"priority_score"`
	BusinessImpact            int      `json:"business_impact"`
	SEOImpact                 int      `json:"seo_impact"`
	Urgency                   int      `json:"urgency"`
	ImplementationEffort      int      `json:"implementation_effort"`
	Description               string   `json:"description"`
	ActionType                string   `json:"action_type"`
	ImplementationSteps       []string `json:"implementation_steps"`
	SuccessMetrics            []string `json:"success_metrics"`
	Timeline                  string   `json:"timeline"`
	Dependencies              []string `json:"dependencies"`
	BusinessContextAdjustment string   `json:"business_context_adjustment"`
}

// Summary is the aggregate view over a run's recommendation set.
type Summary struct {
	TotalRecommendations     int                    `json:"total_recommendations"`
	TechnicalRecommendations int                    `json:"technical_recommendations"`
	QuickWins                int                    `json:"quick_wins"`
	AveragePriorityScore     float64                `json:"average_priority_score"`
	TopPriority              *ScoredRecommendation  `json:"top_priority_recommendation"`
	RecommendedFirstActions  []ScoredRecommendation `json:"recommended_first_actions"`
	BusinessModel            string                 `json:"business_model"`
}
