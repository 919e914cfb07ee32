package keywords

import "math"

// KeywordRow is one Search Console query row. CTR is carried through from
// the collector for reporting; scoring recomputes the ratio from clicks and
// impressions so a stale or rounded CTR cannot skew the score.
type KeywordRow struct {
	Query       string  `json:"query"`
	Position    float64 `json:"position"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	CTR         float64 `json:"ctr,omitempty"`
}

// PositionPotential is the projected traffic at one target position.
type PositionPotential struct {
	EstimatedClicks int `json:"estimated_clicks"`
	Increase        int `json:"increase"`
}

// ScoredKeyword is a fully graded keyword row.
type ScoredKeyword struct {
	Query            string                    `json:"query"`
	Intent           Intent                    `json:"intent"`
	OpportunityScore float64                   `json:"opportunity_score"`
	Priority         string                    `json:"priority"`
	TrafficPotential map[int]PositionPotential `json:"traffic_potential"`
}

// expectedCTR holds industry-average CTR percentages for positions 1-10.
var expectedCTR = map[int]float64{
	1:  32.5,
	2:  17.6,
	3:  11.4,
	4:  8.1,
	5:  6.1,
	6:  4.4,
	7:  3.5,
	8:  3.1,
	9:  2.6,
	10: 2.4,
}

// ExpectedCTR returns the expected CTR percentage for a ranking position.
// Positions round to the nearest integer; anything beyond the first page
// gets a flat 1.0.
func ExpectedCTR(position float64) float64 {
	if ctr, ok := expectedCTR[int(math.Round(position))]; ok {
		return ctr
	}
	return 1.0
}

// OpportunityScore grades a keyword 0-100 by weighting ranking headroom,
// search volume, and realized CTR.
func OpportunityScore(position, impressions, clicks float64) float64 {
	positionScore := math.Max(0, 100-position*10)
	volumeScore := math.Min(100, impressions/1000)

	var ctrScore float64
	if impressions > 0 {
		ctrScore = math.Min(100, clicks/impressions*100)
	}

	score := positionScore*0.4 + volumeScore*0.4 + ctrScore*0.2
	return math.Round(score*100) / 100
}

// PriorityLevel buckets an opportunity score.
func PriorityLevel(score float64) string {
	switch {
	case score >= 70:
		return "High"
	case score >= 40:
		return "Medium"
	default:
		return "Low"
	}
}

// TrafficPotential projects clicks at positions 1-3 against the clicks
// expected at the current position.
func TrafficPotential(position, impressions float64) map[int]PositionPotential {
	currentClicks := impressions * ExpectedCTR(position) / 100

	potential := make(map[int]PositionPotential, 3)
	for target := 1; target <= 3; target++ {
		targetClicks := impressions * ExpectedCTR(float64(target)) / 100
		potential[target] = PositionPotential{
			EstimatedClicks: int(math.Round(targetClicks)),
			Increase:        int(math.Round(targetClicks - currentClicks)),
		}
	}
	return potential
}

// Score grades one keyword row.
func Score(row KeywordRow) ScoredKeyword {
	opportunity := OpportunityScore(row.Position, row.Impressions, row.Clicks)
	return ScoredKeyword{
		Query:            row.Query,
		Intent:           ClassifyIntent(row.Query),
		OpportunityScore: opportunity,
		Priority:         PriorityLevel(opportunity),
		TrafficPotential: TrafficPotential(row.Position, row.Impressions),
	}
}
