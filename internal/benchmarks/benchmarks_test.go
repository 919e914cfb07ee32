package benchmarks

import "testing"

func TestLevel(t *testing.T) {
	eval := Default()

	cases := []struct {
		name     string
		category string
		metric   string
		value    float64
		want     Tier
	}{
		{"impressions excellent", CategoryVisibility, "impressions", 12000, TierExcellent},
		{"impressions good boundary", CategoryVisibility, "impressions", 5000, TierGood},
		{"impressions average", CategoryVisibility, "impressions", 2500, TierAverage},
		{"impressions poor", CategoryVisibility, "impressions", 300, TierPoor},
		{"position lower is better", CategoryVisibility, "average_position", 2.1, TierExcellent},
		{"position poor", CategoryVisibility, "average_position", 35, TierPoor},
		{"lcp good", CategoryPerformance, "lcp_seconds", 3.2, TierGood},
		{"cls excellent boundary", CategoryPerformance, "cls_score", 0.1, TierExcellent},
		{"meta titles average", CategoryMetadata, "meta_titles_coverage", 55, TierAverage},
		{"unknown metric is neutral", CategoryVisibility, "bounce_rate", 42, TierAverage},
		{"unknown category is neutral", "social_signals", "shares", 9000, TierAverage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := eval.Level(tc.category, tc.metric, tc.value); got != tc.want {
				t.Fatalf("Level(%s, %s, %v) = %s, want %s", tc.category, tc.metric, tc.value, got, tc.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	eval := Default()

	cases := []struct {
		name     string
		category string
		metric   string
		value    float64
		want     int
	}{
		{"at excellent floor", CategoryVisibility, "impressions", 10000, 100},
		{"above excellent floor", CategoryVisibility, "impressions", 50000, 100},
		{"at poor ceiling", CategoryVisibility, "impressions", 1000, 0},
		{"midpoint interpolates", CategoryVisibility, "impressions", 5500, 50},
		{"lower is better top", CategoryPerformance, "lcp_seconds", 2.0, 100},
		{"lower is better bottom", CategoryPerformance, "lcp_seconds", 7.5, 0},
		{"lower is better midpoint", CategoryPerformance, "lcp_seconds", 4.25, 50},
		{"unknown metric is neutral", CategoryPerformance, "tbt_ms", 120, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := eval.Score(tc.category, tc.metric, tc.value); got != tc.want {
				t.Fatalf("Score(%s, %s, %v) = %d, want %d", tc.category, tc.metric, tc.value, got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	eval := Default()

	input := map[string]map[string]float64{
		CategoryVisibility: {
			"impressions": 10000,
			"clicks":      50,
		},
		CategoryPerformance: {
			"performance_score": 90,
		},
	}

	summary := eval.Summarize(input)

	if len(summary.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(summary.Sections))
	}
	visibility, ok := summary.Sections[CategoryVisibility]
	if !ok {
		t.Fatalf("missing visibility section")
	}
	if grade := visibility["impressions"]; grade.Level != TierExcellent || grade.Score != 100 {
		t.Fatalf("impressions grade = %+v", grade)
	}
	if grade := visibility["clicks"]; grade.Level != TierAverage {
		t.Fatalf("clicks at average floor graded %s", grade.Level)
	}
	// (100 + 0 + 100) / 3
	if summary.OverallScore != 66 {
		t.Fatalf("overall score = %d, want 66", summary.OverallScore)
	}
}

func TestNewEvaluatorRejectsEmptyTable(t *testing.T) {
	if _, err := NewEvaluator(Table{}); err == nil {
		t.Fatalf("expected error for empty table")
	}
	if _, err := NewEvaluator(Table{"visibility_performance": {}}); err == nil {
		t.Fatalf("expected error for category without metrics")
	}
}

func TestParseTableRejectsGarbage(t *testing.T) {
	if _, err := ParseTable([]byte("{not yaml")); err == nil {
		t.Fatalf("expected parse error")
	}
}
