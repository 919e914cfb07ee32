package keywords

import (
	"math"
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		keyword string
		want    Intent
	}{
		{"buy running shoes", IntentTransactional},
		{"best price to buy laptop", IntentTransactional},
		{"acme login", IntentNavigational},
		{"best crm software", IntentCommercial},
		{"notion vs evernote", IntentCommercial},
		// Indicators match as substrings: "salesforce" hits the
		// transactional "sale" before the commercial list is reached.
		{"hubspot vs salesforce", IntentTransactional},
		{"how to tie a tie", IntentInformational},
		{"running shoes", IntentInformational},
		{"", IntentInformational},
		{"BUY NOW", IntentTransactional},
	}
	for _, tc := range cases {
		if got := ClassifyIntent(tc.keyword); got != tc.want {
			t.Fatalf("ClassifyIntent(%q) = %s, want %s", tc.keyword, got, tc.want)
		}
	}
}

func TestExpectedCTRTable(t *testing.T) {
	want := map[float64]float64{
		1: 32.5, 2: 17.6, 3: 11.4, 4: 8.1, 5: 6.1,
		6: 4.4, 7: 3.5, 8: 3.1, 9: 2.6, 10: 2.4,
	}
	for position, ctr := range want {
		if got := ExpectedCTR(position); got != ctr {
			t.Fatalf("ExpectedCTR(%v) = %v, want %v", position, got, ctr)
		}
	}
	if got := ExpectedCTR(1.4); got != 32.5 {
		t.Fatalf("ExpectedCTR(1.4) = %v, want rounding to position 1", got)
	}
	if got := ExpectedCTR(25); got != 1.0 {
		t.Fatalf("ExpectedCTR(25) = %v, want 1.0", got)
	}
}

func TestOpportunityScoreAnchors(t *testing.T) {
	high := OpportunityScore(1, 100000, 80000)
	if high < 90 {
		t.Fatalf("strong keyword scored %v, want >= 90", high)
	}
	if PriorityLevel(high) != "High" {
		t.Fatalf("strong keyword priority %s, want High", PriorityLevel(high))
	}

	low := OpportunityScore(50, 5, 0)
	if low > 10 {
		t.Fatalf("weak keyword scored %v, want <= 10", low)
	}
	if PriorityLevel(low) != "Low" {
		t.Fatalf("weak keyword priority %s, want Low", PriorityLevel(low))
	}
}

func TestOpportunityScoreMonotonicInPosition(t *testing.T) {
	prev := math.Inf(1)
	for position := 1.0; position <= 10; position++ {
		score := OpportunityScore(position, 5000, 200)
		if score > prev {
			t.Fatalf("score rose from %v to %v at position %v", prev, score, position)
		}
		prev = score
	}
}

func TestOpportunityScoreMonotonicInClicks(t *testing.T) {
	prev := math.Inf(-1)
	for clicks := 0.0; clicks <= 10000; clicks += 500 {
		score := OpportunityScore(3, 10000, clicks)
		if score < prev {
			t.Fatalf("score fell from %v to %v at %v clicks", prev, score, clicks)
		}
		prev = score
	}
}

func TestOpportunityScoreMonotonicInImpressions(t *testing.T) {
	// CTR held at 5% so only the volume component moves.
	prev := math.Inf(-1)
	for impressions := 1000.0; impressions <= 200000; impressions += 5000 {
		score := OpportunityScore(3, impressions, impressions*0.05)
		if score < prev {
			t.Fatalf("score fell from %v to %v at %v impressions", prev, score, impressions)
		}
		prev = score
	}
}

func TestOpportunityScoreZeroImpressions(t *testing.T) {
	if got := OpportunityScore(5, 0, 0); got != 20 {
		t.Fatalf("OpportunityScore(5, 0, 0) = %v, want position component only", got)
	}
}

func TestTrafficPotential(t *testing.T) {
	potential := TrafficPotential(8, 10000)
	if len(potential) != 3 {
		t.Fatalf("expected projections for positions 1-3, got %d", len(potential))
	}
	// 10000 * 32.5% = 3250, current 10000 * 3.1% = 310
	if p := potential[1]; p.EstimatedClicks != 3250 || p.Increase != 2940 {
		t.Fatalf("position 1 projection = %+v", p)
	}
}

func TestScoreAssemblesRow(t *testing.T) {
	scored := Score(KeywordRow{Query: "buy widgets", Position: 2, Impressions: 200000, Clicks: 30000})
	if scored.Intent != IntentTransactional {
		t.Fatalf("intent = %s", scored.Intent)
	}
	if scored.Priority != "High" {
		t.Fatalf("priority = %s for score %v", scored.Priority, scored.OpportunityScore)
	}
	if len(scored.TrafficPotential) != 3 {
		t.Fatalf("missing traffic potential")
	}
}

func TestScoreRecomputesCTR(t *testing.T) {
	row := KeywordRow{Query: "widgets", Position: 3, Impressions: 10000, Clicks: 500}
	stale := row
	stale.CTR = 99.9
	if Score(row).OpportunityScore != Score(stale).OpportunityScore {
		t.Fatalf("reported ctr changed the score")
	}
}

func TestIsBranded(t *testing.T) {
	cases := []struct {
		keyword string
		domain  string
		want    bool
	}{
		{"acme pricing", "acme.com", true},
		{"ACME support", "acme.co.uk", true},
		{"widget pricing", "acme.com", false},
		{"anything", "", false},
	}
	for _, tc := range cases {
		if got := IsBranded(tc.keyword, tc.domain); got != tc.want {
			t.Fatalf("IsBranded(%q, %q) = %v, want %v", tc.keyword, tc.domain, got, tc.want)
		}
	}
}

func TestDetectCannibalization(t *testing.T) {
	t.Run("no overlap", func(t *testing.T) {
		report := DetectCannibalization([]KeywordRow{
			{Query: "red shoes"},
			{Query: "blue hats"},
		})
		if report.Risk != RiskLow || len(report.Groups) != 0 {
			t.Fatalf("report = %+v", report)
		}
	})

	t.Run("medium risk pair", func(t *testing.T) {
		report := DetectCannibalization([]KeywordRow{
			{Query: "best running shoes men"},
			{Query: "best running shoes women men"},
		})
		if report.Risk != RiskMedium {
			t.Fatalf("risk = %s, want Medium", report.Risk)
		}
		if len(report.Groups) != 1 || len(report.Groups[0].Keywords) != 2 {
			t.Fatalf("groups = %+v", report.Groups)
		}
	})

	t.Run("high risk cluster", func(t *testing.T) {
		report := DetectCannibalization([]KeywordRow{
			{Query: "cheap flights paris"},
			{Query: "cheap flights paris france"},
			{Query: "cheap flights paris today"},
			{Query: "cheap flights paris deals"},
			{Query: "cheap flights paris direct"},
		})
		if report.Risk != RiskHigh {
			t.Fatalf("risk = %s, want High", report.Risk)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if report := DetectCannibalization(nil); report.Risk != RiskLow {
			t.Fatalf("risk = %s, want Low", report.Risk)
		}
	})
}
