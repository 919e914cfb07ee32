package bizprofile

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestClassifyEmptyInputReturnsDefault(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		profile := Classify(input)
		if profile != Default() {
			t.Fatalf("Classify(%q) diverged from default profile", input)
		}
	}
}

func TestClassifyEcommerceSignals(t *testing.T) {
	text := `Shop now at our online store. Add to cart and checkout securely.
Buy now with free shipping. Product price from $19. Shopping cart saved.`

	profile := Classify(text)
	if profile.BusinessModel != "E-commerce" {
		t.Fatalf("business model = %s, want E-commerce", profile.BusinessModel)
	}
	if !profile.HasEcommerce {
		t.Fatalf("expected ecommerce detection")
	}
	if !profile.HasPublicPricing {
		t.Fatalf("expected pricing detection")
	}
}

func TestClassifyWeakSignalsFallBackToContent(t *testing.T) {
	profile := Classify("welcome to our homepage with pictures of cats")
	if profile.BusinessModel != "Information/Content" {
		t.Fatalf("business model = %s, want Information/Content", profile.BusinessModel)
	}
}

func TestClassifyNoIndustrySignalsStaysGeneral(t *testing.T) {
	profile := Classify("We share great food recipes made with love for your whole crew.")
	if profile.IndustrySector != "General" {
		t.Fatalf("industry sector = %s, want General", profile.IndustrySector)
	}
}

func TestClassifyIndustryTechnology(t *testing.T) {
	profile := Classify("Custom software development and digital platforms built by our tech crew.")
	if profile.IndustrySector != "Technology" {
		t.Fatalf("industry sector = %s, want Technology", profile.IndustrySector)
	}
}

func TestClassifyTargetMarket(t *testing.T) {
	b2b := Classify("enterprise workflow for corporate teams and organizations plus business companies")
	if b2b.TargetMarket != "B2B" {
		t.Fatalf("target market = %s, want B2B", b2b.TargetMarket)
	}
	b2c := Classify("personal lifestyle products for family and home")
	if b2c.TargetMarket != "B2C" {
		t.Fatalf("target market = %s, want B2C", b2c.TargetMarket)
	}
}

func TestEstablishmentYearExtraction(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"proudly serving since 1987", 1987},
		{"established 2015 in austin", 2015},
		{"founded 1899 before the window", 0},
		{"founded 2030 in the future", 0},
		{"no year here", 0},
	}
	for _, tc := range cases {
		if got := extractEstablishmentYear(tc.text); got != tc.want {
			t.Fatalf("extractEstablishmentYear(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestLocationExtraction(t *testing.T) {
	profile := Classify("Visit our offices in Austin, TX and Portland, OR for a consultation.")
	if !strings.Contains(profile.TargetLocations, "Austin, TX") {
		t.Fatalf("target locations = %q", profile.TargetLocations)
	}
	if !profile.IsLocationBased {
		t.Fatalf("expected location-based classification")
	}
}

func TestPhoneProminence(t *testing.T) {
	with := Classify("Call us today at (512) 555-0133 for a quote")
	if !with.PhoneProminence {
		t.Fatalf("expected phone detection")
	}
	if with.PreferredContactMethod != "Phone" {
		t.Fatalf("preferred contact = %s, want Phone", with.PreferredContactMethod)
	}
	without := Classify("send a message through our email")
	if without.PhoneProminence {
		t.Fatalf("false phone detection")
	}
}

func TestClassifyDocumentStructuralSignals(t *testing.T) {
	page := `<html><head></head><body>
<div class="services-grid">We provide full-stack web development and technical SEO consulting for clients.</div>
<section class="product-list">Managed hosting plans with monitoring, backups, and support retainers included.</section>
<nav>` + strings.Repeat(`<a href="/x">link</a>`, 45) + `</nav>
<p>Trusted experts, established 2012. Contact us via the form below.</p>
<form><input type="text" name="email"></form>
<script src="/wp-content/themes/site/app.js"></script>
</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}

	profile := ClassifyDocument(doc, "https://example.com")
	if profile.ServiceCount != 2 {
		t.Fatalf("service count = %d, want 2", profile.ServiceCount)
	}
	if profile.ServicesOffered == "Not specified" {
		t.Fatalf("services were not extracted")
	}
	if profile.BusinessComplexityScore != 4 {
		t.Fatalf("complexity = %d, want 4 for 45 links", profile.BusinessComplexityScore)
	}
	if profile.PlatformDetected != "WordPress" {
		t.Fatalf("platform = %s, want WordPress", profile.PlatformDetected)
	}
	if !profile.HasContactForms {
		t.Fatalf("expected contact form detection")
	}
	if profile.EstablishmentYear != 2012 {
		t.Fatalf("establishment year = %d, want 2012", profile.EstablishmentYear)
	}
}

func TestClassifyDocumentNilReturnsDefault(t *testing.T) {
	if profile := ClassifyDocument(nil, ""); profile != Default() {
		t.Fatalf("nil document diverged from default profile")
	}
}

func TestInsightsAndStrategyFollowProfile(t *testing.T) {
	profile := Classify(`Shop now, add to cart, checkout, buy now, store, product pricing.
We serve customers worldwide with international shipping.`)

	if !strings.Contains(profile.BusinessInsights, "transactional focus") {
		t.Fatalf("insights = %q", profile.BusinessInsights)
	}
	if !strings.Contains(profile.SEOStrategyRecommendations, "product page optimization") {
		t.Fatalf("strategy = %q", profile.SEOStrategyRecommendations)
	}
	if profile.GeographicScope != "Global" {
		t.Fatalf("scope = %s, want Global", profile.GeographicScope)
	}
	if !strings.Contains(profile.SEOStrategyRecommendations, "hreflang") {
		t.Fatalf("strategy missing international recommendation: %q", profile.SEOStrategyRecommendations)
	}
}

func TestTrustIndicators(t *testing.T) {
	profile := Classify("Award winning and certified team with customer reviews")
	if !strings.Contains(profile.TrustIndicators, "Awards") {
		t.Fatalf("trust = %q", profile.TrustIndicators)
	}
	if !strings.Contains(profile.TrustIndicators, "Reviews") {
		t.Fatalf("trust = %q", profile.TrustIndicators)
	}

	plain := Classify("just some plain words here")
	if plain.TrustIndicators != "Basic website security" {
		t.Fatalf("trust = %q, want default", plain.TrustIndicators)
	}
}
