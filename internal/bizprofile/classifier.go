package bizprofile

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var serviceSectionClassRe = regexp.MustCompile(`(?i)service|product`)

// Classify builds a profile from plain page text. Structure-dependent
// attributes (service sections, navigation complexity, platform markup)
// keep their defaults; use ClassifyDocument when the DOM is available.
func Classify(pageText string) Profile {
	if strings.TrimSpace(pageText) == "" {
		return Default()
	}
	return classify(pageText, strings.ToLower(pageText), structuralSignals{
		complexityScore: Default().BusinessComplexityScore,
		services:        nil,
	})
}

// ClassifyDocument builds a profile from a parsed page, adding the
// structure-aware signals: service/product sections, navigation link
// complexity, platform fingerprints in the raw markup, and contact forms.
func ClassifyDocument(doc *goquery.Document, rawURL string) Profile {
	if doc == nil {
		return Default()
	}
	pageText := doc.Text()
	if strings.TrimSpace(pageText) == "" {
		return Default()
	}

	html, err := doc.Html()
	if err != nil {
		html = pageText
	}

	var services []string
	doc.Find("div,section").Each(func(_ int, s *goquery.Selection) {
		if len(services) >= 5 {
			return
		}
		class, _ := s.Attr("class")
		if !serviceSectionClassRe.MatchString(class) {
			return
		}
		text := strings.TrimSpace(s.Text())
		if len(text) > 20 && len(text) < 200 {
			if len(text) > 100 {
				text = text[:100]
			}
			services = append(services, text)
		}
	})

	navLinks := doc.Find("a").Length()
	complexity := navLinks / 10
	if complexity < 1 {
		complexity = 1
	}
	if complexity > 10 {
		complexity = 10
	}

	return classify(pageText, strings.ToLower(html), structuralSignals{
		complexityScore: complexity,
		services:        services,
	})
}

type structuralSignals struct {
	complexityScore int
	services        []string
}

func classify(pageText, htmlLower string, structural structuralSignals) Profile {
	profile := Default()
	text := strings.ToLower(pageText)

	profile.BusinessModel = classifyBusinessModel(text)
	profile.TargetMarket = classifyTargetMarket(text)
	profile.IndustrySector = voteMax(text, industryIndicators, "General")
	profile.CompanySize = firstMatch(text, companySizeIndicators, "Small")

	profile.PrimaryAgeGroup = voteMax(text, ageGroupIndicators, "General")
	profile.IncomeLevel = voteMax(text, incomeLevelIndicators, "Mid-Range")
	profile.AudienceSophistication = voteMax(text, sophisticationIndicators, "General")

	profile.HasEcommerce = anyHit(text, ecommerceIndicators)
	profile.HasLocalPresence = anyHit(text, localPresenceIndicators)
	profile.BusinessComplexityScore = structural.complexityScore
	profile.HasPublicPricing = hasPricingSignals(pageText)
	profile.ServiceCount = len(structural.services)
	if len(structural.services) > 0 {
		top := structural.services
		if len(top) > 3 {
			top = top[:3]
		}
		profile.ServicesOffered = strings.Join(top, "; ")
	}

	locations := extractLocations(pageText)
	profile.TargetLocations = strings.Join(locations, "; ")
	profile.GeographicScope = classifyGeographicScope(text, len(locations) > 0)
	profile.IsLocationBased = profile.GeographicScope == "Local" ||
		profile.GeographicScope == "Regional" || len(locations) > 0

	profile.BusinessMaturity = voteMax(text, maturityIndicators, "Growing")
	profile.EstablishmentYear = extractEstablishmentYear(text)
	profile.ExperienceIndicators = anyHit(text, experienceIndicators)

	profile.PlatformDetected = firstMatch(htmlLower, platformIndicators, "Unknown")
	profile.HasAdvancedFeatures = countHits(text, advancedFeatureIndicators) >= 2
	profile.SocialMediaIntegration = anyHit(htmlLower, socialIndicators)
	profile.TechSophistication = voteMax(text, techSophisticationIndicators, "Medium")

	profile.HasContentMarketing = anyHit(text, contentMarketingIndicators)
	profile.HasLeadGeneration = anyHit(text, leadGenIndicators)
	profile.HasSocialProof = anyHit(text, socialProofIndicators)
	profile.ContentMaturity = classifyContentMaturity(text, profile)

	profile.PhoneProminence = hasPhoneNumber(pageText)
	profile.HasContactForms = strings.Contains(text, "contact") &&
		(strings.Contains(htmlLower, "form") || strings.Contains(htmlLower, "input"))
	profile.HasLiveChat = anyHit(text, liveChatIndicators)
	profile.PreferredContactMethod = classifyContactMethod(text, profile)

	profile.CompetitivePositioning = classifyPositioning(text)
	profile.PositioningStrength = firstMatch(text, positioningStrengthIndicators, "Medium")
	profile.ValueProposition = extractValueProposition(pageText)
	profile.BrandStrength = firstMatch(text, brandStrengthIndicators, "Medium")
	profile.TrustIndicators = classifyTrust(htmlLower, text)

	profile.BusinessInsights = generateInsights(profile)
	profile.SEOStrategyRecommendations = generateStrategy(profile)
	return profile
}

func classifyBusinessModel(text string) string {
	serviceScore := countHits(text, serviceModelIndicators)
	scores := []struct {
		model string
		score int
	}{
		{"E-commerce", countHits(text, ecommerceModelIndicators)},
		{"SaaS", countHits(text, saasModelIndicators)},
		{"Professional Services", serviceScore},
		{"Local Services", serviceScore + countHits(text, localModelIndicators)},
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.score > best.score {
			best = s
		}
	}
	if best.score <= 2 {
		return "Information/Content"
	}
	return best.model
}

func classifyTargetMarket(text string) string {
	if countHits(text, b2bIndicators) > countHits(text, b2cIndicators) {
		return "B2B"
	}
	return "B2C"
}

func classifyGeographicScope(text string, hasLocations bool) string {
	switch {
	case anyHit(text, globalScopeIndicators):
		return "Global"
	case anyHit(text, nationalScopeIndicators):
		return "National"
	case anyHit(text, regionalScopeIndicators):
		return "Regional"
	case anyHit(text, localScopeIndicators) || hasLocations:
		return "Local"
	default:
		return "National"
	}
}

func classifyContentMaturity(text string, profile Profile) string {
	elements := 0
	for _, present := range []bool{
		profile.HasContentMarketing,
		profile.HasLeadGeneration,
		profile.HasSocialProof,
		strings.Contains(text, "about"),
		strings.Contains(text, "contact"),
	} {
		if present {
			elements++
		}
	}
	switch {
	case elements >= 4:
		return "Advanced"
	case elements >= 3:
		return "Mature"
	case elements >= 2:
		return "Developing"
	default:
		return "Basic"
	}
}

func classifyContactMethod(text string, profile Profile) string {
	methods := []struct {
		method  string
		present bool
	}{
		{"Phone", profile.PhoneProminence},
		{"Email", strings.Contains(text, "email") || strings.Contains(text, "contact")},
		{"Form", profile.HasContactForms},
		{"Chat", profile.HasLiveChat},
		{"Social", strings.Contains(text, "social")},
	}
	for _, m := range methods {
		if m.present {
			return m.method
		}
	}
	return "Phone"
}

func classifyPositioning(text string) string {
	switch {
	case anyHit(text, leaderIndicators):
		return "Leader"
	case anyHit(text, challengerIndicators):
		return "Challenger"
	case anyHit(text, nicheIndicators):
		return "Niche"
	default:
		return "Follower"
	}
}

func classifyTrust(htmlLower, text string) string {
	var present []string
	for _, check := range trustChecks {
		haystack := text
		if check.label == "SSL Certificate" {
			haystack = htmlLower
		}
		if anyHit(haystack, check.indicators) {
			present = append(present, check.label)
		}
	}
	if len(present) == 0 {
		return "Basic website security"
	}
	return strings.Join(present, "; ")
}

func countHits(text string, indicators []string) int {
	var n int
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			n++
		}
	}
	return n
}

func anyHit(text string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

// voteMax returns the label with the most indicator hits; ties and
// all-zero rounds keep the default.
func voteMax(text string, table []labeledIndicators, fallback string) string {
	best := fallback
	bestScore := 0
	for _, entry := range table {
		if score := countHits(text, entry.indicators); score > bestScore {
			bestScore = score
			best = entry.label
		}
	}
	return best
}

// firstMatch returns the first label with any indicator hit, in table
// order.
func firstMatch(text string, table []labeledIndicators, fallback string) string {
	for _, entry := range table {
		if anyHit(text, entry.indicators) {
			return entry.label
		}
	}
	return fallback
}
