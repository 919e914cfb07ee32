package plan

import "strings"

// Scoring dimensions are decision tables over the lowercased title and
// description: first matching band wins, with per-business-model overrides
// applied before the general bands.

var technicalIndicators = []string{
	"meta", "technical_fix", "core web vitals", "page speed", "loading",
	"mobile", "crawl", "index", "robots", "sitemap", "schema",
	"structured data", "canonical", "redirect", "ssl", "https",
	"compression", "caching", "image optimization", "lcp", "cls", "fid",
}

var (
	highImpactIndicators = []string{
		"conversion", "ctr", "click-through", "user experience", "mobile",
		"page speed", "loading", "bounce rate", "core web vitals",
	}
	mediumImpactIndicators = []string{
		"meta description", "title tag", "structured data", "schema",
		"crawling", "indexing", "sitemap",
	}
	lowImpactIndicators = []string{
		"canonical", "robots.txt", "redirect", "url structure",
	}

	criticalSEOIndicators = []string{
		"meta description", "title tag", "core web vitals", "page speed",
		"mobile", "crawl", "index", "sitemap",
	}
	highSEOIndicators = []string{
		"structured data", "schema", "internal linking", "url optimization",
		"image optimization", "compression",
	}
	mediumSEOIndicators = []string{
		"canonical", "redirect", "robots.txt", "ssl", "https",
	}

	criticalUrgencyIndicators = []string{
		"error", "broken", "not working", "missing", "critical", "blocking",
		"crawl error", "index error", "mobile usability", "core web vitals",
	}
	importantUrgencyIndicators = []string{
		"optimize", "improve", "enhance", "update", "recommendation",
	}
	optionalUrgencyIndicators = []string{
		"consider", "might", "could", "opportunity", "suggestion",
	}

	highEffortIndicators = []string{
		"restructure", "rebuild", "major changes", "development", "custom",
		"migration", "overhaul", "complete redesign",
	}
	mediumEffortIndicators = []string{
		"optimize", "implement", "configure", "setup", "install",
		"structured data", "schema", "internal linking",
	}
	lowEffortIndicators = []string{
		"meta", "title", "description", "alt text", "update", "add",
		"enable", "fix", "robots.txt", "canonical",
	}
)

func isTechnical(rec RawRecommendation) bool {
	actionType := strings.ToLower(rec.ActionType)
	if actionType == "meta_update" || actionType == "technical_fix" {
		return true
	}
	title := strings.ToLower(rec.Title)
	desc := strings.ToLower(rec.Description)
	for _, indicator := range technicalIndicators {
		if strings.Contains(title, indicator) || strings.Contains(desc, indicator) {
			return true
		}
	}
	return false
}

func anyIn(title, desc string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(title, indicator) || strings.Contains(desc, indicator) {
			return true
		}
	}
	return false
}

func businessImpact(title, desc, businessModel string) int {
	switch businessModel {
	case "E-commerce":
		if anyIn(title, desc, []string{"mobile", "page speed", "loading", "checkout"}) {
			return 9
		}
	case "SaaS":
		if anyIn(title, desc, []string{"user experience", "dashboard", "performance"}) {
			return 8
		}
	case "Local Services":
		if anyIn(title, desc, []string{"mobile", "local", "page speed"}) {
			return 8
		}
	}

	switch {
	case anyIn(title, desc, highImpactIndicators):
		return 8
	case anyIn(title, desc, mediumImpactIndicators):
		return 6
	case anyIn(title, desc, lowImpactIndicators):
		return 4
	default:
		return 5
	}
}

func seoImpact(title, desc string) int {
	switch {
	case anyIn(title, desc, criticalSEOIndicators):
		return 9
	case anyIn(title, desc, highSEOIndicators):
		return 7
	case anyIn(title, desc, mediumSEOIndicators):
		return 5
	default:
		return 6
	}
}

func urgency(title, desc string) int {
	switch {
	case anyIn(title, desc, criticalUrgencyIndicators):
		return 9
	case anyIn(title, desc, importantUrgencyIndicators):
		return 6
	case anyIn(title, desc, optionalUrgencyIndicators):
		return 3
	default:
		return 5
	}
}

func implementationEffort(title, desc, actionType string) int {
	switch {
	case anyIn(title, desc, highEffortIndicators):
		return 8
	// Metadata edits are copy changes, not engineering work, even when the
	// wording also matches a medium-effort verb like "optimize".
	case actionType == "meta_update":
		return 2
	case anyIn(title, desc, mediumEffortIndicators):
		return 5
	case anyIn(title, desc, lowEffortIndicators):
		return 2
	default:
		return 4
	}
}

func subcategory(title, desc string) string {
	switch {
	case strings.Contains(title, "meta") || strings.Contains(title, "title"):
		return "meta_optimization"
	case anyIn(title, desc, []string{"core web vitals", "page speed", "loading", "lcp", "cls", "fid"}):
		return "core_web_vitals"
	case anyIn(title, desc, []string{"mobile", "responsive"}):
		return "mobile_optimization"
	case anyIn(title, desc, []string{"crawl", "index", "sitemap", "robots"}):
		return "crawling_indexing"
	case anyIn(title, desc, []string{"schema", "structured data"}):
		return "structured_data"
	default:
		return "general_technical"
	}
}

func successMetrics(title string) []string {
	switch {
	case strings.Contains(title, "meta"):
		return []string{"CTR improvement", "SERP click-through increase"}
	case strings.Contains(title, "core web vitals") || strings.Contains(title, "page speed"):
		return []string{"LCP improvement", "CLS reduction", "FID improvement", "Performance score increase"}
	case strings.Contains(title, "mobile"):
		return []string{"Mobile usability score", "Mobile traffic increase"}
	case strings.Contains(title, "crawl") || strings.Contains(title, "index"):
		return []string{"Indexed pages increase", "Crawl error reduction"}
	case strings.Contains(title, "structured data") || strings.Contains(title, "schema"):
		return []string{"Rich snippet appearances", "SERP feature visibility"}
	default:
		return []string{"SEO score improvement", "Search visibility increase"}
	}
}

func timeline(effort int) string {
	switch {
	case effort <= 3:
		return "1-3 days"
	case effort <= 5:
		return "1-2 weeks"
	case effort <= 7:
		return "2-4 weeks"
	default:
		return "1-2 months"
	}
}

func contextAdjustment(title, desc, businessModel string) string {
	switch businessModel {
	case "E-commerce":
		if strings.Contains(title, "mobile") || strings.Contains(title, "page speed") {
			return "High priority for e-commerce: Direct impact on conversion rates"
		}
	case "SaaS":
		if strings.Contains(desc, "user experience") {
			return "Critical for SaaS: Affects trial conversion and user retention"
		}
	case "Local Services":
		if strings.Contains(title, "mobile") {
			return "Essential for local services: Mobile-first local search behavior"
		}
	}
	return "Standard technical SEO improvement"
}
