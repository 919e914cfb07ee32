package bizprofile

import "strings"

// generateInsights derives short observations from the classified
// attributes.
func generateInsights(profile Profile) string {
	var insights []string

	switch profile.BusinessModel {
	case "E-commerce":
		insights = append(insights, "E-commerce business with strong transactional focus")
	case "SaaS":
		insights = append(insights, "Software-as-a-Service model with subscription potential")
	case "Professional Services":
		insights = append(insights, "Service-based business requiring trust and expertise positioning")
	}

	if profile.TargetMarket == "B2B" {
		insights = append(insights, "B2B focus requires professional credibility and case studies")
	} else {
		insights = append(insights, "B2C focus benefits from emotional appeal and user reviews")
	}

	switch profile.GeographicScope {
	case "Local":
		insights = append(insights, "Local business needs local SEO optimization")
	case "Global":
		insights = append(insights, "Global reach requires international SEO strategy")
	}

	switch profile.TechSophistication {
	case "Basic":
		insights = append(insights, "Basic technology setup may limit advanced SEO implementations")
	case "Advanced":
		insights = append(insights, "Advanced technology allows for sophisticated SEO strategies")
	}

	if len(insights) == 0 {
		return "General business analysis completed"
	}
	return strings.Join(insights, "; ")
}

// generateStrategy derives SEO strategy recommendations from the profile.
func generateStrategy(profile Profile) string {
	var recs []string

	switch profile.BusinessModel {
	case "E-commerce":
		recs = append(recs,
			"Focus on product page optimization and transactional keywords",
			"Implement structured data for products and reviews")
	case "SaaS":
		recs = append(recs,
			"Target feature-based and comparison keywords",
			"Create comprehensive help documentation for long-tail SEO")
	case "Professional Services":
		recs = append(recs,
			"Build authority through thought leadership content",
			"Optimize for service-specific and local keywords")
	case "Local Services":
		recs = append(recs,
			"Prioritize local SEO and Google My Business optimization",
			"Target location-based and service keywords")
	}

	switch profile.GeographicScope {
	case "Local":
		recs = append(recs, "Implement local schema markup and NAP consistency")
	case "Global":
		recs = append(recs, "Consider international SEO and hreflang implementation")
	}

	if profile.ContentMaturity == "Basic" || profile.ContentMaturity == "Developing" {
		recs = append(recs, "Develop comprehensive content marketing strategy")
	}

	switch profile.CompetitivePositioning {
	case "Leader":
		recs = append(recs, "Focus on brand protection and thought leadership SEO")
	case "Challenger":
		recs = append(recs, "Target competitor comparison keywords and alternative searches")
	}

	if len(recs) == 0 {
		return "Implement comprehensive SEO strategy based on business goals"
	}
	return strings.Join(recs, "; ")
}
