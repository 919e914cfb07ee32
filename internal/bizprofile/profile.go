// Package bizprofile classifies a website's business context from its page
// content. Every attribute is computed independently by indicator voting or
// pattern extraction; malformed input degrades to the documented defaults
// and never fails.
package bizprofile

// Profile is the classified business context of a website.
type Profile struct {
	BusinessModel           string `json:"business_model"`
	TargetMarket            string `json:"target_market"`
	IndustrySector          string `json:"industry_sector"`
	CompanySize             string `json:"company_size"`
	HasEcommerce            bool   `json:"has_ecommerce"`
	HasLocalPresence        bool   `json:"has_local_presence"`
	BusinessComplexityScore int    `json:"business_complexity_score"`
	PrimaryAgeGroup         string `json:"primary_age_group"`
	IncomeLevel             string `json:"income_level"`
	AudienceSophistication  string `json:"audience_sophistication"`
	ServicesOffered         string `json:"services_offered"`
	HasPublicPricing        bool   `json:"has_public_pricing"`
	ServiceCount            int    `json:"service_count"`
	GeographicScope         string `json:"geographic_scope"`
	TargetLocations         string `json:"target_locations"`
	IsLocationBased         bool   `json:"is_location_based"`
	BusinessMaturity        string `json:"business_maturity"`
	EstablishmentYear       int    `json:"establishment_year,omitempty"`
	ExperienceIndicators    bool   `json:"experience_indicators"`
	PlatformDetected        string `json:"platform_detected"`
	HasAdvancedFeatures     bool   `json:"has_advanced_features"`
	SocialMediaIntegration  bool   `json:"social_media_integration"`
	TechSophistication      string `json:"tech_sophistication"`
	HasContentMarketing     bool   `json:"has_content_marketing"`
	HasLeadGeneration       bool   `json:"has_lead_generation"`
	HasSocialProof          bool   `json:"has_social_proof"`
	ContentMaturity         string `json:"content_maturity"`
	PhoneProminence         bool   `json:"phone_prominence"`
	HasContactForms         bool   `json:"has_contact_forms"`
	HasLiveChat             bool   `json:"has_live_chat"`
	PreferredContactMethod  string `json:"preferred_contact_method"`
	CompetitivePositioning  string `json:"competitive_positioning"`
	PositioningStrength     string `json:"positioning_strength"`
	ValueProposition        string `json:"value_proposition"`
	BrandStrength           string `json:"brand_strength"`
	TrustIndicators         string `json:"trust_indicators"`

	BusinessInsights           string `json:"business_insights"`
	SEOStrategyRecommendations string `json:"seo_strategy_recommendations"`
}

// Default returns the profile used when a site cannot be analyzed.
func Default() Profile {
	return Profile{
		BusinessModel:              "Information/Content",
		TargetMarket:               "B2C",
		IndustrySector:             "General",
		CompanySize:                "Small",
		BusinessComplexityScore:    3,
		PrimaryAgeGroup:            "General",
		IncomeLevel:                "Mid-Range",
		AudienceSophistication:     "General",
		ServicesOffered:            "Not specified",
		GeographicScope:            "National",
		BusinessMaturity:           "Growing",
		PlatformDetected:           "Unknown",
		TechSophistication:         "Medium",
		ContentMaturity:            "Basic",
		PreferredContactMethod:     "Email",
		CompetitivePositioning:     "Follower",
		PositioningStrength:        "Medium",
		ValueProposition:           "Quality service and expertise",
		BrandStrength:              "Medium",
		TrustIndicators:            "Basic website security",
		BusinessInsights:           "Limited business analysis due to access restrictions",
		SEOStrategyRecommendations: "Implement basic SEO best practices and content strategy",
	}
}
