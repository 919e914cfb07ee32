package options

import "seo-audit-backend/internal/bizprofile"

// MapProfile normalizes every categorical profile field into its select
// vocabulary before persistence. The result is a fixed point: mapping it
// again changes nothing.
func (m *Mapper) MapProfile(profile bizprofile.Profile) bizprofile.Profile {
	mapped := profile
	mapped.BusinessModel = m.Map(profile.BusinessModel, "business_model")
	mapped.TargetMarket = m.Map(profile.TargetMarket, "target_market")
	mapped.CompanySize = m.Map(profile.CompanySize, "company_size")
	mapped.GeographicScope = m.Map(profile.GeographicScope, "geographic_scope")
	mapped.BusinessMaturity = m.Map(profile.BusinessMaturity, "business_maturity")
	mapped.TechSophistication = m.Map(profile.TechSophistication, "tech_sophistication")
	mapped.ContentMaturity = m.Map(profile.ContentMaturity, "content_maturity")
	mapped.CompetitivePositioning = m.Map(profile.CompetitivePositioning, "competitive_positioning")
	mapped.PositioningStrength = m.Map(profile.PositioningStrength, "positioning_strength")
	mapped.BrandStrength = m.Map(profile.BrandStrength, "brand_strength")
	mapped.AudienceSophistication = m.Map(profile.AudienceSophistication, "audience_sophistication")
	mapped.PrimaryAgeGroup = m.Map(profile.PrimaryAgeGroup, "primary_age_group")
	mapped.IncomeLevel = m.Map(profile.IncomeLevel, "income_level")
	return mapped
}
