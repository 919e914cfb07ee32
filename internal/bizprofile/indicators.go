package bizprofile

// Indicator tables are data, not control flow: each classifier below is a
// label -> substring list decision table over lowercased page text.

type labeledIndicators struct {
	label      string
	indicators []string
}

var (
	ecommerceModelIndicators = []string{"add to cart", "shopping cart", "checkout", "buy now", "add to bag", "shop now", "product", "store", "price", "$"}
	saasModelIndicators      = []string{"free trial", "sign up", "dashboard", "api", "subscription", "pricing plans", "software", "platform", "cloud"}
	serviceModelIndicators   = []string{"consultation", "consulting", "services", "expertise", "professional", "experience", "solutions"}
	localModelIndicators     = []string{"location", "address", "directions", "hours", "near me", "local", "visit us", "call us"}

	b2bIndicators = []string{"enterprise", "business", "corporate", "b2b", "companies", "organizations", "team", "workflow"}
	b2cIndicators = []string{"personal", "individual", "family", "home", "consumer", "lifestyle", "fashion"}

	industryIndicators = []labeledIndicators{
		{"Technology", []string{"software", "tech", "digital", "development", "app"}},
		{"Healthcare", []string{"health", "medical", "doctor", "clinic", "wellness", "therapy"}},
		{"Finance", []string{"finance", "banking", "investment", "money", "financial", "accounting"}},
		{"Education", []string{"education", "learning", "course", "training", "school", "university"}},
		{"Retail", []string{"retail", "shopping", "fashion", "clothing", "store"}},
		{"Real Estate", []string{"real estate", "property", "homes", "realtor", "mortgage"}},
		{"Marketing", []string{"marketing", "advertising", "promotion", "brand", "social media"}},
	}

	// First match wins, largest size checked first.
	companySizeIndicators = []labeledIndicators{
		{"Enterprise", []string{"fortune 500", "global", "worldwide", "international", "enterprise"}},
		{"Large", []string{"team of", "employees", "staff", "offices", "locations"}},
		{"Medium", []string{"growing", "established", "experienced", "years"}},
		{"Small", []string{"small business", "local", "family owned", "boutique"}},
		{"Startup", []string{"startup", "new", "innovative", "disrupting", "young company"}},
	}

	ageGroupIndicators = []labeledIndicators{
		{"Young Adults", []string{"millennials", "young", "students", "college", "trendy", "modern"}},
		{"Middle Age", []string{"professionals", "families", "parents", "career", "experienced"}},
		{"Seniors", []string{"seniors", "retirement", "elderly", "mature", "golden years"}},
	}

	incomeLevelIndicators = []labeledIndicators{
		{"Luxury", []string{"luxury", "premium", "exclusive", "high-end", "elite", "bespoke"}},
		{"Premium", []string{"quality", "professional", "premium", "expert", "sophisticated"}},
		{"Mid-Range", []string{"affordable", "value", "reasonable", "competitive"}},
		{"Budget", []string{"cheap", "budget", "discount", "low-cost", "economical"}},
	}

	sophisticationIndicators = []labeledIndicators{
		{"Expert", []string{"advanced", "expert", "professional", "technical", "specialized"}},
		{"High", []string{"experienced", "knowledgeable", "informed", "savvy"}},
		{"General", []string{"easy", "simple", "user-friendly", "accessible"}},
		{"Basic", []string{"beginner", "basic", "simple", "easy to use"}},
	}

	ecommerceIndicators     = []string{"add to cart", "shopping cart", "checkout", "buy now", "shop", "store"}
	localPresenceIndicators = []string{"address", "location", "visit us", "directions", "hours", "phone"}

	globalScopeIndicators   = []string{"worldwide", "global", "international", "countries", "worldwide shipping"}
	nationalScopeIndicators = []string{"nationwide", "across the country", "all states", "national"}
	regionalScopeIndicators = []string{"regional", "tri-state", "west coast", "east coast", "midwest"}
	localScopeIndicators    = []string{"local", "nearby", "in your area", "serving", "community"}

	maturityIndicators = []labeledIndicators{
		{"Startup", []string{"startup", "new", "launching", "innovative", "disrupting", "founded recently"}},
		{"Growing", []string{"growing", "expanding", "scaling", "developing", "emerging"}},
		{"Established", []string{"established", "experienced", "years of experience", "proven", "trusted"}},
		{"Mature", []string{"industry leader", "market leader", "decades", "pioneer", "veteran"}},
	}

	experienceIndicators = []string{"years of experience", "expertise", "specialist", "expert", "professional"}

	// Matched against raw HTML, first hit wins.
	platformIndicators = []labeledIndicators{
		{"WordPress", []string{"wp-content", "wordpress", "wp-includes"}},
		{"Shopify", []string{"shopify", "cdn.shopify.com", "myshopify.com"}},
		{"Wix", []string{"wix.com", "wixstatic.com"}},
		{"Squarespace", []string{"squarespace", "sqsp.com"}},
		{"Webflow", []string{"webflow.com", "webflow.io"}},
		{"Custom", []string{"custom", "bespoke", "proprietary"}},
	}

	advancedFeatureIndicators = []string{"search functionality", "user accounts", "dashboard", "api", "integration", "automation", "analytics", "tracking", "personalization"}
	socialIndicators          = []string{"facebook", "twitter", "linkedin", "instagram", "youtube", "social"}

	techSophisticationIndicators = []labeledIndicators{
		{"Advanced", []string{"machine learning", "ai", "artificial intelligence", "blockchain", "cloud"}},
		{"High", []string{"api", "integration", "automation", "analytics", "dashboard"}},
		{"Medium", []string{"responsive", "mobile", "search", "contact form"}},
		{"Basic", []string{"simple", "basic", "static", "minimal"}},
	}

	contentMarketingIndicators = []string{"blog", "articles", "resources", "guides", "tips", "news", "insights"}
	leadGenIndicators          = []string{"newsletter", "subscribe", "download", "free trial", "demo", "consultation"}
	socialProofIndicators      = []string{"testimonials", "reviews", "clients", "customers", "case studies", "success stories"}

	liveChatIndicators = []string{"live chat", "chat with us", "online chat", "support chat"}

	leaderIndicators     = []string{"leader", "leading", "first", "#1", "pioneer", "industry leader"}
	challengerIndicators = []string{"competitive", "alternative", "better than", "compared to"}
	nicheIndicators      = []string{"specialized", "niche", "boutique", "custom", "personalized"}

	positioningStrengthIndicators = []labeledIndicators{
		{"Dominant", []string{"market leader", "industry standard", "best in class"}},
		{"Strong", []string{"trusted", "proven", "established", "recognized"}},
		{"Medium", []string{"quality", "reliable", "professional"}},
		{"Weak", []string{"new", "trying", "hoping", "working towards"}},
	}

	valuePropIndicators = []string{"unique", "difference", "why choose", "what makes us", "our advantage"}

	brandStrengthIndicators = []labeledIndicators{
		{"Very Strong", []string{"award", "certified", "accredited", "recognized"}},
		{"Strong", []string{"trusted", "established", "reputation"}},
		{"Medium", []string{"professional", "quality", "experienced"}},
		{"Weak", []string{"new", "growing", "developing"}},
	}

	trustChecks = []labeledIndicators{
		{"SSL Certificate", []string{"https://"}},
		{"Testimonials", []string{"testimonial"}},
		{"Reviews", []string{"review"}},
		{"Certifications", []string{"certified", "accredited", "licensed"}},
		{"Awards", []string{"award"}},
		{"Guarantees", []string{"guarantee", "warranty", "promise"}},
	}
)
