package keywords

import "strings"

// Intent is the search intent bucket of a keyword.
type Intent string

const (
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
	IntentCommercial    Intent = "commercial"
	IntentInformational Intent = "informational"
)

// Indicator lists checked in priority order. Transactional outranks the
// rest: "best price to buy X" is a purchase query, not a comparison.
var intentIndicators = []struct {
	intent     Intent
	indicators []string
}{
	{IntentTransactional, []string{"buy", "purchase", "price", "cost", "discount", "deal", "sale"}},
	{IntentNavigational, []string{"login", "sign in", "account", "home", "contact", "about"}},
	{IntentCommercial, []string{"best", "top", "review", "compare", "vs", "alternatives"}},
	{IntentInformational, []string{"what", "how", "why", "when", "where", "guide", "tutorial", "learn"}},
}

// ClassifyIntent buckets a keyword by its strongest intent indicator.
// Keywords without a recognized indicator default to informational.
func ClassifyIntent(keyword string) Intent {
	lowered := strings.ToLower(keyword)
	for _, group := range intentIndicators {
		for _, indicator := range group.indicators {
			if strings.Contains(lowered, indicator) {
				return group.intent
			}
		}
	}
	return IntentInformational
}

// IsBranded reports whether the keyword contains the brand token of the
// domain, the label before the first dot.
func IsBranded(keyword, domain string) bool {
	brand, _, _ := strings.Cut(domain, ".")
	brand = strings.ToLower(strings.TrimSpace(brand))
	if brand == "" {
		return false
	}
	return strings.Contains(strings.ToLower(keyword), brand)
}
