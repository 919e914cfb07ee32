package bizprofile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	establishmentYearRe = regexp.MustCompile(`(?:since|established|founded)\s+(\d{4})`)

	// "City, ST" and "City Name, ST"
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+,\s*[A-Z]{2}\b`),
	}

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	}

	priceRe = regexp.MustCompile(`(?i)\$\d+|\d+\s*USD|price|cost|fee`)
)

// extractEstablishmentYear pulls a "since/established/founded <year>" year
// from lowercased text. Years outside 1900-2024 are treated as noise.
func extractEstablishmentYear(text string) int {
	match := establishmentYearRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	year, err := strconv.Atoi(match[1])
	if err != nil || year < 1900 || year > 2024 {
		return 0
	}
	return year
}

// extractLocations collects up to three "City, ST" mentions per pattern
// from the original-case text.
func extractLocations(text string) []string {
	var locations []string
	for _, re := range locationRes {
		matches := re.FindAllString(text, -1)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		locations = append(locations, matches...)
	}
	return locations
}

func hasPhoneNumber(text string) bool {
	for _, re := range phoneRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func hasPricingSignals(text string) bool {
	return priceRe.MatchString(text)
}

// extractValueProposition grabs the sentence around the first value-prop
// indicator, capped at 100 characters.
func extractValueProposition(text string) string {
	lowered := strings.ToLower(text)
	for _, indicator := range valuePropIndicators {
		idx := strings.Index(lowered, indicator)
		if idx < 0 {
			continue
		}
		end := idx
		for end < len(text) && text[end] != '.' {
			end++
		}
		if end < len(text) {
			end++
		}
		sentence := strings.TrimSpace(text[idx:end])
		if len(sentence) > 100 {
			sentence = sentence[:100]
		}
		if sentence != "" {
			return sentence
		}
	}
	return "Quality service and expertise"
}
