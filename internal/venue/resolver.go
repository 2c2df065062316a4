// Package venue matches challenge meeting names to venue records discovered
// from results providers. Meeting titles arrive decorated with bookmaker
// sponsor prefixes and state or qualifier suffixes that the providers never
// use, so comparison happens on a stripped, normalized form.
package venue

import (
	"strings"

	"github.com/yourusername/challenge-tracker/internal/models"
)

// Sponsor brands that prefix meeting titles on bookmaker sites.
var sponsorPrefixes = []string{
	"ladbrokes",
	"sportsbet",
	"tabtouch",
	"pointsbet",
	"elitebet",
	"bet365",
	"tab",
}

// Trailing tokens that qualify rather than name a venue.
var suffixTokens = map[string]struct{}{
	"nsw": {}, "vic": {}, "qld": {}, "sa": {}, "wa": {}, "tas": {},
	"nt": {}, "act": {}, "nz": {}, "hk": {},
	"twilight": {}, "night": {}, "synthetic": {},
}

// Tokens ignored during word-subset comparison.
var stopwords = map[string]struct{}{
	"the": {}, "park": {}, "racecourse": {}, "raceway": {}, "racing": {}, "club": {},
}

// NormalizeVenue strips one leading sponsor prefix and any trailing state
// or qualifier tokens, then lower-cases and collapses whitespace.
func NormalizeVenue(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) > 1 {
		for _, sponsor := range sponsorPrefixes {
			if fields[0] == sponsor {
				fields = fields[1:]
				break
			}
		}
	}
	for len(fields) > 1 {
		if _, ok := suffixTokens[fields[len(fields)-1]]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

// Resolve matches a challenge meeting name against discovered venues using
// the same tiered philosophy as participant matching: exact normalized
// match, then mutual substring containment (both sides at least 3
// characters), then word-set subset after stopword removal. The first hit
// of the earliest successful tier wins. A miss returns (zero, false); the
// caller falls back to direct URL probing, so "not found" is a reported
// outcome rather than an error.
func Resolve(meetingName string, candidates []models.Venue) (models.Venue, bool) {
	target := NormalizeVenue(meetingName)
	if target == "" {
		return models.Venue{}, false
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = NormalizeVenue(c.Name)
	}

	for i, c := range candidates {
		if normalized[i] == target {
			return c, true
		}
	}

	for i, c := range candidates {
		n := normalized[i]
		if len(n) < 3 || len(target) < 3 {
			continue
		}
		if strings.Contains(n, target) || strings.Contains(target, n) {
			return c, true
		}
	}

	targetWords := contentWords(target)
	if len(targetWords) > 0 {
		for i, c := range candidates {
			words := contentWords(normalized[i])
			if len(words) == 0 {
				continue
			}
			if subset(targetWords, words) || subset(words, targetWords) {
				return c, true
			}
		}
	}

	return models.Venue{}, false
}

func contentWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

func subset(inner, outer map[string]struct{}) bool {
	if len(inner) == 0 {
		return false
	}
	for w := range inner {
		if _, ok := outer[w]; !ok {
			return false
		}
	}
	return true
}
