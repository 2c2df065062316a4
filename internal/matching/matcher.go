package matching

import "strings"

// Guards against false positives on initials and very short surnames.
const minSurnameLen = 3

// Match resolves a scraped name against the roster and returns the canonical
// roster name. Tiers are tried in order and the first hit wins:
//
//  1. exact match of normalized forms
//  2. surname match, when the scraped surname is at least 3 characters
//  3. substring containment in either direction
//
// Within a tier, the first roster entry in iteration order wins; ties are
// not disambiguated further. A miss returns ("", false) and is never an
// error: callers skip unmatched names and keep processing.
func Match(scraped string, roster []string) (string, bool) {
	norm := Normalize(scraped)
	if norm == "" {
		return "", false
	}

	for _, candidate := range roster {
		if Normalize(candidate) == norm {
			return candidate, true
		}
	}

	if surname := Surname(norm); len(surname) >= minSurnameLen {
		for _, candidate := range roster {
			if Surname(Normalize(candidate)) == surname {
				return candidate, true
			}
		}
	}

	for _, candidate := range roster {
		cn := Normalize(candidate)
		if cn == "" {
			continue
		}
		if strings.Contains(cn, norm) || strings.Contains(norm, cn) {
			return candidate, true
		}
	}

	return "", false
}
