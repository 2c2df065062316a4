package datasource

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/challenge-tracker/internal/models"
)

// Quote bounds carried over from the collection jobs: anything at or below
// 1.0 is a placeholder, anything above 500 is a parse artifact.
const (
	minQuotedOdds = 1.0
	maxQuotedOdds = 500.0
)

// ParseOdds converts a decimal odds string (e.g. "4.50") to a float,
// rejecting values outside plausible challenge-market bounds.
func ParseOdds(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid odds %q: %w", s, err)
	}
	odds := d.InexactFloat64()
	if odds <= minQuotedOdds || odds > maxQuotedOdds {
		return 0, fmt.Errorf("odds %s out of range", d.String())
	}
	return odds, nil
}

// ParsedEntries converts a document's scraped quote lines to typed odds
// entries, dropping lines whose odds fail to parse. Returns the entries and
// the number of dropped lines.
func (d OddsDocument) ParsedEntries() ([]models.OddsEntry, int) {
	entries := make([]models.OddsEntry, 0, len(d.Entries))
	dropped := 0
	for _, line := range d.Entries {
		odds, err := ParseOdds(line.Odds)
		if err != nil {
			dropped++
			continue
		}
		entries = append(entries, models.OddsEntry{Name: line.Name, Odds: odds})
	}
	return entries, dropped
}
