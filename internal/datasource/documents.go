// Package datasource feeds the engine from a spool directory of JSON
// documents dropped off by external collection jobs. The engine itself
// never fetches anything; this package is the boundary where untrusted
// collected data is decoded and validated.
package datasource

import (
	"github.com/yourusername/challenge-tracker/internal/models"
)

// DocumentType discriminates spool documents.
type DocumentType string

const (
	DocumentTypeRoster  DocumentType = "roster"
	DocumentTypeOdds    DocumentType = "odds"
	DocumentTypeResults DocumentType = "results"
)

// RosterDocument seeds or resets a meeting's challenge roster.
type RosterDocument struct {
	Meeting    string               `json:"meeting" validate:"required"`
	Kind       models.ChallengeKind `json:"kind" validate:"required,oneof=jockey driver"`
	TotalRaces int                  `json:"total_races" validate:"required,gt=0"`
	Country    string               `json:"country"`
	Entries    []models.RosterEntry `json:"entries" validate:"required,min=1,dive"`
}

// QuoteLine is one scraped quote: collection jobs deliver odds as the text
// they scraped, parsed and bounds-checked here at the boundary.
type QuoteLine struct {
	Name string `json:"name" validate:"required"`
	Odds string `json:"odds" validate:"required"`
}

// OddsDocument is one bookmaker's full quote set for a meeting.
type OddsDocument struct {
	Meeting   string      `json:"meeting" validate:"required"`
	Bookmaker string      `json:"bookmaker" validate:"required"`
	Entries   []QuoteLine `json:"entries" validate:"required,min=1,dive"`
}

// RaceSection is one completed race inside a results document.
type RaceSection struct {
	RaceNumber int                 `json:"race_number" validate:"required,gt=0"`
	Results    []models.ResultLine `json:"results" validate:"dive"`
}

// ResultsDocument carries completed races for a meeting, in race order.
type ResultsDocument struct {
	Meeting string        `json:"meeting" validate:"required"`
	Races   []RaceSection `json:"races" validate:"required,min=1,dive"`
}

// Batch is the decoded, validated content of one spool sweep.
type Batch struct {
	Rosters []RosterDocument
	Odds    []OddsDocument
	Results []ResultsDocument
}

// Empty reports whether the sweep found nothing to apply.
func (b *Batch) Empty() bool {
	return len(b.Rosters) == 0 && len(b.Odds) == 0 && len(b.Results) == 0
}
