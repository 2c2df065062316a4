package models

// RosterEntry seeds one participant with its opening challenge odds.
type RosterEntry struct {
	Name string  `json:"name" validate:"required"`
	Odds float64 `json:"odds" validate:"gte=0"`
}

// ResultLine is a single placed runner in a race result. Positions are
// 1-indexed and need not be contiguous; only 1-3 carry points.
type ResultLine struct {
	Position    int    `json:"position" validate:"required,gt=0"`
	Participant string `json:"participant" validate:"required"`
}

// OddsEntry is one participant quote inside a bookmaker snapshot.
type OddsEntry struct {
	Name string  `json:"name" validate:"required"`
	Odds float64 `json:"odds" validate:"gt=0"`
}
