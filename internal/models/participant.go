package models

// ChallengeKind identifies which kind of challenge a meeting carries.
type ChallengeKind string

const (
	ChallengeKindJockey ChallengeKind = "jockey"
	ChallengeKindDriver ChallengeKind = "driver"
)

// HistoryEntry records the points movement for a participant in one race.
type HistoryEntry struct {
	RaceNumber       int `json:"race_number"`
	PointsGained     int `json:"points_gained"`
	CumulativePoints int `json:"cumulative_points"`
}

// Participant holds the per-meeting mutable state for one jockey or driver.
// A Participant belongs to exactly one meeting tracker and is never shared.
type Participant struct {
	Name           string             `json:"name" validate:"required"`
	Kind           ChallengeKind      `json:"kind" validate:"required,oneof=jockey driver"`
	RidesDone      int                `json:"rides_done"`
	RidesLeft      int                `json:"rides_left"`
	Wins           int                `json:"wins"`
	Seconds        int                `json:"seconds"`
	Thirds         int                `json:"thirds"`
	Points         int                `json:"points"`
	LastRacePoints int                `json:"last_race_points"`
	History        []HistoryEntry     `json:"history"`
	InitialOdds    float64            `json:"initial_odds"`
	CurrentOdds    map[string]float64 `json:"current_odds"`
	AIWinPct       float64            `json:"ai_win_pct"`
	AIPrice        float64            `json:"ai_price"`
	IsLeader       bool               `json:"is_leader"`
	IsScratched    bool               `json:"is_scratched"`
}

// IsActive reports whether the participant still counts for pricing and standings.
func (p *Participant) IsActive() bool {
	return !p.IsScratched
}

// Placings returns the total number of top-three finishes.
func (p *Participant) Placings() int {
	return p.Wins + p.Seconds + p.Thirds
}

// WinRate returns wins over rides done, or the supplied prior when no ride
// has been completed yet.
func (p *Participant) WinRate(prior float64) float64 {
	if p.RidesDone == 0 {
		return prior
	}
	return float64(p.Wins) / float64(p.RidesDone)
}
