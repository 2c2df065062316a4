// Package pricing derives win probabilities and fair prices for challenge
// participants from live standings.
package pricing

import (
	"math"

	"github.com/yourusername/challenge-tracker/internal/models"
)

// Config holds the tunable parameters of the standings model.
type Config struct {
	// OpportunityWeight scales remaining rides into extra scoring opportunity.
	OpportunityWeight float64
	// WinRatePrior is assumed for participants with no completed rides.
	WinRatePrior float64
	// MarginFactor shortens the quoted price relative to breakeven fair odds.
	MarginFactor float64
	// SentinelPrice is quoted when a participant's win percentage rounds to zero.
	SentinelPrice float64
}

// DefaultConfig returns the production model parameters.
func DefaultConfig() Config {
	return Config{
		OpportunityWeight: 0.3,
		WinRatePrior:      0.15,
		MarginFactor:      0.95,
		SentinelPrice:     999.0,
	}
}

// Model converts challenge standings into win percentages and prices.
type Model struct {
	cfg Config
}

// NewModel creates a pricing model with the given parameters.
func NewModel(cfg Config) *Model {
	return &Model{cfg: cfg}
}

// Recompute reprices every non-scratched participant in place. Each
// participant scores points+1 (so zero-point entrants keep weight early in
// a meeting), scaled by remaining-ride opportunity and current win rate;
// scores normalize to win percentages summing to 100. With no active
// participants the call is a no-op and stale prices are left untouched.
func (m *Model) Recompute(participants []*models.Participant) {
	active := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return
	}

	scores := make([]float64, len(active))
	total := 0.0
	for i, p := range active {
		base := float64(p.Points + 1)
		opportunity := 1 + m.cfg.OpportunityWeight*float64(p.RidesLeft)
		winFactor := 1 + p.WinRate(m.cfg.WinRatePrior)
		scores[i] = base * opportunity * winFactor
		total += scores[i]
	}
	if total <= 0 {
		return
	}

	for i, p := range active {
		pct := round1(100 * scores[i] / total)
		p.AIWinPct = pct
		if pct > 0 {
			fair := 100 / pct
			p.AIPrice = round2(fair * m.cfg.MarginFactor)
		} else {
			p.AIPrice = m.cfg.SentinelPrice
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
