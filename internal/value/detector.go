// Package value detects bookmaker quotes that beat the model price.
package value

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/challenge-tracker/internal/models"
)

// DefaultMinEdgePercent is the threshold applied when callers pass a
// non-positive minimum edge.
const DefaultMinEdgePercent = 10.0

// Find cross-references every bookmaker quote attached to the given
// participants against the model price. A quote qualifies when its odds
// exceed the model price and the raw edge meets the threshold; the stored
// edge is rounded to one decimal place for display. The
// result is sorted by edge descending; ties keep encounter order
// (participant order, then bookmaker first-report order). Find never
// mutates its inputs and may be called repeatedly with different
// thresholds against the same snapshot.
func Find(meeting string, participants []*models.Participant, bookmakers []string, minEdgePercent float64) []models.ValueBet {
	if minEdgePercent <= 0 {
		minEdgePercent = DefaultMinEdgePercent
	}

	now := time.Now()
	var found []models.ValueBet
	for _, p := range participants {
		if !p.IsActive() || p.AIPrice <= 0 {
			continue
		}
		for _, bookmaker := range bookmakers {
			odds, ok := p.CurrentOdds[bookmaker]
			if !ok || odds <= p.AIPrice {
				continue
			}
			edge := (odds/p.AIPrice - 1) * 100
			if edge < minEdgePercent {
				continue
			}
			found = append(found, models.ValueBet{
				ID:            uuid.New(),
				Meeting:       meeting,
				Participant:   p.Name,
				Bookmaker:     bookmaker,
				BookmakerOdds: odds,
				ModelPrice:    p.AIPrice,
				EdgePercent:   round1(edge),
				FoundAt:       now,
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].EdgePercent > found[j].EdgePercent
	})
	return found
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
