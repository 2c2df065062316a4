package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/challenge-tracker/internal/models"
)

func newParticipant(name string, points, ridesDone, ridesLeft, wins int) *models.Participant {
	return &models.Participant{
		Name:      name,
		Kind:      models.ChallengeKindJockey,
		Points:    points,
		RidesDone: ridesDone,
		RidesLeft: ridesLeft,
		Wins:      wins,
	}
}

func TestRecomputePercentagesSumToRoughlyHundred(t *testing.T) {
	model := NewModel(DefaultConfig())
	participants := []*models.Participant{
		newParticipant("a", 7, 4, 4, 2),
		newParticipant("b", 4, 4, 4, 1),
		newParticipant("c", 2, 4, 4, 0),
		newParticipant("d", 0, 4, 4, 0),
	}

	model.Recompute(participants)

	sum := 0.0
	for _, p := range participants {
		assert.Greater(t, p.AIWinPct, 0.0, p.Name)
		assert.Greater(t, p.AIPrice, 1.0, p.Name)
		sum += p.AIWinPct
	}
	// Per-participant rounding to one decimal can drift the total slightly
	assert.InDelta(t, 100.0, sum, 0.5)
}

func TestRecomputeOrdering(t *testing.T) {
	model := NewModel(DefaultConfig())
	leader := newParticipant("leader", 9, 5, 3, 3)
	trailer := newParticipant("trailer", 1, 5, 3, 0)

	model.Recompute([]*models.Participant{leader, trailer})

	assert.Greater(t, leader.AIWinPct, trailer.AIWinPct)
	assert.Less(t, leader.AIPrice, trailer.AIPrice)
}

func TestRecomputePriceFormula(t *testing.T) {
	model := NewModel(DefaultConfig())
	p := newParticipant("only", 3, 2, 6, 1)

	model.Recompute([]*models.Participant{p})

	// A one-horse field takes the whole probability mass
	require.Equal(t, 100.0, p.AIWinPct)
	assert.Equal(t, 0.95, p.AIPrice)
}

func TestRecomputeSentinelForVanishingShare(t *testing.T) {
	model := NewModel(DefaultConfig())
	// The giant's score dwarfs the minnow until its share rounds to 0.0
	giant := newParticipant("giant", 100000, 4, 40, 4)
	minnow := newParticipant("minnow", 0, 4, 0, 0)

	model.Recompute([]*models.Participant{giant, minnow})

	assert.Equal(t, 0.0, minnow.AIWinPct)
	assert.Equal(t, 999.0, minnow.AIPrice)
}

func TestRecomputeSkipsScratched(t *testing.T) {
	model := NewModel(DefaultConfig())
	active := newParticipant("active", 3, 2, 6, 1)
	scratched := newParticipant("scratched", 5, 2, 6, 2)
	scratched.IsScratched = true
	scratched.AIWinPct = 33.3

	model.Recompute([]*models.Participant{active, scratched})

	assert.Equal(t, 100.0, active.AIWinPct)
	// Scratched pricing is left as-is, not zeroed
	assert.Equal(t, 33.3, scratched.AIWinPct)
}

func TestRecomputeEmptyFieldIsNoOp(t *testing.T) {
	model := NewModel(DefaultConfig())

	assert.NotPanics(t, func() {
		model.Recompute(nil)
		model.Recompute([]*models.Participant{})
	})
}

func TestWinRatePriorAppliesBeforeFirstRide(t *testing.T) {
	fresh := newParticipant("fresh", 0, 0, 8, 0)
	assert.Equal(t, 0.15, fresh.WinRate(0.15))

	ridden := newParticipant("ridden", 3, 4, 4, 1)
	assert.Equal(t, 0.25, ridden.WinRate(0.15))
}

func TestMarketOverlay(t *testing.T) {
	quotes := []MarketQuote{
		{Name: "a", Odds: 2.0},
		{Name: "b", Odds: 4.0},
		{Name: "c", Odds: 4.0},
	}

	rows := MarketOverlay(quotes, 1.0)
	require.Len(t, rows, 3)

	// Implied: 0.5 / 1.0 = 50%, 0.25 / 1.0 = 25% twice
	assert.Equal(t, 50.0, rows[0].ImpliedPct)
	assert.Equal(t, 25.0, rows[1].ImpliedPct)

	// With no margin the fair price equals the normalized price
	assert.Equal(t, 2.0, rows[0].FairPrice)
	assert.Equal(t, 4.0, rows[1].FairPrice)
	assert.False(t, rows[0].Value)
}

func TestMarketOverlayWithMargin(t *testing.T) {
	quotes := []MarketQuote{
		{Name: "a", Odds: 2.0},
		{Name: "b", Odds: 2.0},
	}

	rows := MarketOverlay(quotes, 1.05)
	require.Len(t, rows, 2)

	// Fair percentage deflates under margin, so the fair price lengthens
	// past the quote and neither side shows value
	assert.Greater(t, rows[0].FairPrice, 2.0)
	assert.False(t, rows[0].Value)
}

func TestMarketOverlayZeroOddsStayZeroed(t *testing.T) {
	rows := MarketOverlay([]MarketQuote{
		{Name: "a", Odds: 0},
		{Name: "b", Odds: 3.0},
	}, 1.0)

	require.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[0].FairPrice)
	assert.False(t, rows[0].Value)
	assert.Equal(t, "a", rows[0].Name)
}
