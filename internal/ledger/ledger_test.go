package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/challenge-tracker/internal/models"
)

func TestPlace(t *testing.T) {
	l := New()

	bet := l.Place("RANDWICK", "James McDonald", "sportsbet",
		decimal.NewFromFloat(8.0), decimal.NewFromFloat(25.0))

	require.NotNil(t, bet)
	assert.Equal(t, models.BetResultPending, bet.Result)
	assert.False(t, bet.IsSettled())
	assert.True(t, bet.ProfitLoss.IsZero())
	// 25 * (8 - 1) = 175
	assert.True(t, bet.PotentialWin().Equal(decimal.NewFromFloat(175.0)))
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		result  models.BetResult
		wantPnL string
	}{
		{
			name:    "win pays stake times odds minus one",
			result:  models.BetResultWin,
			wantPnL: "70",
		},
		{
			name:    "loss forfeits the stake",
			result:  models.BetResultLoss,
			wantPnL: "-10",
		},
		{
			name:    "void returns the stake",
			result:  models.BetResultVoid,
			wantPnL: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			bet := l.Place("ASCOT", "W Pike", "tab",
				decimal.NewFromFloat(8.0), decimal.NewFromFloat(10.0))

			settled, err := l.Settle(bet.ID, tt.result)
			require.NoError(t, err)
			assert.True(t, settled.IsSettled())
			require.NotNil(t, settled.SettledAt)
			assert.True(t, settled.ProfitLoss.Equal(decimal.RequireFromString(tt.wantPnL)),
				"got %s", settled.ProfitLoss)
		})
	}
}

func TestSettleUnknownBet(t *testing.T) {
	l := New()
	_, err := l.Settle(uuid.New(), models.BetResultWin)
	assert.ErrorIs(t, err, models.ErrBetNotFound)
}

func TestBetsMostRecentFirst(t *testing.T) {
	l := New()
	first := l.Place("RANDWICK", "a", "tab", decimal.NewFromInt(3), decimal.NewFromInt(10))
	second := l.Place("RANDWICK", "b", "tab", decimal.NewFromInt(4), decimal.NewFromInt(10))

	bets := l.Bets()
	require.Len(t, bets, 2)
	assert.Equal(t, second.ID, bets[0].ID)
	assert.Equal(t, first.ID, bets[1].ID)
}

func TestSummarize(t *testing.T) {
	l := New()

	win := l.Place("RANDWICK", "a", "tab", decimal.NewFromInt(5), decimal.NewFromInt(10))
	loss1 := l.Place("RANDWICK", "b", "tab", decimal.NewFromInt(3), decimal.NewFromInt(10))
	loss2 := l.Place("RANDWICK", "c", "tab", decimal.NewFromInt(3), decimal.NewFromInt(10))
	l.Place("RANDWICK", "d", "tab", decimal.NewFromInt(6), decimal.NewFromInt(10))

	_, err := l.Settle(win.ID, models.BetResultWin)
	require.NoError(t, err)
	_, err = l.Settle(loss1.ID, models.BetResultLoss)
	require.NoError(t, err)
	_, err = l.Settle(loss2.ID, models.BetResultLoss)
	require.NoError(t, err)

	s := l.Summarize()
	assert.Equal(t, 4, s.TotalBets)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.Pending)
	// One win out of three decided bets
	assert.Equal(t, 33.3, s.WinRatePercent)
	// 40 - 10 - 10 = 20
	assert.True(t, s.TotalProfitLoss.Equal(decimal.NewFromInt(20)), "got %s", s.TotalProfitLoss)
}

func TestSummarizeEmpty(t *testing.T) {
	s := New().Summarize()
	assert.Equal(t, 0, s.TotalBets)
	assert.Equal(t, 0.0, s.WinRatePercent)
	assert.True(t, s.TotalProfitLoss.IsZero())
}
