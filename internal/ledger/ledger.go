// Package ledger keeps an in-memory record of challenge bets and their
// settlement profit and loss.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yourusername/challenge-tracker/internal/models"
)

// Summary aggregates settled and pending bets.
type Summary struct {
	TotalBets       int             `json:"total_bets"`
	Wins            int             `json:"wins"`
	Losses          int             `json:"losses"`
	Pending         int             `json:"pending"`
	WinRatePercent  float64         `json:"win_rate"`
	TotalProfitLoss decimal.Decimal `json:"total_pnl"`
}

// Ledger records bets placed on challenge markets. Safe for concurrent use.
type Ledger struct {
	mu   sync.RWMutex
	bets []*models.Bet
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Place records a new pending bet and returns it.
func (l *Ledger) Place(meeting, participant, bookmaker string, odds, stake decimal.Decimal) *models.Bet {
	bet := &models.Bet{
		ID:          uuid.New(),
		Meeting:     meeting,
		Participant: participant,
		Bookmaker:   bookmaker,
		Odds:        odds,
		Stake:       stake,
		Result:      models.BetResultPending,
		ProfitLoss:  decimal.Zero,
		PlacedAt:    time.Now(),
	}
	l.mu.Lock()
	l.bets = append(l.bets, bet)
	l.mu.Unlock()
	return bet
}

// Settle marks a bet with its final result and computes profit and loss:
// stake times (odds-1) on a win, the lost stake on a loss, zero on a void.
func (l *Ledger) Settle(id uuid.UUID, result models.BetResult) (*models.Bet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, bet := range l.bets {
		if bet.ID != id {
			continue
		}
		bet.Result = result
		switch result {
		case models.BetResultWin:
			bet.ProfitLoss = bet.PotentialWin()
		case models.BetResultLoss:
			bet.ProfitLoss = bet.Stake.Neg()
		default:
			bet.ProfitLoss = decimal.Zero
		}
		now := time.Now()
		bet.SettledAt = &now
		return bet, nil
	}
	return nil, models.ErrBetNotFound
}

// Bets returns all recorded bets, most recent first.
func (l *Ledger) Bets() []*models.Bet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.Bet, len(l.bets))
	for i, bet := range l.bets {
		out[len(l.bets)-1-i] = bet
	}
	return out
}

// Summarize aggregates the ledger into headline figures. Win rate is over
// settled win/loss bets only, rounded to one decimal place.
func (l *Ledger) Summarize() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Summary{TotalBets: len(l.bets), TotalProfitLoss: decimal.Zero}
	for _, bet := range l.bets {
		switch bet.Result {
		case models.BetResultWin:
			s.Wins++
		case models.BetResultLoss:
			s.Losses++
		case models.BetResultPending:
			s.Pending++
		}
		s.TotalProfitLoss = s.TotalProfitLoss.Add(bet.ProfitLoss)
	}
	if decided := s.Wins + s.Losses; decided > 0 {
		rate := decimal.NewFromInt(int64(s.Wins)).
			Div(decimal.NewFromInt(int64(decided))).
			Mul(decimal.NewFromInt(100))
		s.WinRatePercent, _ = rate.Round(1).Float64()
	}
	return s
}
