package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetResult represents the settlement outcome of a tracked bet.
type BetResult string

const (
	BetResultPending BetResult = "pending"
	BetResultWin     BetResult = "win"
	BetResultLoss    BetResult = "loss"
	BetResultVoid    BetResult = "void"
)

// Bet is a challenge bet recorded in the ledger.
type Bet struct {
	ID          uuid.UUID       `json:"id"`
	Meeting     string          `json:"meeting" validate:"required"`
	Participant string          `json:"participant" validate:"required"`
	Bookmaker   string          `json:"bookmaker" validate:"required"`
	Odds        decimal.Decimal `json:"odds"`
	Stake       decimal.Decimal `json:"stake"`
	Result      BetResult       `json:"result"`
	ProfitLoss  decimal.Decimal `json:"profit_loss"`
	PlacedAt    time.Time       `json:"placed_at"`
	SettledAt   *time.Time      `json:"settled_at,omitempty"`
}

// IsSettled reports whether the bet has a final result.
func (b *Bet) IsSettled() bool {
	return b.Result != BetResultPending
}

// PotentialWin returns the profit if the bet wins.
func (b *Bet) PotentialWin() decimal.Decimal {
	if b.Odds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero
	}
	return b.Stake.Mul(b.Odds.Sub(decimal.NewFromInt(1)))
}
