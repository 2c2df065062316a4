package models

import (
	"time"

	"github.com/google/uuid"
)

// ValueBet is a bookmaker quote whose odds exceed the model price by at
// least the configured edge threshold.
type ValueBet struct {
	ID            uuid.UUID `json:"id"`
	Meeting       string    `json:"meeting"`
	Participant   string    `json:"participant"`
	Bookmaker     string    `json:"bookmaker"`
	BookmakerOdds float64   `json:"bookmaker_odds"`
	ModelPrice    float64   `json:"model_price"`
	EdgePercent   float64   `json:"edge_percent"`
	FoundAt       time.Time `json:"found_at"`
}
