package pricing

// OverlayRow compares one pre-meeting quote against the margin-adjusted market.
type OverlayRow struct {
	Name       string  `json:"name"`
	Odds       float64 `json:"odds"`
	ImpliedPct float64 `json:"implied_prob"`
	FairPct    float64 `json:"fair_prob"`
	FairPrice  float64 `json:"fair_price"`
	EdgePct    float64 `json:"edge"`
	Value      bool    `json:"value"`
}

// MarketQuote is a participant name with its quoted challenge odds.
type MarketQuote struct {
	Name string
	Odds float64
}

// MarketOverlay screens pre-meeting challenge markets before any race has
// run: implied probabilities from the quoted odds are normalized across the
// field, deflated by the bookmaker margin, and converted back to a fair
// price. A quote is flagged as value when it beats that price. Quotes with
// non-positive odds come back zeroed rather than dropped so the output
// stays index-aligned with the input.
func MarketOverlay(quotes []MarketQuote, margin float64) []OverlayRow {
	rows := make([]OverlayRow, len(quotes))
	if margin <= 0 {
		margin = 1.0
	}

	totalProb := 0.0
	for _, q := range quotes {
		if q.Odds > 0 {
			totalProb += 1 / q.Odds
		}
	}

	for i, q := range quotes {
		row := OverlayRow{Name: q.Name, Odds: q.Odds}
		if q.Odds > 0 && totalProb > 0 {
			implied := (1 / q.Odds) / totalProb * 100
			fairPct := implied / margin
			fairPrice := 0.0
			if fairPct > 0 {
				fairPrice = 100 / fairPct
			}
			edge := 0.0
			if fairPrice > 0 {
				edge = (q.Odds - fairPrice) / fairPrice * 100
			}
			row.ImpliedPct = round1(implied)
			row.FairPct = round1(fairPct)
			row.FairPrice = round2(fairPrice)
			row.EdgePct = round1(edge)
			row.Value = edge > 0
		}
		rows[i] = row
	}
	return rows
}
