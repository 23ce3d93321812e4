// Package aggregate computes the derived views over a filtered transaction
// table: per-card summaries, top-5 ranking, and round-up savings.
package aggregate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/svodka-dev/svodka/internal/model"
)

// cashbackRate is the estimated cashback share of RUB spend.
var cashbackRate = decimal.NewFromFloat(0.01)

// CardSummary is the per-card spend/cashback line of the dashboard.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	Total      decimal.Decimal `json:"total"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// CardSummaries groups transactions by card id in first-seen order and sums
// RUB debits per card. Cards with no qualifying RUB debit still appear with
// zero total and cashback.
func CardSummaries(txns []model.Transaction) []CardSummary {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range txns {
		if _, seen := totals[t.Card]; !seen {
			order = append(order, t.Card)
			totals[t.Card] = decimal.Zero
		}
		if t.IsRUBDebit() {
			totals[t.Card] = totals[t.Card].Add(t.Amount)
		}
	}

	summaries := make([]CardSummary, 0, len(order))
	for _, card := range order {
		total := totals[card].Abs().Round(2)
		summaries = append(summaries, CardSummary{
			LastDigits: strings.TrimPrefix(card, "*"),
			Total:      total,
			Cashback:   total.Mul(cashbackRate).Round(2),
		})
	}
	return summaries
}
