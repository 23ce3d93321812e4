package aggregate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/svodka-dev/svodka/internal/model"
)

const (
	savingsMonthFormat = "2006-01"
	savingsDateFormat  = "2006-01-02"
)

// savingsLimits are the round-up multiples the savings jar understands.
// Any other limit contributes nothing per transaction; this is deliberate
// policy, not an error.
var savingsLimits = map[int64]bool{10: true, 50: true, 100: true}

// SavingsRecord is the raw-shaped input of the savings calculator. Dates
// arrive as strings and are validated here, independent of the typed table.
type SavingsRecord struct {
	Status        model.Status
	Date          string // "YYYY-MM-DD"
	PaymentAmount decimal.Decimal
}

// RoundUpSavings sums the change left over from rounding each matching
// debit payment up to the next multiple of limit. Only OK records whose
// date falls in month ("YYYY-MM") are counted, but every OK record's date
// is validated: a malformed date in an OK row outside the month is still a
// parse error. Empty input yields zero.
func RoundUpSavings(month string, records []SavingsRecord, limit int64) (decimal.Decimal, error) {
	target, err := time.Parse(savingsMonthFormat, month)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing month %q: %w", month, err)
	}

	limitDec := decimal.NewFromInt(limit)
	total := decimal.Zero

	for i, rec := range records {
		if rec.Status != model.StatusOK {
			continue
		}

		date, err := time.Parse(savingsDateFormat, rec.Date)
		if err != nil {
			return decimal.Zero, &model.ValueError{Row: i + 1, Column: "Дата операции", Value: rec.Date, Err: err}
		}

		if date.Year() != target.Year() || date.Month() != target.Month() {
			continue
		}
		if !rec.PaymentAmount.IsNegative() || !savingsLimits[limit] {
			continue
		}

		remainder := rec.PaymentAmount.Abs().Mod(limitDec)
		if !remainder.IsZero() {
			total = total.Add(limitDec.Sub(remainder))
		}
	}
	return total, nil
}
