package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/svodka-dev/svodka/internal/model"
)

// topCount is the number of entries in the top-transactions view.
const topCount = 5

// topDateFormat is the day.month.year presentation format.
const topDateFormat = "02.01.2006"

// TopTransaction is one line of the top-5 view.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TopFive returns the five largest-magnitude RUB debits on a named card,
// sorted by descending absolute amount. Ties keep the original row order.
func TopFive(txns []model.Transaction) []TopTransaction {
	var debits []model.Transaction
	for _, t := range txns {
		if t.IsRUBDebit() && t.Card != "" {
			debits = append(debits, t)
		}
	}

	// Most negative first.
	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Amount.LessThan(debits[j].Amount)
	})

	if len(debits) > topCount {
		debits = debits[:topCount]
	}

	top := make([]TopTransaction, 0, len(debits))
	for _, t := range debits {
		top = append(top, TopTransaction{
			Date:        t.OpDate.Format(topDateFormat),
			Amount:      t.Amount.Abs(),
			Category:    t.Category,
			Description: t.Description,
		})
	}
	return top
}
