// Package filter narrows a transaction table by status, date window, and
// category. The two window operations have deliberately different
// granularity and must not be conflated: ByMonth compares calendar days,
// ByCategory compares full timestamps.
package filter

import (
	"time"

	"github.com/svodka-dev/svodka/internal/model"
)

// categoryWindow is the lookback for category reports.
const categoryWindow = 90 * 24 * time.Hour

// ByMonth returns the OK-status transactions whose operation date falls in
// [first day of asOf's month, asOf], compared at day granularity. The
// time of day on asOf is ignored for the boundary test.
func ByMonth(txns []model.Transaction, asOf time.Time) []model.Transaction {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	end := day(asOf)

	var out []model.Transaction
	for _, t := range txns {
		if t.Status != model.StatusOK {
			continue
		}
		d := day(t.OpDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByCategory returns the OK-status transactions in the given category whose
// operation timestamp falls in [asOf-90d, asOf] inclusive. A zero asOf
// means "now". An empty result is not an error.
func ByCategory(txns []model.Transaction, category string, asOf time.Time) []model.Transaction {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	start := asOf.Add(-categoryWindow)

	var out []model.Transaction
	for _, t := range txns {
		if t.Status != model.StatusOK || t.Category != category {
			continue
		}
		if t.OpDate.Before(start) || t.OpDate.After(asOf) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// day truncates a timestamp to its calendar day.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
