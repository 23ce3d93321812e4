package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/svodka-dev/svodka/internal/model"
)

// Header is the CSV header written for filtered-table reports. It matches
// the export column set, so a written report parses back with TinkoffParser.
const Header = colOpDate + "," + colPaymentDate + "," + colStatus + "," +
	colCard + "," + colAmount + "," + colCurrency + "," +
	colCategory + "," + colDescription + "," + colPaymentAmount

// Write emits transactions as UTF-8 comma-delimited CSV with a header row
// and no index column.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(marshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalTransaction(t model.Transaction) []string {
	paymentDate := ""
	if !t.PaymentDate.IsZero() {
		paymentDate = t.PaymentDate.Format(tinkoffDateFormat)
	}
	return []string{
		t.OpDate.Format(tinkoffTimeFormat),
		paymentDate,
		string(t.Status),
		t.Card,
		t.Amount.StringFixed(2),
		t.Currency,
		t.Category,
		t.Description,
		t.PaymentAmount.StringFixed(2),
	}
}
