package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/svodka-dev/svodka/internal/model"
)

// TinkoffParser parses Tinkoff bank CSV exports with the original Russian
// column names. Column order is discovered from the header row; extra
// columns are ignored.
type TinkoffParser struct{}

// Column names as they appear in the export. Must stay bit-exact for
// compatibility with existing files.
const (
	colOpDate        = "Дата операции"
	colPaymentDate   = "Дата платежа"
	colStatus        = "Статус"
	colCard          = "Номер карты"
	colAmount        = "Сумма операции"
	colCurrency      = "Валюта операции"
	colCategory      = "Категория"
	colDescription   = "Описание"
	colPaymentAmount = "Сумма платежа"
)

const (
	tinkoffTimeFormat = "02.01.2006 15:04:05"
	tinkoffDateFormat = "02.01.2006"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	colOpDate, colStatus, colCard, colAmount, colCurrency, colPaymentAmount,
}

// Format returns the parser name.
func (p *TinkoffParser) Format() string { return "tinkoff" }

// Parse reads a Tinkoff CSV export and returns Transactions in file order.
func (p *TinkoffParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is validated via the header

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, &model.ColumnError{Column: colOpDate}
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseTinkoffRow(cols, rec, i+2)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// mapColumns resolves header names to field indexes.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &model.ColumnError{Column: name}
		}
	}
	return cols, nil
}

func parseTinkoffRow(cols map[string]int, rec []string, row int) (model.Transaction, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	opDate, err := parseTimestamp(field(colOpDate))
	if err != nil {
		return model.Transaction{}, &model.ValueError{Row: row, Column: colOpDate, Value: field(colOpDate), Err: err}
	}

	var paymentDate time.Time
	if raw := field(colPaymentDate); raw != "" {
		paymentDate, err = time.Parse(tinkoffDateFormat, raw)
		if err != nil {
			return model.Transaction{}, &model.ValueError{Row: row, Column: colPaymentDate, Value: raw, Err: err}
		}
	}

	amount, err := parseAmount(field(colAmount))
	if err != nil {
		return model.Transaction{}, &model.ValueError{Row: row, Column: colAmount, Value: field(colAmount), Err: err}
	}

	paymentAmount := decimal.Zero
	if raw := field(colPaymentAmount); raw != "" {
		paymentAmount, err = parseAmount(raw)
		if err != nil {
			return model.Transaction{}, &model.ValueError{Row: row, Column: colPaymentAmount, Value: raw, Err: err}
		}
	}

	return model.Transaction{
		OpDate:        opDate,
		PaymentDate:   paymentDate,
		Status:        model.Status(field(colStatus)),
		Card:          field(colCard),
		Amount:        amount,
		Currency:      field(colCurrency),
		Category:      field(colCategory),
		Description:   field(colDescription),
		PaymentAmount: paymentAmount,
	}, nil
}

// parseTimestamp accepts day-first timestamps, with or without time of day.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(tinkoffTimeFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(tinkoffDateFormat, s)
}

// parseAmount accepts both dot and comma decimal separators; exports from
// Russian locales use the comma.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), ",", ".")
	return decimal.NewFromString(s)
}
