package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the bank's result code for an operation.
type Status string

const (
	// StatusOK marks a completed operation. Only OK rows participate in
	// reporting.
	StatusOK Status = "OK"
	// StatusFailed marks a declined or reversed operation.
	StatusFailed Status = "FAILED"
)

// Transaction represents one parsed row of a bank export.
type Transaction struct {
	OpDate        time.Time // operation timestamp
	PaymentDate   time.Time // settlement date, zero when absent
	Status        Status
	Card          string          // masked card number like "*7197", may be empty
	Amount        decimal.Decimal // negative = debit, positive = credit
	Currency      string          // ISO code of the operation currency
	Category      string
	Description   string
	PaymentAmount decimal.Decimal // amount in the payment currency
}

// IsRUBDebit reports whether the transaction is a debit denominated in RUB.
func (t Transaction) IsRUBDebit() bool {
	return t.Amount.IsNegative() && t.Currency == "RUB"
}
