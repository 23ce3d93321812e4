package model

import "fmt"

// ColumnError reports a required column missing from a source table.
// It is distinct from ValueError so callers can tell "bad shape" from
// "bad value".
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// ValueError reports a cell that could not be parsed into its typed field.
type ValueError struct {
	Row    int    // 1-based row number in the source, header included
	Column string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
