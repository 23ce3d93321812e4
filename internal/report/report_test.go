package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svodka-dev/svodka/internal/filter"
	"github.com/svodka-dev/svodka/internal/importer"
	"github.com/svodka-dev/svodka/internal/model"
)

func sampleTable() []model.Transaction {
	mk := func(day int, category string, amount int64) model.Transaction {
		return model.Transaction{
			OpDate:   time.Date(2021, 10, day, 12, 0, 0, 0, time.UTC),
			Status:   model.StatusOK,
			Card:     "*7197",
			Amount:   decimal.NewFromInt(amount),
			Currency: "RUB",
			Category: category,
		}
	}
	return []model.Transaction{
		mk(1, "Детские товары", -500),
		mk(5, "Супермаркеты", -300),
		mk(10, "Детские товары", -750),
	}
}

func TestRun_RoundTripShape(t *testing.T) {
	asOf := time.Date(2021, 10, 15, 16, 0, 0, 0, time.UTC)
	compute := func() ([]model.Transaction, error) {
		return filter.ByCategory(sampleTable(), "Детские товары", asOf), nil
	}

	var buf bytes.Buffer
	txns, err := Run(compute, &buf)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Reading the written report back yields the same shape.
	p := &importer.TinkoffParser{}
	got, err := p.Parse(&buf)
	require.NoError(t, err)
	assert.Len(t, got, len(txns))
}

func TestRun_ComputeFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	_, err := Run(func() ([]model.Transaction, error) {
		return nil, errors.New("boom")
	}, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRunToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "filtered.csv")

	txns, err := RunToFile(func() ([]model.Transaction, error) {
		return sampleTable(), nil
	}, path)
	require.NoError(t, err)
	assert.Len(t, txns, 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Дата операции,"))
	assert.Equal(t, 4, strings.Count(string(data), "\n"), "header plus three rows")
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2021, 12, 13, 16, 4, 5, 0, time.UTC)
	got := DefaultPath(filepath.Join("data", "reports"), "filter_by_category", now)
	assert.Equal(t, filepath.Join("data", "reports", "20211213_160405_filter_by_category_report.csv"), got)
}
