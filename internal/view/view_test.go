package view

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svodka-dev/svodka/internal/model"
	"github.com/svodka-dev/svodka/internal/rates"
	"github.com/svodka-dev/svodka/internal/watchlist"
)

type stubCurrency struct {
	rates []rates.CurrencyRate
	err   error
}

func (s stubCurrency) Rates(context.Context, []string, time.Time) ([]rates.CurrencyRate, error) {
	return s.rates, s.err
}

type stubStocks struct {
	prices []rates.StockPrice
	err    error
}

func (s stubStocks) Prices(context.Context, []string, time.Time) ([]rates.StockPrice, error) {
	return s.prices, s.err
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleTable() []model.Transaction {
	return []model.Transaction{
		{
			OpDate:   time.Date(2021, 12, 5, 14, 0, 0, 0, time.UTC),
			Status:   model.StatusOK,
			Card:     "*7197",
			Amount:   dec("-1500"),
			Currency: "RUB",
			Category: "Супермаркеты",
		},
		{
			OpDate:   time.Date(2021, 11, 5, 14, 0, 0, 0, time.UTC), // outside the month window
			Status:   model.StatusOK,
			Card:     "*7197",
			Amount:   dec("-9000"),
			Currency: "RUB",
		},
	}
}

func newTestService(src TableSource, cur CurrencyProvider, stocks StockProvider, log zerolog.Logger) *Service {
	svc := NewService(src, watchlist.New([]string{"AAPL"}, []string{"USD"}), cur, stocks, log)
	svc.now = func() time.Time { return time.Date(2021, 12, 13, 15, 0, 0, 0, time.UTC) }
	return svc
}

func TestQuery(t *testing.T) {
	src := SourceFunc(func() ([]model.Transaction, error) { return sampleTable(), nil })
	cur := stubCurrency{rates: []rates.CurrencyRate{{Currency: "USD", Rate: dec("70.99")}}}
	stocks := stubStocks{prices: []rates.StockPrice{{Stock: "AAPL", Price: dec("125.06")}}}

	svc := newTestService(src, cur, stocks, zerolog.Nop())
	resp := svc.Query(context.Background(), "2021-12-13 16:00:00")

	assert.Empty(t, resp.Error)
	assert.Equal(t, "Добрый день!", resp.Greeting)

	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "7197", resp.Cards[0].LastDigits)
	assert.True(t, resp.Cards[0].Total.Equal(dec("1500")), "the November row must not count")

	require.Len(t, resp.TopTransactions, 1)
	assert.Equal(t, "05.12.2021", resp.TopTransactions[0].Date)

	require.Len(t, resp.CurrencyRates, 1)
	require.Len(t, resp.StockPrices, 1)
}

func TestQuery_BadDate(t *testing.T) {
	src := SourceFunc(func() ([]model.Transaction, error) { return nil, nil })
	svc := newTestService(src, stubCurrency{}, stubStocks{}, zerolog.Nop())

	resp := svc.Query(context.Background(), "2021-45-45 16:00:00")
	assert.Equal(t, genericError, resp.Error)
	assert.Empty(t, resp.Greeting)
}

func TestQuery_FeedFailureMasksWholeResponse(t *testing.T) {
	src := SourceFunc(func() ([]model.Transaction, error) { return sampleTable(), nil })
	cur := stubCurrency{err: errors.New("apilayer: status 502")}
	stocks := stubStocks{prices: []rates.StockPrice{{Stock: "AAPL", Price: dec("125.06")}}}

	var logBuf bytes.Buffer
	svc := newTestService(src, cur, stocks, zerolog.New(&logBuf))

	resp := svc.Query(context.Background(), "2021-12-13 16:00:00")
	assert.Equal(t, genericError, resp.Error)
	assert.Empty(t, resp.Cards, "no partial results")
	assert.Empty(t, resp.StockPrices, "no partial results")
	assert.Contains(t, logBuf.String(), "apilayer: status 502", "the concrete cause must be logged before masking")
}

func TestQuery_TableLoadFailure(t *testing.T) {
	src := SourceFunc(func() ([]model.Transaction, error) {
		return nil, &model.ColumnError{Column: "Статус"}
	})
	svc := newTestService(src, stubCurrency{}, stubStocks{}, zerolog.Nop())

	resp := svc.Query(context.Background(), "2021-12-13 16:00:00")
	assert.Equal(t, genericError, resp.Error)
}

func TestGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{3, "Доброй ночи!"},
		{10, "Доброе утро!"},
		{15, "Добрый день!"},
		{21, "Добрый вечер!"},
		{0, "Доброй ночи!"},
		{5, "Доброй ночи!"},
		{6, "Доброе утро!"},
		{11, "Доброе утро!"},
		{12, "Добрый день!"},
		{17, "Добрый день!"},
		{18, "Добрый вечер!"},
		{23, "Добрый вечер!"},
	}
	for _, tc := range cases {
		now := time.Date(2021, 10, 16, tc.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, Greeting(now), "hour %d", tc.hour)
	}
}
