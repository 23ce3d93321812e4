// Package view assembles the dashboard response for a query date.
package view

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/svodka-dev/svodka/internal/aggregate"
	"github.com/svodka-dev/svodka/internal/filter"
	"github.com/svodka-dev/svodka/internal/model"
	"github.com/svodka-dev/svodka/internal/rates"
	"github.com/svodka-dev/svodka/internal/watchlist"
)

// QueryTimeFormat is the accepted query timestamp layout.
const QueryTimeFormat = "2006-01-02 15:04:05"

// genericError is the single user-facing error payload. The concrete cause
// is logged, never surfaced.
const genericError = "Произошла непредвиденная ошибка"

// TableSource supplies the transaction table for one query.
type TableSource interface {
	Transactions() ([]model.Transaction, error)
}

// SourceFunc adapts a function to the TableSource interface.
type SourceFunc func() ([]model.Transaction, error)

// Transactions calls f.
func (f SourceFunc) Transactions() ([]model.Transaction, error) { return f() }

// CurrencyProvider supplies exchange rates for a query date.
type CurrencyProvider interface {
	Rates(ctx context.Context, codes []string, date time.Time) ([]rates.CurrencyRate, error)
}

// StockProvider supplies stock closing prices for a query date.
type StockProvider interface {
	Prices(ctx context.Context, tickers []string, date time.Time) ([]rates.StockPrice, error)
}

// Response is the dashboard payload. Either the data fields or Error is
// set, never both.
type Response struct {
	Greeting        string                    `json:"greeting,omitempty"`
	Cards           []aggregate.CardSummary   `json:"cards,omitempty"`
	TopTransactions []aggregate.TopTransaction `json:"top_transactions,omitempty"`
	CurrencyRates   []rates.CurrencyRate      `json:"currency_rates,omitempty"`
	StockPrices     []rates.StockPrice        `json:"stock_prices,omitempty"`
	Error           string                    `json:"error,omitempty"`
}

// Service composes the filtered table, aggregates, and feed snapshots into
// one response.
type Service struct {
	source   TableSource
	watch    *watchlist.Watchlist
	currency CurrencyProvider
	stocks   StockProvider
	log      zerolog.Logger
	now      func() time.Time
}

// NewService creates a view Service.
func NewService(source TableSource, watch *watchlist.Watchlist, currency CurrencyProvider, stocks StockProvider, log zerolog.Logger) *Service {
	return &Service{
		source:   source,
		watch:    watch,
		currency: currency,
		stocks:   stocks,
		log:      log,
		now:      time.Now,
	}
}

// Query builds the dashboard for a "YYYY-MM-DD HH:MM:SS" timestamp. It
// never fails: any error in the composition is logged with its cause and
// masked into a single generic payload, with no partial results.
func (s *Service) Query(ctx context.Context, date string) *Response {
	resp, err := s.build(ctx, date)
	if err != nil {
		s.log.Error().Err(err).Str("date", date).Msg("dashboard query failed")
		return &Response{Error: genericError}
	}
	return resp
}

func (s *Service) build(ctx context.Context, date string) (*Response, error) {
	asOf, err := time.Parse(QueryTimeFormat, date)
	if err != nil {
		return nil, fmt.Errorf("parsing query date: %w", err)
	}

	txns, err := s.source.Transactions()
	if err != nil {
		return nil, err
	}

	monthTxns := filter.ByMonth(txns, asOf)

	resp := &Response{
		Greeting:        Greeting(s.now()),
		Cards:           aggregate.CardSummaries(monthTxns),
		TopTransactions: aggregate.TopFive(monthTxns),
	}

	// The two feeds are independent; query them in parallel. A failure of
	// either voids the whole response.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		currencyRates, err := s.currency.Rates(gctx, s.watch.Currencies(), asOf)
		if err != nil {
			return err
		}
		resp.CurrencyRates = currencyRates
		return nil
	})
	g.Go(func() error {
		stockPrices, err := s.stocks.Prices(gctx, s.watch.Stocks(), asOf)
		if err != nil {
			return err
		}
		resp.StockPrices = stockPrices
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resp, nil
}
