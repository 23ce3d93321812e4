package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// stockWindowDays is how far past the query date the history lookup may
// reach for the first trading day.
const stockWindowDays = 3

// StockPrice is the closing price of a tracked ticker.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// StockClient fetches daily candles from a history feed, one request per
// ticker.
type StockClient struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
}

// NewStockClient creates a StockClient.
func NewStockClient(httpClient *http.Client, baseURL string, log zerolog.Logger) *StockClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &StockClient{httpClient: httpClient, baseURL: baseURL, log: log}
}

// historyResponse is the feed's JSON shape for one ticker.
type historyResponse struct {
	Symbol  string `json:"symbol"`
	Candles []struct {
		Date  string  `json:"date"`
		Close float64 `json:"close"`
	} `json:"candles"`
}

// Prices returns the first available closing price on or after date for
// each ticker, rounded to 2 decimal places. A ticker with no data in the
// window is logged and omitted rather than failing the whole call; HTTP
// and decoding failures propagate.
func (c *StockClient) Prices(ctx context.Context, tickers []string, date time.Time) ([]StockPrice, error) {
	start := date.Format(feedDateFormat)
	end := date.AddDate(0, 0, stockWindowDays).Format(feedDateFormat)

	var prices []StockPrice
	for _, ticker := range tickers {
		candle, ok, err := c.firstCandle(ctx, ticker, start, end)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.log.Warn().Str("symbol", ticker).Str("start", start).Msg("no price data in window, skipping ticker")
			continue
		}
		prices = append(prices, StockPrice{
			Stock: ticker,
			Price: decimal.NewFromFloat(candle).Round(2),
		})
	}

	c.log.Info().Str("date", start).Int("prices", len(prices)).Msg("stock prices fetched")
	return prices, nil
}

func (c *StockClient) firstCandle(ctx context.Context, ticker, start, end string) (float64, bool, error) {
	u := fmt.Sprintf("%s/v1/history?symbol=%s&start=%s&end=%s",
		c.baseURL, url.QueryEscape(ticker), start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, false, fmt.Errorf("building stock request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("requesting history for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, false, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	var payload historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, false, fmt.Errorf("decoding history for %s: %w", ticker, err)
	}

	if len(payload.Candles) == 0 {
		return 0, false, nil
	}
	return payload.Candles[0].Close, true, nil
}
