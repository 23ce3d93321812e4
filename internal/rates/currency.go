package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CurrencyRate is the RUB value of one unit of a foreign currency.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// CurrencyClient fetches exchange rates from an apilayer-style timeseries
// endpoint. The feed reports how many foreign units one RUB buys; the
// client inverts that into RUB per foreign unit.
type CurrencyClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        zerolog.Logger
}

// NewCurrencyClient creates a CurrencyClient.
func NewCurrencyClient(httpClient *http.Client, baseURL, apiKey string, log zerolog.Logger) *CurrencyClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CurrencyClient{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey, log: log}
}

// timeseriesResponse is the feed's JSON shape: rates keyed by day, then by
// currency code.
type timeseriesResponse struct {
	Rates map[string]map[string]float64 `json:"rates"`
}

// Rates returns the RUB rate for each requested currency code on the given
// date, rounded to 2 decimal places. A missing code in the feed response is
// an error that propagates.
func (c *CurrencyClient) Rates(ctx context.Context, codes []string, date time.Time) ([]CurrencyRate, error) {
	day := date.Format(feedDateFormat)
	url := fmt.Sprintf("%s/timeseries?start_date=%s&end_date=%s&base=RUB", c.baseURL, day, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building currency request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting currency rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var payload timeseriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding currency response: %w", err)
	}

	dayRates, ok := payload.Rates[day]
	if !ok {
		return nil, fmt.Errorf("currency feed returned no rates for %s", day)
	}

	out := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		fromRUB, ok := dayRates[code]
		if !ok {
			return nil, fmt.Errorf("currency %q missing from feed response", code)
		}
		if fromRUB == 0 {
			return nil, fmt.Errorf("currency %q has zero rate in feed response", code)
		}
		rate := decimal.NewFromInt(1).Div(decimal.NewFromFloat(fromRUB)).Round(2)
		out = append(out, CurrencyRate{Currency: code, Rate: rate})
	}

	c.log.Info().Str("date", day).Int("currencies", len(out)).Msg("currency rates fetched")
	return out, nil
}
