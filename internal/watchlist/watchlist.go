// Package watchlist loads the user's tracked stock tickers and currency
// codes from the settings JSON file.
package watchlist

import (
	"encoding/json"
	"fmt"
	"os"
)

// Watchlist provides in-memory lookup over the tracked instruments. It is
// read-only for the lifetime of a query.
type Watchlist struct {
	stocks     []string
	currencies []string
	stockSet   map[string]bool
	currSet    map[string]bool
}

// settingsFile mirrors the user_settings.json shape.
type settingsFile struct {
	UserStocks     []string `json:"user_stocks"`
	UserCurrencies []string `json:"user_currencies"`
}

// New creates a Watchlist from ticker and currency-code slices.
func New(stocks, currencies []string) *Watchlist {
	stockSet := make(map[string]bool, len(stocks))
	for _, s := range stocks {
		stockSet[s] = true
	}
	currSet := make(map[string]bool, len(currencies))
	for _, c := range currencies {
		currSet[c] = true
	}
	return &Watchlist{stocks: stocks, currencies: currencies, stockSet: stockSet, currSet: currSet}
}

// Load reads a user settings JSON file and returns a Watchlist.
func Load(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening user settings: %w", err)
	}

	var settings settingsFile
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decoding user settings %s: %w", path, err)
	}
	return New(settings.UserStocks, settings.UserCurrencies), nil
}

// Stocks returns the tracked tickers in file order.
func (w *Watchlist) Stocks() []string {
	return w.stocks
}

// Currencies returns the tracked currency codes in file order.
func (w *Watchlist) Currencies() []string {
	return w.currencies
}

// HasStock reports whether a ticker is tracked.
func (w *Watchlist) HasStock(ticker string) bool {
	return w.stockSet[ticker]
}

// HasCurrency reports whether a currency code is tracked.
func (w *Watchlist) HasCurrency(code string) bool {
	return w.currSet[code]
}
