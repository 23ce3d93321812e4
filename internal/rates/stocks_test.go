package rates

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockPrices(t *testing.T) {
	queryDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/history", r.URL.Path)
		assert.Equal(t, "2023-01-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2023-01-04", r.URL.Query().Get("end"))

		symbol := r.URL.Query().Get("symbol")
		switch symbol {
		case "AAPL":
			fmt.Fprintf(w, `{"symbol":"AAPL","candles":[{"date":"2023-01-03","close":125.056},{"date":"2023-01-04","close":126.36}]}`)
		case "GOOGL":
			fmt.Fprintf(w, `{"symbol":"GOOGL","candles":[{"date":"2023-01-03","close":89.12}]}`)
		default:
			t.Errorf("unexpected symbol %q", symbol)
		}
	}))
	defer srv.Close()

	c := NewStockClient(srv.Client(), srv.URL, zerolog.Nop())
	got, err := c.Prices(context.Background(), []string{"AAPL", "GOOGL"}, queryDate)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "AAPL", got[0].Stock)
	assert.True(t, got[0].Price.Equal(dec("125.06")), "first candle's close, 2dp; got %s", got[0].Price)
	assert.Equal(t, "GOOGL", got[1].Stock)
	assert.True(t, got[1].Price.Equal(dec("89.12")))
}

func TestStockPrices_NoDataTickerOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "DELISTED" {
			fmt.Fprintf(w, `{"symbol":"DELISTED","candles":[]}`)
			return
		}
		fmt.Fprintf(w, `{"symbol":"AAPL","candles":[{"date":"2023-01-03","close":125.06}]}`)
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c := NewStockClient(srv.Client(), srv.URL, log)
	got, err := c.Prices(context.Background(), []string{"DELISTED", "AAPL"}, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err, "a ticker with no data must not fail the call")
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Stock)
	assert.Contains(t, logBuf.String(), "no price data in window")
	assert.Contains(t, logBuf.String(), "DELISTED")
}

func TestStockPrices_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewStockClient(srv.Client(), srv.URL, zerolog.Nop())
	_, err := c.Prices(context.Background(), []string{"AAPL"}, time.Now())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}
