package watchlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_settings.json")
	content := `{"user_stocks": ["AAPL", "GOOGL"], "user_currencies": ["USD", "EUR", "CHF"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	w, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "GOOGL"}, w.Stocks())
	assert.Equal(t, []string{"USD", "EUR", "CHF"}, w.Currencies())
	assert.True(t, w.HasStock("AAPL"))
	assert.False(t, w.HasStock("TSLA"))
	assert.True(t, w.HasCurrency("EUR"))
	assert.False(t, w.HasCurrency("GBP"))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_settings.json")
	require.NoError(t, os.WriteFile(path, []byte("invalid_data"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "decoding user settings")
}
