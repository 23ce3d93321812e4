package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// apiKeyEnv names the environment variable holding the currency feed key.
const apiKeyEnv = "EXCHANGE_RATE_API_KEY"

// Config represents the top-level svodka.yaml configuration.
type Config struct {
	OperationsFile   string      `yaml:"operations_file"`
	ExportFormat     string      `yaml:"export_format"`
	UserSettingsFile string      `yaml:"user_settings_file"`
	ReportsDir       string      `yaml:"reports_dir"`
	Feeds            FeedsConfig `yaml:"feeds"`
}

// FeedsConfig holds the base URLs of the external market-data feeds.
type FeedsConfig struct {
	CurrencyBaseURL string `yaml:"currency_base_url"`
	StockBaseURL    string `yaml:"stock_base_url"`
}

// Load reads a svodka.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project rooted
// at dir.
func Default(dir string) *Config {
	return &Config{
		OperationsFile:   filepath.Join(dir, "data", "operations.csv"),
		ExportFormat:     "tinkoff",
		UserSettingsFile: filepath.Join(dir, "data", "user_settings.json"),
		ReportsDir:       filepath.Join(dir, "data", "reports"),
		Feeds: FeedsConfig{
			CurrencyBaseURL: "https://api.apilayer.com/exchangerates_data",
			StockBaseURL:    "https://stocks.svodka.dev",
		},
	}
}

// APIKey returns the currency feed API key from the environment. A local
// .env file is loaded first when present, matching how the key is shipped
// in development setups.
func APIKey() string {
	_ = godotenv.Load()
	return os.Getenv(apiKeyEnv)
}
