package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/status-im/market-dashboard/cache"
)

type Config struct {
	Server               ServerConfig               `yaml:"server"`
	Logging              LoggingConfig              `yaml:"logging"`
	Cache                cache.Config               `yaml:"cache"`
	CoinGecko            CoinGeckoConfig            `yaml:"coingecko"`
	CoingeckoMarkets     CoingeckoMarketsFetcher    `yaml:"coingecko_markets"`
	CoingeckoMarketChart CoingeckoMarketChartFetcher `yaml:"coingecko_market_chart"`
	Dashboard            DashboardConfig            `yaml:"dashboard"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds zap logger settings
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json or console
}

// DashboardConfig holds presentation settings for the rendered page
type DashboardConfig struct {
	Title       string `yaml:"title"`
	Footer      string `yaml:"footer"`
	ChartWidth  int    `yaml:"chart_width"`
	ChartHeight int    `yaml:"chart_height"`
}

// Default returns the configuration used when no file overrides a value
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Cache:                cache.DefaultCacheConfig(),
		CoinGecko:            GetDefaultCoinGeckoConfig(),
		CoingeckoMarkets:     GetDefaultMarketsConfig(),
		CoingeckoMarketChart: GetDefaultMarketChartConfig(),
		Dashboard: DashboardConfig{
			Title:       "Crypto Tracker Pro",
			Footer:      "Market data provided by CoinGecko",
			ChartWidth:  720,
			ChartHeight: 400,
		},
	}
}

// LoadEnv loads variables from .env files into the process environment.
// Missing files are not an error; variables already set are kept.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// LoadConfig reads the YAML file at path over the defaults and applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnv overrides selected settings from environment variables
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if key := os.Getenv("COINGECKO_API_KEY"); key != "" {
		c.CoinGecko.APIKey = key
	}
	if keyType := os.Getenv("COINGECKO_API_KEY_TYPE"); keyType != "" {
		c.CoinGecko.APIKeyType = keyType
	}
}

// Validate checks the settings that would otherwise fail late at request time
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if err := c.CoinGecko.Validate(); err != nil {
		return fmt.Errorf("coingecko configuration validation failed: %w", err)
	}
	if err := c.CoingeckoMarkets.Validate(); err != nil {
		return fmt.Errorf("markets configuration validation failed: %w", err)
	}
	return nil
}
