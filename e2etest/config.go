package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/market-dashboard/config"
)

// createTestConfig writes a configuration file pointing CoinGecko at mockURL
func createTestConfig(mockURL, port string) (string, error) {
	tempDir, err := os.MkdirTemp("", "market-dashboard-test")
	if err != nil {
		return "", err
	}

	configContent := fmt.Sprintf(`
server:
  port: "%s"
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 2s

logging:
  level: debug
  encoding: console

cache:
  go_cache:
    enabled: true
    default_expiration: 1m
    cleanup_interval: 2m
  stats_interval: 0s

coingecko:
  override_public_url: "%s"
  override_pro_url: "%s"
  rate_limit_per_minute: 600   # generous budget for tests
  burst: 20
  connection_timeout: 2s
  request_timeout: 5s

coingecko_markets:
  ttl: 1m
  per_page: 50
  order: market_cap_desc
  price_change_percentage:
    - 1h
    - 24h
    - 7d

coingecko_market_chart:
  ttl: 1m
  default_days: "30"

dashboard:
  title: "Crypto Tracker Test"
  footer: "Test data"
  chart_width: 600
  chart_height: 300
`, port, mockURL, mockURL)

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL, port string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL, port)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}
