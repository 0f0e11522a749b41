package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

func getHealth(t *testing.T, env *TestEnv) healthResponse {
	t.Helper()

	resp, err := http.Get(env.ServerBaseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	return health
}

func TestHealthEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	health := getHealth(t, env)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "unknown", health.Services["coingecko_markets"])
	assert.Equal(t, "unknown", health.Services["coingecko_market_chart"])

	getMarkets(t, env, "")

	health = getHealth(t, env)
	assert.Equal(t, "up", health.Services["coingecko_markets"])
	assert.Equal(t, "unknown", health.Services["coingecko_market_chart"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	getMarkets(t, env, "?currency=usd")

	resp, err := http.Get(env.ServerBaseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "# HELP"), "metrics should be exposed in text format")
}
