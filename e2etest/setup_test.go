package e2etest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/status-im/market-dashboard/core"
)

// TestEnv holds a running dashboard wired to a mock CoinGecko
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	Context       context.Context
	CancelFunc    context.CancelFunc
	ConfigPath    string
	ServerBaseURL string
}

// SetupTest starts the mock upstream and every dashboard service
func SetupTest(t *testing.T) *TestEnv {
	t.Helper()

	// Env overrides would redirect the test server or upstream
	t.Setenv("PORT", "")
	t.Setenv("COINGECKO_API_KEY", "")

	mockServer := NewMockServer()

	port, err := freePort()
	if err != nil {
		mockServer.Close()
		t.Fatalf("Failed to find free port: %v", err)
	}

	cfg, configPath, err := loadTestConfig(mockServer.URL(), port)
	if err != nil {
		mockServer.Close()
		t.Fatalf("Failed to load test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	registry, err := core.Setup(ctx, cfg, zaptest.NewLogger(t))
	if err != nil {
		cancel()
		mockServer.Close()
		cleanupTestConfig(configPath)
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		cancel()
		mockServer.Close()
		cleanupTestConfig(configPath)
		t.Fatalf("Failed to start services: %v", err)
	}

	env := &TestEnv{
		Registry:      registry,
		MockServer:    mockServer,
		Context:       ctx,
		CancelFunc:    cancel,
		ConfigPath:    configPath,
		ServerBaseURL: "http://localhost:" + port,
	}

	if err := waitForServer(env.ServerBaseURL, 5*time.Second); err != nil {
		env.TearDown()
		t.Fatalf("Server did not come up: %v", err)
	}

	return env
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.MockServer != nil {
		env.MockServer.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
	if env.ConfigPath != "" {
		cleanupTestConfig(env.ConfigPath)
	}
}

func freePort() (string, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port), nil
}

func waitForServer(baseURL string, maxWait time.Duration) error {
	deadline := time.Now().Add(maxWait)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout after %s", maxWait)
}
