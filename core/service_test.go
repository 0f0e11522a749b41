package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/status-im/market-dashboard/config"
)

// recordingService records starts and stops into a shared log
type recordingService struct {
	id         string
	startError error
	log        *eventLog
}

type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

func (s *recordingService) Start(ctx context.Context) error {
	s.log.add("start:" + s.id)
	return s.startError
}

func (s *recordingService) Stop() {
	s.log.add("stop:" + s.id)
}

func TestRegistry_StartAllInOrder(t *testing.T) {
	log := &eventLog{}
	registry := NewRegistry(zaptest.NewLogger(t))
	registry.Register(&recordingService{id: "cache", log: log})
	registry.Register(&recordingService{id: "server", log: log})

	require.NoError(t, registry.StartAll(context.Background()))
	assert.Equal(t, []string{"start:cache", "start:server"}, log.all())
}

func TestRegistry_StartAllStopsAtFirstError(t *testing.T) {
	log := &eventLog{}
	startErr := errors.New("start error")

	registry := NewRegistry(nil)
	registry.Register(&recordingService{id: "a", log: log})
	registry.Register(&recordingService{id: "b", log: log, startError: startErr})
	registry.Register(&recordingService{id: "c", log: log})

	err := registry.StartAll(context.Background())
	assert.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "recordingService")
	assert.Equal(t, []string{"start:a", "start:b"}, log.all())
}

func TestRegistry_StopAllInReverseOrder(t *testing.T) {
	log := &eventLog{}
	registry := NewRegistry(nil)
	for _, id := range []string{"service1", "service2", "service3"} {
		registry.Register(&recordingService{id: id, log: log})
	}

	registry.StopAll()

	assert.Equal(t, []string{"stop:service3", "stop:service2", "stop:service1"}, log.all())
}

func TestSetup(t *testing.T) {
	cfg := config.Default()
	registry, err := Setup(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	// cache, markets, market chart, http server
	assert.Len(t, registry.services, 4)
}
