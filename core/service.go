package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry manages all services
type Registry struct {
	services []Interface
	logger   *zap.Logger
}

// NewRegistry creates a new core registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		services: make([]Interface, 0),
		logger:   logger,
	}
}

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts services in registration order and stops at the first failure
func (sr *Registry) StartAll(ctx context.Context) error {
	for _, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %T: %w", service, err)
		}
		sr.logger.Debug("service started", zap.String("service", fmt.Sprintf("%T", service)))
	}
	return nil
}

// StopAll stops all registered services
func (sr *Registry) StopAll() {
	// Stop in reverse order
	for i := len(sr.services) - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
	sr.logger.Info("all services stopped", zap.Int("count", len(sr.services)))
}
