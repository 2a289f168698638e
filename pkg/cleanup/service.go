// Package cleanup enforces data retention in the background: stored
// events past their catch-up TTL and finished sandbox execution records
// past theirs. All sweeps are idempotent and safe to run from multiple
// pods.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/services"
)

// Service runs the periodic retention sweeps.
type Service struct {
	config  *config.RetentionConfig
	events  *services.EventService
	sandbox *services.SandboxService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. sandbox may be nil when no
// sandbox runner is configured.
func NewService(cfg *config.RetentionConfig, events *services.EventService, sandbox *services.SandboxService) *Service {
	return &Service{
		config:  cfg,
		events:  events,
		sandbox: sandbox,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"sandbox_execution_ttl", s.config.SandboxExecutionTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs every retention pass once.
func (s *Service) Sweep(ctx context.Context) {
	s.pruneEvents(ctx)
	s.pruneSandboxExecutions(ctx)
}

func (s *Service) pruneEvents(ctx context.Context) {
	if s.config.EventTTL <= 0 {
		return
	}
	if _, err := s.events.DeleteEventsBefore(ctx, time.Now().Add(-s.config.EventTTL)); err != nil {
		slog.Error("Retention: event prune failed", "error", err)
	}
}

func (s *Service) pruneSandboxExecutions(ctx context.Context) {
	if s.sandbox == nil || s.config.SandboxExecutionTTL <= 0 {
		return
	}
	count, err := s.sandbox.DeleteExecutionsBefore(ctx, time.Now().Add(-s.config.SandboxExecutionTTL))
	if err != nil {
		slog.Error("Retention: sandbox execution prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned sandbox executions", "count", count)
	}
}
