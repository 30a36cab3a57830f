package scheduler

import (
	"context"
	"time"

	"github.com/swark/arkpay/internal/adapter/metrics"
	"github.com/swark/arkpay/internal/core/port"
	"go.uber.org/zap"
)

// Sweeper runs the reconciliation sweep on a fixed interval. Sweeps
// run back to back on one goroutine, so at most one is in flight and
// per-order decisions never overlap.
type Sweeper struct {
	service  port.Service
	interval time.Duration
	logger   *zap.Logger
}

func NewSweeper(service port.Service, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			s.logger.Debug("Finished sweeper")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	metrics.Sweeps.Inc()

	result, err := s.service.ReconcileAll(ctx)
	metrics.OrdersConsidered.Add(float64(result.Considered))
	metrics.OrderFailures.Add(float64(result.Failed))

	if err != nil {
		s.logger.Error("Sweep finished with failures",
			zap.Int("considered", result.Considered),
			zap.Int("failed", result.Failed),
			zap.Error(err))
		return
	}

	s.logger.Info("Sweep finished", zap.Int("considered", result.Considered))
}
