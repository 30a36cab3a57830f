package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/swark/arkpay/internal/adapter/scheduler"
	"github.com/swark/arkpay/internal/core/port"
	"github.com/swark/arkpay/internal/core/port/mock"
	"go.uber.org/zap"
)

func TestSweeper_RunsAndStops(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	done := make(chan struct{})

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().ReconcileAll(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (port.SweepResult, error) {
			select {
			case done <- struct{}{}:
			default:
			}
			return port.SweepResult{Considered: 1}, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := scheduler.NewSweeper(svc, 10*time.Millisecond, zap.NewNop())
	go s.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep never ran")
	}

	cancel()
	// give the sweeper a tick to observe cancellation
	time.Sleep(20 * time.Millisecond)
}
