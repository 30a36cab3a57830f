package port

import (
	"context"

	"github.com/swark/arkpay/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// SweepResult summarizes one reconciliation pass.
type SweepResult struct {
	Considered int
	Failed     int
}

type Service interface {
	RegisterOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ProvisionOrder(ctx context.Context, number uint64) error
	GetOrder(ctx context.Context, number uint64) (*domain.Order, error)

	ReconcileAll(ctx context.Context) (SweepResult, error)
	CheckPayment(paymentID int) bool
}
