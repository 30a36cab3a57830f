package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, number uint64) (*domain.Order, error)
	ListOpenOrders(ctx context.Context) ([]*domain.Order, error)

	// Reconciliation attributes. Each setter is a single durable
	// write so a partially provisioned order keeps the fields that
	// already landed.
	SetExpectedAmount(ctx context.Context, number uint64, amount decimal.Decimal) error
	SetRecipientAddress(ctx context.Context, number uint64, address string) error
	SetVendorField(ctx context.Context, number uint64, vendorField string) error
	SetTransactionID(ctx context.Context, number uint64, transactionID string) error
	SetPaymentStatus(ctx context.Context, number uint64, status domain.PaymentStatus) error
}
