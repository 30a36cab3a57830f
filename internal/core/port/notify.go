package port

import (
	"context"

	"github.com/swark/arkpay/internal/core/domain"
)

//go:generate mockgen -source=notify.go -destination=mock/notify.go -package=mock
type Notifier interface {
	SendStatusMail(ctx context.Context, orderNumber uint64, status domain.PaymentStatus) error
}
