package port

import (
	"context"

	"github.com/swark/arkpay/internal/core/domain"
)

//go:generate mockgen -source=ledger.go -destination=mock/ledger.go -package=mock

// LedgerClient looks up the transaction paying a given order. A
// missing payment and an unreachable ledger both surface as
// domain.ErrTransactionNotFound: callers must treat not-found as a
// normal outcome, never as a sweep failure.
type LedgerClient interface {
	FindTransaction(ctx context.Context, recipient string, vendorField string) (*domain.LedgerTransaction, error)
}
