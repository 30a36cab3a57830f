package port

import (
	"context"

	"github.com/govalues/decimal"
)

//go:generate mockgen -source=exchange.go -destination=mock/exchange.go -package=mock

// RateProvider returns the ledger-currency price of one unit of the
// given currency.
type RateProvider interface {
	GetRate(ctx context.Context, currency string) (decimal.Decimal, error)
}
