package service

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/core/domain"
)

// expectedLedgerAmount converts the invoice amount into ledger
// currency units. Ledger-currency invoices pass through unchanged, the
// shop's default currency uses the configured static factor, anything
// else uses a live rate. Multiplication is the only operation; decimal
// arithmetic keeps repeated sweeps drift-free.
func (s *Service) expectedLedgerAmount(ctx context.Context, order *domain.Order) (decimal.Decimal, error) {
	if order.Currency == s.cfg.LedgerCurrency {
		return order.InvoiceAmount, nil
	}

	factor := s.cfg.CurrencyFactor
	if order.Currency != s.cfg.DefaultCurrency {
		rate, err := s.rates.GetRate(ctx, order.Currency)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %w", domain.ErrExchangeRate, err)
		}
		factor = rate
	}

	amount, err := order.InvoiceAmount.Mul(factor)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return amount, nil
}

// scaledAmount converts a raw transaction amount in smallest ledger
// units to display units.
func (s *Service) scaledAmount(raw int64) (decimal.Decimal, error) {
	d, err := decimal.New(raw, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	amount, err := d.Quo(s.unitScale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return amount, nil
}
