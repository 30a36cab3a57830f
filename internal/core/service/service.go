package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/core/domain"
	"github.com/swark/arkpay/internal/core/port"
	"go.uber.org/zap"
)

// Config carries the reconciliation policy. The paid status is
// host-defined: some shops close the order on payment, others move it
// to a shipping queue.
type Config struct {
	Confirmations       int64
	SendStatusMail      bool
	LedgerCurrency      string
	DefaultCurrency     string
	CurrencyFactor      decimal.Decimal
	UnitScale           int64
	VendorFieldTemplate string
	PaidStatus          domain.PaymentStatus
	PaymentMethodID     int
}

type Service struct {
	repo      port.Repository
	ledger    port.LedgerClient
	rates     port.RateProvider
	notifier  port.Notifier
	wallets   port.WalletProvider
	cfg       Config
	unitScale decimal.Decimal
	logger    *zap.Logger
}

func NewService(repo port.Repository, ledger port.LedgerClient, rates port.RateProvider,
	notifier port.Notifier, wallets port.WalletProvider, cfg Config, logger *zap.Logger) (*Service, error) {
	if cfg.UnitScale <= 0 {
		return nil, fmt.Errorf("invalid ledger unit scale %d", cfg.UnitScale)
	}
	scale, err := decimal.New(cfg.UnitScale, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger unit scale %d: %w", cfg.UnitScale, err)
	}
	if cfg.PaidStatus == "" {
		cfg.PaidStatus = domain.PaymentStatusPaid
	}
	if cfg.VendorFieldTemplate == "" {
		cfg.VendorFieldTemplate = "order-%d"
	}
	return &Service{
		repo:      repo,
		ledger:    ledger,
		rates:     rates,
		notifier:  notifier,
		wallets:   wallets,
		cfg:       cfg,
		unitScale: scale,
		logger:    logger,
	}, nil
}

func (s *Service) RegisterOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.Number == 0 || order.Currency == "" {
		return nil, domain.ErrBadRequest
	}

	order.PaymentStatus = domain.PaymentStatusOpen
	order.CreatedAt = time.Now()

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	if err := s.ProvisionOrder(ctx, newOrder.Number); err != nil {
		return nil, err
	}

	return s.repo.ReadOrder(ctx, newOrder.Number)
}

// ProvisionOrder prepares an order for reconciliation: expected ledger
// amount, receiving address, vendor field, cleared transaction id.
// Every step is persisted on its own, so a re-run after a partial
// failure simply overwrites what already landed.
func (s *Service) ProvisionOrder(ctx context.Context, number uint64) error {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return err
	}

	amount, err := s.expectedLedgerAmount(ctx, order)
	if err != nil {
		s.logger.Error("Order amount could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}
	if err := s.repo.SetExpectedAmount(ctx, number, amount); err != nil {
		s.logger.Error("Order amount could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}
	s.logger.Info("Updated expected amount", zap.Uint64("order", number), zap.Stringer("amount", amount))

	wallet, err := s.wallets.RandomWallet()
	if err != nil {
		s.logger.Error("Order recipient address could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}
	if err := s.repo.SetRecipientAddress(ctx, number, wallet); err != nil {
		s.logger.Error("Order recipient address could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}
	s.logger.Info("Updated recipient address", zap.Uint64("order", number), zap.String("address", wallet))

	vendorField := fmt.Sprintf(s.cfg.VendorFieldTemplate, number)
	if err := s.repo.SetVendorField(ctx, number, vendorField); err != nil {
		s.logger.Error("Order vendor field could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}
	s.logger.Info("Updated vendor field", zap.Uint64("order", number), zap.String("vendorField", vendorField))

	if err := s.repo.SetTransactionID(ctx, number, ""); err != nil {
		s.logger.Error("Order transaction id could not be updated", zap.Uint64("order", number), zap.Error(err))
		return err
	}

	return nil
}

func (s *Service) GetOrder(ctx context.Context, number uint64) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, number)
}

// ReconcileAll sweeps the open orders once. A single order's hard
// failure (persistence, exchange rate) is logged and counted, and the
// sweep moves on to the next order.
func (s *Service) ReconcileAll(ctx context.Context) (port.SweepResult, error) {
	orders, err := s.repo.ListOpenOrders(ctx)
	if err != nil {
		s.logger.Error("List open orders", zap.Error(err))
		return port.SweepResult{}, err
	}

	if len(orders) == 0 {
		s.logger.Info("No open orders found")
		return port.SweepResult{}, nil
	}

	result := port.SweepResult{Considered: len(orders)}
	var errs []error

	for _, order := range orders {
		if err := s.reconcileOrder(ctx, order); err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("order %d: %w", order.Number, err))
		}
	}

	return result, errors.Join(errs...)
}

func (s *Service) reconcileOrder(ctx context.Context, order *domain.Order) error {
	s.logger.Info("Processing order", zap.Uint64("order", order.Number))

	if order.RecipientAddress == "" || order.VendorField == "" {
		return domain.ErrOrderNotProvisioned
	}

	tx, err := s.ledger.FindTransaction(ctx, order.RecipientAddress, order.VendorField)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			s.logger.Warn("No transaction for order found", zap.Uint64("order", order.Number))
			return nil
		}
		return err
	}

	// One-time linkage, before any amount or confirmation check.
	if order.TransactionID == "" {
		if err := s.setTransactionID(ctx, order, tx.ID); err != nil {
			return err
		}
	}

	amount, err := s.scaledAmount(tx.Amount)
	if err != nil {
		return err
	}

	if amount.Cmp(order.ExpectedAmount) < 0 {
		s.logger.Info("Received amount is too low",
			zap.Uint64("order", order.Number),
			zap.Stringer("received", amount),
			zap.Stringer("needed", order.ExpectedAmount))
		return s.updatePaymentStatus(ctx, order, domain.PaymentStatusPartiallyPaid)
	}

	if tx.Confirmations < s.cfg.Confirmations {
		s.logger.Info("Order needs more confirmations",
			zap.Uint64("order", order.Number),
			zap.Int64("confirmations", tx.Confirmations),
			zap.Int64("needed", s.cfg.Confirmations))
		return nil
	}

	return s.updatePaymentStatus(ctx, order, s.cfg.PaidStatus)
}

// CheckPayment reports whether the given payment method id belongs to
// this gateway. An unconfigured method id owns nothing.
func (s *Service) CheckPayment(paymentID int) bool {
	return s.cfg.PaymentMethodID != 0 && paymentID == s.cfg.PaymentMethodID
}

func (s *Service) setTransactionID(ctx context.Context, order *domain.Order, transactionID string) error {
	if err := s.repo.SetTransactionID(ctx, order.Number, transactionID); err != nil {
		s.logger.Error("Order transaction id could not be updated",
			zap.Uint64("order", order.Number), zap.Error(err))
		return err
	}
	order.TransactionID = transactionID

	s.logger.Info("Updated transaction id",
		zap.Uint64("order", order.Number), zap.String("transaction", transactionID))
	return nil
}

// updatePaymentStatus commits the status first; the status mail is
// best effort and must not undo or mask the committed change.
func (s *Service) updatePaymentStatus(ctx context.Context, order *domain.Order, status domain.PaymentStatus) error {
	if order.PaymentStatus == status {
		return nil
	}

	if err := s.repo.SetPaymentStatus(ctx, order.Number, status); err != nil {
		s.logger.Error("Order payment status could not be updated",
			zap.Uint64("order", order.Number), zap.Error(err))
		return err
	}
	order.PaymentStatus = status

	s.logger.Info("Updated payment status",
		zap.Uint64("order", order.Number), zap.String("status", string(status)))

	if s.cfg.SendStatusMail && s.notifier != nil {
		if err := s.notifier.SendStatusMail(ctx, order.Number, status); err != nil {
			s.logger.Error("Could not send out order status mail",
				zap.Uint64("order", order.Number), zap.Error(err))
		}
	}

	return nil
}
