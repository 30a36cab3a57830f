package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/swark/arkpay/internal/core/domain"
	"github.com/swark/arkpay/internal/core/port"
	"github.com/swark/arkpay/internal/core/port/mock"
	"github.com/swark/arkpay/internal/core/service"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
	rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider)

func testConfig() service.Config {
	return service.Config{
		Confirmations:       6,
		SendStatusMail:      true,
		LedgerCurrency:      "ARK",
		DefaultCurrency:     "EUR",
		CurrencyFactor:      decimal.MustParse("4"),
		UnitScale:           100000000,
		VendorFieldTemplate: "order-%d",
		PaidStatus:          domain.PaymentStatusPaid,
		PaymentMethodID:     7,
	}
}

func openOrder() *domain.Order {
	return &domain.Order{
		Number:           125,
		Currency:         "ARK",
		InvoiceAmount:    decimal.MustParse("12.5"),
		ExpectedAmount:   decimal.MustParse("12.5"),
		RecipientAddress: "AXoXnFi4z1Z6aFvjEYkDVCtBGW2PaRiM25",
		VendorField:      "order-125",
		PaymentStatus:    domain.PaymentStatusOpen,
	}
}

func matchedTransaction(amount, confirmations int64) *domain.LedgerTransaction {
	return &domain.LedgerTransaction{
		ID:            "e3b0c44298fc1c14",
		Amount:        amount,
		Recipient:     "AXoXnFi4z1Z6aFvjEYkDVCtBGW2PaRiM25",
		VendorField:   "order-125",
		Confirmations: confirmations,
	}
}

func TestService_ReconcileAll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type reconcileTest struct {
		name      string
		mock      prepareMocks
		expResult port.SweepResult
		expError  bool
	}

	tests := []reconcileTest{
		{
			name: "no open orders",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{}, nil)
			},
			expResult: port.SweepResult{},
		},
		{
			name: "no transaction keeps order untouched",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(nil, domain.ErrTransactionNotFound)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "paid on exact amount and threshold boundary",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				tx := matchedTransaction(1250000000, 6)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), order.Number, tx.ID).Return(nil)
				gomock.InOrder(
					repo.EXPECT().SetPaymentStatus(gomock.Any(), order.Number, domain.PaymentStatusPaid).Return(nil),
					notifier.EXPECT().SendStatusMail(gomock.Any(), order.Number, domain.PaymentStatusPaid).Return(nil),
				)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "underpaid beats confirmed",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				// 10.0 ARK against 12.5 expected, confirmations far
				// past the threshold: amount wins, no confirmation check.
				tx := matchedTransaction(1000000000, 100)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), order.Number, tx.ID).Return(nil)
				gomock.InOrder(
					repo.EXPECT().SetPaymentStatus(gomock.Any(), order.Number, domain.PaymentStatusPartiallyPaid).Return(nil),
					notifier.EXPECT().SendStatusMail(gomock.Any(), order.Number, domain.PaymentStatusPartiallyPaid).Return(nil),
				)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "insufficient confirmations leaves status unchanged",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				tx := matchedTransaction(1250000000, 2)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), order.Number, tx.ID).Return(nil)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "linked transaction id is not rewritten",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				order.TransactionID = "e3b0c44298fc1c14"
				tx := matchedTransaction(1250000000, 2)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "repeated partial payment is a no-op",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				order.TransactionID = "e3b0c44298fc1c14"
				order.PaymentStatus = domain.PaymentStatusPartiallyPaid
				tx := matchedTransaction(1000000000, 100)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "mail failure does not fail the order",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				tx := matchedTransaction(1250000000, 10)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), order.Number, tx.ID).Return(nil)
				gomock.InOrder(
					repo.EXPECT().SetPaymentStatus(gomock.Any(), order.Number, domain.PaymentStatusPaid).Return(nil),
					notifier.EXPECT().SendStatusMail(gomock.Any(), order.Number, domain.PaymentStatusPaid).
						Return(errors.New("smtp down")),
				)
			},
			expResult: port.SweepResult{Considered: 1},
		},
		{
			name: "status write failure sends no mail",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				tx := matchedTransaction(1250000000, 10)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
				ledger.EXPECT().FindTransaction(gomock.Any(), order.RecipientAddress, order.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), order.Number, tx.ID).Return(nil)
				// No SendStatusMail expectation: an uncommitted status
				// must never be announced.
				repo.EXPECT().SetPaymentStatus(gomock.Any(), order.Number, domain.PaymentStatusPaid).
					Return(errors.New("db down"))
			},
			expResult: port.SweepResult{Considered: 1, Failed: 1},
			expError:  true,
		},
		{
			name: "persistence failure fails the order but not the sweep",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				first := openOrder()
				second := openOrder()
				second.Number = 126
				second.VendorField = "order-126"
				tx := matchedTransaction(1250000000, 10)
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{first, second}, nil)

				ledger.EXPECT().FindTransaction(gomock.Any(), first.RecipientAddress, first.VendorField).
					Return(tx, nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), first.Number, tx.ID).
					Return(errors.New("db down"))

				ledger.EXPECT().FindTransaction(gomock.Any(), second.RecipientAddress, second.VendorField).
					Return(nil, domain.ErrTransactionNotFound)
			},
			expResult: port.SweepResult{Considered: 2, Failed: 1},
			expError:  true,
		},
		{
			name: "unprovisioned order fails hard",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := openOrder()
				order.RecipientAddress = ""
				repo.EXPECT().ListOpenOrders(gomock.Any()).Return([]*domain.Order{order}, nil)
			},
			expResult: port.SweepResult{Considered: 1, Failed: 1},
			expError:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ledger := mock.NewMockLedgerClient(mockCtrl)
			rates := mock.NewMockRateProvider(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			wallets := mock.NewMockWalletProvider(mockCtrl)
			test.mock(repo, ledger, rates, notifier, wallets)

			s, err := service.NewService(repo, ledger, rates, notifier, wallets, testConfig(), logger)
			assert.NoError(t, err)

			result, err := s.ReconcileAll(context.Background())

			assert.Equal(t, test.expResult, result)
			if test.expError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ProvisionOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const wallet = "AXoXnFi4z1Z6aFvjEYkDVCtBGW2PaRiM25"

	type provisionTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []provisionTest{
		{
			name: "ledger currency passes through",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := &domain.Order{Number: 125, Currency: "ARK", InvoiceAmount: decimal.MustParse("12.5")}
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil)
				repo.EXPECT().SetExpectedAmount(gomock.Any(), uint64(125), decimal.MustParse("12.5")).Return(nil)
				wallets.EXPECT().RandomWallet().Return(wallet, nil)
				repo.EXPECT().SetRecipientAddress(gomock.Any(), uint64(125), wallet).Return(nil)
				repo.EXPECT().SetVendorField(gomock.Any(), uint64(125), "order-125").Return(nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), uint64(125), "").Return(nil)
			},
		},
		{
			name: "default currency uses static factor",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := &domain.Order{Number: 125, Currency: "EUR", InvoiceAmount: decimal.MustParse("2.5")}
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil)
				repo.EXPECT().SetExpectedAmount(gomock.Any(), uint64(125), decimal.MustParse("10.0")).Return(nil)
				wallets.EXPECT().RandomWallet().Return(wallet, nil)
				repo.EXPECT().SetRecipientAddress(gomock.Any(), uint64(125), wallet).Return(nil)
				repo.EXPECT().SetVendorField(gomock.Any(), uint64(125), "order-125").Return(nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), uint64(125), "").Return(nil)
			},
		},
		{
			name: "foreign currency uses live rate",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := &domain.Order{Number: 125, Currency: "USD", InvoiceAmount: decimal.MustParse("12.5")}
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil)
				rates.EXPECT().GetRate(gomock.Any(), "USD").Return(decimal.MustParse("2"), nil)
				repo.EXPECT().SetExpectedAmount(gomock.Any(), uint64(125), decimal.MustParse("25.0")).Return(nil)
				wallets.EXPECT().RandomWallet().Return(wallet, nil)
				repo.EXPECT().SetRecipientAddress(gomock.Any(), uint64(125), wallet).Return(nil)
				repo.EXPECT().SetVendorField(gomock.Any(), uint64(125), "order-125").Return(nil)
				repo.EXPECT().SetTransactionID(gomock.Any(), uint64(125), "").Return(nil)
			},
		},
		{
			name: "rate failure aborts before any write",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := &domain.Order{Number: 125, Currency: "USD", InvoiceAmount: decimal.MustParse("12.5")}
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil)
				rates.EXPECT().GetRate(gomock.Any(), "USD").
					Return(decimal.Decimal{}, errors.New("service unavailable"))
			},
			expError: domain.ErrExchangeRate,
		},
		{
			name: "partial failure keeps earlier writes",
			mock: func(repo *mock.MockRepository, ledger *mock.MockLedgerClient,
				rates *mock.MockRateProvider, notifier *mock.MockNotifier, wallets *mock.MockWalletProvider) {
				order := &domain.Order{Number: 125, Currency: "ARK", InvoiceAmount: decimal.MustParse("12.5")}
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil)
				repo.EXPECT().SetExpectedAmount(gomock.Any(), uint64(125), decimal.MustParse("12.5")).Return(nil)
				wallets.EXPECT().RandomWallet().Return(wallet, nil)
				repo.EXPECT().SetRecipientAddress(gomock.Any(), uint64(125), wallet).
					Return(domain.ErrInternal)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ledger := mock.NewMockLedgerClient(mockCtrl)
			rates := mock.NewMockRateProvider(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			wallets := mock.NewMockWalletProvider(mockCtrl)
			test.mock(repo, ledger, rates, notifier, wallets)

			s, err := service.NewService(repo, ledger, rates, notifier, wallets, testConfig(), logger)
			assert.NoError(t, err)

			err = s.ProvisionOrder(context.Background(), 125)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Normalization is deterministic: provisioning twice with an unchanged
// rate writes the same expected amount both times.
func TestService_ProvisionOrderDeterministic(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ledger := mock.NewMockLedgerClient(mockCtrl)
	rates := mock.NewMockRateProvider(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	wallets := mock.NewMockWalletProvider(mockCtrl)

	order := &domain.Order{Number: 125, Currency: "USD", InvoiceAmount: decimal.MustParse("12.5")}
	repo.EXPECT().ReadOrder(gomock.Any(), uint64(125)).Return(order, nil).Times(2)
	rates.EXPECT().GetRate(gomock.Any(), "USD").Return(decimal.MustParse("2"), nil).Times(2)
	repo.EXPECT().SetExpectedAmount(gomock.Any(), uint64(125), decimal.MustParse("25.0")).Return(nil).Times(2)
	wallets.EXPECT().RandomWallet().Return("AXoXnFi4z1Z6aFvjEYkDVCtBGW2PaRiM25", nil).Times(2)
	repo.EXPECT().SetRecipientAddress(gomock.Any(), uint64(125), gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().SetVendorField(gomock.Any(), uint64(125), "order-125").Return(nil).Times(2)
	repo.EXPECT().SetTransactionID(gomock.Any(), uint64(125), "").Return(nil).Times(2)

	s, err := service.NewService(repo, ledger, rates, notifier, wallets, testConfig(), logger)
	assert.NoError(t, err)

	assert.NoError(t, s.ProvisionOrder(context.Background(), 125))
	assert.NoError(t, s.ProvisionOrder(context.Background(), 125))
}

func TestService_CheckPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ledger := mock.NewMockLedgerClient(mockCtrl)
	rates := mock.NewMockRateProvider(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	wallets := mock.NewMockWalletProvider(mockCtrl)

	s, err := service.NewService(repo, ledger, rates, notifier, wallets, testConfig(), logger)
	assert.NoError(t, err)

	assert.True(t, s.CheckPayment(7))
	assert.False(t, s.CheckPayment(8))

	cfg := testConfig()
	cfg.PaymentMethodID = 0
	s, err = service.NewService(repo, ledger, rates, notifier, wallets, cfg, logger)
	assert.NoError(t, err)

	assert.False(t, s.CheckPayment(0))
}
