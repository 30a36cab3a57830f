package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Ledger errors.
	// ErrTransactionNotFound is a normal outcome: no payment has
	// arrived yet, or no node could be reached this cycle.
	ErrTransactionNotFound = errors.New("no matching ledger transaction")

	// * Business errors.
	ErrExchangeRate        = errors.New("exchange rate lookup failed")
	ErrOrderNotProvisioned = errors.New("order has no reconciliation attributes")
	ErrNotOurPayment       = errors.New("payment method is not handled by this gateway")
)
