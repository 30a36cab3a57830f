package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusOpen          PaymentStatus = "OPEN"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusCancelled     PaymentStatus = "CANCELLED"
)

// Order is a commerce order extended with the attributes the
// reconciliation sweep works on. RecipientAddress, VendorField and
// ExpectedAmount are written once at provisioning; TransactionID is
// written once, on the first matching ledger transaction.
type Order struct {
	Number           uint64
	Currency         string
	InvoiceAmount    decimal.Decimal
	ExpectedAmount   decimal.Decimal
	RecipientAddress string
	VendorField      string
	TransactionID    string
	PaymentStatus    PaymentStatus
	CreatedAt        time.Time
}
