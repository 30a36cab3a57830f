package domain

// Timestamp is the timestamp triple the node reports for a transaction.
type Timestamp struct {
	Epoch int64  `json:"epoch"`
	Unix  int64  `json:"unix"`
	Human string `json:"human"`
}

// LedgerTransaction is a transaction as reported by a ledger node.
// Amount is in the smallest ledger unit (arktoshi). The value is
// transient: only ID and the scaled amount ever reach an order record.
type LedgerTransaction struct {
	ID            string    `json:"id"`
	Amount        int64     `json:"amount"`
	Recipient     string    `json:"recipient"`
	VendorField   string    `json:"vendorField"`
	Confirmations int64     `json:"confirmations"`
	Timestamp     Timestamp `json:"timestamp"`
}
