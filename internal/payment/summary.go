package payment

import "github.com/shopspring/decimal"

// StatValue is an amount/count pair for one lifecycle stage of payments
// or invoices, as reported by `yagna payment status --json`.
type StatValue struct {
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AgreementsCount uint64          `json:"agreementsCount"`
}

// Summary is the capability shared by StatusNotes and
// InvoiceStatusNotes: both can report the total pending and unconfirmed
// amount/count pairs, each via its own field arithmetic.
type Summary interface {
	// TotalPending returns the amount and agreement count accepted but
	// not yet settled.
	TotalPending() (decimal.Decimal, uint64)
	// Unconfirmed returns the amount and agreement count not yet
	// accepted by the counterparty.
	Unconfirmed() (decimal.Decimal, uint64)
}

// StatusNotes carries payment totals at the requested, accepted and
// confirmed stages.
type StatusNotes struct {
	Requested StatValue `json:"requested"`
	Accepted  StatValue `json:"accepted"`
	Confirmed StatValue `json:"confirmed"`
}

// TotalPending is accepted minus confirmed.
func (n StatusNotes) TotalPending() (decimal.Decimal, uint64) {
	return n.Accepted.TotalAmount.Sub(n.Confirmed.TotalAmount),
		n.Accepted.AgreementsCount - n.Confirmed.AgreementsCount
}

// Unconfirmed is requested minus accepted.
func (n StatusNotes) Unconfirmed() (decimal.Decimal, uint64) {
	return n.Requested.TotalAmount.Sub(n.Accepted.TotalAmount),
		n.Requested.AgreementsCount - n.Accepted.AgreementsCount
}

// InvoiceStatusNotes carries invoice totals at the issued, received,
// accepted and rejected stages.
type InvoiceStatusNotes struct {
	Issued   StatValue `json:"issued"`
	Received StatValue `json:"received"`
	Accepted StatValue `json:"accepted"`
	Rejected StatValue `json:"rejected"`
}

// TotalPending is the accepted bucket verbatim.
func (n InvoiceStatusNotes) TotalPending() (decimal.Decimal, uint64) {
	return n.Accepted.TotalAmount, n.Accepted.AgreementsCount
}

// Unconfirmed sums the issued and received buckets.
func (n InvoiceStatusNotes) Unconfirmed() (decimal.Decimal, uint64) {
	return n.Issued.TotalAmount.Add(n.Received.TotalAmount),
		n.Issued.AgreementsCount + n.Received.AgreementsCount
}

// StatusResult is the daemon's reply to `payment status`.
type StatusResult struct {
	Amount   decimal.Decimal `json:"amount"`
	Reserved decimal.Decimal `json:"reserved"`
	Outgoing StatusNotes     `json:"outgoing"`
	Incoming StatusNotes     `json:"incoming"`
	Driver   string          `json:"driver"`
	Network  string          `json:"network"`
	Token    string          `json:"token"`
}

// InvoiceStats is the daemon's reply to `payment invoice status`,
// split by the role this node played.
type InvoiceStats struct {
	Requestor InvoiceStatusNotes `json:"requestor"`
	Provider  InvoiceStatusNotes `json:"provider"`
}
