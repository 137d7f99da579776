package models

// Fee status values
const (
	FeeStatusPaid    = "paid"
	FeeStatusPending = "pending"
	FeeStatusOverdue = "overdue"
)

// Fee categories
const (
	CategoryTuition       = "tuition"
	CategoryTransport     = "transport"
	CategorySports        = "sports"
	CategoryCertification = "certification"
	CategoryOther         = "other"
)

// FeeItem represents a single fee line item for the current academic year.
// Status is flipped pending/overdue -> paid by the payment flow and never
// changes otherwise; items are never deleted.
type FeeItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Amount   int64  `json:"amount"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// Payable reports whether the item still needs payment.
func (f *FeeItem) Payable() bool {
	return f.Status != FeeStatusPaid
}

// FeeSummary aggregates the fee catalog for the summary cards.
type FeeSummary struct {
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// Payment methods accepted by the payment flow.
const (
	MethodCreditCard = "credit_card"
	MethodDebitCard  = "debit_card"
	MethodNetBanking = "net_banking"
	MethodUPI        = "upi"
)

// MethodLabel returns the display label recorded on transactions and
// receipts for a payment method.
func MethodLabel(method string) string {
	switch method {
	case MethodCreditCard:
		return "Credit Card"
	case MethodDebitCard:
		return "Debit Card"
	case MethodNetBanking:
		return "Net Banking"
	case MethodUPI:
		return "UPI"
	}
	return method
}
