package model

import (
	"fmt"
	"strings"
)

// TransactionStatus is the lifecycle state of a payment as shown in the
// activity list.
type TransactionStatus string

// Known transaction statuses.
const (
	StatusRefunded     TransactionStatus = "Refunded"
	StatusCharged      TransactionStatus = "Charged"
	StatusCancelled    TransactionStatus = "Cancelled"
	StatusPaidIntoBank TransactionStatus = "Paid into bank"
	StatusFailed       TransactionStatus = "Failed"
)

// ParseStatus converts a stored status string into a TransactionStatus.
// "Settled" is accepted as a display alias of "Paid into bank".
func ParseStatus(s string) (TransactionStatus, error) {
	switch s {
	case string(StatusRefunded), string(StatusCharged), string(StatusCancelled),
		string(StatusPaidIntoBank), string(StatusFailed):
		return TransactionStatus(s), nil
	case "Settled":
		return StatusPaidIntoBank, nil
	default:
		return "", fmt.Errorf("unknown transaction status: %q", s)
	}
}

// Realized reports whether the transaction counts as collected revenue.
// Refunds, failures and cancellations are excluded from revenue aggregation.
func (s TransactionStatus) Realized() bool {
	return s == StatusCharged || s == StatusPaidIntoBank
}

// MethodDirectDebit marks a mandate-based payment with no card details.
const MethodDirectDebit = "Direct Debit"

// PaymentMethod describes how a transaction was paid: a card brand with the
// last four digits, or a Direct Debit marker with Last4 empty.
type PaymentMethod struct {
	Type  string `json:"type"`
	Last4 string `json:"last4,omitempty"`
}

// Transaction is a single payment record. The collection is owned by the
// caller and read-only to the resolver.
//
// ChargedOn is a locale-formatted display string, not a parsed date; nothing
// here compares or orders by it. Net should equal Amount-Fee in well-formed
// data but records violating that are accepted as-is.
type Transaction struct {
	ID            string            `json:"id"`
	Reference     string            `json:"reference"`
	Notes         string            `json:"notes,omitempty"`
	Status        TransactionStatus `json:"status"`
	Customer      string            `json:"customer"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	Method        PaymentMethod     `json:"method"`
	Amount        float64           `json:"amount"`
	Fee           float64           `json:"fee"`
	Net           float64           `json:"net"`
	ChargedOn     string            `json:"chargedOn"`
}

// FormatAmount renders a monetary value the way the dashboard does: pound
// sign, two decimal places, thousands separated by commas.
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole := s[:len(s)-3]
	frac := s[len(s)-3:]
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}

	return sign + "£" + whole + frac
}
