// Package settlement derives payment state for a financial document. It is
// pure computation: status and balance due are always recomputed from
// (grand total, amount received), never stored as independently-editable
// fields. Money uses decimal arithmetic so balance comparisons are exact.
package settlement

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// State is the per-document settlement snapshot.
type State struct {
	GrandTotal     decimal.Decimal `json:"grand_total"`
	AmountReceived decimal.Decimal `json:"amount_received"`
}

// NewState starts a document unpaid.
func NewState(grandTotal decimal.Decimal) State {
	return State{GrandTotal: grandTotal, AmountReceived: decimal.Zero}
}

// BalanceDue is the remaining amount owed.
func (s State) BalanceDue() decimal.Decimal {
	return s.GrandTotal.Sub(s.AmountReceived)
}

// Status derives the payment status. Transitions are monotonic forward only:
// unpaid -> partial -> paid. A refund is a new offsetting event owned by an
// external ledger, not an unpay transition here.
func (s State) Status() domain.PaymentStatus {
	switch {
	case s.AmountReceived.IsZero():
		return domain.PaymentStatusUnpaid
	case s.AmountReceived.GreaterThanOrEqual(s.GrandTotal):
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusPartial
	}
}

// Apply validates a payment against the current snapshot and returns the new
// state. Overpayment is rejected, never clamped: it indicates a
// reconciliation problem upstream. The input state is left untouched on
// failure.
func Apply(s State, amount decimal.Decimal) (State, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, domain.ErrInvalidPaymentAmount
	}
	if amount.GreaterThan(s.BalanceDue()) {
		return s, domain.ErrPaymentExceedsDue
	}
	return State{
		GrandTotal:     s.GrandTotal,
		AmountReceived: s.AmountReceived.Add(amount),
	}, nil
}
