package entity

import (
	"errors"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/google/uuid"
)

var (
	// ErrInvalidPaymentAmount is returned when a payment amount is not strictly positive
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	// ErrPaymentNotFound is returned when removing a payment that is not in the ledger
	ErrPaymentNotFound = errors.New("payment not found in ledger")
	// ErrLedgerFinalized is returned when mutating a ledger after Finalize
	ErrLedgerFinalized = errors.New("ledger is finalized")
)

// PaymentLedger accumulates partial payments against a required total
// during a checkout flow. It is a pure in-memory aggregate; once the
// sale is confirmed the ledger is finalized and its payments become
// part of the immutable Sale record.
type PaymentLedger struct {
	total     int64
	payments  []Payment
	finalized bool
}

// NewPaymentLedger creates an empty ledger for the given required total.
// A negative total is clamped to zero.
func NewPaymentLedger(total int64) *PaymentLedger {
	if total < 0 {
		total = 0
	}
	return &PaymentLedger{total: total}
}

// Total returns the required total the ledger reconciles against
func (l *PaymentLedger) Total() int64 {
	return l.total
}

// AddPayment appends a payment to the ledger. The amount must be
// strictly positive; overpaying is allowed and produces change.
func (l *PaymentLedger) AddPayment(method enum.PaymentMethod, amount int64, reference string) (*Payment, error) {
	if l.finalized {
		return nil, ErrLedgerFinalized
	}
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	p := Payment{
		ID:        uuid.New(),
		Method:    method,
		Amount:    amount,
		Reference: reference,
		CreatedAt: time.Now(),
	}
	l.payments = append(l.payments, p)
	return &p, nil
}

// RemovePayment removes one payment by identifier
func (l *PaymentLedger) RemovePayment(id uuid.UUID) error {
	if l.finalized {
		return ErrLedgerFinalized
	}
	for i, p := range l.payments {
		if p.ID == id {
			l.payments = append(l.payments[:i], l.payments[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}

// Payments returns a copy of the payments applied so far
func (l *PaymentLedger) Payments() []Payment {
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// Paid returns the sum of all payment amounts
func (l *PaymentLedger) Paid() int64 {
	var sum int64
	for _, p := range l.payments {
		sum += p.Amount
	}
	return sum
}

// Remaining returns the suggested amount for the next payment,
// max(0, total - paid). Advisory only; callers may tender more.
func (l *PaymentLedger) Remaining() int64 {
	r := l.total - l.Paid()
	if r < 0 {
		return 0
	}
	return r
}

// Change returns max(0, paid - total)
func (l *PaymentLedger) Change() int64 {
	c := l.Paid() - l.total
	if c < 0 {
		return 0
	}
	return c
}

// IsSettleable reports whether accumulated payments meet or exceed the
// total. A fully discounted sale (total 0) is settleable with no
// payments at all.
func (l *PaymentLedger) IsSettleable() bool {
	return l.Paid() >= l.total
}

// Status maps the reconciliation state to a sale status:
// nothing paid and an outstanding total is pending, partial coverage
// is partial, full coverage (including a zero total) is completed.
func (l *PaymentLedger) Status() enum.SaleStatus {
	paid := l.Paid()
	switch {
	case paid >= l.total:
		return enum.SaleStatusCompleted
	case paid == 0:
		return enum.SaleStatusPending
	default:
		return enum.SaleStatusPartial
	}
}

// Finalize freezes the ledger and returns its payments together with
// the terminal status. Further mutation fails with ErrLedgerFinalized.
func (l *PaymentLedger) Finalize() ([]Payment, enum.SaleStatus, error) {
	if l.finalized {
		return nil, "", ErrLedgerFinalized
	}
	l.finalized = true
	return l.Payments(), l.Status(), nil
}

// Finalized reports whether Finalize has been called
func (l *PaymentLedger) Finalized() bool {
	return l.finalized
}
