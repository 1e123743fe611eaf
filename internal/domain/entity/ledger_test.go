package entity

import (
	"testing"

	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLedgerSplitPayment(t *testing.T) {
	ledger := NewPaymentLedger(100000)

	_, err := ledger.AddPayment(enum.PaymentMethodCash, 50000, "")
	require.NoError(t, err)
	_, err = ledger.AddPayment(enum.PaymentMethodQR, 30000, "")
	require.NoError(t, err)

	assert.Equal(t, int64(80000), ledger.Paid())
	assert.Equal(t, int64(20000), ledger.Remaining())
	assert.Equal(t, int64(0), ledger.Change())
	assert.False(t, ledger.IsSettleable())
	assert.Equal(t, enum.SaleStatusPartial, ledger.Status())
}

func TestPaymentLedgerOverpaymentProducesChange(t *testing.T) {
	ledger := NewPaymentLedger(45000)

	_, err := ledger.AddPayment(enum.PaymentMethodCash, 50000, "")
	require.NoError(t, err)

	assert.Equal(t, int64(5000), ledger.Change())
	assert.Equal(t, int64(0), ledger.Remaining())
	assert.True(t, ledger.IsSettleable())
	assert.Equal(t, enum.SaleStatusCompleted, ledger.Status())
}

func TestPaymentLedgerStatusTransitions(t *testing.T) {
	ledger := NewPaymentLedger(100000)
	assert.Equal(t, enum.SaleStatusPending, ledger.Status())

	_, err := ledger.AddPayment(enum.PaymentMethodCard, 40000, "")
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusPartial, ledger.Status())

	_, err = ledger.AddPayment(enum.PaymentMethodCash, 60000, "")
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusCompleted, ledger.Status())
}

func TestPaymentLedgerZeroTotalIsSettleable(t *testing.T) {
	// A fully discounted sale needs no payments at all
	ledger := NewPaymentLedger(0)

	assert.True(t, ledger.IsSettleable())
	assert.Equal(t, enum.SaleStatusCompleted, ledger.Status())
	assert.Equal(t, int64(0), ledger.Remaining())
}

func TestPaymentLedgerRejectsNonPositiveAmounts(t *testing.T) {
	ledger := NewPaymentLedger(10000)

	_, err := ledger.AddPayment(enum.PaymentMethodCash, 0, "")
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	_, err = ledger.AddPayment(enum.PaymentMethodCash, -5000, "")
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	assert.Equal(t, int64(0), ledger.Paid())
	assert.Empty(t, ledger.Payments())
}

func TestPaymentLedgerRemovePayment(t *testing.T) {
	ledger := NewPaymentLedger(60000)

	p1, err := ledger.AddPayment(enum.PaymentMethodCash, 20000, "")
	require.NoError(t, err)
	_, err = ledger.AddPayment(enum.PaymentMethodQR, 15000, "ref-1")
	require.NoError(t, err)

	require.NoError(t, ledger.RemovePayment(p1.ID))
	assert.Equal(t, int64(15000), ledger.Paid())
	assert.Len(t, ledger.Payments(), 1)

	assert.ErrorIs(t, ledger.RemovePayment(uuid.New()), ErrPaymentNotFound)
}

func TestPaymentLedgerPaidAlwaysMatchesPaymentSum(t *testing.T) {
	ledger := NewPaymentLedger(500000)

	amounts := []int64{12000, 35000, 7000, 90000}
	var ids []uuid.UUID
	for _, a := range amounts {
		p, err := ledger.AddPayment(enum.PaymentMethodCash, a, "")
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	sum := func() int64 {
		var s int64
		for _, p := range ledger.Payments() {
			s += p.Amount
		}
		return s
	}
	assert.Equal(t, sum(), ledger.Paid())

	require.NoError(t, ledger.RemovePayment(ids[1]))
	assert.Equal(t, sum(), ledger.Paid())
	assert.Equal(t, int64(12000+7000+90000), ledger.Paid())
}

func TestPaymentLedgerFinalizeFreezes(t *testing.T) {
	ledger := NewPaymentLedger(30000)
	p, err := ledger.AddPayment(enum.PaymentMethodCash, 30000, "")
	require.NoError(t, err)

	payments, status, err := ledger.Finalize()
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusCompleted, status)
	require.Len(t, payments, 1)
	assert.Equal(t, p.ID, payments[0].ID)

	_, err = ledger.AddPayment(enum.PaymentMethodCash, 1000, "")
	assert.ErrorIs(t, err, ErrLedgerFinalized)
	assert.ErrorIs(t, ledger.RemovePayment(p.ID), ErrLedgerFinalized)

	_, _, err = ledger.Finalize()
	assert.ErrorIs(t, err, ErrLedgerFinalized)
}

func TestPaymentLedgerNegativeTotalClamped(t *testing.T) {
	ledger := NewPaymentLedger(-100)
	assert.Equal(t, int64(0), ledger.Total())
	assert.True(t, ledger.IsSettleable())
}
