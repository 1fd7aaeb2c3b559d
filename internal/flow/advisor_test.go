package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextActionCreatePurchaseOrder(t *testing.T) {
	snap := Snapshot{Quotation: doc(11, "QT-011", "ACCEPTED", 1)}

	action := NextAction(snap)

	require.NotNil(t, action)
	require.Equal(t, ActionCreatePurchaseOrder, action.Kind)
	require.Equal(t, int64(11), action.FromID)
}

func TestNextActionCreateInvoice(t *testing.T) {
	snap := Snapshot{
		Quotation:     doc(11, "QT-011", "ACCEPTED", 1),
		PurchaseOrder: doc(12, "PO-011", "APPROVED", 2),
	}

	action := NextAction(snap)

	require.NotNil(t, action)
	require.Equal(t, ActionCreateInvoice, action.Kind)
	require.Equal(t, int64(12), action.FromID)
}

func TestNextActionRecordPayment(t *testing.T) {
	snap := Snapshot{
		PurchaseOrder: doc(12, "PO-011", "COMPLETED", 2),
		Invoice:       doc(13, "INV-011", "SENT", 3),
	}

	action := NextAction(snap)

	require.NotNil(t, action)
	require.Equal(t, ActionRecordPayment, action.Kind)
	require.Equal(t, int64(13), action.FromID)
}

func TestNextActionNudgeIsOneShot(t *testing.T) {
	// A single active receipt suppresses the payment nudge even though the
	// invoice is still outstanding.
	snap := Snapshot{
		PurchaseOrder: doc(12, "PO-011", "COMPLETED", 2),
		Invoice:       doc(13, "INV-011", "PARTIALLY_PAID", 3),
		Receipts:      []DocumentRef{receipt(14, "RC-011", "ISSUED", 4, 50)},
	}

	require.Nil(t, NextAction(snap))
}

func TestNextActionCancelledReceiptDoesNotCount(t *testing.T) {
	snap := Snapshot{
		Invoice:  doc(13, "INV-012", "SENT", 3),
		Receipts: []DocumentRef{receipt(14, "RC-012", "CANCELLED", 4, 50)},
	}

	action := NextAction(snap)

	require.NotNil(t, action)
	require.Equal(t, ActionRecordPayment, action.Kind)
}

func TestNextActionNilCases(t *testing.T) {
	cases := map[string]Snapshot{
		"empty flow":              {},
		"quotation not accepted":  {Quotation: doc(11, "QT", "SENT", 1)},
		"rejected quotation only": {Quotation: doc(11, "QT", "REJECTED", 1)},
		"invoice already paid":    {Invoice: doc(13, "INV", "PAID", 3)},
		"complete flow": {
			Quotation:     doc(11, "QT", "ACCEPTED", 1),
			PurchaseOrder: doc(12, "PO", "COMPLETED", 2),
			Invoice:       doc(13, "INV", "PAID", 3),
			Receipts:      []DocumentRef{receipt(14, "RC", "ISSUED", 4, 100)},
		},
	}
	for name, snap := range cases {
		require.Nil(t, NextAction(snap), name)
	}
}

func TestNextActionIsIdempotent(t *testing.T) {
	snap := Snapshot{Quotation: doc(11, "QT-011", "ACCEPTED", 1)}

	first := NextAction(snap)
	second := NextAction(snap)

	require.Equal(t, first, second)
}
