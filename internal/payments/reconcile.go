package payments

// Reconcile derives the payment summary for an invoice total against its
// receipts. Cancelled receipts are excluded from paid. Outstanding is not
// clamped: an overpaid invoice shows a negative outstanding rather than
// hiding the overpayment. Settled means outstanding is zero or negative.
func Reconcile(invoiceTotal float64, receipts []Receipt) Summary {
	var paid float64
	for _, r := range receipts {
		if r.Cancelled() {
			continue
		}
		paid += r.Amount
	}
	outstanding := invoiceTotal - paid
	return Summary{
		Total:       invoiceTotal,
		Paid:        paid,
		Outstanding: outstanding,
		Settled:     outstanding <= 0,
	}
}
