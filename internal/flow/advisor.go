package flow

// NextAction proposes the single next step for a flow, or nil when the flow
// is complete or blocked on an earlier unmet condition. The rules form a
// greedy list evaluated in order, first match wins; there is no backtracking
// and no multi-branch planning.
//
// The "record payment" nudge fires once: any non-cancelled receipt
// suppresses it even while the invoice stays partially paid. Partial-payment
// visibility belongs to the payments reconciliation, not to the advisor.
func NextAction(s Snapshot) *Action {
	if s.Quotation != nil && normStatus(s.Quotation.Status) == "ACCEPTED" && s.PurchaseOrder == nil {
		return &Action{Kind: ActionCreatePurchaseOrder, FromID: s.Quotation.ID}
	}
	if s.PurchaseOrder != nil && s.Invoice == nil {
		return &Action{Kind: ActionCreateInvoice, FromID: s.PurchaseOrder.ID}
	}
	if s.Invoice != nil && normStatus(s.Invoice.Status) != "PAID" && !hasActiveReceipt(s.Receipts) {
		return &Action{Kind: ActionRecordPayment, FromID: s.Invoice.ID}
	}
	return nil
}

func hasActiveReceipt(receipts []DocumentRef) bool {
	for _, r := range receipts {
		if normStatus(r.Status) != "CANCELLED" {
			return true
		}
	}
	return false
}
