package flow

// StageView is the derived view of one stage in a flow timeline.
type StageView struct {
	Stage    Stage
	State    StageState
	Document *DocumentRef
	Badge    BadgeCategory
	// Amount is the summed non-cancelled receipt amount; only the receipt
	// stage carries it.
	Amount *float64
}

// terminalSuccess lists, per stage, the statuses that count as completion
// when no current stage gives positional context. A receipt is terminal by
// existing at all.
var terminalSuccess = [stageCount]map[string]bool{
	StageQuotation:     {"ACCEPTED": true, "SENT": true},
	StagePurchaseOrder: {"APPROVED": true, "COMPLETED": true, "RECEIVED": true},
	StageInvoice:       {"PAID": true},
	StageReceipt:       nil,
}

// Sequence derives the state of all four stages of a flow.
//
// With a current stage, position rules apply: earlier stages are completed
// only when their document exists (a missing record models a broken chain
// and renders disabled), the current stage is always current, and later
// stages are always disabled. Without one, completion follows terminal
// statuses, the first absent stage is pending, and everything after it is
// disabled.
func Sequence(s Snapshot, current *Stage) [stageCount]StageView {
	var views [stageCount]StageView
	docs := s.stageDocuments()

	pendingAssigned := false
	for i := Stage(0); i < stageCount; i++ {
		view := StageView{Stage: i, Document: docs[i]}
		if docs[i] != nil {
			view.Badge = Classify(i, docs[i].Status)
		}
		if i == StageReceipt && len(s.Receipts) > 0 {
			total := receiptTotal(s.Receipts)
			view.Amount = &total
		}

		switch {
		case current != nil:
			switch {
			case i < *current:
				if docs[i] != nil {
					view.State = StateCompleted
				} else {
					view.State = StateDisabled
				}
			case i == *current:
				view.State = StateCurrent
			default:
				view.State = StateDisabled
			}
		case stageCompleted(i, docs[i]):
			view.State = StateCompleted
		case docs[i] == nil && !pendingAssigned:
			view.State = StatePending
			pendingAssigned = true
		default:
			view.State = StateDisabled
		}

		views[i] = view
	}
	return views
}

// stageDocuments projects the snapshot onto the stage order. The receipt
// slot carries the most recent receipt so the timeline has a number and
// date to show.
func (s Snapshot) stageDocuments() [stageCount]*DocumentRef {
	var docs [stageCount]*DocumentRef
	docs[StageQuotation] = s.Quotation
	docs[StagePurchaseOrder] = s.PurchaseOrder
	docs[StageInvoice] = s.Invoice
	if len(s.Receipts) > 0 {
		latest := s.Receipts[0]
		for _, r := range s.Receipts[1:] {
			if r.Date.After(latest.Date) {
				latest = r
			}
		}
		docs[StageReceipt] = &latest
	}
	return docs
}

func stageCompleted(stage Stage, doc *DocumentRef) bool {
	if doc == nil {
		return false
	}
	if stage == StageReceipt {
		return true
	}
	return terminalSuccess[stage][normStatus(doc.Status)]
}

func receiptTotal(receipts []DocumentRef) float64 {
	var total float64
	for _, r := range receipts {
		if normStatus(r.Status) == "CANCELLED" {
			continue
		}
		if r.Amount != nil {
			total += *r.Amount
		}
	}
	return total
}
