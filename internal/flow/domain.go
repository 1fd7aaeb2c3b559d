package flow

import (
	"fmt"
	"strings"
	"time"
)

// Stage identifies one document type's position within a commercial flow.
// The zero value is the quotation stage; order index equals the constant value.
type Stage int

const (
	StageQuotation Stage = iota
	StagePurchaseOrder
	StageInvoice
	StageReceipt

	stageCount = 4
)

var stageNames = [stageCount]string{"quotation", "purchase_order", "invoice", "receipt"}

// String returns the wire name of the stage.
func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "unknown"
	}
	return stageNames[s]
}

// ParseStage resolves a wire name to a Stage.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("flow: unknown stage %q", name)
}

// StageState is the derived presentation state of one stage.
type StageState string

const (
	StateCompleted StageState = "completed"
	StateCurrent   StageState = "current"
	StatePending   StageState = "pending"
	StateDisabled  StageState = "disabled"
)

// BadgeCategory buckets raw document statuses for presentation.
type BadgeCategory string

const (
	BadgeSuccess     BadgeCategory = "success"
	BadgeDefault     BadgeCategory = "default"
	BadgeWarning     BadgeCategory = "warning"
	BadgeDestructive BadgeCategory = "destructive"
	BadgeSecondary   BadgeCategory = "secondary"
)

// DocumentRef is an immutable snapshot of one document in a flow.
type DocumentRef struct {
	ID     int64     `json:"id"`
	Number string    `json:"number"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
	Amount *float64  `json:"amount,omitempty"`
}

// Snapshot holds the documents of one commercial flow. Absent documents
// are nil (or an empty slice for receipts); a dangling reference in the
// source data is loaded as absent, never as an error.
type Snapshot struct {
	Quotation     *DocumentRef
	PurchaseOrder *DocumentRef
	Invoice       *DocumentRef
	Receipts      []DocumentRef
}

// Empty reports whether the snapshot carries no documents at all.
func (s Snapshot) Empty() bool {
	return s.Quotation == nil && s.PurchaseOrder == nil && s.Invoice == nil && len(s.Receipts) == 0
}

// ActionKind enumerates the advisable next actions.
type ActionKind string

const (
	ActionCreatePurchaseOrder ActionKind = "create_purchase_order"
	ActionCreateInvoice       ActionKind = "create_invoice"
	ActionRecordPayment       ActionKind = "record_payment"
)

// Action is the single advised next step for a flow, anchored on the
// document it should be created from.
type Action struct {
	Kind   ActionKind `json:"action"`
	FromID int64      `json:"from_id"`
}

// normStatus folds raw status strings for comparison. Statuses are stored
// uppercase but older rows and external imports arrive in mixed case.
func normStatus(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
