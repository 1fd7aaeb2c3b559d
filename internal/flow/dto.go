package flow

import "time"

// StageVM is the JSON view of one stage in a timeline.
type StageVM struct {
	Stage  string        `json:"stage"`
	State  StageState    `json:"state"`
	Number string        `json:"number,omitempty"`
	Date   *time.Time    `json:"date,omitempty"`
	Status string        `json:"status,omitempty"`
	Badge  BadgeCategory `json:"badge,omitempty"`
	Amount *float64      `json:"amount,omitempty"`
}

// TimelineView is the full response for a flow timeline request.
type TimelineView struct {
	QuotationID int64     `json:"quotation_id,omitempty"`
	Stages      []StageVM `json:"stages"`
	NextAction  *Action   `json:"next_action,omitempty"`
}

func newStageVM(v StageView) StageVM {
	vm := StageVM{
		Stage:  v.Stage.String(),
		State:  v.State,
		Amount: v.Amount,
	}
	if v.Document != nil {
		vm.Number = v.Document.Number
		date := v.Document.Date
		vm.Date = &date
		vm.Status = v.Document.Status
		vm.Badge = v.Badge
	}
	return vm
}

func newTimelineView(snap Snapshot, current *Stage) *TimelineView {
	views := Sequence(snap, current)
	vm := &TimelineView{Stages: make([]StageVM, 0, len(views))}
	if snap.Quotation != nil {
		vm.QuotationID = snap.Quotation.ID
	}
	for _, v := range views {
		vm.Stages = append(vm.Stages, newStageVM(v))
	}
	vm.NextAction = NextAction(snap)
	return vm
}
