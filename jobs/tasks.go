package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskExpiryScan is the task type for the nightly residence-permit
	// expiry scan.
	TaskExpiryScan = "expiry:scan"
	// TaskOverdueScan is the task type for the overdue-invoice scan.
	TaskOverdueScan = "payments:overdue_scan"
)

// ExpiryScanPayload parametrises one residence expiry scan run.
type ExpiryScanPayload struct {
	WindowDays int `json:"window_days"`
}

// NewExpiryScanTask constructs an Asynq task for the expiry scan.
func NewExpiryScanTask(payload ExpiryScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskExpiryScan, data), nil
}

// OverdueScanPayload parametrises one overdue-invoice scan run. An empty
// AsOf means "now" on the worker side.
type OverdueScanPayload struct {
	AsOf string `json:"as_of,omitempty"`
}

// NewOverdueScanTask constructs an Asynq task for the overdue-invoice scan.
func NewOverdueScanTask(payload OverdueScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOverdueScan, data), nil
}
