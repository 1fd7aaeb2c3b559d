package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/meridian-crm/meridian/internal/observability"
	"github.com/meridian-crm/meridian/jobs"
)

// Notifier publishes outstanding-invoice notifications. Implemented by the
// notifications service; declared here so the job depends only on what it
// uses.
type Notifier interface {
	PublishOutstandingInvoice(ctx context.Context, invoiceID int64, number string, outstanding float64) error
}

// OverdueScanJob processes overdue-invoice scan tasks. Every open invoice
// past its due date with money still outstanding produces one notification;
// the upsert on the notifications side keeps repeated scans idempotent.
type OverdueScanJob struct {
	service  *Service
	notifier Notifier
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    func() time.Time
}

// NewOverdueScanJob constructs a job handler.
func NewOverdueScanJob(service *Service, notifier Notifier, logger *slog.Logger, metrics *observability.Metrics) *OverdueScanJob {
	return &OverdueScanJob{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle fulfils the asynq.HandlerFunc contract.
func (j *OverdueScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("overdue scan: handler not configured")
	}
	var payload jobs.OverdueScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	asOf := j.clock()
	if payload.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, payload.AsOf)
		if err != nil {
			return asynq.SkipRetry
		}
		asOf = parsed
	}

	invoices, err := j.service.ListOverdueOpen(ctx, asOf)
	if err != nil {
		j.recordJob("error")
		return err
	}

	published := 0
	for _, inv := range invoices {
		outstanding, err := j.service.OutstandingFor(ctx, inv)
		if err != nil {
			j.recordJob("error")
			return err
		}
		if outstanding <= 0 {
			continue
		}
		if err := j.notifier.PublishOutstandingInvoice(ctx, inv.ID, inv.Number, outstanding); err != nil {
			if j.logger != nil {
				j.logger.Error("publish outstanding invoice", slog.Int64("invoice_id", inv.ID), slog.Any("error", err))
			}
			j.recordJob("error")
			return err
		}
		published++
	}

	if j.logger != nil {
		j.logger.Info("overdue scan done",
			slog.Time("as_of", asOf),
			slog.Int("scanned", len(invoices)),
			slog.Int("published", published),
		)
	}
	j.recordJob("ok")
	return nil
}

func (j *OverdueScanJob) recordJob(outcome string) {
	if j.metrics != nil {
		j.metrics.RecordJob(jobs.TaskOverdueScan, outcome)
	}
}
