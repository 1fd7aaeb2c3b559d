package expiry

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

// Notifier publishes expiry alerts as notifications. Implemented by the
// notifications service; declared here so the job depends only on what it
// uses.
type Notifier interface {
	PublishExpiryAlert(ctx context.Context, permit ResidencePermit, alert Alert) error
}

// ScanJob processes nightly residence expiry scan tasks.
type ScanJob struct {
	service  *Service
	notifier Notifier
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    func() time.Time
}

// NewScanJob constructs a job handler.
func NewScanJob(service *Service, notifier Notifier, logger *slog.Logger, metrics *observability.Metrics) *ScanJob {
	return &ScanJob{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle fulfils the asynq.HandlerFunc contract. Only critical and expired
// permits produce notifications; warnings stay visible in the list view
// without nagging.
func (j *ScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("expiry scan: handler not configured")
	}
	var payload jobs.ExpiryScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.WindowDays <= 0 {
		payload.WindowDays = DefaultWindowDays
	}

	alerts, err := j.service.ListExpiring(ctx, j.clock(), payload.WindowDays)
	if err != nil {
		j.recordJob("error")
		return err
	}

	published := 0
	for _, pa := range alerts {
		if pa.Alert.Severity != SeverityCritical && pa.Alert.Severity != SeverityExpired {
			continue
		}
		if err := j.notifier.PublishExpiryAlert(ctx, pa.Permit, pa.Alert); err != nil {
			if j.logger != nil {
				j.logger.Error("publish expiry alert", slog.Int64("permit_id", pa.Permit.ID), slog.Any("error", err))
			}
			j.recordJob("error")
			return err
		}
		published++
	}

	if j.logger != nil {
		j.logger.Info("expiry scan done",
			slog.Int("window_days", payload.WindowDays),
			slog.Int("scanned", len(alerts)),
			slog.Int("published", published),
		)
	}
	j.recordJob("ok")
	return nil
}

func (j *ScanJob) recordJob(outcome string) {
	if j.metrics != nil {
		j.metrics.RecordJob(jobs.TaskExpiryScan, outcome)
	}
}
