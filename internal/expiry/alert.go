package expiry

import "time"

// Severity buckets a days-remaining count for presentation and alerting.
type Severity string

const (
	SeverityExpired  Severity = "expired"
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityOK       Severity = "ok"
)

const (
	criticalWindowDays = 7
	warningWindowDays  = 30
)

// Alert is the derived expiry state of one dated document.
type Alert struct {
	DaysRemaining int      `json:"days_remaining"`
	Severity      Severity `json:"severity"`
}

// NewAlert computes the expiry alert for a date pair on calendar days;
// time of day is ignored. Negative days mean the document already expired.
func NewAlert(expiresOn, today time.Time) Alert {
	days := daysBetween(today, expiresOn)
	return Alert{DaysRemaining: days, Severity: classify(days)}
}

func classify(days int) Severity {
	switch {
	case days < 0:
		return SeverityExpired
	case days <= criticalWindowDays:
		return SeverityCritical
	case days <= warningWindowDays:
		return SeverityWarning
	default:
		return SeverityOK
	}
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
