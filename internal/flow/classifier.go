package flow

// badgeByStage maps the known status vocabulary of each document type to a
// presentation badge. Unknown statuses fall back to BadgeSecondary so a new
// or mistyped status degrades gracefully in list renders; the raw string is
// always kept alongside the badge.
var badgeByStage = [stageCount]map[string]BadgeCategory{
	StageQuotation: {
		"DRAFT":    BadgeSecondary,
		"SENT":     BadgeDefault,
		"ACCEPTED": BadgeSuccess,
		"REJECTED": BadgeDestructive,
		"EXPIRED":  BadgeWarning,
	},
	StagePurchaseOrder: {
		"DRAFT":     BadgeSecondary,
		"SENT":      BadgeDefault,
		"PENDING":   BadgeWarning,
		"APPROVED":  BadgeSuccess,
		"COMPLETED": BadgeSuccess,
		"RECEIVED":  BadgeSuccess,
		"CANCELLED": BadgeDestructive,
	},
	StageInvoice: {
		"DRAFT":          BadgeSecondary,
		"SENT":           BadgeDefault,
		"PENDING":        BadgeWarning,
		"PARTIALLY_PAID": BadgeWarning,
		"PAID":           BadgeSuccess,
		"OVERDUE":        BadgeDestructive,
		"CANCELLED":      BadgeDestructive,
	},
	StageReceipt: {
		"ISSUED":    BadgeSuccess,
		"COMPLETED": BadgeSuccess,
		"CANCELLED": BadgeDestructive,
	},
}

// Classify buckets a raw document status into a badge category. Total over
// any input: unrecognised statuses and stages map to BadgeSecondary.
func Classify(stage Stage, rawStatus string) BadgeCategory {
	if stage < 0 || stage >= stageCount {
		return BadgeSecondary
	}
	if badge, ok := badgeByStage[stage][normStatus(rawStatus)]; ok {
		return badge
	}
	return BadgeSecondary
}
