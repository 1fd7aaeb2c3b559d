package expiry

import "time"

// ResidencePermit is a snapshot of one employee residence permit.
type ResidencePermit struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Number       string    `json:"number"`
	ExpiresOn    time.Time `json:"expires_on"`
}

// PermitAlert pairs a permit with its derived expiry alert.
type PermitAlert struct {
	Permit ResidencePermit `json:"permit"`
	Alert  Alert           `json:"alert"`
}
