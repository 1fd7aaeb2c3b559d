package notifications

import "time"

// Kind enumerates notification sources.
type Kind string

const (
	KindResidenceExpiry    Kind = "residence_expiry"
	KindInvoiceOutstanding Kind = "invoice_outstanding"
)

// Notification is one persisted alert for the notification bell.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	RefID     int64     `json:"ref_id"`
	Title     string    `json:"title"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// View is a notification annotated with its read flag.
type View struct {
	Notification
	Read bool `json:"read"`
}

// ReadState is an explicit set of acknowledged notification ids. It is a
// plain value passed into the derivation; persistence lives behind
// ReadStateStore, never in package state.
type ReadState struct {
	ids map[string]struct{}
}

// NewReadState builds a ReadState from acknowledged ids.
func NewReadState(ids ...string) ReadState {
	state := ReadState{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		state.ids[id] = struct{}{}
	}
	return state
}

// Contains reports whether the notification id has been acknowledged.
func (s ReadState) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of acknowledged ids.
func (s ReadState) Len() int {
	return len(s.ids)
}
