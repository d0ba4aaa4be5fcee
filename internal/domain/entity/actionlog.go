package entity

import "time"

// ActionLog is an audit-trail record appended on every auth, ledger and
// catalog mutation. Appending is best effort and never fails the mutation.
type ActionLog struct {
	ID          string
	UserID      string
	Action      string
	Description string
	Metadata    map[string]string
	CreatedAt   time.Time
}
