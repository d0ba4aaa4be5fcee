package entity

import "time"

// Mall is a tenant container with a merchant-capacity limit.
// Invariant: 0 <= CurrentMerchants <= MaxMerchants after every ledger
// operation. Admit refuses to break the upper bound; Release clamps at zero
// so that a previously inconsistent count never blocks a deletion flow.
type Mall struct {
	ID               string
	MallName         string
	Location         string
	Description      string
	MaxMerchants     int
	CurrentMerchants int
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanAdmit reports whether the mall has room for one more merchant.
// Callers may use it to disable assignment actions up front, but the
// assignment operations re-check inside the store transaction since this
// read may be stale.
func (m *Mall) CanAdmit() bool {
	return m.CurrentMerchants < m.MaxMerchants
}

// Admit increments the merchant counter. It returns false and leaves the
// counter untouched when the mall is already full.
func (m *Mall) Admit() bool {
	if !m.CanAdmit() {
		return false
	}
	m.CurrentMerchants++

	return true
}

// Release decrements the merchant counter, clamped at zero.
func (m *Mall) Release() {
	if m.CurrentMerchants > 0 {
		m.CurrentMerchants--
	}
}
