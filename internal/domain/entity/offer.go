package entity

import "time"

// Offer is a discount on one product. There is no background expiry job:
// an offer is "active" iff ValidTill has not passed at query time.
type Offer struct {
	ID          string
	ProductID   string
	Discount    float64 // Percentage in [0,100].
	ValidTill   time.Time
	Description string
	OwnerUID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the offer is still valid at the given instant.
func (o *Offer) IsActive(now time.Time) bool {
	return !o.ValidTill.Before(now)
}
