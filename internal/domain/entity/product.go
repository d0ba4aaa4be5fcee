package entity

import "time"

// Product is a catalog entry owned by a merchant, optionally attached to
// one of the merchant's shops.
type Product struct {
	ID        string
	Name      string
	Price     float64
	Features  []string
	ImageURL  string
	ShopID    string
	OwnerUID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
