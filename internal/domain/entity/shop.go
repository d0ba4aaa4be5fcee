package entity

import "time"

// Shop belongs to one merchant profile and lives inside that merchant's
// assigned mall. MallID/MallName are copied from the owner profile at
// creation time; there is no capacity limit on shops per mall.
type Shop struct {
	ID            string
	ShopName      string
	Category      string
	Floor         string
	Description   string
	ContactNumber string
	ImageURL      string
	OwnerUID      string
	MallID        string
	MallName      string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
