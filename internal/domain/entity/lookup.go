package entity

import "time"

// Category is an admin-managed lookup value offered in shop forms.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Floor is an admin-managed lookup value offered in shop forms.
type Floor struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
