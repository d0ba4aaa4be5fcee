// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a profile can have in the system.
// It is a closed set: unknown role strings are rejected at the
// profile-creation boundary instead of being stored as-is.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleMerchant indicates a merchant assigned to at most one mall.
	RoleMerchant Role = "merchant"
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMerchant, RoleUser:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
