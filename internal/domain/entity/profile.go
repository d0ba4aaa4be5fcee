package entity

import (
	"slices"
	"time"
)

// Profile is the application-level user record, keyed by the identity
// provider's uid. It is distinct from the identity provider's own account:
// the provider owns credentials, the profile owns role and directory state.
type Profile struct {
	UID           string // Identity provider uid; also the document id.
	Name          string
	Email         string
	Role          Role
	ContactNumber string

	// MallID/MallName are set and cleared only through the merchant
	// assignment operations, never written directly by handlers.
	MallID   string
	MallName string

	// Shopper session scope, persisted so it survives devices.
	SelectedMallID string
	SavedItems     []string

	// Admin-created merchant accounts carry a generated initial password.
	// Only its bcrypt hash is stored; the plaintext is returned exactly
	// once in the create response.
	InitialPasswordHash string
	MustChangePassword  bool

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned reports whether a merchant profile is currently assigned to a mall.
func (p *Profile) IsAssigned() bool {
	return p.MallID != ""
}

// HasSaved reports whether the given product id is in the saved-items set.
func (p *Profile) HasSaved(productID string) bool {
	return slices.Contains(p.SavedItems, productID)
}

// ToggleSavedItem adds the product id to the saved-items set if absent and
// removes it if present. It returns true when the item ended up saved.
// Toggling twice with the same id restores the original set.
func (p *Profile) ToggleSavedItem(productID string) bool {
	if idx := slices.Index(p.SavedItems, productID); idx >= 0 {
		p.SavedItems = slices.Delete(p.SavedItems, idx, idx+1)

		return false
	}

	p.SavedItems = append(p.SavedItems, productID)

	return true
}
