package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines the self-service profile fields. Role and
// mall assignment are never writable through this path.
type UpdateProfileInput struct {
	UID           string
	Name          string
	ContactNumber string
}

// --- Output DTOs ---

// ToggleSavedItemOutput reports the end state of one toggle.
type ToggleSavedItemOutput struct {
	ProductID string
	Saved     bool
}

// ProfileUsecase defines the shopper-side profile operations: the saved
// items set and the persisted mall selection.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)

	// ToggleSavedItem adds the product to the saved set if absent and
	// removes it if present. Toggling twice is a no-op overall.
	ToggleSavedItem(ctx context.Context, uid, productID string) (*ToggleSavedItemOutput, error)

	// ListSavedItems resolves the saved set to products with their
	// active offers, silently dropping products that no longer exist.
	ListSavedItems(ctx context.Context, uid string) ([]*BrowsedProduct, error)

	// SelectMall persists the shopper's mall scope across devices.
	SelectMall(ctx context.Context, uid, mallID string) error

	// ClearSelectedMall drops the persisted mall scope.
	ClearSelectedMall(ctx context.Context, uid string) error
}
