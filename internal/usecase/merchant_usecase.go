package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// CreateMerchantInput defines the data an admin supplies to create a
// merchant account. Password is optional; when empty a random initial
// password is generated and returned exactly once.
type CreateMerchantInput struct {
	ActorUID      string
	Name          string
	Email         string
	Password      string
	ContactNumber string

	// MallID is optional. When set, the merchant is assigned on creation
	// and the mall's merchant counter is incremented in the same
	// transaction that creates the profile.
	MallID string
}

// UpdateMerchantInput defines the data for updating a merchant account.
// MallID drives the capacity ledger: nil leaves the assignment untouched,
// an empty string unassigns, and a mall id assigns or reassigns.
type UpdateMerchantInput struct {
	ActorUID      string
	UID           string
	Name          string
	ContactNumber string
	MallID        *string
}

// --- Output DTOs ---

// MerchantOutput returns a merchant profile. InitialPassword is only set
// on creation and never recoverable afterwards.
type MerchantOutput struct {
	Profile         *entity.Profile
	InitialPassword string
}

// MerchantUsecase defines the admin-side merchant account operations,
// including the mall capacity ledger. Every assignment change re-checks
// capacity inside one document transaction, so concurrent admins cannot
// overfill a mall.
type MerchantUsecase interface {
	CreateMerchant(ctx context.Context, input *CreateMerchantInput) (*MerchantOutput, error)
	UpdateMerchant(ctx context.Context, input *UpdateMerchantInput) (*MerchantOutput, error)

	// DeleteMerchant removes the profile and its identity account, and
	// releases the merchant's mall slot if one is held.
	DeleteMerchant(ctx context.Context, actorUID, uid string) error

	GetMerchant(ctx context.Context, uid string) (*entity.Profile, error)
	ListMerchants(ctx context.Context) ([]*entity.Profile, error)
}
