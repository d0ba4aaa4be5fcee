package repository

import (
	"context"
	"errors"
	"time"

	"supermall/internal/domain/entity"
)

// ErrOfferNotFound is a domain-specific error returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the standard operations for offer persistence.
// "Active" is a read-time filter on validTill; expired offers stay in the
// store until their owner deletes them.
type OfferRepository interface {
	// FindByID retrieves a single offer by its document id.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// ListByProduct retrieves all offers attached to a product.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Offer, error)

	// ListByOwner retrieves all offers owned by a merchant.
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Offer, error)

	// ListActiveByProducts retrieves offers for any of the given products
	// whose validTill is at or after the given instant.
	ListActiveByProducts(ctx context.Context, productIDs []string, now time.Time) ([]*entity.Offer, error)

	// Create persists a new offer and fills in the server-assigned id.
	Create(ctx context.Context, offer *entity.Offer) error

	// Update replaces an existing offer document.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer document.
	Delete(ctx context.Context, id string) error
}
