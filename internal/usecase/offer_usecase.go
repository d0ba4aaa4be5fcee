package usecase

import (
	"context"
	"time"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// CreateOfferInput defines the data a merchant supplies to attach a
// discount to one of their products. Discount is a percentage in [0,100].
type CreateOfferInput struct {
	OwnerUID    string
	ProductID   string
	Discount    float64
	ValidTill   time.Time
	Description string
}

// UpdateOfferInput defines the data for updating an offer.
type UpdateOfferInput struct {
	OwnerUID    string
	ID          string
	Discount    float64
	ValidTill   time.Time
	Description string
}

// OfferUsecase defines the merchant-side offer operations plus the
// shopper-facing reads. Expiry is evaluated at read time; there is no
// background job sweeping expired offers.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, input *UpdateOfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, ownerUID, id string) error

	GetOffer(ctx context.Context, id string) (*entity.Offer, error)
	ListMyOffers(ctx context.Context, ownerUID string) ([]*entity.Offer, error)

	// ListProductOffers returns the unexpired offers on a product.
	ListProductOffers(ctx context.Context, productID string) ([]*entity.Offer, error)

	// ListMallOffers returns the unexpired offers across a mall's catalog.
	ListMallOffers(ctx context.Context, mallID string) ([]*entity.Offer, error)
}
