package repository

import (
	"context"
	"errors"

	"supermall/internal/domain/entity"
)

// ErrShopNotFound is a domain-specific error returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the standard operations for shop persistence.
type ShopRepository interface {
	// FindByID retrieves a single shop by its document id.
	FindByID(ctx context.Context, id string) (*entity.Shop, error)

	// List retrieves every shop across all malls.
	List(ctx context.Context) ([]*entity.Shop, error)

	// ListByMall retrieves all shops inside a mall.
	ListByMall(ctx context.Context, mallID string) ([]*entity.Shop, error)

	// ListByOwner retrieves all shops owned by a merchant.
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Shop, error)

	// Create persists a new shop and fills in the server-assigned id.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update replaces an existing shop document.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop document.
	Delete(ctx context.Context, id string) error
}
