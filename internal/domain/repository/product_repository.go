package repository

import (
	"context"
	"errors"

	"supermall/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// Filtering is pushed down to indexed field queries where the store
// supports it; anything finer (active-offer intersection) stays in the
// use case layer.
type ProductRepository interface {
	// FindByID retrieves a single product by its document id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs retrieves the products for the given ids, skipping ids
	// that no longer resolve to a document.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)

	// ListByShop retrieves all products attached to a shop.
	ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error)

	// ListByShops retrieves all products attached to any of the given shops.
	ListByShops(ctx context.Context, shopIDs []string) ([]*entity.Product, error)

	// ListByOwner retrieves all products owned by a merchant.
	ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Product, error)

	// Create persists a new product and fills in the server-assigned id.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product document.
	Delete(ctx context.Context, id string) error
}
