package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data a merchant supplies to create a
// product under one of their shops.
type CreateProductInput struct {
	OwnerUID string
	ShopID   string
	Name     string
	Price    float64
	Features []string
	ImageURL string
}

// UpdateProductInput defines the data for updating a product.
type UpdateProductInput struct {
	OwnerUID string
	ID       string
	Name     string
	Price    float64
	Features []string
	ImageURL string
}

// BrowseProductsInput filters the shopper-facing product listing of one
// mall. Nil price bounds mean unbounded; WithActiveOffer keeps only
// products that carry at least one unexpired offer.
type BrowseProductsInput struct {
	MallID          string
	ShopID          string
	MinPrice        *float64
	MaxPrice        *float64
	WithActiveOffer bool
}

// --- Output DTOs ---

// BrowsedProduct pairs a product with its currently active offers.
type BrowsedProduct struct {
	Product      *entity.Product
	ActiveOffers []*entity.Offer
}

// ProductUsecase defines the merchant-side product operations plus the
// shopper-facing browsing and comparison reads.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, ownerUID, id string) error

	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListMyProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error)
	ListShopProducts(ctx context.Context, shopID string) ([]*entity.Product, error)

	// BrowseProducts resolves the filtered listing for one mall.
	BrowseProducts(ctx context.Context, input *BrowseProductsInput) ([]*BrowsedProduct, error)

	// CompareProducts loads the requested products side by side, skipping
	// ids that no longer exist.
	CompareProducts(ctx context.Context, ids []string) ([]*BrowsedProduct, error)
}
