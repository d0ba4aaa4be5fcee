package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// CreateShopInput defines the data for creating a shop. Merchants create
// for themselves (ActorUID == OwnerUID); admins create on behalf of a
// merchant. The shop lands in the owner's assigned mall; unassigned
// merchants cannot own shops.
type CreateShopInput struct {
	ActorUID      string
	OwnerUID      string
	ShopName      string
	Category      string
	Floor         string
	Description   string
	ContactNumber string
	ImageURL      string
}

// UpdateShopInput defines the data for updating a shop.
type UpdateShopInput struct {
	ActorUID      string
	ID            string
	ShopName      string
	Category      string
	Floor         string
	Description   string
	ContactNumber string
	ImageURL      string
}

// ShopUsecase defines the merchant- and admin-side shop operations plus
// the public directory reads.
type ShopUsecase interface {
	CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error)
	UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error)

	// DeleteShop removes a shop together with its products and their
	// offers in one transaction, so the catalog never holds orphans.
	DeleteShop(ctx context.Context, ownerUID, id string) error

	// AdminListShops lists every shop across all malls for administration.
	AdminListShops(ctx context.Context) ([]*entity.Shop, error)

	// AdminUpdateShop and AdminDeleteShop operate on any shop regardless
	// of owner; the transport layer only routes admins here.
	AdminUpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error)
	AdminDeleteShop(ctx context.Context, actorUID, id string) error

	GetShop(ctx context.Context, id string) (*entity.Shop, error)
	ListMyShops(ctx context.Context, ownerUID string) ([]*entity.Shop, error)
	ListShopsByMall(ctx context.Context, mallID string) ([]*entity.Shop, error)

	// ShopQRCode renders a printable QR code PNG linking to the shop's
	// public directory page.
	ShopQRCode(ctx context.Context, id string) ([]byte, error)
}
