package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// CreateMallInput defines the data required to create a mall.
// MaxMerchants of zero means "use the configured default".
type CreateMallInput struct {
	ActorUID     string
	MallName     string
	Location     string
	Description  string
	MaxMerchants int
}

// UpdateMallInput defines the data for updating a mall. MaxMerchants may
// not drop below the current merchant count.
type UpdateMallInput struct {
	ActorUID     string
	ID           string
	MallName     string
	Location     string
	Description  string
	MaxMerchants int
}

// MallUsecase defines the admin-side mall operations plus the public
// directory listing.
type MallUsecase interface {
	CreateMall(ctx context.Context, input *CreateMallInput) (*entity.Mall, error)
	UpdateMall(ctx context.Context, input *UpdateMallInput) (*entity.Mall, error)

	// DeleteMall removes an empty mall. A mall still holding merchants
	// cannot be deleted; merchants must be unassigned first.
	DeleteMall(ctx context.Context, actorUID, id string) error

	GetMall(ctx context.Context, id string) (*entity.Mall, error)
	ListMalls(ctx context.Context) ([]*entity.Mall, error)
}
