package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// LookupUsecase manages the admin-maintained category and floor lists
// offered in shop forms. Reads are public; writes are admin-only.
type LookupUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	AddCategory(ctx context.Context, actorUID, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, actorUID, id string) error

	ListFloors(ctx context.Context) ([]*entity.Floor, error)
	AddFloor(ctx context.Context, actorUID, name string) (*entity.Floor, error)
	DeleteFloor(ctx context.Context, actorUID, id string) error
}
