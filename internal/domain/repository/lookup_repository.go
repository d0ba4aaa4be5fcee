package repository

import (
	"context"

	"supermall/internal/domain/entity"
)

// LookupRepository manages the admin-maintained category and floor lists
// offered in shop forms.
type LookupRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	AddCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id string) error

	ListFloors(ctx context.Context) ([]*entity.Floor, error)
	AddFloor(ctx context.Context, floor *entity.Floor) error
	DeleteFloor(ctx context.Context, id string) error
}
