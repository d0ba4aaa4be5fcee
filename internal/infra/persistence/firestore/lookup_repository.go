package firestore

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// lookupRepository implements the domain.LookupRepository interface on the
// 'categories' and 'floors' collections.
type lookupRepository struct {
	store
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(client *fs.Client) repository.LookupRepository {
	return &lookupRepository{store: store{client: client}}
}

func (repo *lookupRepository) listModels(ctx context.Context, collection string) ([]string, []*model.LookupModel, error) {
	query := repo.client.Collection(collection).OrderBy("name", fs.Asc)

	var ids []string
	var models []*model.LookupModel
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.LookupModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode lookup document")
		}
		ids = append(ids, snap.Ref.ID)
		models = append(models, &m)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return ids, models, nil
}

// ListCategories retrieves all shop categories ordered by name.
func (repo *lookupRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ids, models, err := repo.listModels(ctx, categoriesCollection)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(models))
	for i, m := range models {
		categories = append(categories, model.ToCategoryDomain(ids[i], m))
	}

	return categories, nil
}

// AddCategory persists a new category and fills in the server-assigned id.
func (repo *lookupRepository) AddCategory(ctx context.Context, category *entity.Category) error {
	ref := repo.client.Collection(categoriesCollection).NewDoc()
	m := &model.LookupModel{Name: category.Name, CreatedAt: category.CreatedAt}
	if err := repo.store.create(ctx, ref, m); err != nil {
		return errors.Wrap(err, "failed to add category")
	}
	category.ID = ref.ID

	return nil
}

// DeleteCategory removes a category document.
func (repo *lookupRepository) DeleteCategory(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.client.Collection(categoriesCollection).Doc(id)); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// ListFloors retrieves all floors ordered by name.
func (repo *lookupRepository) ListFloors(ctx context.Context) ([]*entity.Floor, error) {
	ids, models, err := repo.listModels(ctx, floorsCollection)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list floors")
	}

	floors := make([]*entity.Floor, 0, len(models))
	for i, m := range models {
		floors = append(floors, model.ToFloorDomain(ids[i], m))
	}

	return floors, nil
}

// AddFloor persists a new floor and fills in the server-assigned id.
func (repo *lookupRepository) AddFloor(ctx context.Context, floor *entity.Floor) error {
	ref := repo.client.Collection(floorsCollection).NewDoc()
	m := &model.LookupModel{Name: floor.Name, CreatedAt: floor.CreatedAt}
	if err := repo.store.create(ctx, ref, m); err != nil {
		return errors.Wrap(err, "failed to add floor")
	}
	floor.ID = ref.ID

	return nil
}

// DeleteFloor removes a floor document.
func (repo *lookupRepository) DeleteFloor(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.client.Collection(floorsCollection).Doc(id)); err != nil {
		return errors.Wrap(err, "failed to delete floor")
	}

	return nil
}
