package firestore

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// shopRepository implements the domain.ShopRepository interface on the
// 'shops' collection.
type shopRepository struct {
	store
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(client *fs.Client) repository.ShopRepository {
	return &shopRepository{store: store{client: client}}
}

func (repo *shopRepository) ref(id string) *fs.DocumentRef {
	return repo.client.Collection(shopsCollection).Doc(id)
}

func (repo *shopRepository) list(ctx context.Context, query fs.Query) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.ShopModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode shop document")
		}
		shops = append(shops, model.ToShopDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shops, nil
}

// FindByID retrieves a single shop by its document id.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	snap, err := repo.get(ctx, repo.ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	var m model.ShopModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode shop document")
	}

	return model.ToShopDomain(snap.Ref.ID, &m), nil
}

// List retrieves every shop across all malls.
func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := repo.list(ctx, repo.client.Collection(shopsCollection).Query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListByMall retrieves all shops inside a mall.
func (repo *shopRepository) ListByMall(ctx context.Context, mallID string) ([]*entity.Shop, error) {
	shops, err := repo.list(ctx, repo.client.Collection(shopsCollection).Where("mallId", "==", mallID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by mall")
	}

	return shops, nil
}

// ListByOwner retrieves all shops owned by a merchant.
func (repo *shopRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Shop, error) {
	shops, err := repo.list(ctx, repo.client.Collection(shopsCollection).Where("ownerId", "==", ownerUID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by owner")
	}

	return shops, nil
}

// Create persists a new shop and fills in the server-assigned id.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	ref := repo.client.Collection(shopsCollection).NewDoc()
	if err := repo.store.create(ctx, ref, model.FromShopDomain(shop)); err != nil {
		return errors.Wrap(err, "failed to create shop")
	}
	shop.ID = ref.ID

	return nil
}

// Update replaces an existing shop document.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	if err := repo.set(ctx, repo.ref(shop.ID), model.FromShopDomain(shop)); err != nil {
		return errors.Wrap(err, "failed to update shop")
	}

	return nil
}

// Delete removes a shop document.
func (repo *shopRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.ref(id)); err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	return nil
}
