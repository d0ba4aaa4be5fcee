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

// productRepository implements the domain.ProductRepository interface on
// the 'products' collection.
type productRepository struct {
	store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *fs.Client) repository.ProductRepository {
	return &productRepository{store: store{client: client}}
}

func (repo *productRepository) ref(id string) *fs.DocumentRef {
	return repo.client.Collection(productsCollection).Doc(id)
}

func (repo *productRepository) list(ctx context.Context, query fs.Query) ([]*entity.Product, error) {
	var products []*entity.Product
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.ProductModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode product document")
		}
		products = append(products, model.ToProductDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindByID retrieves a single product by its document id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.get(ctx, repo.ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	var m model.ProductModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return model.ToProductDomain(snap.Ref.ID, &m), nil
}

// FindByIDs retrieves the products for the given ids. Ids that no longer
// resolve to a document are silently skipped, so stale saved-item lists
// never fail the whole read.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*fs.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.ref(id))
	}

	snaps, err := repo.getAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var m model.ProductModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}
		products = append(products, model.ToProductDomain(snap.Ref.ID, &m))
	}

	return products, nil
}

// ListByShop retrieves all products attached to a shop.
func (repo *productRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error) {
	products, err := repo.list(ctx, repo.client.Collection(productsCollection).Where("shopId", "==", shopID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by shop")
	}

	return products, nil
}

// ListByShops retrieves all products attached to any of the given shops.
func (repo *productRepository) ListByShops(ctx context.Context, shopIDs []string) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, ids := range chunk(shopIDs) {
		part, err := repo.list(ctx, repo.client.Collection(productsCollection).Where("shopId", "in", ids))
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products by shops")
		}
		products = append(products, part...)
	}

	return products, nil
}

// ListByOwner retrieves all products owned by a merchant.
func (repo *productRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Product, error) {
	products, err := repo.list(ctx, repo.client.Collection(productsCollection).Where("ownerId", "==", ownerUID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by owner")
	}

	return products, nil
}

// Create persists a new product and fills in the server-assigned id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ref := repo.client.Collection(productsCollection).NewDoc()
	if err := repo.store.create(ctx, ref, model.FromProductDomain(product)); err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	product.ID = ref.ID

	return nil
}

// Update replaces an existing product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := repo.set(ctx, repo.ref(product.ID), model.FromProductDomain(product)); err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes a product document.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.ref(id)); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
