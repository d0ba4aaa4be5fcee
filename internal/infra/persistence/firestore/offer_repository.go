package firestore

import (
	"context"
	"time"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// offerRepository implements the domain.OfferRepository interface on the
// 'offers' collection.
type offerRepository struct {
	store
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(client *fs.Client) repository.OfferRepository {
	return &offerRepository{store: store{client: client}}
}

func (repo *offerRepository) ref(id string) *fs.DocumentRef {
	return repo.client.Collection(offersCollection).Doc(id)
}

func (repo *offerRepository) list(ctx context.Context, query fs.Query) ([]*entity.Offer, error) {
	var offers []*entity.Offer
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.OfferModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode offer document")
		}
		offers = append(offers, model.ToOfferDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// FindByID retrieves a single offer by its document id.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	snap, err := repo.get(ctx, repo.ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	var m model.OfferModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode offer document")
	}

	return model.ToOfferDomain(snap.Ref.ID, &m), nil
}

// ListByProduct retrieves all offers attached to a product.
func (repo *offerRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Offer, error) {
	offers, err := repo.list(ctx, repo.client.Collection(offersCollection).Where("productId", "==", productID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers by product")
	}

	return offers, nil
}

// ListByOwner retrieves all offers owned by a merchant.
func (repo *offerRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*entity.Offer, error) {
	offers, err := repo.list(ctx, repo.client.Collection(offersCollection).Where("ownerId", "==", ownerUID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers by owner")
	}

	return offers, nil
}

// ListActiveByProducts retrieves offers for any of the given products whose
// validTill is at or after the given instant. Expiry is a read-time filter;
// expired offers stay stored until their owner removes them.
func (repo *offerRepository) ListActiveByProducts(ctx context.Context, productIDs []string, now time.Time) ([]*entity.Offer, error) {
	var offers []*entity.Offer
	for _, ids := range chunk(productIDs) {
		query := repo.client.Collection(offersCollection).
			Where("productId", "in", ids).
			Where("validTill", ">=", now)
		part, err := repo.list(ctx, query)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list active offers by products")
		}
		offers = append(offers, part...)
	}

	return offers, nil
}

// Create persists a new offer and fills in the server-assigned id.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	ref := repo.client.Collection(offersCollection).NewDoc()
	if err := repo.store.create(ctx, ref, model.FromOfferDomain(offer)); err != nil {
		return errors.Wrap(err, "failed to create offer")
	}
	offer.ID = ref.ID

	return nil
}

// Update replaces an existing offer document.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	if err := repo.set(ctx, repo.ref(offer.ID), model.FromOfferDomain(offer)); err != nil {
		return errors.Wrap(err, "failed to update offer")
	}

	return nil
}

// Delete removes an offer document.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.ref(id)); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}
