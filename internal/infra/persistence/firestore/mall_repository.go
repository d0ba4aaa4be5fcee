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

// mallRepository implements the domain.MallRepository interface on the
// 'malls' collection.
type mallRepository struct {
	store
}

// NewMallRepository is the constructor for mallRepository.
func NewMallRepository(client *fs.Client) repository.MallRepository {
	return &mallRepository{store: store{client: client}}
}

func (repo *mallRepository) ref(id string) *fs.DocumentRef {
	return repo.client.Collection(mallsCollection).Doc(id)
}

// FindByID retrieves a single mall by its document id.
func (repo *mallRepository) FindByID(ctx context.Context, id string) (*entity.Mall, error) {
	snap, err := repo.get(ctx, repo.ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrMallNotFound
		}

		return nil, errors.Wrap(err, "failed to find mall by id")
	}

	var m model.MallModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode mall document")
	}

	return model.ToMallDomain(snap.Ref.ID, &m), nil
}

// List retrieves all malls ordered by name.
func (repo *mallRepository) List(ctx context.Context) ([]*entity.Mall, error) {
	query := repo.client.Collection(mallsCollection).OrderBy("mallName", fs.Asc)

	var malls []*entity.Mall
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.MallModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode mall document")
		}
		malls = append(malls, model.ToMallDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list malls")
	}

	return malls, nil
}

// Create persists a new mall and fills in the server-assigned id.
func (repo *mallRepository) Create(ctx context.Context, mall *entity.Mall) error {
	ref := repo.client.Collection(mallsCollection).NewDoc()
	if err := repo.store.create(ctx, ref, model.FromMallDomain(mall)); err != nil {
		return errors.Wrap(err, "failed to create mall")
	}
	mall.ID = ref.ID

	return nil
}

// Update replaces an existing mall document.
func (repo *mallRepository) Update(ctx context.Context, mall *entity.Mall) error {
	if err := repo.set(ctx, repo.ref(mall.ID), model.FromMallDomain(mall)); err != nil {
		return errors.Wrap(err, "failed to update mall")
	}

	return nil
}

// Delete removes a mall document.
func (repo *mallRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.delete(ctx, repo.ref(id)); err != nil {
		return errors.Wrap(err, "failed to delete mall")
	}

	return nil
}
