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

// profileRepository implements the domain.ProfileRepository interface on
// the 'users' collection. Documents are keyed by the identity provider uid.
type profileRepository struct {
	store
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *fs.Client) repository.ProfileRepository {
	return &profileRepository{store: store{client: client}}
}

func (repo *profileRepository) ref(uid string) *fs.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(uid)
}

// FindByUID retrieves a single profile by its identity uid.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	snap, err := repo.get(ctx, repo.ref(uid))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by uid")
	}

	var m model.ProfileModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return model.ToProfileDomain(snap.Ref.ID, &m), nil
}

// FindByEmail retrieves a single profile by email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := repo.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1)

	var found *entity.Profile
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.ProfileModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode profile document")
		}
		found = model.ToProfileDomain(snap.Ref.ID, &m)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by email")
	}
	if found == nil {
		return nil, repository.ErrProfileNotFound
	}

	return found, nil
}

// ListByRole retrieves all profiles carrying the given role.
func (repo *profileRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error) {
	query := repo.client.Collection(usersCollection).
		Where("role", "==", role.String())

	var profiles []*entity.Profile
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.ProfileModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode profile document")
		}
		profiles = append(profiles, model.ToProfileDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return profiles, nil
}

// Create persists a new profile document keyed by its UID.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if err := repo.store.create(ctx, repo.ref(profile.UID), model.FromProfileDomain(profile)); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// Update replaces an existing profile document.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	if err := repo.set(ctx, repo.ref(profile.UID), model.FromProfileDomain(profile)); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// Delete removes a profile document.
func (repo *profileRepository) Delete(ctx context.Context, uid string) error {
	if err := repo.store.delete(ctx, repo.ref(uid)); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}
