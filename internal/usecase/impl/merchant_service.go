// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"
	"supermall/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const initialPasswordLength = 12

const initialPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// merchantService implements the MerchantUsecase interface. It owns the
// mall capacity ledger: every assignment change runs inside one document
// transaction that re-reads the malls involved, so the counter invariant
// holds under concurrent admins.
type merchantService struct {
	txManager   repository.DocumentTxManager
	profileRepo repository.ProfileRepository
	mallRepo    repository.MallRepository
	identity    service.IdentityProvider
	hasher      service.PasswordHasher
	audit       service.AuditTrail
	logger      *slog.Logger
}

// MerchantServiceParams holds dependencies for MerchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager   repository.DocumentTxManager
	ProfileRepo repository.ProfileRepository
	MallRepo    repository.MallRepository
	Identity    service.IdentityProvider
	Hasher      service.PasswordHasher
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		mallRepo:    params.MallRepo,
		identity:    params.Identity,
		hasher:      params.Hasher,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMerchant creates the identity account and the merchant profile,
// optionally assigning a mall. The profile write and the mall counter
// increment commit together; if the transaction fails after the identity
// account was created, the account is deleted again so no orphan remains.
func (srv *merchantService) CreateMerchant(ctx context.Context, input *usecase.CreateMerchantInput) (*usecase.MerchantOutput, error) {
	if !validation.Required(input.Name) || !validation.Email(input.Email) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("merchant name and a valid email are required")
	}

	if _, err := srv.profileRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check merchant email")
	}

	// Early capacity read. This is advisory only; the authoritative check
	// happens on the transactional re-read below.
	if input.MallID != "" {
		mall, err := srv.mallRepo.FindByID(ctx, input.MallID)
		if err != nil {
			if errors.Is(err, repository.ErrMallNotFound) {
				return nil, domainerrors.ErrMallNotFound
			}

			return nil, errors.Wrap(err, "failed to load mall for merchant creation")
		}
		if !mall.CanAdmit() {
			return nil, domainerrors.ErrCapacityExceeded
		}
	}

	password := input.Password
	if password == "" {
		generated, err := generateInitialPassword()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate initial password")
		}
		password = generated
	}
	if !validation.Password(password) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password does not meet the minimum length")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash initial password")
	}

	identity, err := srv.identity.CreateAccount(ctx, input.Email, password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &entity.Profile{
		UID:                 identity.UID,
		Name:                input.Name,
		Email:               input.Email,
		Role:                entity.RoleMerchant,
		ContactNumber:       input.ContactNumber,
		InitialPasswordHash: hash,
		MustChangePassword:  true,
		CreatedBy:           input.ActorUID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.MallID == "" {
			return repoFactory.ProfileRepo().Create(ctx, profile)
		}

		mall, err := repoFactory.MallRepo().FindByID(ctx, input.MallID)
		if err != nil {
			if errors.Is(err, repository.ErrMallNotFound) {
				return domainerrors.ErrMallNotFound
			}

			return errors.Wrap(err, "failed to load mall in transaction")
		}
		if !mall.Admit() {
			return domainerrors.ErrCapacityExceeded
		}
		mall.UpdatedAt = now

		profile.MallID = mall.ID
		profile.MallName = mall.MallName

		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return err
		}

		return repoFactory.MallRepo().Update(ctx, mall)
	})
	if err != nil {
		// The identity account exists but the profile does not. Remove
		// the account again so the email stays reusable.
		if delErr := srv.identity.DeleteAccount(ctx, identity.UID); delErr != nil {
			srv.log(ctx).Error("failed to clean up identity account after aborted merchant creation",
				slog.String("uid", identity.UID),
				slog.Any("error", delErr),
			)
		}

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "merchant.create",
		Description: "merchant account created",
		Metadata: map[string]string{
			"merchant_uid": profile.UID,
			"mall_id":      profile.MallID,
		},
	})

	return &usecase.MerchantOutput{Profile: profile, InitialPassword: password}, nil
}

// UpdateMerchant updates profile fields and, when MallID is set, moves the
// merchant between malls. A reassignment admits into the destination
// before releasing the source, all in one transaction, so a full
// destination aborts the move with both counters untouched.
func (srv *merchantService) UpdateMerchant(ctx context.Context, input *usecase.UpdateMerchantInput) (*usecase.MerchantOutput, error) {
	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		mallRepo := repoFactory.MallRepo()

		profile, err := profileRepo.FindByUID(ctx, input.UID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load merchant in transaction")
		}
		if profile.Role != entity.RoleMerchant {
			return domainerrors.ErrProfileNotFound.WrapMessage("account is not a merchant")
		}

		now := time.Now().UTC()
		if input.Name != "" {
			profile.Name = input.Name
		}
		if input.ContactNumber != "" {
			profile.ContactNumber = input.ContactNumber
		}
		profile.UpdatedAt = now

		var malls []*entity.Mall
		if input.MallID != nil && *input.MallID != profile.MallID {
			malls, err = srv.moveMerchant(ctx, mallRepo, profile, *input.MallID, now)
			if err != nil {
				return err
			}
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}
		for _, mall := range malls {
			if err := mallRepo.Update(ctx, mall); err != nil {
				return err
			}
		}
		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("failed to update merchant",
			slog.String("uid", input.UID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "merchant.update",
		Description: "merchant account updated",
		Metadata: map[string]string{
			"merchant_uid": updated.UID,
			"mall_id":      updated.MallID,
		},
	})

	return &usecase.MerchantOutput{Profile: updated}, nil
}

// moveMerchant applies the assignment change to the in-memory entities and
// returns the malls that must be written back. Transactional reads all
// happen here, before the caller issues any write.
func (srv *merchantService) moveMerchant(
	ctx context.Context,
	mallRepo repository.MallRepository,
	profile *entity.Profile,
	targetMallID string,
	now time.Time,
) ([]*entity.Mall, error) {
	var malls []*entity.Mall
	var target *entity.Mall

	// Admit into the destination first. If it is full nothing has been
	// mutated yet and the error aborts the whole transaction.
	if targetMallID != "" {
		loaded, err := mallRepo.FindByID(ctx, targetMallID)
		if err != nil {
			if errors.Is(err, repository.ErrMallNotFound) {
				return nil, domainerrors.ErrMallNotFound
			}

			return nil, errors.Wrap(err, "failed to load destination mall")
		}
		if !loaded.Admit() {
			return nil, domainerrors.ErrCapacityExceeded
		}
		loaded.UpdatedAt = now
		target = loaded
		malls = append(malls, target)
	}

	// Release the source slot. A missing source mall only logs: the
	// assignment itself must still be clearable.
	if profile.MallID != "" {
		source, err := mallRepo.FindByID(ctx, profile.MallID)
		if err != nil {
			if !errors.Is(err, repository.ErrMallNotFound) {
				return nil, errors.Wrap(err, "failed to load source mall")
			}
			srv.log(ctx).Warn("source mall missing during merchant move",
				slog.String("mall_id", profile.MallID),
			)
		} else {
			source.Release()
			source.UpdatedAt = now
			malls = append(malls, source)
		}
	}

	if target != nil {
		profile.MallID = target.ID
		profile.MallName = target.MallName
	} else {
		profile.MallID = ""
		profile.MallName = ""
	}

	return malls, nil
}

// DeleteMerchant removes the profile together with its shops, their
// products and offers, releases the mall slot, and deletes the identity
// account. The whole cascade runs in one transaction, reads before
// writes, so nothing in the catalog is left pointing at a gone profile.
func (srv *merchantService) DeleteMerchant(ctx context.Context, actorUID, uid string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		mallRepo := repoFactory.MallRepo()
		shopRepo := repoFactory.ShopRepo()
		productRepo := repoFactory.ProductRepo()
		offerRepo := repoFactory.OfferRepo()

		profile, err := profileRepo.FindByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load merchant in transaction")
		}
		if profile.Role != entity.RoleMerchant {
			return domainerrors.ErrProfileNotFound.WrapMessage("account is not a merchant")
		}

		var mall *entity.Mall
		if profile.IsAssigned() {
			mall, err = mallRepo.FindByID(ctx, profile.MallID)
			if err != nil && !errors.Is(err, repository.ErrMallNotFound) {
				return errors.Wrap(err, "failed to load mall in transaction")
			}
		}

		shops, err := shopRepo.ListByOwner(ctx, uid)
		if err != nil {
			return errors.Wrap(err, "failed to list merchant shops in transaction")
		}
		products, err := productRepo.ListByOwner(ctx, uid)
		if err != nil {
			return errors.Wrap(err, "failed to list merchant products in transaction")
		}
		offers, err := offerRepo.ListByOwner(ctx, uid)
		if err != nil {
			return errors.Wrap(err, "failed to list merchant offers in transaction")
		}

		for _, offer := range offers {
			if err := offerRepo.Delete(ctx, offer.ID); err != nil {
				return err
			}
		}
		for _, product := range products {
			if err := productRepo.Delete(ctx, product.ID); err != nil {
				return err
			}
		}
		for _, shop := range shops {
			if err := shopRepo.Delete(ctx, shop.ID); err != nil {
				return err
			}
		}

		if err := profileRepo.Delete(ctx, uid); err != nil {
			return err
		}
		if mall != nil {
			mall.Release()
			mall.UpdatedAt = time.Now().UTC()

			return mallRepo.Update(ctx, mall)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if delErr := srv.identity.DeleteAccount(ctx, uid); delErr != nil {
		srv.log(ctx).Error("failed to delete identity account for removed merchant",
			slog.String("uid", uid),
			slog.Any("error", delErr),
		)
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "merchant.delete",
		Description: "merchant account deleted with its shops, products and offers",
		Metadata:    map[string]string{"merchant_uid": uid},
	})

	return nil
}

// GetMerchant loads one merchant profile.
func (srv *merchantService) GetMerchant(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load merchant")
	}
	if profile.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrProfileNotFound
	}

	return profile, nil
}

// ListMerchants lists every merchant profile.
func (srv *merchantService) ListMerchants(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.ListByRole(ctx, entity.RoleMerchant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	return profiles, nil
}

// generateInitialPassword draws a random password from an alphabet with
// the usual lookalike characters removed.
func generateInitialPassword() (string, error) {
	out := make([]byte, initialPasswordLength)
	max := big.NewInt(int64(len(initialPasswordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = initialPasswordAlphabet[n.Int64()]
	}

	return string(out), nil
}
