package impl

import (
	"context"
	"log/slog"
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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.DocumentTxManager
	profileRepo repository.ProfileRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	mallRepo    repository.MallRepository
	audit       service.AuditTrail
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.DocumentTxManager
	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	MallRepo    repository.MallRepository
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		productRepo: params.ProductRepo,
		offerRepo:   params.OfferRepo,
		mallRepo:    params.MallRepo,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the caller's own profile.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// UpdateProfile updates the self-service fields. Role and mall assignment
// stay untouched regardless of what the caller sends.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if !validation.Required(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	profile, err := srv.GetProfile(ctx, input.UID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.ContactNumber = input.ContactNumber
	profile.UpdatedAt = time.Now().UTC()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// ToggleSavedItem flips the product's membership in the saved set inside a
// transaction, so two devices toggling at once cannot lose an item.
func (srv *profileService) ToggleSavedItem(ctx context.Context, uid, productID string) (*usecase.ToggleSavedItemOutput, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for saved toggle")
	}

	var saved bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load profile in transaction")
		}

		saved = profile.ToggleSavedItem(productID)
		profile.UpdatedAt = time.Now().UTC()

		return profileRepo.Update(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	action := "profile.unsave_item"
	if saved {
		action = "profile.save_item"
	}
	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    uid,
		Action:      action,
		Description: "saved items toggled",
		Metadata:    map[string]string{"product_id": productID},
	})

	return &usecase.ToggleSavedItemOutput{ProductID: productID, Saved: saved}, nil
}

// ListSavedItems resolves the saved set to products and their active
// offers. Products deleted since saving are skipped, not errors.
func (srv *profileService) ListSavedItems(ctx context.Context, uid string) ([]*usecase.BrowsedProduct, error) {
	profile, err := srv.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(profile.SavedItems) == 0 {
		return nil, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, profile.SavedItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve saved items")
	}

	return attachActiveOffers(ctx, srv.offerRepo, products, time.Now().UTC())
}

// SelectMall persists the shopper's mall scope.
func (srv *profileService) SelectMall(ctx context.Context, uid, mallID string) error {
	if _, err := srv.mallRepo.FindByID(ctx, mallID); err != nil {
		if errors.Is(err, repository.ErrMallNotFound) {
			return domainerrors.ErrMallNotFound
		}

		return errors.Wrap(err, "failed to load mall for selection")
	}

	profile, err := srv.GetProfile(ctx, uid)
	if err != nil {
		return err
	}

	profile.SelectedMallID = mallID
	profile.UpdatedAt = time.Now().UTC()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to persist mall selection")
	}

	return nil
}

// ClearSelectedMall drops the persisted mall scope.
func (srv *profileService) ClearSelectedMall(ctx context.Context, uid string) error {
	profile, err := srv.GetProfile(ctx, uid)
	if err != nil {
		return err
	}
	if profile.SelectedMallID == "" {
		return nil
	}

	profile.SelectedMallID = ""
	profile.UpdatedAt = time.Now().UTC()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to clear mall selection")
	}

	return nil
}

// attachActiveOffers pairs each product with its unexpired offers.
func attachActiveOffers(
	ctx context.Context,
	offerRepo repository.OfferRepository,
	products []*entity.Product,
	now time.Time,
) ([]*usecase.BrowsedProduct, error) {
	if len(products) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	offers, err := offerRepo.ListActiveByProducts(ctx, ids, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active offers")
	}

	byProduct := make(map[string][]*entity.Offer, len(offers))
	for _, offer := range offers {
		byProduct[offer.ProductID] = append(byProduct[offer.ProductID], offer)
	}

	out := make([]*usecase.BrowsedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, &usecase.BrowsedProduct{
			Product:      p,
			ActiveOffers: byProduct[p.ID],
		})
	}

	return out, nil
}
