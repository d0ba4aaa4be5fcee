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

// offerService implements the OfferUsecase interface.
type offerService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	audit       service.AuditTrail
	logger      *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		offerRepo:   params.OfferRepo,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer attaches a discount to a product the caller owns.
func (srv *offerService) CreateOffer(ctx context.Context, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if !validation.Discount(input.Discount) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount must be a percentage between 0 and 100")
	}
	if input.ValidTill.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("offer validity date is required")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for offer")
	}
	if product.OwnerUID != input.OwnerUID {
		return nil, domainerrors.ErrProductNotFound
	}

	now := time.Now().UTC()
	offer := &entity.Offer{
		ProductID:   product.ID,
		Discount:    input.Discount,
		ValidTill:   input.ValidTill,
		Description: input.Description,
		OwnerUID:    input.OwnerUID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("failed to create offer", slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.OwnerUID,
		Action:      "offer.create",
		Description: "offer created",
		Metadata:    map[string]string{"offer_id": offer.ID, "product_id": product.ID},
	})

	return offer, nil
}

// UpdateOffer updates an offer the caller owns.
func (srv *offerService) UpdateOffer(ctx context.Context, input *usecase.UpdateOfferInput) (*entity.Offer, error) {
	offer, err := srv.ownedOffer(ctx, input.OwnerUID, input.ID)
	if err != nil {
		return nil, err
	}

	if !validation.Discount(input.Discount) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount must be a percentage between 0 and 100")
	}

	offer.Discount = input.Discount
	if !input.ValidTill.IsZero() {
		offer.ValidTill = input.ValidTill
	}
	if input.Description != "" {
		offer.Description = input.Description
	}
	offer.UpdatedAt = time.Now().UTC()

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.OwnerUID,
		Action:      "offer.update",
		Description: "offer updated",
		Metadata:    map[string]string{"offer_id": offer.ID},
	})

	return offer, nil
}

// DeleteOffer removes an offer the caller owns.
func (srv *offerService) DeleteOffer(ctx context.Context, ownerUID, id string) error {
	if _, err := srv.ownedOffer(ctx, ownerUID, id); err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    ownerUID,
		Action:      "offer.delete",
		Description: "offer deleted",
		Metadata:    map[string]string{"offer_id": id},
	})

	return nil
}

// GetOffer loads one offer.
func (srv *offerService) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	return offer, nil
}

// ListMyOffers lists the caller's offers, expired ones included so they
// can be maintained.
func (srv *offerService) ListMyOffers(ctx context.Context, ownerUID string) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers by owner")
	}

	return offers, nil
}

// ListProductOffers returns the unexpired offers on a product.
func (srv *offerService) ListProductOffers(ctx context.Context, productID string) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers by product")
	}

	now := time.Now().UTC()
	active := offers[:0:0]
	for _, offer := range offers {
		if offer.IsActive(now) {
			active = append(active, offer)
		}
	}

	return active, nil
}

// ListMallOffers returns the unexpired offers across a mall's catalog.
func (srv *offerService) ListMallOffers(ctx context.Context, mallID string) ([]*entity.Offer, error) {
	shops, err := srv.shopRepo.ListByMall(ctx, mallID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mall shops")
	}
	if len(shops) == 0 {
		return nil, nil
	}

	shopIDs := make([]string, 0, len(shops))
	for _, shop := range shops {
		shopIDs = append(shopIDs, shop.ID)
	}

	products, err := srv.productRepo.ListByShops(ctx, shopIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mall products")
	}
	if len(products) == 0 {
		return nil, nil
	}

	productIDs := make([]string, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	offers, err := srv.offerRepo.ListActiveByProducts(ctx, productIDs, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active mall offers")
	}

	return offers, nil
}

// ownedOffer loads an offer and checks the caller owns it.
func (srv *offerService) ownedOffer(ctx context.Context, ownerUID, id string) (*entity.Offer, error) {
	offer, err := srv.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.OwnerUID != ownerUID {
		return nil, domainerrors.ErrOfferNotFound
	}

	return offer, nil
}
