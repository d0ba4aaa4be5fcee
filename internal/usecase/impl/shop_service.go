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

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager   repository.DocumentTxManager
	profileRepo repository.ProfileRepository
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	qrcode      service.QRCodeService
	audit       service.AuditTrail
	logger      *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager   repository.DocumentTxManager
	ProfileRepo repository.ProfileRepository
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	QRCode      service.QRCodeService
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		offerRepo:   params.OfferRepo,
		qrcode:      params.QRCode,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop creates a shop inside the owner's assigned mall. An
// unassigned merchant cannot own shops; the shop inherits the mall
// denormalization from the owner's profile. Admins create on behalf of
// a merchant by passing an OwnerUID different from their own.
func (srv *shopService) CreateShop(ctx context.Context, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if !validation.Required(input.ShopName) || !validation.Required(input.Category) || !validation.Required(input.Floor) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop name, category and floor are required")
	}
	if !validation.Required(input.OwnerUID) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop owner is required")
	}

	owner, err := srv.profileRepo.FindByUID(ctx, input.OwnerUID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load shop owner")
	}
	if owner.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrProfileNotFound.WrapMessage("shop owner is not a merchant")
	}
	if !owner.IsAssigned() {
		return nil, domainerrors.ErrMerchantNotAssigned
	}

	now := time.Now().UTC()
	shop := &entity.Shop{
		ShopName:      input.ShopName,
		Category:      input.Category,
		Floor:         input.Floor,
		Description:   input.Description,
		ContactNumber: input.ContactNumber,
		ImageURL:      input.ImageURL,
		OwnerUID:      owner.UID,
		MallID:        owner.MallID,
		MallName:      owner.MallName,
		CreatedBy:     input.ActorUID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		srv.log(ctx).Error("failed to create shop", slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "shop.create",
		Description: "shop created",
		Metadata:    map[string]string{"shop_id": shop.ID, "owner_uid": shop.OwnerUID, "mall_id": shop.MallID},
	})

	return shop, nil
}

// UpdateShop updates a shop the caller owns.
func (srv *shopService) UpdateShop(ctx context.Context, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := srv.ownedShop(ctx, input.ActorUID, input.ID)
	if err != nil {
		return nil, err
	}

	return srv.saveShopUpdate(ctx, shop, input)
}

// AdminUpdateShop updates any shop on behalf of an administrator.
func (srv *shopService) AdminUpdateShop(ctx context.Context, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := srv.GetShop(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return srv.saveShopUpdate(ctx, shop, input)
}

// saveShopUpdate applies the non-empty fields and persists the shop.
// Authorization has already happened in the caller.
func (srv *shopService) saveShopUpdate(ctx context.Context, shop *entity.Shop, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if input.ShopName != "" {
		shop.ShopName = input.ShopName
	}
	if input.Category != "" {
		shop.Category = input.Category
	}
	if input.Floor != "" {
		shop.Floor = input.Floor
	}
	if input.Description != "" {
		shop.Description = input.Description
	}
	if input.ContactNumber != "" {
		shop.ContactNumber = input.ContactNumber
	}
	if input.ImageURL != "" {
		shop.ImageURL = input.ImageURL
	}
	shop.UpdatedAt = time.Now().UTC()

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "shop.update",
		Description: "shop updated",
		Metadata:    map[string]string{"shop_id": shop.ID},
	})

	return shop, nil
}

// DeleteShop removes the shop, its products, and every offer on those
// products in one transaction. The reads all run before the first delete,
// as the store requires, so the cascade commits or aborts as a unit.
func (srv *shopService) DeleteShop(ctx context.Context, ownerUID, id string) error {
	if _, err := srv.ownedShop(ctx, ownerUID, id); err != nil {
		return err
	}

	return srv.deleteShopTree(ctx, ownerUID, id)
}

// AdminDeleteShop removes any shop with the same product and offer
// cascade, on behalf of an administrator.
func (srv *shopService) AdminDeleteShop(ctx context.Context, actorUID, id string) error {
	if _, err := srv.GetShop(ctx, id); err != nil {
		return err
	}

	return srv.deleteShopTree(ctx, actorUID, id)
}

func (srv *shopService) deleteShopTree(ctx context.Context, actorUID, id string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()
		productRepo := repoFactory.ProductRepo()
		offerRepo := repoFactory.OfferRepo()

		products, err := productRepo.ListByShop(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list shop products in transaction")
		}

		var offerIDs []string
		for _, product := range products {
			offers, err := offerRepo.ListByProduct(ctx, product.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list product offers in transaction")
			}
			for _, offer := range offers {
				offerIDs = append(offerIDs, offer.ID)
			}
		}

		for _, offerID := range offerIDs {
			if err := offerRepo.Delete(ctx, offerID); err != nil {
				return err
			}
		}
		for _, product := range products {
			if err := productRepo.Delete(ctx, product.ID); err != nil {
				return err
			}
		}

		return shopRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("failed to delete shop",
			slog.String("shop_id", id),
			slog.Any("error", err),
		)

		return err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "shop.delete",
		Description: "shop deleted with its products and offers",
		Metadata:    map[string]string{"shop_id": id},
	})

	return nil
}

// GetShop loads one shop for the public directory page.
func (srv *shopService) GetShop(ctx context.Context, id string) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// ListMyShops lists the caller's shops.
func (srv *shopService) ListMyShops(ctx context.Context, ownerUID string) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by owner")
	}

	return shops, nil
}

// AdminListShops lists every shop across all malls for administration.
func (srv *shopService) AdminListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListShopsByMall lists a mall's shops for the public directory.
func (srv *shopService) ListShopsByMall(ctx context.Context, mallID string) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.ListByMall(ctx, mallID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by mall")
	}

	return shops, nil
}

// ShopQRCode renders the QR code PNG for an existing shop.
func (srv *shopService) ShopQRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := srv.GetShop(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateShopQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

// ownedShop loads a shop and checks the caller owns it. Non-owners get
// the same not-found error as missing shops so ownership is not probeable.
func (srv *shopService) ownedShop(ctx context.Context, ownerUID, id string) (*entity.Shop, error) {
	shop, err := srv.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop.OwnerUID != ownerUID {
		return nil, domainerrors.ErrShopNotFound
	}

	return shop, nil
}
