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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.DocumentTxManager
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	audit       service.AuditTrail
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.DocumentTxManager
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		offerRepo:   params.OfferRepo,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct creates a product under one of the caller's shops.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !validation.Required(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if !validation.Price(input.Price) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be a non-negative number")
	}

	shop, err := srv.shopRepo.FindByID(ctx, input.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to load shop for product")
	}
	if shop.OwnerUID != input.OwnerUID {
		return nil, domainerrors.ErrShopNotFound
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:      input.Name,
		Price:     input.Price,
		Features:  input.Features,
		ImageURL:  input.ImageURL,
		ShopID:    shop.ID,
		OwnerUID:  input.OwnerUID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("failed to create product", slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.OwnerUID,
		Action:      "product.create",
		Description: "product created",
		Metadata:    map[string]string{"product_id": product.ID, "shop_id": shop.ID},
	})

	return product, nil
}

// UpdateProduct updates a product the caller owns.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, input.OwnerUID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Price > 0 {
		if !validation.Price(input.Price) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be a non-negative number")
		}
		product.Price = input.Price
	}
	if input.Features != nil {
		product.Features = input.Features
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.OwnerUID,
		Action:      "product.update",
		Description: "product updated",
		Metadata:    map[string]string{"product_id": product.ID},
	})

	return product, nil
}

// DeleteProduct removes a product together with its offers in one
// transaction, so no offer ever points at a missing product.
func (srv *productService) DeleteProduct(ctx context.Context, ownerUID, id string) error {
	if _, err := srv.ownedProduct(ctx, ownerUID, id); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		offerRepo := repoFactory.OfferRepo()

		offers, err := offerRepo.ListByProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list product offers in transaction")
		}

		for _, offer := range offers {
			if err := offerRepo.Delete(ctx, offer.ID); err != nil {
				return err
			}
		}

		return productRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("failed to delete product",
			slog.String("product_id", id),
			slog.Any("error", err),
		)

		return err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    ownerUID,
		Action:      "product.delete",
		Description: "product deleted with its offers",
		Metadata:    map[string]string{"product_id": id},
	})

	return nil
}

// GetProduct loads one product.
func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListMyProducts lists the caller's products across all their shops.
func (srv *productService) ListMyProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by owner")
	}

	return products, nil
}

// ListShopProducts lists one shop's products for the public shop page.
func (srv *productService) ListShopProducts(ctx context.Context, shopID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by shop")
	}

	return products, nil
}

// BrowseProducts resolves the shopper-facing filtered listing. Shop and
// price filters are applied here rather than pushed to the store; a mall's
// catalog is small enough that indexed composite queries are not worth
// their maintenance.
func (srv *productService) BrowseProducts(ctx context.Context, input *usecase.BrowseProductsInput) ([]*usecase.BrowsedProduct, error) {
	if input.MallID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("mall id is required")
	}

	shops, err := srv.shopRepo.ListByMall(ctx, input.MallID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mall shops")
	}
	if len(shops) == 0 {
		return nil, nil
	}

	shopIDs := make([]string, 0, len(shops))
	for _, shop := range shops {
		if input.ShopID != "" && shop.ID != input.ShopID {
			continue
		}
		shopIDs = append(shopIDs, shop.ID)
	}
	if len(shopIDs) == 0 {
		return nil, nil
	}

	products, err := srv.productRepo.ListByShops(ctx, shopIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mall products")
	}

	filtered := products[:0:0]
	for _, product := range products {
		if input.MinPrice != nil && product.Price < *input.MinPrice {
			continue
		}
		if input.MaxPrice != nil && product.Price > *input.MaxPrice {
			continue
		}
		filtered = append(filtered, product)
	}

	browsed, err := attachActiveOffers(ctx, srv.offerRepo, filtered, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if input.WithActiveOffer {
		withOffers := browsed[:0:0]
		for _, b := range browsed {
			if len(b.ActiveOffers) > 0 {
				withOffers = append(withOffers, b)
			}
		}
		browsed = withOffers
	}

	return browsed, nil
}

// CompareProducts loads the requested products side by side with their
// active offers. Missing ids are skipped.
func (srv *productService) CompareProducts(ctx context.Context, ids []string) ([]*usecase.BrowsedProduct, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one product id is required")
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products for comparison")
	}

	return attachActiveOffers(ctx, srv.offerRepo, products, time.Now().UTC())
}

// ownedProduct loads a product and checks the caller owns it.
func (srv *productService) ownedProduct(ctx context.Context, ownerUID, id string) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.OwnerUID != ownerUID {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}
