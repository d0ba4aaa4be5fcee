package impl

import (
	"context"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service usecase.OfferUsecase
	store   *memStore
	audit   *fakeAudit
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	t.Helper()
	store := newMemStore()
	audit := &fakeAudit{}

	service := NewOfferService(OfferServiceParams{
		ShopRepo:    &fakeShopRepo{store},
		ProductRepo: &fakeProductRepo{store},
		OfferRepo:   &fakeOfferRepo{store},
		Audit:       audit,
		Logger:      newDiscardLogger(),
	})

	return offerServiceFixtures{service: service, store: store, audit: audit}
}

func TestOfferService_CreateOffer_ValidatesDiscountRange(t *testing.T) {
	fx := createTestOfferService(t)
	shop := seedShop(fx.store, "merchant-1", "mall-1")
	product := seedShopProduct(fx.store, shop, "Latte", 120)
	validTill := time.Now().UTC().Add(24 * time.Hour)

	for _, discount := range []float64{0, 100} {
		offer, err := fx.service.CreateOffer(context.Background(), &usecase.CreateOfferInput{
			OwnerUID:  "merchant-1",
			ProductID: product.ID,
			Discount:  discount,
			ValidTill: validTill,
		})
		require.NoError(t, err)
		assert.Equal(t, discount, offer.Discount)
	}

	for _, discount := range []float64{-1, 150} {
		_, err := fx.service.CreateOffer(context.Background(), &usecase.CreateOfferInput{
			OwnerUID:  "merchant-1",
			ProductID: product.ID,
			Discount:  discount,
			ValidTill: validTill,
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestOfferService_CreateOffer_RequiresValidity(t *testing.T) {
	fx := createTestOfferService(t)
	shop := seedShop(fx.store, "merchant-1", "mall-1")
	product := seedShopProduct(fx.store, shop, "Latte", 120)

	_, err := fx.service.CreateOffer(context.Background(), &usecase.CreateOfferInput{
		OwnerUID:  "merchant-1",
		ProductID: product.ID,
		Discount:  10,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_CreateOffer_ForeignProductLooksMissing(t *testing.T) {
	fx := createTestOfferService(t)
	shop := seedShop(fx.store, "merchant-1", "mall-1")
	product := seedShopProduct(fx.store, shop, "Latte", 120)

	_, err := fx.service.CreateOffer(context.Background(), &usecase.CreateOfferInput{
		OwnerUID:  "merchant-2",
		ProductID: product.ID,
		Discount:  10,
		ValidTill: time.Now().UTC().Add(time.Hour),
	})

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOfferService_ListProductOffers_FiltersExpired(t *testing.T) {
	fx := createTestOfferService(t)
	shop := seedShop(fx.store, "merchant-1", "mall-1")
	product := seedShopProduct(fx.store, shop, "Latte", 120)
	now := time.Now().UTC()

	offerRepo := &fakeOfferRepo{fx.store}
	require.NoError(t, offerRepo.Create(context.Background(), &entity.Offer{
		ProductID: product.ID,
		Discount:  20,
		ValidTill: now.Add(time.Hour),
		OwnerUID:  "merchant-1",
	}))
	require.NoError(t, offerRepo.Create(context.Background(), &entity.Offer{
		ProductID: product.ID,
		Discount:  40,
		ValidTill: now.Add(-time.Hour),
		OwnerUID:  "merchant-1",
	}))

	offers, err := fx.service.ListProductOffers(context.Background(), product.ID)

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, float64(20), offers[0].Discount)
}

func TestOfferService_ListMallOffers_CrossesShops(t *testing.T) {
	fx := createTestOfferService(t)
	shopA := seedShop(fx.store, "merchant-1", "mall-1")
	shopB := seedShop(fx.store, "merchant-2", "mall-1")
	productA := seedShopProduct(fx.store, shopA, "A", 10)
	productB := seedShopProduct(fx.store, shopB, "B", 20)
	seedActiveOffer(fx.store, productA, 10)
	seedActiveOffer(fx.store, productB, 30)

	// An offer in a different mall stays out of the listing.
	otherShop := seedShop(fx.store, "merchant-3", "mall-2")
	otherProduct := seedShopProduct(fx.store, otherShop, "Elsewhere", 15)
	seedActiveOffer(fx.store, otherProduct, 50)

	offers, err := fx.service.ListMallOffers(context.Background(), "mall-1")

	require.NoError(t, err)
	assert.Len(t, offers, 2)
}

func TestOfferService_DeleteOffer_NonOwnerSeesNotFound(t *testing.T) {
	fx := createTestOfferService(t)
	shop := seedShop(fx.store, "merchant-1", "mall-1")
	product := seedShopProduct(fx.store, shop, "Latte", 120)
	offer := seedActiveOffer(fx.store, product, 10)

	err := fx.service.DeleteOffer(context.Background(), "merchant-2", offer.ID)

	require.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	assert.Contains(t, fx.store.offers, offer.ID)
}
