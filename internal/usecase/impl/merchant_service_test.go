package impl

import (
	"context"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type merchantServiceFixtures struct {
	service   usecase.MerchantUsecase
	store     *memStore
	txManager *fakeTxManager
	identity  *fakeIdentity
	audit     *fakeAudit
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	t.Helper()
	store := newMemStore()
	txManager := &fakeTxManager{store: store}
	identity := newFakeIdentity()
	audit := &fakeAudit{}

	service := NewMerchantService(MerchantServiceParams{
		TxManager:   txManager,
		ProfileRepo: &fakeProfileRepo{store},
		MallRepo:    &fakeMallRepo{store},
		Identity:    identity,
		Hasher:      fakeHasher{},
		Audit:       audit,
		Logger:      newDiscardLogger(),
	})

	return merchantServiceFixtures{
		service:   service,
		store:     store,
		txManager: txManager,
		identity:  identity,
		audit:     audit,
	}
}

func seedMall(store *memStore, name string, maxMerchants, currentMerchants int) *entity.Mall {
	mall := &entity.Mall{
		MallName:         name,
		Location:         "Taipei",
		MaxMerchants:     maxMerchants,
		CurrentMerchants: currentMerchants,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	_ = (&fakeMallRepo{store}).Create(context.Background(), mall)

	return mall
}

func seedMerchant(t *testing.T, fx merchantServiceFixtures, email, mallID string) *entity.Profile {
	t.Helper()
	output, err := fx.service.CreateMerchant(context.Background(), &usecase.CreateMerchantInput{
		ActorUID: "admin-1",
		Name:     "Merchant " + email,
		Email:    email,
		MallID:   mallID,
	})
	require.NoError(t, err)

	return output.Profile
}

func TestMerchantService_CreateMerchant_AssignsMall(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "North Mall", 2, 0)

	output, err := fx.service.CreateMerchant(context.Background(), &usecase.CreateMerchantInput{
		ActorUID:      "admin-1",
		Name:          "Coffee Stand",
		Email:         "coffee@example.com",
		ContactNumber: "0912345678",
		MallID:        mall.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleMerchant, output.Profile.Role)
	assert.Equal(t, mall.ID, output.Profile.MallID)
	assert.Equal(t, "North Mall", output.Profile.MallName)
	assert.True(t, output.Profile.MustChangePassword)
	assert.NotEmpty(t, output.InitialPassword)
	assert.NotEqual(t, output.InitialPassword, output.Profile.InitialPasswordHash)

	stored := fx.store.malls[mall.ID]
	assert.Equal(t, 1, stored.CurrentMerchants)
	assert.Contains(t, fx.audit.actions(), "merchant.create")
}

func TestMerchantService_CreateMerchant_CapacityExceeded(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Tiny Mall", 1, 0)
	seedMerchant(t, fx, "first@example.com", mall.ID)

	_, err := fx.service.CreateMerchant(context.Background(), &usecase.CreateMerchantInput{
		ActorUID: "admin-1",
		Name:     "Second Merchant",
		Email:    "second@example.com",
		MallID:   mall.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
	assert.Equal(t, 1, fx.store.malls[mall.ID].CurrentMerchants)
	assert.Len(t, fx.store.profiles, 1)
}

func TestMerchantService_CreateMerchant_DuplicateEmail(t *testing.T) {
	fx := createTestMerchantService(t)
	seedMerchant(t, fx, "dup@example.com", "")

	_, err := fx.service.CreateMerchant(context.Background(), &usecase.CreateMerchantInput{
		ActorUID: "admin-1",
		Name:     "Duplicate",
		Email:    "dup@example.com",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestMerchantService_CreateMerchant_CleansUpIdentityOnTxFailure(t *testing.T) {
	fx := createTestMerchantService(t)
	fx.txManager.failWith = errors.New("store unavailable")

	_, err := fx.service.CreateMerchant(context.Background(), &usecase.CreateMerchantInput{
		ActorUID: "admin-1",
		Name:     "Orphan Candidate",
		Email:    "orphan@example.com",
	})

	require.Error(t, err)
	assert.Equal(t, []string{"uid-1"}, fx.identity.deleted)
	assert.Empty(t, fx.store.profiles)
}

func TestMerchantService_UpdateMerchant_ReassignMovesCounters(t *testing.T) {
	fx := createTestMerchantService(t)
	mallA := seedMall(fx.store, "Mall A", 1, 0)
	mallB := seedMall(fx.store, "Mall B", 1, 0)
	merchant := seedMerchant(t, fx, "mover@example.com", mallA.ID)

	output, err := fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		MallID:   &mallB.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, mallB.ID, output.Profile.MallID)
	assert.Equal(t, "Mall B", output.Profile.MallName)
	assert.Equal(t, 0, fx.store.malls[mallA.ID].CurrentMerchants)
	assert.Equal(t, 1, fx.store.malls[mallB.ID].CurrentMerchants)

	// Moving back restores the original counters.
	_, err = fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		MallID:   &mallA.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.store.malls[mallA.ID].CurrentMerchants)
	assert.Equal(t, 0, fx.store.malls[mallB.ID].CurrentMerchants)
}

func TestMerchantService_UpdateMerchant_FullDestinationAbortsMove(t *testing.T) {
	fx := createTestMerchantService(t)
	mallA := seedMall(fx.store, "Mall A", 1, 0)
	mallB := seedMall(fx.store, "Mall B", 1, 0)
	merchant := seedMerchant(t, fx, "mover@example.com", mallA.ID)
	seedMerchant(t, fx, "occupant@example.com", mallB.ID)

	_, err := fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		MallID:   &mallB.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrCapacityExceeded)
	assert.Equal(t, 1, fx.store.malls[mallA.ID].CurrentMerchants)
	assert.Equal(t, 1, fx.store.malls[mallB.ID].CurrentMerchants)
	assert.Equal(t, mallA.ID, fx.store.profiles[merchant.UID].MallID)
}

func TestMerchantService_UpdateMerchant_UnassignReleasesSlot(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 1, 0)
	merchant := seedMerchant(t, fx, "leaver@example.com", mall.ID)

	unassigned := ""
	output, err := fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		MallID:   &unassigned,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Profile.MallID)
	assert.Empty(t, output.Profile.MallName)
	assert.Equal(t, 0, fx.store.malls[mall.ID].CurrentMerchants)
}

func TestMerchantService_UpdateMerchant_UnassignSurvivesMissingMall(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 1, 0)
	merchant := seedMerchant(t, fx, "stranded@example.com", mall.ID)
	delete(fx.store.malls, mall.ID)

	unassigned := ""
	output, err := fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		MallID:   &unassigned,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Profile.MallID)
}

func TestMerchantService_UpdateMerchant_NilMallIDLeavesAssignment(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 1, 0)
	merchant := seedMerchant(t, fx, "stay@example.com", mall.ID)

	output, err := fx.service.UpdateMerchant(context.Background(), &usecase.UpdateMerchantInput{
		ActorUID: "admin-1",
		UID:      merchant.UID,
		Name:     "Renamed Merchant",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Merchant", output.Profile.Name)
	assert.Equal(t, mall.ID, output.Profile.MallID)
	assert.Equal(t, 1, fx.store.malls[mall.ID].CurrentMerchants)
}

func TestMerchantService_DeleteMerchant_ReleasesSlotAndIdentity(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 1, 0)
	merchant := seedMerchant(t, fx, "gone@example.com", mall.ID)

	err := fx.service.DeleteMerchant(context.Background(), "admin-1", merchant.UID)

	require.NoError(t, err)
	assert.Empty(t, fx.store.profiles)
	assert.Equal(t, 0, fx.store.malls[mall.ID].CurrentMerchants)
	assert.Contains(t, fx.identity.deleted, merchant.UID)
}

func TestMerchantService_DeleteMerchant_CascadesShopsProductsOffers(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 2, 0)
	merchant := seedMerchant(t, fx, "closing@example.com", mall.ID)

	shop := &entity.Shop{ShopName: "Closing Shop", Category: "Food", Floor: "1F", OwnerUID: merchant.UID, MallID: mall.ID}
	require.NoError(t, (&fakeShopRepo{fx.store}).Create(context.Background(), shop))
	product := &entity.Product{Name: "Widget", Price: 10, ShopID: shop.ID, OwnerUID: merchant.UID}
	require.NoError(t, (&fakeProductRepo{fx.store}).Create(context.Background(), product))
	require.NoError(t, (&fakeOfferRepo{fx.store}).Create(context.Background(), &entity.Offer{
		ProductID: product.ID,
		Discount:  10,
		ValidTill: time.Now().UTC().Add(time.Hour),
		OwnerUID:  merchant.UID,
	}))

	// A shop owned by someone else survives.
	other := &entity.Shop{ShopName: "Other Shop", Category: "Food", Floor: "2F", OwnerUID: "merchant-other", MallID: mall.ID}
	require.NoError(t, (&fakeShopRepo{fx.store}).Create(context.Background(), other))

	err := fx.service.DeleteMerchant(context.Background(), "admin-1", merchant.UID)

	require.NoError(t, err)
	assert.NotContains(t, fx.store.profiles, merchant.UID)
	assert.NotContains(t, fx.store.shops, shop.ID)
	assert.Empty(t, fx.store.products)
	assert.Empty(t, fx.store.offers)
	assert.Contains(t, fx.store.shops, other.ID)
	assert.Equal(t, 0, fx.store.malls[mall.ID].CurrentMerchants)
}

func TestMerchantService_DeleteMerchant_CounterClampsAtZero(t *testing.T) {
	fx := createTestMerchantService(t)
	mall := seedMall(fx.store, "Mall A", 1, 0)
	merchant := seedMerchant(t, fx, "clamped@example.com", mall.ID)

	// Simulate a previously inconsistent ledger.
	fx.store.malls[mall.ID].CurrentMerchants = 0

	err := fx.service.DeleteMerchant(context.Background(), "admin-1", merchant.UID)

	require.NoError(t, err)
	assert.Equal(t, 0, fx.store.malls[mall.ID].CurrentMerchants)
}

func TestMerchantService_DeleteMerchant_NotAMerchant(t *testing.T) {
	fx := createTestMerchantService(t)
	_ = (&fakeProfileRepo{fx.store}).Create(context.Background(), &entity.Profile{
		UID:  "shopper-1",
		Role: entity.RoleUser,
	})

	err := fx.service.DeleteMerchant(context.Background(), "admin-1", "shopper-1")

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Len(t, fx.store.profiles, 1)
}
