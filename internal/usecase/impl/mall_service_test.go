package impl

import (
	"context"
	"testing"

	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mallServiceFixtures struct {
	service usecase.MallUsecase
	store   *memStore
	audit   *fakeAudit
}

func createTestMallService(t *testing.T) mallServiceFixtures {
	t.Helper()
	store := newMemStore()
	audit := &fakeAudit{}

	service := NewMallService(MallServiceParams{
		TxManager: &fakeTxManager{store: store},
		MallRepo:  &fakeMallRepo{store},
		Audit:     audit,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return mallServiceFixtures{service: service, store: store, audit: audit}
}

func TestMallService_CreateMall_DefaultsCapacity(t *testing.T) {
	fx := createTestMallService(t)

	mall, err := fx.service.CreateMall(context.Background(), &usecase.CreateMallInput{
		ActorUID: "admin-1",
		MallName: "Central Mall",
		Location: "Taipei",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, mall.ID)
	assert.Equal(t, 10, mall.MaxMerchants)
	assert.Equal(t, 0, mall.CurrentMerchants)
	assert.Contains(t, fx.audit.actions(), "mall.create")
}

func TestMallService_CreateMall_RejectsNegativeCapacity(t *testing.T) {
	fx := createTestMallService(t)

	_, err := fx.service.CreateMall(context.Background(), &usecase.CreateMallInput{
		ActorUID:     "admin-1",
		MallName:     "Central Mall",
		Location:     "Taipei",
		MaxMerchants: -1,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, fx.store.malls)
}

func TestMallService_CreateMall_RequiresNameAndLocation(t *testing.T) {
	fx := createTestMallService(t)

	_, err := fx.service.CreateMall(context.Background(), &usecase.CreateMallInput{
		ActorUID: "admin-1",
		MallName: "  ",
		Location: "Taipei",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMallService_UpdateMall_RejectsCapacityBelowCurrent(t *testing.T) {
	fx := createTestMallService(t)
	mall := seedMall(fx.store, "Busy Mall", 5, 3)

	_, err := fx.service.UpdateMall(context.Background(), &usecase.UpdateMallInput{
		ActorUID:     "admin-1",
		ID:           mall.ID,
		MaxMerchants: 2,
	})

	require.ErrorIs(t, err, domainerrors.ErrMaxBelowCurrent)
	assert.Equal(t, 5, fx.store.malls[mall.ID].MaxMerchants)
}

func TestMallService_UpdateMall_ShrinkToCurrentIsAllowed(t *testing.T) {
	fx := createTestMallService(t)
	mall := seedMall(fx.store, "Busy Mall", 5, 3)

	updated, err := fx.service.UpdateMall(context.Background(), &usecase.UpdateMallInput{
		ActorUID:     "admin-1",
		ID:           mall.ID,
		MaxMerchants: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.MaxMerchants)
	assert.Equal(t, 3, updated.CurrentMerchants)
}

func TestMallService_UpdateMall_NotFound(t *testing.T) {
	fx := createTestMallService(t)

	_, err := fx.service.UpdateMall(context.Background(), &usecase.UpdateMallInput{
		ActorUID: "admin-1",
		ID:       "missing",
		MallName: "Renamed",
	})

	require.ErrorIs(t, err, domainerrors.ErrMallNotFound)
}

func TestMallService_DeleteMall_RejectsNonEmptyMall(t *testing.T) {
	fx := createTestMallService(t)
	mall := seedMall(fx.store, "Occupied Mall", 5, 1)

	err := fx.service.DeleteMall(context.Background(), "admin-1", mall.ID)

	require.ErrorIs(t, err, domainerrors.ErrMallNotEmpty)
	assert.Contains(t, fx.store.malls, mall.ID)
}

func TestMallService_DeleteMall_EmptyMall(t *testing.T) {
	fx := createTestMallService(t)
	mall := seedMall(fx.store, "Empty Mall", 5, 0)

	err := fx.service.DeleteMall(context.Background(), "admin-1", mall.ID)

	require.NoError(t, err)
	assert.NotContains(t, fx.store.malls, mall.ID)
	assert.Contains(t, fx.audit.actions(), "mall.delete")
}

func TestMallService_GetMall_NotFound(t *testing.T) {
	fx := createTestMallService(t)

	_, err := fx.service.GetMall(context.Background(), "missing")

	require.ErrorIs(t, err, domainerrors.ErrMallNotFound)
}
