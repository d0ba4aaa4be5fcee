package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookupRepo struct {
	mu         sync.Mutex
	nextID     int
	categories map[string]*entity.Category
	floors     map[string]*entity.Floor
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{
		categories: make(map[string]*entity.Category),
		floors:     make(map[string]*entity.Floor),
	}
}

func (r *fakeLookupRepo) ListCategories(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}

	return out, nil
}

func (r *fakeLookupRepo) AddCategory(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	category.ID = fmt.Sprintf("category-%d", r.nextID)
	r.categories[category.ID] = category

	return nil
}

func (r *fakeLookupRepo) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)

	return nil
}

func (r *fakeLookupRepo) ListFloors(_ context.Context) ([]*entity.Floor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Floor
	for _, f := range r.floors {
		out = append(out, f)
	}

	return out, nil
}

func (r *fakeLookupRepo) AddFloor(_ context.Context, floor *entity.Floor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	floor.ID = fmt.Sprintf("floor-%d", r.nextID)
	r.floors[floor.ID] = floor

	return nil
}

func (r *fakeLookupRepo) DeleteFloor(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.floors, id)

	return nil
}

func createTestLookupService(t *testing.T) (usecase.LookupUsecase, *fakeLookupRepo, *fakeAudit) {
	t.Helper()
	repo := newFakeLookupRepo()
	audit := &fakeAudit{}
	service := NewLookupService(LookupServiceParams{
		LookupRepo: repo,
		Audit:      audit,
	})

	return service, repo, audit
}

func TestLookupService_AddAndDeleteCategory(t *testing.T) {
	service, repo, audit := createTestLookupService(t)

	category, err := service.AddCategory(context.Background(), "admin-1", "Food")
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Contains(t, repo.categories, category.ID)

	require.NoError(t, service.DeleteCategory(context.Background(), "admin-1", category.ID))
	assert.Empty(t, repo.categories)
	assert.Equal(t, []string{"lookup.category_add", "lookup.category_delete"}, audit.actions())
}

func TestLookupService_AddCategory_RequiresName(t *testing.T) {
	service, _, _ := createTestLookupService(t)

	_, err := service.AddCategory(context.Background(), "admin-1", "  ")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLookupService_AddAndListFloors(t *testing.T) {
	service, _, _ := createTestLookupService(t)

	_, err := service.AddFloor(context.Background(), "admin-1", "1F")
	require.NoError(t, err)
	_, err = service.AddFloor(context.Background(), "admin-1", "2F")
	require.NoError(t, err)

	floors, err := service.ListFloors(context.Background())
	require.NoError(t, err)
	assert.Len(t, floors, 2)
}
