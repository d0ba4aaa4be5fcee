package impl

import (
	"context"
	"time"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"
	"supermall/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// lookupService implements the LookupUsecase interface.
type lookupService struct {
	lookupRepo repository.LookupRepository
	audit      service.AuditTrail
}

// LookupServiceParams holds dependencies for LookupService, injected by Fx.
type LookupServiceParams struct {
	fx.In

	LookupRepo repository.LookupRepository
	Audit      service.AuditTrail
}

// NewLookupService is the constructor for lookupService.
func NewLookupService(params LookupServiceParams) usecase.LookupUsecase {
	return &lookupService{
		lookupRepo: params.LookupRepo,
		audit:      params.Audit,
	}
}

func (srv *lookupService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.lookupRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *lookupService) AddCategory(ctx context.Context, actorUID, name string) (*entity.Category, error) {
	if !validation.Required(name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	category := &entity.Category{Name: name, CreatedAt: time.Now().UTC()}
	if err := srv.lookupRepo.AddCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to add category")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "lookup.category_add",
		Description: "category added",
		Metadata:    map[string]string{"category_id": category.ID},
	})

	return category, nil
}

func (srv *lookupService) DeleteCategory(ctx context.Context, actorUID, id string) error {
	if err := srv.lookupRepo.DeleteCategory(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "lookup.category_delete",
		Description: "category deleted",
		Metadata:    map[string]string{"category_id": id},
	})

	return nil
}

func (srv *lookupService) ListFloors(ctx context.Context) ([]*entity.Floor, error) {
	floors, err := srv.lookupRepo.ListFloors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list floors")
	}

	return floors, nil
}

func (srv *lookupService) AddFloor(ctx context.Context, actorUID, name string) (*entity.Floor, error) {
	if !validation.Required(name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("floor name is required")
	}

	floor := &entity.Floor{Name: name, CreatedAt: time.Now().UTC()}
	if err := srv.lookupRepo.AddFloor(ctx, floor); err != nil {
		return nil, errors.Wrap(err, "failed to add floor")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "lookup.floor_add",
		Description: "floor added",
		Metadata:    map[string]string{"floor_id": floor.ID},
	})

	return floor, nil
}

func (srv *lookupService) DeleteFloor(ctx context.Context, actorUID, id string) error {
	if err := srv.lookupRepo.DeleteFloor(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete floor")
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "lookup.floor_delete",
		Description: "floor deleted",
		Metadata:    map[string]string{"floor_id": id},
	})

	return nil
}
