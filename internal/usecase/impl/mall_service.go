package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"supermall/config"
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

// mallService implements the MallUsecase interface.
type mallService struct {
	txManager           repository.DocumentTxManager
	mallRepo            repository.MallRepository
	audit               service.AuditTrail
	defaultMaxMerchants int
	logger              *slog.Logger
}

// MallServiceParams holds dependencies for MallService, injected by Fx.
type MallServiceParams struct {
	fx.In

	TxManager repository.DocumentTxManager
	MallRepo  repository.MallRepository
	Audit     service.AuditTrail
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMallService is the constructor for mallService.
func NewMallService(params MallServiceParams) usecase.MallUsecase {
	return &mallService{
		txManager:           params.TxManager,
		mallRepo:            params.MallRepo,
		audit:               params.Audit,
		defaultMaxMerchants: params.Config.Mall.DefaultMaxMerchants,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mallService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMall creates a mall with an empty merchant ledger.
func (srv *mallService) CreateMall(ctx context.Context, input *usecase.CreateMallInput) (*entity.Mall, error) {
	if !validation.Required(input.MallName) || !validation.Required(input.Location) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("mall name and location are required")
	}

	maxMerchants := input.MaxMerchants
	if maxMerchants == 0 {
		maxMerchants = srv.defaultMaxMerchants
	}
	if maxMerchants < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("merchant capacity cannot be negative")
	}

	now := time.Now().UTC()
	mall := &entity.Mall{
		MallName:         input.MallName,
		Location:         input.Location,
		Description:      input.Description,
		MaxMerchants:     maxMerchants,
		CurrentMerchants: 0,
		CreatedBy:        input.ActorUID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := srv.mallRepo.Create(ctx, mall); err != nil {
		srv.log(ctx).Error("failed to create mall", slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "mall.create",
		Description: "mall created",
		Metadata:    map[string]string{"mall_id": mall.ID},
	})

	return mall, nil
}

// UpdateMall updates mall fields. The capacity limit may not drop below
// the number of merchants currently assigned; the check runs on the
// transactional read so a concurrent assignment cannot slip past it.
func (srv *mallService) UpdateMall(ctx context.Context, input *usecase.UpdateMallInput) (*entity.Mall, error) {
	if input.MaxMerchants < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("merchant capacity cannot be negative")
	}

	var updated *entity.Mall
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mallRepo := repoFactory.MallRepo()

		mall, err := mallRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrMallNotFound) {
				return domainerrors.ErrMallNotFound
			}

			return errors.Wrap(err, "failed to load mall in transaction")
		}

		if input.MaxMerchants > 0 && input.MaxMerchants < mall.CurrentMerchants {
			return domainerrors.ErrMaxBelowCurrent.WrapMessage(
				"current merchants: " + strconv.Itoa(mall.CurrentMerchants))
		}

		if input.MallName != "" {
			mall.MallName = input.MallName
		}
		if input.Location != "" {
			mall.Location = input.Location
		}
		if input.Description != "" {
			mall.Description = input.Description
		}
		if input.MaxMerchants > 0 {
			mall.MaxMerchants = input.MaxMerchants
		}
		mall.UpdatedAt = time.Now().UTC()

		if err := mallRepo.Update(ctx, mall); err != nil {
			return err
		}
		updated = mall

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    input.ActorUID,
		Action:      "mall.update",
		Description: "mall updated",
		Metadata:    map[string]string{"mall_id": updated.ID},
	})

	return updated, nil
}

// DeleteMall removes a mall. The transactional read guarantees the mall is
// still empty at commit time; a mall holding merchants is never deleted.
func (srv *mallService) DeleteMall(ctx context.Context, actorUID, id string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mallRepo := repoFactory.MallRepo()

		mall, err := mallRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMallNotFound) {
				return domainerrors.ErrMallNotFound
			}

			return errors.Wrap(err, "failed to load mall in transaction")
		}
		if mall.CurrentMerchants > 0 {
			return domainerrors.ErrMallNotEmpty
		}

		return mallRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    actorUID,
		Action:      "mall.delete",
		Description: "mall deleted",
		Metadata:    map[string]string{"mall_id": id},
	})

	return nil
}

// GetMall loads one mall.
func (srv *mallService) GetMall(ctx context.Context, id string) (*entity.Mall, error) {
	mall, err := srv.mallRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMallNotFound) {
			return nil, domainerrors.ErrMallNotFound
		}

		return nil, errors.Wrap(err, "failed to load mall")
	}

	return mall, nil
}

// ListMalls lists every mall for the public directory.
func (srv *mallService) ListMalls(ctx context.Context) ([]*entity.Mall, error) {
	malls, err := srv.mallRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list malls")
	}

	return malls, nil
}
