package impl

import (
	"context"

	"supermall/config"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	logs      repository.ActionLogRepository
	listLimit int
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	Logs   repository.ActionLogRepository
	Config *config.Config
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		logs:      params.Logs,
		listLimit: params.Config.Audit.ListLimit,
	}
}

// ListLogs returns the most recent action log records, newest first.
func (srv *auditService) ListLogs(ctx context.Context) ([]*entity.ActionLog, error) {
	logs, err := srv.logs.List(ctx, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list action logs")
	}

	return logs, nil
}
