package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// AuditUsecase exposes the action trail to administrators.
type AuditUsecase interface {
	// ListLogs returns the most recent action log records, newest first.
	// The page size is fixed by configuration.
	ListLogs(ctx context.Context) ([]*entity.ActionLog, error)
}
