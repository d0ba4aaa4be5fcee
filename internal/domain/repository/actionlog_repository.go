package repository

import (
	"context"

	"supermall/internal/domain/entity"
)

// ActionLogRepository appends and lists audit-trail records.
type ActionLogRepository interface {
	// Append persists a new action log record.
	Append(ctx context.Context, log *entity.ActionLog) error

	// List retrieves the most recent records, newest first.
	List(ctx context.Context, limit int) ([]*entity.ActionLog, error)
}
