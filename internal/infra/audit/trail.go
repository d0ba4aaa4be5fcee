// Package audit records the action trail behind every auth, ledger and
// catalog mutation. The trail is best effort: failures are logged and
// swallowed so they never fail the mutation they describe.
package audit

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the audit trail, injected by Fx
type Params struct {
	fx.In

	Logs      repository.ActionLogRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type trail struct {
	logs      repository.ActionLogRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewTrail is the constructor for the audit trail.
func NewTrail(params Params) service.AuditTrail {
	return &trail{
		logs:      params.Logs,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Record appends the event to the action log and forwards it to the event
// bus. Both legs are independent; either can fail without affecting the
// other or the caller.
func (t *trail) Record(ctx context.Context, event *service.AuditEvent) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, t.logger)

	record := &entity.ActionLog{
		UserID:      event.ActorUID,
		Action:      event.Action,
		Description: event.Description,
		Metadata:    event.Metadata,
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.logs.Append(ctx, record); err != nil {
		logger.Error("failed to append action log",
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}

	if err := t.publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error("failed to publish audit event",
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}
}
