// Package pubsub publishes audit events to an external bus for downstream
// consumers such as alerting or analytics pipelines.
package pubsub

import (
	"context"
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/constants"
	"supermall/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logPublisher writes events to the application log only. It is the
// development default and the fallback when no bus is configured.
type logPublisher struct {
	logger *slog.Logger
}

func (p *logPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	p.logger.Debug("[LogPubSub] Audit event",
		slog.String("actor_uid", event.ActorUID),
		slog.String("action", event.Action),
	)

	return nil
}

func (p *logPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, fall back to the log-only publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using log-only publisher")

		return &logPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLog:
		publisher = &logPublisher{logger: logger}

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
