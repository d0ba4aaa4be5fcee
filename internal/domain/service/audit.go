package service

import "context"

// AuditEvent describes one auditable action for the trail and, when
// configured, the event bus.
type AuditEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	ActorUID    string            `json:"actor_uid"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AuditTrail records auditable actions. Recording is best effort: a
// failing trail must never fail the mutation it describes, so Record
// returns nothing and implementations log their own errors.
type AuditTrail interface {
	Record(ctx context.Context, event *AuditEvent)
}

// EventPublisher publishes audit events to an external bus.
type EventPublisher interface {
	// PublishAuditEvent publishes an event for downstream consumers.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases the publisher's resources.
	Close() error
}
