package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// ActionLogModel mirrors a document in the 'logs' collection.
type ActionLogModel struct {
	UserID      string            `firestore:"userId"`
	Action      string            `firestore:"action"`
	Description string            `firestore:"description,omitempty"`
	Metadata    map[string]string `firestore:"metadata,omitempty"`
	CreatedAt   time.Time         `firestore:"createdAt"`
}

func ToActionLogDomain(id string, m *ActionLogModel) *entity.ActionLog {
	return &entity.ActionLog{
		ID:          id,
		UserID:      m.UserID,
		Action:      m.Action,
		Description: m.Description,
		Metadata:    m.Metadata,
		CreatedAt:   m.CreatedAt,
	}
}

func FromActionLogDomain(l *entity.ActionLog) *ActionLogModel {
	return &ActionLogModel{
		UserID:      l.UserID,
		Action:      l.Action,
		Description: l.Description,
		Metadata:    l.Metadata,
		CreatedAt:   l.CreatedAt,
	}
}
