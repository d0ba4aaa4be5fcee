package firestore

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// actionLogRepository implements the domain.ActionLogRepository interface
// on the 'logs' collection. Records are append-only.
type actionLogRepository struct {
	store
}

// NewActionLogRepository is the constructor for actionLogRepository.
func NewActionLogRepository(client *fs.Client) repository.ActionLogRepository {
	return &actionLogRepository{store: store{client: client}}
}

// Append persists a new action log record.
func (repo *actionLogRepository) Append(ctx context.Context, log *entity.ActionLog) error {
	ref := repo.client.Collection(logsCollection).NewDoc()
	if err := repo.store.create(ctx, ref, model.FromActionLogDomain(log)); err != nil {
		return errors.Wrap(err, "failed to append action log")
	}
	log.ID = ref.ID

	return nil
}

// List retrieves the most recent records, newest first.
func (repo *actionLogRepository) List(ctx context.Context, limit int) ([]*entity.ActionLog, error) {
	query := repo.client.Collection(logsCollection).
		OrderBy("createdAt", fs.Desc).
		Limit(limit)

	var logs []*entity.ActionLog
	err := drain(repo.docs(ctx, query), func(snap *fs.DocumentSnapshot) error {
		var m model.ActionLogModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode action log document")
		}
		logs = append(logs, model.ToActionLogDomain(snap.Ref.ID, &m))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list action logs")
	}

	return logs, nil
}
