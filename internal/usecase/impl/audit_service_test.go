package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"supermall/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActionLogRepo struct {
	logs []*entity.ActionLog
}

func (r *fakeActionLogRepo) Append(_ context.Context, log *entity.ActionLog) error {
	log.ID = fmt.Sprintf("log-%d", len(r.logs)+1)
	r.logs = append(r.logs, log)

	return nil
}

func (r *fakeActionLogRepo) List(_ context.Context, limit int) ([]*entity.ActionLog, error) {
	out := make([]*entity.ActionLog, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.logs[i])
	}

	return out, nil
}

func TestAuditService_ListLogs_HonorsConfiguredLimit(t *testing.T) {
	repo := &fakeActionLogRepo{}
	for i := 0; i < 60; i++ {
		require.NoError(t, repo.Append(context.Background(), &entity.ActionLog{
			UserID:    "admin-1",
			Action:    "mall.create",
			CreatedAt: time.Now().UTC(),
		}))
	}

	service := NewAuditService(AuditServiceParams{
		Logs:   repo,
		Config: newTestConfig(),
	})

	logs, err := service.ListLogs(context.Background())

	require.NoError(t, err)
	assert.Len(t, logs, 50)
	assert.Equal(t, "log-60", logs[0].ID)
}
