package ports

import (
	"context"

	"github.com/labrota/rota/internal/domain"
)

// SnapshotRepository persists the pool state between runs. Load returns
// domain.ErrSnapshotNotFound when no prior run has written one.
type SnapshotRepository interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
	Clear(ctx context.Context) error
}
