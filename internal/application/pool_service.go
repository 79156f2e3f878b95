package application

import (
	"context"
	"fmt"

	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

// PoolService answers questions about, and administers, the persisted
// pool state.
type PoolService struct {
	snapshots ports.SnapshotRepository
}

func NewPoolService(snapshots ports.SnapshotRepository) *PoolService {
	return &PoolService{snapshots: snapshots}
}

// Status returns the pool snapshot left by the previous run.
func (s *PoolService) Status(ctx context.Context) (domain.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snapshot.Normalize()
	return snapshot, nil
}

// Reset discards the persisted pool state so the next run starts a fresh
// rotation cycle from the full eligible set.
func (s *PoolService) Reset(ctx context.Context) error {
	if err := s.snapshots.Clear(ctx); err != nil {
		return fmt.Errorf("clear pool snapshot: %w", err)
	}
	return nil
}
