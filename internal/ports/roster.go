package ports

import (
	"context"

	"github.com/labrota/rota/internal/domain"
)

// RosterSource loads the current member roster as a whole snapshot.
type RosterSource interface {
	Load(ctx context.Context) ([]domain.Member, error)
}

// ArchiveSource loads the historical presentation archive. Record order
// is not guaranteed; callers sort before crediting matches.
type ArchiveSource interface {
	Load(ctx context.Context) ([]domain.ArchiveRecord, error)
}
