package ports

import (
	"context"

	"github.com/labrota/rota/internal/domain"
)

// ScheduleWriter emits the ordered speaker queue produced by a run.
type ScheduleWriter interface {
	Write(ctx context.Context, schedule domain.Schedule) error
}

// ScheduleSource reads back the last written schedule, for display.
type ScheduleSource interface {
	Load(ctx context.Context) (domain.Schedule, error)
}
