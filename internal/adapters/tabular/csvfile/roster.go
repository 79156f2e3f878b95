package csvfile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/labrota/rota/internal/adapters/tabular"
	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

// RosterReader loads the member roster from a CSV file.
type RosterReader struct {
	path  string
	clock ports.Clock
	log   zerolog.Logger
}

var _ ports.RosterSource = (*RosterReader)(nil)

func NewRosterReader(path string, clock ports.Clock, log zerolog.Logger) *RosterReader {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &RosterReader{path: path, clock: clock, log: log}
}

func (r *RosterReader) Load(ctx context.Context) ([]domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readRows(r.path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	members, err := tabular.ParseRoster(rows, r.clock.Now(), r.log)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", r.path, err)
	}

	return members, nil
}
