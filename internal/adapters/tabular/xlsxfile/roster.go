// Package xlsxfile loads the member roster from an Excel workbook, the
// format the lab actually keeps its member list in. Only the first sheet
// is read; row interpretation is shared with the CSV reader through the
// tabular package.
package xlsxfile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/labrota/rota/internal/adapters/tabular"
	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

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

	workbook, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open roster workbook: %w", err)
	}
	defer func() {
		if closeErr := workbook.Close(); closeErr != nil {
			r.log.Debug().Err(closeErr).Msg("closing roster workbook")
		}
	}()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("roster workbook %s has no sheets", r.path)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read roster sheet %q: %w", sheet, err)
	}

	members, err := tabular.ParseRoster(rows, r.clock.Now(), r.log)
	if err != nil {
		return nil, fmt.Errorf("roster workbook %s: %w", r.path, err)
	}

	return members, nil
}
