package csvfile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/labrota/rota/internal/adapters/tabular"
	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

// ArchiveReader loads the presentation archive from a CSV file.
type ArchiveReader struct {
	path string
	log  zerolog.Logger
}

var _ ports.ArchiveSource = (*ArchiveReader)(nil)

func NewArchiveReader(path string, log zerolog.Logger) *ArchiveReader {
	return &ArchiveReader{path: path, log: log}
}

func (r *ArchiveReader) Load(ctx context.Context) ([]domain.ArchiveRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readRows(r.path)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}

	records, err := tabular.ParseArchive(rows, r.log)
	if err != nil {
		return nil, fmt.Errorf("archive file %s: %w", r.path, err)
	}

	return records, nil
}
