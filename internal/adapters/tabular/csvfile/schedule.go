package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labrota/rota/internal/adapters/tabular"
	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/ports"
)

// ScheduleStore writes the ordered speaker queue to a CSV file and reads
// it back for display. Writes go through a temp file and rename so a
// crash never leaves a truncated schedule.
type ScheduleStore struct {
	path string
}

var (
	_ ports.ScheduleWriter = (*ScheduleStore)(nil)
	_ ports.ScheduleSource = (*ScheduleStore)(nil)
)

func NewScheduleStore(path string) *ScheduleStore {
	return &ScheduleStore{path: path}
}

func (s *ScheduleStore) Write(ctx context.Context, schedule domain.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), ".schedule-*.csv.tmp")
	if err != nil {
		return fmt.Errorf("create temp schedule file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	writer := csv.NewWriter(tempFile)
	if err := writer.Write([]string{"name", "uni"}); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write schedule header: %w", err)
	}
	for _, slot := range schedule.Slots {
		if err := writer.Write([]string{string(slot.Name), slot.Affiliation}); err != nil {
			_ = tempFile.Close()
			return fmt.Errorf("write schedule row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("flush schedule file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp schedule file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace schedule file: %w", err)
	}

	cleanup = false

	return nil
}

func (s *ScheduleStore) Load(ctx context.Context) (domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return domain.Schedule{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("read schedule file: %w", err)
	}

	var schedule domain.Schedule
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if tabular.Cell(row, 0) == "" {
			continue
		}
		schedule.Slots = append(schedule.Slots, domain.Slot{
			Name:        domain.MemberID(tabular.Cell(row, 0)),
			Affiliation: tabular.Cell(row, 1),
		})
	}

	return schedule, nil
}
