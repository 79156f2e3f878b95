package application

import (
	"context"
	"time"

	"github.com/labrota/rota/internal/domain"
)

type fakeRoster struct {
	members []domain.Member
	err     error
}

func (f *fakeRoster) Load(context.Context) ([]domain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Member, len(f.members))
	copy(out, f.members)
	return out, nil
}

type fakeArchive struct {
	records []domain.ArchiveRecord
	err     error
}

func (f *fakeArchive) Load(context.Context) ([]domain.ArchiveRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.ArchiveRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

type fakeSnapshots struct {
	snapshot *domain.Snapshot
	saves    int
	cleared  bool
	loadErr  error
	saveErr  error
}

func (f *fakeSnapshots) Load(context.Context) (domain.Snapshot, error) {
	if f.loadErr != nil {
		return domain.Snapshot{}, f.loadErr
	}
	if f.snapshot == nil {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}
	return *f.snapshot, nil
}

func (f *fakeSnapshots) Save(_ context.Context, snapshot domain.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshot = &snapshot
	f.saves++
	return nil
}

func (f *fakeSnapshots) Clear(context.Context) error {
	f.snapshot = nil
	f.cleared = true
	return nil
}

type fakeSchedules struct {
	written []domain.Schedule
	err     error
}

func (f *fakeSchedules) Write(_ context.Context, schedule domain.Schedule) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, schedule)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
