package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/labrota/rota/internal/domain"
	"github.com/labrota/rota/internal/match"
	"github.com/labrota/rota/internal/ports"
	"github.com/labrota/rota/internal/scheduling"
)

// DefaultSlots is the number of seats filled per run when the caller does
// not override it.
const DefaultSlots = 26

type SchedulerService struct {
	roster    ports.RosterSource
	archive   ports.ArchiveSource
	snapshots ports.SnapshotRepository
	schedules ports.ScheduleWriter
	clock     ports.Clock
	rng       *rand.Rand
	log       zerolog.Logger
}

type RunOptions struct {
	Slots  int
	DryRun bool
}

// RunResult captures one completed scheduling computation. Snapshot is
// the pool state the *next* run should start from.
type RunResult struct {
	Schedule domain.Schedule
	Snapshot domain.Snapshot
	Today    float64
	Reset    bool
}

func NewSchedulerService(
	roster ports.RosterSource,
	archive ports.ArchiveSource,
	snapshots ports.SnapshotRepository,
	schedules ports.ScheduleWriter,
	clock ports.Clock,
	rng *rand.Rand,
	log zerolog.Logger,
) *SchedulerService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &SchedulerService{
		roster:    roster,
		archive:   archive,
		snapshots: snapshots,
		schedules: schedules,
		clock:     clock,
		rng:       rng,
		log:       log,
	}
}

// Run performs one scheduling pass: credit last presentations from the
// archive, compute the active pool (with the empty-pool reset fallback),
// order it by recency-weighted shuffle, top up from the wider eligible
// set when the pool is short, and persist the schedule plus the next pool
// state. With DryRun set, nothing is written.
func (s *SchedulerService) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	if opts.Slots <= 0 {
		opts.Slots = DefaultSlots
	}

	members, err := s.roster.Load(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load roster: %w", err)
	}
	for i, member := range members {
		if err := member.Validate(); err != nil {
			return RunResult{}, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
	}

	if err := s.creditLastPresentations(ctx, members); err != nil {
		return RunResult{}, err
	}

	today := domain.FracYear(s.clock.Now())

	eligible := make([]bool, len(members))
	for i, member := range members {
		eligible[i] = member.EligibleAt(today)
	}

	active, reset, err := s.activePool(ctx, members, eligible, today)
	if err != nil {
		return RunResult{}, err
	}

	scheduled, topUp, err := s.orderSpeakers(members, eligible, active, today, opts.Slots)
	if err != nil {
		return RunResult{}, err
	}

	// The next pool is rebuilt against a branch-dependent base set: the
	// current active pool when it was large enough, the full eligible
	// set once the pool ran short. Unifying the two breaks the rotation
	// fairness guarantee.
	base := active
	if topUp {
		base = eligible
	}

	taken := make(map[int]struct{}, len(scheduled))
	for _, i := range scheduled {
		taken[i] = struct{}{}
	}

	result := RunResult{Today: today, Reset: reset}
	for _, i := range scheduled {
		result.Schedule.Slots = append(result.Schedule.Slots, domain.Slot{
			Name:        members[i].ID(),
			Affiliation: members[i].Affiliation,
		})
	}
	for i, member := range members {
		_, justScheduled := taken[i]
		result.Snapshot.Entries = append(result.Snapshot.Entries, domain.SnapshotEntry{
			Name:          member.ID(),
			Affiliation:   member.Affiliation,
			InPool:        base[i] && !justScheduled,
			LastPresented: member.LastPresented,
		})
	}
	result.Snapshot.Normalize()

	s.log.Info().
		Int("slots", opts.Slots).
		Int("scheduled", result.Schedule.Len()).
		Int("pool_next", len(result.Snapshot.PoolMembers())).
		Bool("reset", reset).
		Bool("dry_run", opts.DryRun).
		Msg("scheduling run computed")

	if opts.DryRun {
		return result, nil
	}

	// Pool state first: a published schedule must never be paired with a
	// snapshot that does not account for it, or the next run repeats the
	// same speakers.
	if err := s.snapshots.Save(ctx, result.Snapshot); err != nil {
		return RunResult{}, fmt.Errorf("save pool snapshot: %w", err)
	}
	if err := s.schedules.Write(ctx, result.Schedule); err != nil {
		return RunResult{}, fmt.Errorf("write schedule: %w", err)
	}

	return result, nil
}

// creditLastPresentations walks the archive newest-first and keeps the
// first (most recent) date per member. Records matching nobody are
// dropped; records matching several members credit all of them.
func (s *SchedulerService) creditLastPresentations(ctx context.Context, members []domain.Member) error {
	records, err := s.archive.Load(ctx)
	if err != nil {
		return fmt.Errorf("load archive: %w", err)
	}
	domain.SortArchiveNewestFirst(records)

	for i := range members {
		members[i].LastPresented = domain.NeverPresented
	}

	matcher := match.New(members)
	credited := make([]bool, len(members))
	unmatched := 0
	for _, record := range records {
		hits := matcher.Match(record.Speaker)
		if len(hits) == 0 {
			unmatched++
			continue
		}
		if len(hits) > 1 {
			ambiguous := make([]string, 0, len(hits))
			for _, i := range hits {
				ambiguous = append(ambiguous, string(members[i].ID()))
			}
			s.log.Warn().
				Str("speaker", record.Speaker).
				Strs("matches", ambiguous).
				Msg("archive speaker matches multiple roster members, crediting all")
		}
		for _, i := range hits {
			if credited[i] {
				continue
			}
			credited[i] = true
			members[i].LastPresented = domain.RoundFracYear(domain.FracYear(record.Date))
		}
	}

	if unmatched > 0 {
		s.log.Debug().Int("records", unmatched).Msg("archive records matched no roster member")
	}

	return nil
}

// activePool intersects the persisted pool with current eligibility and
// the not-recently-presented window. An empty result triggers the full
// reset: everyone eligible is owed a turn again.
func (s *SchedulerService) activePool(ctx context.Context, members []domain.Member, eligible []bool, today float64) ([]bool, bool, error) {
	active := make([]bool, len(members))

	snapshot, err := s.snapshots.Load(ctx)
	switch {
	case err == nil:
		pool := snapshot.PoolMembers()
		for i, member := range members {
			_, owed := pool[member.ID()]
			active[i] = eligible[i] && owed && !member.RecentlyPresented(today)
		}
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.log.Info().Msg("no pool snapshot found, starting a fresh rotation")
		for i, member := range members {
			active[i] = eligible[i] && !member.RecentlyPresented(today)
		}
	default:
		return nil, false, fmt.Errorf("load pool snapshot: %w", err)
	}

	if countTrue(active) > 0 {
		return active, false, nil
	}

	s.log.Info().Msg("everyone has presented, resetting the pool to the full eligible set")
	copy(active, eligible)
	return active, true, nil
}

// orderSpeakers produces the scheduled roster indices: a uniform shuffle
// for tie-breaking, re-ordered by recency-weighted shuffle, truncated to
// the slot count, topped up from the remaining eligible members when the
// active pool runs short.
func (s *SchedulerService) orderSpeakers(members []domain.Member, eligible, active []bool, today float64, slots int) ([]int, bool, error) {
	idx := s.shuffledIndices(len(members), func(i int) bool { return active[i] })

	weights := scheduling.RecencyWeights(s.lastPresented(members, idx), today)
	idx, err := scheduling.WeightedShuffle(s.rng, idx, weights)
	if err != nil {
		return nil, false, fmt.Errorf("order active pool: %w", err)
	}

	if len(idx) >= slots {
		return idx[:slots], false, nil
	}

	selected := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		selected[i] = struct{}{}
	}

	rest := s.shuffledIndices(len(members), func(i int) bool {
		_, done := selected[i]
		return eligible[i] && !done
	})
	restWeights := scheduling.RecencyWeights(s.lastPresented(members, rest), today)
	rest, err = scheduling.WeightedShuffle(s.rng, rest, restWeights)
	if err != nil {
		return nil, false, fmt.Errorf("order pool top-up: %w", err)
	}

	deficit := slots - len(idx)
	if deficit > len(rest) {
		deficit = len(rest)
	}

	return append(idx, rest[:deficit]...), true, nil
}

// shuffledIndices returns the indices passing keep, in uniform random
// order. The uniform pass supplies tie-breaking randomness beneath the
// recency bias.
func (s *SchedulerService) shuffledIndices(n int, keep func(int) bool) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	s.rng.Shuffle(n, func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	kept := make([]int, 0, n)
	for _, i := range all {
		if keep(i) {
			kept = append(kept, i)
		}
	}
	return kept
}

func (s *SchedulerService) lastPresented(members []domain.Member, idx []int) []float64 {
	last := make([]float64, len(idx))
	for k, i := range idx {
		last[k] = members[i].LastPresented
	}
	return last
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
