package domain

import "strings"

// SnapshotEntry is one persisted pool-state row.
type SnapshotEntry struct {
	Name          MemberID
	Affiliation   string
	InPool        bool
	LastPresented float64
}

// Snapshot bridges scheduling runs: it records, per member, whether they
// are still owed a turn in the current rotation cycle and when they last
// presented.
type Snapshot struct {
	Entries []SnapshotEntry
}

// PoolMembers returns the identities flagged as still owed a turn.
func (s Snapshot) PoolMembers() map[MemberID]struct{} {
	pool := make(map[MemberID]struct{}, len(s.Entries))
	for _, entry := range s.Entries {
		if entry.InPool {
			pool[entry.Name] = struct{}{}
		}
	}
	return pool
}

// Normalize drops blank names and collapses duplicate identities,
// keeping the first occurrence.
func (s *Snapshot) Normalize() {
	if s == nil {
		return
	}

	entries := make([]SnapshotEntry, 0, len(s.Entries))
	seen := make(map[MemberID]struct{}, len(s.Entries))
	for _, entry := range s.Entries {
		trimmed := MemberID(strings.TrimSpace(string(entry.Name)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		entry.Name = trimmed
		entries = append(entries, entry)
	}

	s.Entries = entries
}
