package domain

import (
	"sort"
	"time"
)

// ArchiveRecord is one row of the presentation archive: a free-text
// speaker field and the date of the talk. The speaker text may carry
// titles and affiliations; linking it back to a roster identity is the
// match package's job.
type ArchiveRecord struct {
	Speaker string
	Date    time.Time
}

// SortArchiveNewestFirst orders records by date descending. Crediting
// "first match per member" is only correct on a newest-first archive, so
// callers must sort before matching instead of trusting file order.
func SortArchiveNewestFirst(records []ArchiveRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
