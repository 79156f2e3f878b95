// Package tabular turns raw table rows from the roster and archive files
// into domain records. Columns are discovered by case-insensitive
// substring match on the header row, so header order and exact wording
// stay flexible across spreadsheet exports.
package tabular

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/labrota/rota/internal/domain"
)

// startDateLayouts are tried in order for the roster start-date column.
var startDateLayouts = []string{"1/2/2006", "2006-01-02"}

// archiveDateLayout is month/day/year, the format the archive has always
// used.
const archiveDateLayout = "1/2/2006"

// FindColumn returns the index of the single header containing substr,
// case-insensitively. Zero or multiple matches are a MissingColumnError.
func FindColumn(headers []string, substr string) (int, error) {
	found := -1
	matches := 0
	for i, header := range headers {
		if strings.Contains(strings.ToLower(strings.TrimSpace(header)), substr) {
			matches++
			found = i
		}
	}
	if matches != 1 {
		return 0, &domain.MissingColumnError{Substring: substr, Matches: matches}
	}
	return found, nil
}

// Truthy interprets a flag cell. The roster marks members for
// consideration with free-form text; only blank and explicit negatives
// count as unset.
func Truthy(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "false", "no", "0":
		return false
	}
	return true
}

// Cell returns the trimmed value at idx, or "" for ragged rows.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseRoster converts raw rows (header first) into members. Rows with
// neither a given nor a family name are skipped; blank or unreadable
// start dates default to now, treating the member as just arrived.
func ParseRoster(rows [][]string, now time.Time, log zerolog.Logger) ([]domain.Member, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster has no header row")
	}

	cols, err := rosterColumns(rows[0])
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		given := Cell(row, cols.given)
		family := Cell(row, cols.family)
		if given == "" && family == "" {
			continue
		}

		members = append(members, domain.Member{
			GivenName:     given,
			FamilyName:    family,
			Affiliation:   Cell(row, cols.uni),
			Consider:      Truthy(Cell(row, cols.consider)),
			StartDate:     parseStartDate(Cell(row, cols.start), rowNum+2, now, log),
			LastPresented: domain.NeverPresented,
		})
	}

	return members, nil
}

// ParseArchive converts raw rows (header first) into archive records.
// Rows with malformed dates are skipped with a warning instead of
// failing the run; rows with a blank speaker are ignored.
func ParseArchive(rows [][]string, log zerolog.Logger) ([]domain.ArchiveRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("archive has no header row")
	}

	// The historical archive carries a literal "Date " header with a
	// trailing space; substring discovery absorbs that.
	speakerCol, err := FindColumn(rows[0], "speaker")
	if err != nil {
		return nil, err
	}
	dateCol, err := FindColumn(rows[0], "date")
	if err != nil {
		return nil, err
	}

	records := make([]domain.ArchiveRecord, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		speaker := Cell(row, speakerCol)
		if speaker == "" {
			continue
		}

		rawDate := Cell(row, dateCol)
		date, err := time.Parse(archiveDateLayout, rawDate)
		if err != nil {
			malformed := &domain.MalformedDateError{Row: rowNum + 2, Value: rawDate, Err: err}
			log.Warn().Err(malformed).Msg("skipping archive row")
			continue
		}

		records = append(records, domain.ArchiveRecord{Speaker: speaker, Date: date})
	}

	return records, nil
}

type rosterColumnSet struct {
	uni      int
	given    int
	family   int
	consider int
	start    int
}

func rosterColumns(headers []string) (rosterColumnSet, error) {
	var cols rosterColumnSet
	var err error

	if cols.uni, err = FindColumn(headers, "uni"); err != nil {
		return rosterColumnSet{}, err
	}
	if cols.given, err = FindColumn(headers, "first"); err != nil {
		return rosterColumnSet{}, err
	}
	if cols.family, err = FindColumn(headers, "last"); err != nil {
		return rosterColumnSet{}, err
	}
	if cols.consider, err = FindColumn(headers, "consider"); err != nil {
		return rosterColumnSet{}, err
	}
	if cols.start, err = FindColumn(headers, "start"); err != nil {
		return rosterColumnSet{}, err
	}

	return cols, nil
}

func parseStartDate(value string, rowNum int, now time.Time, log zerolog.Logger) time.Time {
	if value == "" {
		return now
	}

	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	log.Debug().Int("row", rowNum).Str("value", value).Msg("unreadable start date, defaulting to today")
	return now
}
