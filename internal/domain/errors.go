package domain

import (
	"errors"
	"fmt"
)

var ErrSnapshotNotFound = errors.New("pool snapshot not found")

// MissingColumnError reports a required header substring that resolved to
// zero or more than one column.
type MissingColumnError struct {
	Substring string
	Matches   int
}

func (e *MissingColumnError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("column substring %q matched %d headers, want exactly one", e.Substring, e.Matches)
	}
	return fmt.Sprintf("no column header contains %q", e.Substring)
}

// MalformedDateError reports an unparseable date cell, identifying the
// offending row.
type MalformedDateError struct {
	Row   int
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("row %d: malformed date %q: %v", e.Row, e.Value, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }
