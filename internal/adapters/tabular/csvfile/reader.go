// Package csvfile reads the roster and archive tables and writes the
// schedule as CSV files, delegating row interpretation to the tabular
// package.
package csvfile

import (
	"encoding/csv"
	"os"
)

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}
