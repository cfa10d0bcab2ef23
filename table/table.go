// Package table adapts tabular emissions-report data between CSV files and
// the in-memory header/rows form that the validation package works on. The
// header is an ordered list of unique column names and every row carries
// exactly one cell per header entry.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ReadCSV loads an input table. Rows whose first cell starts with '#' are
// comments and are skipped, as are rows with an empty first cell. A UTF-8
// BOM on the first header cell is stripped. Ragged rows are an error.
func ReadCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading table %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("table %q has no header row", path)
	}

	header = records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	for _, record := range records[1:] {
		if record[0] == "" {
			continue
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

// WriteCSV persists a header and rows to path.
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// File is a CSV destination for repaired tables. It satisfies the
// validation.Sink contract.
type File struct {
	Path string
}

// Name returns the destination path for report messages.
func (f File) Name() string { return f.Path }

// Write persists the repaired header and rows.
func (f File) Write(header []string, rows [][]string) error {
	return WriteCSV(f.Path, header, rows)
}
