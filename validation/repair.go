package validation

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bfv/erminfix/rules"
)

// DefaultFill is the sentinel written into missing cells unless the caller
// overrides it.
const DefaultFill = "NULL"

// Sink receives a repaired table for persistence. The table package provides
// a CSV-file implementation.
type Sink interface {
	// Name identifies the destination in report messages.
	Name() string
	// Write persists the repaired header and rows.
	Write(header []string, rows [][]string) error
}

// RepairOptions selects the fill sentinel, mutation mode and optional
// persistence destination for Repair.
type RepairOptions struct {
	// Fill replaces missing cells; DefaultFill when empty.
	Fill string
	// InPlace mutates the caller's containers instead of cloning them.
	// The caller must not read the table concurrently while repair runs.
	InPlace bool
	// Output, when non-nil, receives the repaired table.
	Output Sink
}

// MissingColumns returns the names of required columns absent from the
// header, in rule-set order.
func MissingColumns(header []string, ruleSet []rules.Rule) []string {
	var missing []string
	for _, rule := range ruleSet {
		if rule.Required && columnIndex(header, rule.Name) < 0 {
			missing = append(missing, rule.Name)
		}
	}
	return missing
}

// AddColumns appends each named column to the header and a fill cell to
// every row, in the given order. Adding a column that already exists is a
// configuration error. In copy mode the originals are left untouched; either
// way the widened header and rows are returned.
func AddColumns(header []string, inputRows [][]string, columnNames []string, fill string, inPlace bool) ([]string, [][]string, error) {
	if !inPlace {
		header = append([]string(nil), header...)
		inputRows = cloneRows(inputRows)
	}
	for _, name := range columnNames {
		if columnIndex(header, name) >= 0 {
			return nil, nil, fmt.Errorf("column %q already in input header", name)
		}
		header = append(header, name)
		for i := range inputRows {
			inputRows[i] = append(inputRows[i], fill)
		}
	}
	return header, inputRows, nil
}

// ReplaceMissingValues replaces empty-string cells with fill in the named
// columns, or in all columns when columnNames is nil. Naming a column that
// is not in the header is a configuration error.
func ReplaceMissingValues(header []string, inputRows [][]string, columnNames []string, fill string, inPlace bool) ([][]string, error) {
	if columnNames == nil {
		columnNames = header
	}
	targets := make([]int, len(columnNames))
	for k, name := range columnNames {
		j := columnIndex(header, name)
		if j < 0 {
			return nil, fmt.Errorf("column %q not in input header: %v", name, header)
		}
		targets[k] = j
	}

	if !inPlace {
		inputRows = cloneRows(inputRows)
	}
	for i := range inputRows {
		for _, j := range targets {
			if j < len(inputRows[i]) && inputRows[i][j] == "" {
				inputRows[i][j] = fill
			}
		}
	}
	return inputRows, nil
}

// Repair brings a checked table up to specification: missing required
// columns are added first, then missing values in all columns (including the
// freshly added ones) are filled with the sentinel, and finally the table is
// handed to the output sink if one is given. Each step contributes one
// warning describing what was done.
func Repair(header []string, inputRows [][]string, ruleSet []rules.Rule, opts RepairOptions) (newHeader []string, newRows [][]string, warnings []string, err error) {
	fill := opts.Fill
	if fill == "" {
		fill = DefaultFill
	}

	newHeader, newRows = header, inputRows
	if !opts.InPlace {
		newHeader = append([]string(nil), header...)
		newRows = cloneRows(inputRows)
	}

	missing := MissingColumns(newHeader, ruleSet)
	if len(missing) > 0 {
		newHeader, newRows, err = AddColumns(newHeader, newRows, missing, fill, true)
		if err != nil {
			return nil, nil, nil, err
		}
		warnings = append(warnings, fmt.Sprintf("Added missing required columns (filled with %q): %s.", fill, quoteJoin(missing)))
		log.Debug().Strs("columns", missing).Msg("missing required columns added")
	}

	newRows, err = ReplaceMissingValues(newHeader, newRows, nil, fill, true)
	if err != nil {
		return nil, nil, nil, err
	}
	warnings = append(warnings, fmt.Sprintf("Replaced any missing values in all columns with %q.", fill))

	if opts.Output != nil {
		if err := opts.Output.Write(newHeader, newRows); err != nil {
			return nil, nil, nil, fmt.Errorf("writing repaired table: %w", err)
		}
		warnings = append(warnings, fmt.Sprintf("Repaired table written to %s.", opts.Output.Name()))
		log.Debug().Str("output", opts.Output.Name()).Msg("repaired table persisted")
	}

	return newHeader, newRows, warnings, nil
}

// cloneRows deep-copies the row containers so copy-mode repairs leave the
// caller's table untouched.
func cloneRows(inputRows [][]string) [][]string {
	out := make([][]string, len(inputRows))
	for i, row := range inputRows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// quoteJoin renders column names as `"a", "b"` for report messages.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}
	return strings.Join(quoted, ", ")
}
