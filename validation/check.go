// Package validation applies a rule set across a whole input table,
// aggregating warnings and errors with positional context, and repairs
// tables by adding missing columns and filling missing values.
//
// Warnings and errors are purely additive diagnostics: the full table is
// always scanned and findings never interrupt processing. Configuration
// faults (an unknown descriptor, a column whose type contradicts its rule)
// are returned as error values and abort the call.
package validation

import (
	"fmt"
	"strconv"

	"github.com/bfv/erminfix/rules"
	"github.com/bfv/erminfix/syntax"
)

// CheckHeader checks that every required column is present in the input
// header. One error per missing required column, in rule-set order.
func CheckHeader(header []string, ruleSet []rules.Rule) (warnings, errors []string) {
	for _, name := range MissingColumns(header, ruleSet) {
		errors = append(errors, `Missing this required column: "`+name+`".`)
	}
	return nil, errors
}

// CheckValueRows runs the syntax matcher over every (row, rule) pair whose
// field is present in the header. Every finding is prefixed with its row
// index, column index and field name. Fields absent from the header are
// skipped here; CheckHeader reports those.
func CheckValueRows(header []string, inputRows [][]syntax.Value, ruleSet []rules.Rule) (warnings, errors []string, err error) {
	for i, row := range inputRows {
		for _, rule := range ruleSet {
			j := columnIndex(header, rule.Name)
			if j < 0 || j >= len(row) {
				continue
			}
			ws, es, cerr := syntax.CheckSyntax(row[j], rule.Syntax, rule.Required)
			if cerr != nil {
				return nil, nil, fmt.Errorf("row %d, field %q: %w", i, rule.Name, cerr)
			}
			for _, e := range es {
				errors = append(errors, positional("Error", i, j, rule.Name)+e)
			}
			for _, w := range ws {
				warnings = append(warnings, positional("Warning", i, j, rule.Name)+w)
			}
		}
	}
	return warnings, errors, nil
}

// CheckRows is CheckValueRows for text-sourced tables, where every cell is a
// raw string.
func CheckRows(header []string, inputRows [][]string, ruleSet []rules.Rule) (warnings, errors []string, err error) {
	return CheckValueRows(header, stringValues(inputRows), ruleSet)
}

// CheckInput checks a whole input table: header findings first, then row
// findings.
func CheckInput(header []string, inputRows [][]string, ruleSet []rules.Rule) (warnings, errors []string, err error) {
	hw, he := CheckHeader(header, ruleSet)
	rw, re, err := CheckRows(header, inputRows, ruleSet)
	if err != nil {
		return nil, nil, err
	}
	return append(hw, rw...), append(he, re...), nil
}

// positional renders the "<kind> in row <i>, column <j>, field "<name>": "
// prefix shared by all row-level findings.
func positional(kind string, row, col int, field string) string {
	return kind + " in row " + strconv.Itoa(row) + ", column " + strconv.Itoa(col) + `, field "` + field + `": `
}

// columnIndex returns the position of name in header, or -1.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// stringValues wraps raw string rows as syntax values.
func stringValues(inputRows [][]string) [][]syntax.Value {
	out := make([][]syntax.Value, len(inputRows))
	for i, row := range inputRows {
		cells := make([]syntax.Value, len(row))
		for j, cell := range row {
			cells[j] = syntax.String(cell)
		}
		out[i] = cells
	}
	return out
}
