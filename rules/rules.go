// Package rules loads and represents the field rules of an ERMIN
// specification: one rule per expected column, binding the column name to a
// required flag and a value-syntax descriptor.
package rules

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule is one specification entry. Syntax holds the descriptor string
// interpreted by the syntax package.
type Rule struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	Syntax   string `yaml:"syntax"`
}

// File is the top-level structure of the rules YAML.
type File struct {
	Ermin Spec `yaml:"ermin"`
}

// Spec contains the full rule-set configuration.
type Spec struct {
	Version float64 `yaml:"version"`
	Fields  []Rule  `yaml:"fields"`
}

// Column headers of the ERMIN specification CSV that the loader consumes.
const (
	colName     = "Structured name"
	colRequired = "Required"
	colSyntax   = "Value syntax"
)

// Load reads rules from path, dispatching on the file extension: .yaml/.yml
// loads a rules YAML, anything else is treated as a specification CSV.
func Load(path string) ([]Rule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadCSV(path)
	}
}

// LoadYAML reads and unmarshals a YAML rules file.
func LoadYAML(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Ermin.Fields, nil
}

// LoadCSV reads rules from an ERMIN specification CSV. The file must carry
// at least the "Structured name", "Required" and "Value syntax" columns;
// rows with an empty structured name are skipped. A field is required iff
// its Required cell is exactly "Yes".
func LoadCSV(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // specification sheets often carry ragged tails

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading specification %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("specification %q is empty", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range []string{colName, colRequired, colSyntax} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("specification %q is missing column %q", path, required)
		}
	}

	cell := func(record []string, column string) string {
		i := idx[column]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var out []Rule
	for _, record := range records[1:] {
		name := cell(record, colName)
		if name == "" {
			continue
		}
		out = append(out, Rule{
			Name:     name,
			Required: cell(record, colRequired) == "Yes",
			Syntax:   cell(record, colSyntax),
		})
	}
	return out, nil
}
