package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bfv/erminfix/rules"
	"github.com/bfv/erminfix/table"
	"github.com/bfv/erminfix/validation"
)

// NewRepairCmd builds and returns the 'repair' cobra command.
func NewRepairCmd() *cobra.Command {
	var (
		outputFile string
		fillValue  string
	)

	cmd := &cobra.Command{
		Use:   "repair <input.csv> <specification>",
		Short: "Repair an input table without a full validation report",
		Long: `Add the required columns the input table is missing and fill every
missing value with the sentinel, then write the repaired table to the
output file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(args[0], args[1], outputFile, fillValue)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write repaired table to file (required)")
	cmd.Flags().StringVar(&fillValue, "fill", validation.DefaultFill, "Sentinel for missing values")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// runRepair is the entry point for the repair command.
func runRepair(inputPath, specPath, outputPath, fillValue string) error {
	log.Debug().Str("input", inputPath).Str("spec", specPath).Str("output", outputPath).Msg("repair started")

	ruleSet, err := rules.Load(specPath)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	header, inputRows, err := table.ReadCSV(inputPath)
	if err != nil {
		return fmt.Errorf("reading input table: %w", err)
	}
	log.Debug().Int("columns", len(header)).Int("rows", len(inputRows)).Msg("input table read")

	_, _, warnings, err := validation.Repair(header, inputRows, ruleSet, validation.RepairOptions{
		Fill:    fillValue,
		InPlace: true,
		Output:  table.File{Path: outputPath},
	})
	if err != nil {
		return fmt.Errorf("repairing input: %w", err)
	}

	printReport(warnings, nil, true)

	log.Debug().Msg("repair complete")
	return nil
}
