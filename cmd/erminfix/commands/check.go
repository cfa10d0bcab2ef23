package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bfv/erminfix/rules"
	"github.com/bfv/erminfix/table"
	"github.com/bfv/erminfix/validation"
)

// ErrFindings is returned by check when the input table has validation
// errors; the findings themselves have already been printed.
var ErrFindings = errors.New("input table does not conform to specification")

// NewCheckCmd builds and returns the 'check' cobra command.
func NewCheckCmd() *cobra.Command {
	var (
		outputFile string
		fillValue  string
		allErrors  bool
	)

	cmd := &cobra.Command{
		Use:   "check <input.csv> <specification>",
		Short: "Check an input table against an ERMIN specification",
		Long: `Check every row of an input table against the field rules of an ERMIN
specification (CSV or YAML). All warnings and errors are collected; with
--output the table is additionally repaired and written out with missing
required columns added and missing values filled.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bind the cobra flags into viper so they can be read uniformly.
			if err := viper.BindPFlag("output", cmd.Flags().Lookup("output")); err != nil {
				return err
			}
			if err := viper.BindPFlag("fill", cmd.Flags().Lookup("fill")); err != nil {
				return err
			}
			return runCheck(args[0], args[1], viper.GetString("output"), viper.GetString("fill"), allErrors)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write repaired table to file")
	cmd.Flags().StringVar(&fillValue, "fill", validation.DefaultFill, "Sentinel for missing values in the repaired table")
	cmd.Flags().BoolVarP(&allErrors, "all", "a", false, "Print all warnings and errors instead of the first 10")
	return cmd
}

// runCheck is the entry point for the check command.
func runCheck(inputPath, specPath, outputPath, fillValue string, allErrors bool) error {
	log.Debug().Str("input", inputPath).Str("spec", specPath).Str("output", outputPath).Msg("check started")

	ruleSet, err := rules.Load(specPath)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}
	log.Debug().Int("rules", len(ruleSet)).Msg("specification loaded")

	header, inputRows, err := table.ReadCSV(inputPath)
	if err != nil {
		return fmt.Errorf("reading input table: %w", err)
	}
	log.Debug().Int("columns", len(header)).Int("rows", len(inputRows)).Msg("input table read")

	warnings, findings, err := validation.CheckInput(header, inputRows, ruleSet)
	if err != nil {
		return fmt.Errorf("checking input: %w", err)
	}

	if outputPath != "" {
		_, _, repairWarnings, err := validation.Repair(header, inputRows, ruleSet, validation.RepairOptions{
			Fill:    fillValue,
			InPlace: true,
			Output:  table.File{Path: outputPath},
		})
		if err != nil {
			return fmt.Errorf("repairing input: %w", err)
		}
		warnings = append(warnings, repairWarnings...)
	}

	printReport(warnings, findings, allErrors)

	log.Debug().Int("warnings", len(warnings)).Int("errors", len(findings)).Msg("check complete")
	if len(findings) > 0 {
		return ErrFindings
	}
	return nil
}
