package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// maxDisplay caps how many findings of each kind are printed unless the
// caller asked for all of them. The underlying lists are always complete.
const maxDisplay = 10

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// printReport prints the collected warnings and errors to stdout, errors
// first, capping each list at maxDisplay unless allErrors is set.
func printReport(warnings, errors []string, allErrors bool) {
	if len(errors) > 0 {
		if allErrors {
			errorColor.Printf("\n%d errors were found. Printing all errors:\n", len(errors))
			fmt.Println(strings.Join(errors, "\n"))
		} else {
			errorColor.Printf("%d errors were found. Printing up to %d:\n", len(errors), maxDisplay)
			fmt.Println(strings.Join(capped(errors), "\n"))
		}
	}

	if len(warnings) > 0 {
		if allErrors {
			warningColor.Printf("\n%d warnings were found. Printing all warnings:\n", len(warnings))
			fmt.Println(strings.Join(warnings, "\n"))
		} else {
			warningColor.Printf("%d warnings were found. Printing up to %d:\n", len(warnings), maxDisplay)
			fmt.Println(strings.Join(capped(warnings), "\n"))
		}
	}
}

// capped returns at most maxDisplay findings.
func capped(findings []string) []string {
	if len(findings) > maxDisplay {
		return findings[:maxDisplay]
	}
	return findings
}
