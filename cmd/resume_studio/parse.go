package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a Markdown resume into structured JSON",
	Long:  "Parse a Markdown resume file into a structured document JSON that validates against the resume document schema. Parse problems are reported as diagnostics inside the document, not as command failures.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseNoScavenge bool
	parseVerbose    bool
	parseStrict     bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to Markdown resume file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVar(&parseNoScavenge, "no-scavenge-dates", false, "Disable pulling entry dates from the following line")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed document")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Exit non-zero when the document has parse errors")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	input, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	opts := markdown.DefaultOptions()
	opts.ScavengeDates = !parseNoScavenge
	doc := markdown.ParseWithOptions(string(input), opts)

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Validate the serialized form against the document schema
	if err := schemas.ValidateResumeDocument(jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDocument(doc)
		printer.PrintDiagnostics(doc)
	}

	if parseStrict && !doc.IsValid {
		return fmt.Errorf("resume has %d parse error(s)", len(doc.Errors))
	}

	return nil
}
