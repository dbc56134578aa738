package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/markdown"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a Markdown resume as PDF",
	Long:  "Parse a Markdown resume, render it with an HTML template and print it to PDF via headless Chrome. Requires a Chrome or Chromium binary on the host.",
	RunE:  runExport,
}

var (
	exportInputFile  string
	exportOutputFile string
	exportTemplate   string
	exportTimeout    time.Duration
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to Markdown resume file (required)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "classic", "Template name (classic, modern, functional)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", export.DefaultTimeout, "Chrome print timeout")
	_ = exportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	input, err := os.ReadFile(exportInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	doc := markdown.Parse(string(input))
	if !doc.IsValid {
		return fmt.Errorf("resume could not be parsed: %s", strings.Join(doc.Errors, "; "))
	}

	pdf, err := export.ToPDF(context.Background(), doc, export.Options{
		Template: exportTemplate,
		Timeout:  exportTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}

	if err := os.WriteFile(exportOutputFile, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s (%d bytes)\n", exportOutputFile, len(pdf))
	return nil
}
