package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate optimized resume Markdown for a job posting",
	Long:  "Send a source resume and a job description to the LLM and write back optimized resume Markdown, plus the parsed document JSON when requested.",
	RunE:  runGenerate,
}

var (
	generateResumeFile string
	generateJobFile    string
	generateOutputFile string
	generateJSONFile   string
	generateAPIKey     string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateResumeFile, "resume", "r", "", "Path to source resume text file (required)")
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job description text file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output Markdown file (default: stdout)")
	generateCmd.Flags().StringVar(&generateJSONFile, "json", "", "Also write the parsed document JSON to this path")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a summary of the generated document")
	_ = generateCmd.MarkFlagRequired("resume")
	_ = generateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	apiKey := generateAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	resumeText, err := os.ReadFile(generateResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(generateJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	md, err := llm.GenerateResumeMarkdown(ctx, client, string(resumeText), string(jobText))
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	if generateOutputFile != "" {
		if err := os.WriteFile(generateOutputFile, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", generateOutputFile)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, md)
	}

	doc := markdown.Parse(md)

	if generateJSONFile != "" {
		jsonBytes, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(generateJSONFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", generateJSONFile)
	}

	if generateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDocument(doc)
		printer.PrintDiagnostics(doc)
	}

	if !doc.IsValid {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: generated resume has parse errors: %v\n", doc.Errors)
	}

	return nil
}
