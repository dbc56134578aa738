package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a Markdown resume as HTML",
	Long:  "Parse a Markdown resume and render it with one of the built-in HTML templates. With --all, every template is rendered concurrently into the output directory.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderTemplate   string
	renderAll        bool
	renderOutputDir  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to Markdown resume file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "classic", "Template name (classic, modern, functional)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
	renderCmd.Flags().StringVar(&renderOutputDir, "out-dir", ".", "Output directory for --all")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	input, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	doc := markdown.Parse(string(input))
	if !doc.IsValid {
		return fmt.Errorf("resume could not be parsed: %s", strings.Join(doc.Errors, "; "))
	}
	for _, warning := range doc.Warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	if renderAll {
		return renderAllTemplates(doc)
	}

	html, err := rendering.RenderHTML(doc, renderTemplate)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if renderOutputFile != "" {
		if err := os.WriteFile(renderOutputFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
		return nil
	}

	_, _ = fmt.Fprint(os.Stdout, html)
	return nil
}

// renderAllTemplates renders every built-in template concurrently.
func renderAllTemplates(doc *types.ResumeDocument) error {
	if err := os.MkdirAll(renderOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	for _, name := range rendering.TemplateNames() {
		g.Go(func() error {
			html, err := rendering.RenderHTML(doc, name)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", name, err)
			}
			outPath := filepath.Join(renderOutputDir, name+".html")
			if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
			return nil
		})
	}
	return g.Wait()
}
