// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.Header.Name))
	if doc.Header.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", doc.Header.Title))
	}
	if len(doc.Header.Contact) > 0 {
		contact := strings.Join(doc.Header.Contact, ", ")
		if len(contact) > 45 {
			contact = contact[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Contact: %s\n", contact))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.Sections)))
	count := min(len(doc.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := doc.Sections[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", section.Title, summarizeItems(section.Items)))
	}
	if len(doc.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// summarizeItems counts items per kind, e.g. "2 jobs, 3 bullets".
func summarizeItems(items []types.Item) string {
	counts := map[types.ItemKind]int{}
	order := []types.ItemKind{}
	for _, item := range items {
		kind := item.Kind()
		if counts[kind] == 0 {
			order = append(order, kind)
		}
		counts[kind]++
	}

	parts := make([]string, 0, len(order))
	for _, kind := range order {
		label := string(kind)
		label = strings.ReplaceAll(label, "_", " ")
		n := counts[kind]
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", label))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, label))
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}

// PrintDiagnostics outputs parse errors and warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDiagnostics(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	if len(doc.Errors) == 0 && len(doc.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO PARSE ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if len(doc.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(doc.Errors)))
		for _, msg := range doc.Errors {
			if len(msg) > 48 {
				msg = msg[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", msg))
		}
	}
	if len(doc.Warnings) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(doc.Warnings)))
		for _, msg := range doc.Warnings {
			if len(msg) > 48 {
				msg = msg[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
	}

	p.printBox("PARSE DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}
