package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/types"
)

func sampleDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Header: types.Header{
			Name:    "Jane Doe",
			Title:   "Senior Software Engineer",
			Contact: []string{"jane@example.com", "+1 555 123 4567"},
		},
		Sections: []types.Section{
			{
				Title: "Experience",
				Items: []types.Item{
					&types.Job{Role: "Engineer", Company: "Acme", Date: "2020", Bullets: []string{"Built things"}},
					&types.Bullet{Text: "Standalone"},
				},
			},
			{
				Title: "Skills",
				Items: []types.Item{
					&types.Skill{Text: "Go"},
					&types.Skill{Text: "Python"},
				},
			},
		},
		IsValid: true,
	}
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(sampleDocument())
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Senior Software Engineer")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Sections: 2")
	assert.Contains(t, output, "Experience (1 job, 1 bullet)")
	assert.Contains(t, output, "Skills (2 skills)")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDiagnostics_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDiagnostics(sampleDocument())

	assert.Contains(t, buf.String(), "NO PARSE ISSUES FOUND")
}

func TestPrintDiagnostics_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := sampleDocument()
	doc.IsValid = false
	doc.Errors = []string{"No name found in resume"}
	doc.Warnings = []string{"Job entry missing role"}

	p.PrintDiagnostics(doc)
	output := buf.String()

	assert.Contains(t, output, "PARSE DIAGNOSTICS")
	assert.Contains(t, output, "Errors (1)")
	assert.Contains(t, output, "No name found in resume")
	assert.Contains(t, output, "Warnings (1)")
	assert.Contains(t, output, "Job entry missing role")
}

func TestSummarizeItems_Empty(t *testing.T) {
	assert.Equal(t, "empty", summarizeItems(nil))
}

func TestSummarizeItems_CategoryLabel(t *testing.T) {
	items := []types.Item{
		&types.SkillCategory{Category: "Languages", Skills: []string{"Go"}},
	}
	assert.Equal(t, "1 skill category", summarizeItems(items))
}
