package types

// ParseRequest represents a request to parse resume Markdown into a
// structured document.
type ParseRequest struct {
	Markdown      string `json:"markdown" validate:"required"`
	ScavengeDates *bool  `json:"scavenge_dates,omitempty"`
}

// ParseResponse wraps the parsed document.
type ParseResponse struct {
	Document *ResumeDocument `json:"document"`
}

// RenderRequest represents a request to render resume Markdown as HTML.
type RenderRequest struct {
	Markdown string `json:"markdown" validate:"required"`
	Template string `json:"template,omitempty"`
}

// RenderResponse wraps the rendered HTML along with the document's
// diagnostics so callers can surface parse warnings.
type RenderResponse struct {
	HTML     string   `json:"html"`
	Warnings []string `json:"warnings,omitempty"`
}

// ExportRequest represents a request to export resume Markdown as PDF.
type ExportRequest struct {
	Markdown string `json:"markdown" validate:"required"`
	Template string `json:"template,omitempty"`
}

// GenerateRequest represents a request to generate optimized resume
// Markdown from a source resume and a job description.
type GenerateRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// GenerateResponse wraps the generated Markdown and its parsed form.
type GenerateResponse struct {
	Markdown string          `json:"markdown"`
	Document *ResumeDocument `json:"document"`
}

// SaveResumeRequest represents a request to persist a resume.
type SaveResumeRequest struct {
	Title    string `json:"title" validate:"required,min=1"`
	Markdown string `json:"markdown" validate:"required"`
	Template string `json:"template,omitempty"`
}

// UpdateResumeRequest represents a request to replace a stored resume's
// Markdown. The document snapshot is re-derived server side.
type UpdateResumeRequest struct {
	Markdown string `json:"markdown" validate:"required"`
}
