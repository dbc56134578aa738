package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxMarkdownLength caps the size of Markdown accepted by the document
// endpoints. Inputs past this size are rejected, not truncated.
const maxMarkdownLength = 50000

// requestValidator is shared by the document handlers.
var requestValidator = validator.New()

// decodeRequest decodes and validates a JSON request body into dst.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := requestValidator.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// checkMarkdownLength rejects oversized Markdown payloads.
func (s *Server) checkMarkdownLength(w http.ResponseWriter, md string) bool {
	if len(md) > maxMarkdownLength {
		s.errorResponse(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("markdown exceeds maximum length of %d characters", maxMarkdownLength))
		return false
	}
	return true
}

// handleParse parses resume Markdown into a structured document.
// Parse failures are not HTTP errors: the document carries its own
// diagnostics in is_valid, errors and warnings.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if !s.checkMarkdownLength(w, req.Markdown) {
		return
	}

	opts := markdown.DefaultOptions()
	if req.ScavengeDates != nil {
		opts.ScavengeDates = *req.ScavengeDates
	}

	doc := markdown.ParseWithOptions(req.Markdown, opts)
	s.jsonResponse(w, http.StatusOK, types.ParseResponse{Document: doc})
}

// handleRender parses Markdown and renders it with an HTML template.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req types.RenderRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if !s.checkMarkdownLength(w, req.Markdown) {
		return
	}

	doc := markdown.Parse(req.Markdown)
	if !doc.IsValid {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "resume could not be parsed",
			"errors": doc.Errors,
		})
		return
	}

	templateName := req.Template
	if templateName == "" {
		templateName = "classic"
	}

	html, err := rendering.RenderHTML(doc, templateName)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RenderResponse{
		HTML:     html,
		Warnings: doc.Warnings,
	})
}

// handleExport parses Markdown and returns a rendered PDF.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if !s.checkMarkdownLength(w, req.Markdown) {
		return
	}

	doc := markdown.Parse(req.Markdown)
	if !doc.IsValid {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "resume could not be parsed",
			"errors": doc.Errors,
		})
		return
	}

	pdf, err := export.ToPDF(r.Context(), doc, export.Options{Template: req.Template})
	if err != nil {
		s.logger.Error().Err(err).Msg("PDF export failed")
		s.errorResponse(w, http.StatusInternalServerError, "PDF export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.Error().Err(err).Msg("failed to write PDF response")
	}
}

// handleGenerate produces optimized resume Markdown from a source resume
// and a job description, then parses the result.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "resume generation is not configured")
		return
	}

	var req types.GenerateRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	md, err := llm.GenerateResumeMarkdown(r.Context(), s.llmClient, req.ResumeText, req.JobDescription)
	if err != nil {
		s.logger.Error().Err(err).Msg("resume generation failed")
		s.errorResponse(w, http.StatusBadGateway, "resume generation failed")
		return
	}

	doc := markdown.Parse(md)
	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Markdown: md,
		Document: doc,
	})
}

// handleListTemplates returns the available HTML template names.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{
		"templates": rendering.TemplateNames(),
	})
}
