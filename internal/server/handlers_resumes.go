package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// authedUser resolves the authenticated user ID from the request context.
func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// pathResumeID parses the {id} path segment.
func (s *Server) pathResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return uuid.Nil, false
	}
	return id, true
}

// ownedResume loads a resume and checks it belongs to the user.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request, id, userID uuid.UUID) (*db.Resume, bool) {
	stored, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load resume")
		return nil, false
	}
	if stored == nil || stored.UserID != userID {
		// Not found and not owned are indistinguishable to the caller.
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return nil, false
	}
	return stored, true
}

// handleSaveResume parses and persists a resume for the authenticated user.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.SaveResumeRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if !s.checkMarkdownLength(w, req.Markdown) {
		return
	}

	doc := markdown.Parse(req.Markdown)
	docJSON, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to serialize document")
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize document")
		return
	}

	template := req.Template
	if template == "" {
		template = "classic"
	}

	id, err := s.db.SaveResume(r.Context(), userID, req.Title, req.Markdown, docJSON, template)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":       id,
		"document": doc,
	})
}

// handleListResumes lists the authenticated user's resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list resumes")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns a stored resume with its document snapshot.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	resume, ok := s.ownedResume(w, r, id, userID)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":       resume.ID,
		"title":    resume.Title,
		"markdown": resume.Markdown,
		"document": json.RawMessage(resume.Document),
		"template": resume.Template,
	})
}

// handleUpdateResume replaces a stored resume's Markdown and re-derives
// the document snapshot.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	var req types.UpdateResumeRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if !s.checkMarkdownLength(w, req.Markdown) {
		return
	}

	if _, owned := s.ownedResume(w, r, id, userID); !owned {
		return
	}

	doc := markdown.Parse(req.Markdown)
	docJSON, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to serialize document")
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize document")
		return
	}

	if err := s.db.UpdateResumeDocument(r.Context(), id, req.Markdown, docJSON); err != nil {
		s.logger.Error().Err(err).Msg("failed to update resume")
		s.errorResponse(w, http.StatusInternalServerError, "failed to update resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":       id,
		"document": doc,
	})
}

// handleDeleteResume removes a stored resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExportResume renders a stored resume as PDF using its saved
// template.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	resume, ok := s.ownedResume(w, r, id, userID)
	if !ok {
		return
	}

	doc := markdown.Parse(resume.Markdown)
	if !doc.IsValid {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "stored resume could not be parsed",
			"errors": doc.Errors,
		})
		return
	}

	pdf, err := export.ToPDF(r.Context(), doc, export.Options{Template: resume.Template})
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
