package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/types"
)

// resumeLister is the slice of the resume store the auth endpoints need to
// summarize an account at sign-in.
type resumeLister interface {
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
}

// AuthHandler serves the register, login, and password endpoints. Register
// and login answer with a session: the user profile, a signed token, and a
// summary of the account's stored resumes.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	resumes     resumeLister
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler. resumes may be nil, in which case
// sessions carry an empty resume summary.
func NewAuthHandler(userService *UserService, jwtService *JWTService, resumes resumeLister) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		resumes:     resumes,
		validator:   validator.New(),
	}
}

// Register creates an account and opens a session for it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeSession(w, r, http.StatusCreated, user)
}

// Login authenticates an existing account and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.writeSession(w, r, http.StatusOK, user)
}

// UpdatePasswordWithUserID changes the password of the authenticated user.
func (h *AuthHandler) UpdatePasswordWithUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.UpdatePasswordRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Password updated successfully"}); err != nil {
		// Response already committed.
		return
	}
}

// writeSession issues a token for the user and responds with the session
// payload. The resume summary is best effort; a failed summary query must
// never block sign-in, it only leaves the summary fields at zero.
func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	session := types.SessionResponse{User: user, Token: token}
	if h.resumes != nil {
		if stored, err := h.resumes.ListResumes(r.Context(), user.ID); err == nil {
			session.ResumeCount = len(stored)
			if len(stored) > 0 {
				// ListResumes orders newest first.
				session.LastTemplate = stored[0].Template
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(session); err != nil {
		// Response already committed.
		return
	}
}

// decodeValid decodes a JSON request body into dst and validates it. On
// failure it writes the 400 response and returns false.
func (h *AuthHandler) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return false
	}
	return true
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
