package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookpoint/bookpoint/internal/auth"
	"github.com/bookpoint/bookpoint/pkg/jwt"
	"github.com/bookpoint/bookpoint/pkg/logger"
)

type handlers struct {
	svc         *auth.Service
	healthcheck func(context.Context) error
	logger      *slog.Logger
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "All required fields must be filled")
		return
	}

	_, err := h.svc.Register(r.Context(), auth.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    auth.PublicUser `json:"user"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *handlers) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		h.renderError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Password reset link sent successfully to your email.")
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func (h *handlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "New password is required")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), token, req.NewPassword); err != nil {
		h.renderError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Password has been reset successfully.")
}

type homeResponse struct {
	Message string      `json:"message"`
	User    *jwt.Claims `json:"user"`
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		// The guard always sets claims; reaching here means a wiring bug.
		writeMessage(w, http.StatusForbidden, "Token required")
		return
	}

	writeJSON(w, http.StatusOK, homeResponse{
		Message: "Welcome to BookPoint Home!",
		User:    claims,
	})
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	if h.healthcheck != nil {
		if err := h.healthcheck(r.Context()); err != nil {
			h.logger.Error("healthcheck failed", logger.Error(err), logger.Component("handler"))
			writeMessage(w, http.StatusServiceUnavailable, "Backend unavailable")
			return
		}
	}
	writeMessage(w, http.StatusOK, "Backend working")
}

// renderError maps domain errors to status+message pairs. Unexpected
// failures are logged and surfaced uniformly as a 500 without internals.
func (h *handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, "All required fields must be filled")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, auth.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "No user found with that email.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		writeMessage(w, http.StatusBadRequest, "Invalid or expired reset token.")
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			logger.Error(err),
			logger.Component("handler"),
		)
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
