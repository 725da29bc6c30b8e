package routes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"RentRate/internal/api/handlers"
	"RentRate/internal/api/middleware"
	"RentRate/internal/core/users"
)

// AuthHandler handles account registration, login and the current-user endpoint
type AuthHandler struct {
	userService users.UserService
}

// RegisterAuthRoutes registers account endpoints on the router
func RegisterAuthRoutes(r chi.Router, service users.UserService, authMiddleware *middleware.AuthMiddleware) {
	h := &AuthHandler{userService: service}

	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.With(authMiddleware.RequireAuth).Get("/api/me", h.Me)
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	resp, err := h.userService.Register(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	resp, err := h.userService.Login(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), middleware.GetUserID(r))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	var invalidEmail *users.InvalidEmailError
	var weakPassword *users.WeakPasswordError

	switch {
	case errors.Is(err, users.ErrEmailAlreadyRegistered):
		handlers.WriteError(w, http.StatusConflict, "EmailAlreadyRegistered", "Email already registered")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case errors.Is(err, users.ErrTermsNotAccepted):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "You must accept the terms and conditions")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.As(err, &invalidEmail):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid email format")
	case errors.As(err, &weakPassword):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", weakPassword.Error())
	default:
		slog.Error("account operation failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}
