package handlers

import (
	"net/http"

	"caritasAPI/internal/middleware"
	"caritasAPI/internal/models"
)

type AuthResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    models.UserSummary `json:"user"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Summary(),
	}, http.StatusOK)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{
		"message": "User created successfully",
		"user":    user.Summary(),
	}, http.StatusCreated)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	user, err := h.UserService.Profile(r.Context(), claims.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, map[string]any{"user": user}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var patch models.ProfilePatch
	if !h.decode(w, r, &patch) {
		return
	}

	if err := h.UserService.UpdateProfile(r.Context(), claims.UserID, patch); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, ErrorResponse{Message: "Profile updated successfully"}, http.StatusOK)
}

func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	writeJSON(w, map[string]any{
		"message": "Token is valid",
		"user":    claims,
	}, http.StatusOK)
}
