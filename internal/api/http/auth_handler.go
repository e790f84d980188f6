package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	if _, err := h.authSvc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(w, err, "Failed to register user.")
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully!"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondJSON(w, http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
			return
		}
		respondError(w, err, "Failed to log in.")
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Message: "Login successful", User: user, Token: token})
}
