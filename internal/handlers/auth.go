package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// AuthHandler: регистрация, вход и текущий пользователь.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер auth
func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

// Register регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, token, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, dto.AuthResponse{User: userView(user), Token: token})
}

// Login вход по email и паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, token, err := h.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.AuthResponse{User: userView(user), Token: token})
}

// Me текущий пользователь по токену
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	if actor == nil {
		writeError(w, r, h.Logger, service.ErrUnauthorized)
		return
	}
	user, err := h.AuthService.Me(r.Context(), actor.ID)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.MeResponse{User: userView(user)})
}
