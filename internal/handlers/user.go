package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// UserHandler: профиль пользователя и администрирование аккаунтов.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// UpdateProfile правка собственного профиля
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.UpdateProfile(r.Context(), actorFrom(r).ID, req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.MeResponse{User: userView(u)})
}

// ChangePassword смена пароля
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.UserService.ChangePassword(r.Context(), actorFrom(r).ID, req); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okMessage(w, "password changed")
}

// List список пользователей (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := h.UserService.List(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	out := make([]dto.UserView, 0, len(p.Items))
	for i := range p.Items {
		out = append(out, userView(&p.Items[i]))
	}
	okPage(w, out, p.Total, p.Page, p.Limit)
}

// SetActive включение/отключение аккаунта (admin)
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req dto.SetActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.UserService.SetActive(r.Context(), chi.URLParam(r, "id"), req.Active)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.MeResponse{User: userView(u)})
}

// Delete удаление пользователя (admin)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okMessage(w, "user deleted")
}
