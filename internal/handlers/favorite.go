package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// FavoriteHandler: избранное текущего пользователя. Все маршруты за RequireAuth.
type FavoriteHandler struct {
	FavoriteService *service.FavoriteService
	Logger          *zap.SugaredLogger
}

func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.SugaredLogger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteService: favoriteService, Logger: logger}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.FavoriteService.List(r.Context(), actorFrom(r).ID)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, resourceViews(items))
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceId")
	if err := h.FavoriteService.Add(r.Context(), actorFrom(r).ID, id); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.FavoriteState{ResourceID: id, IsFavorite: true})
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceId")
	if err := h.FavoriteService.Remove(r.Context(), actorFrom(r).ID, id); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.FavoriteState{ResourceID: id, IsFavorite: false})
}

func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceId")
	fav, err := h.FavoriteService.Check(r.Context(), actorFrom(r).ID, id)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.FavoriteState{ResourceID: id, IsFavorite: fav})
}

func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceId")
	fav, err := h.FavoriteService.Toggle(r.Context(), actorFrom(r).ID, id)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.FavoriteState{ResourceID: id, IsFavorite: fav})
}
