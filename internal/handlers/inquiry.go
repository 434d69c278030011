package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// InquiryHandler: обращения посетителей к владельцам.
type InquiryHandler struct {
	InquiryService *service.InquiryService
	Logger         *zap.SugaredLogger
}

func NewInquiryHandler(inquiryService *service.InquiryService, logger *zap.SugaredLogger) *InquiryHandler {
	return &InquiryHandler{InquiryService: inquiryService, Logger: logger}
}

// Create публичная форма обращения
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inq, err := h.InquiryService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, inquiryView(inq))
}

// List обращения по объявлениям владельца (администратор видит все)
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.InquiryService.List(r.Context(), actorFrom(r), service.InquiryFilter{
		Status:     q.Get("status"),
		ResourceID: q.Get("resourceId"),
	})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	out := make([]dto.InquiryView, 0, len(items))
	for i := range items {
		out = append(out, inquiryView(&items[i]))
	}
	ok(w, http.StatusOK, out)
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.InquiryStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inq, err := h.InquiryService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), actorFrom(r), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, inquiryView(inq))
}

func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.InquiryService.Delete(r.Context(), chi.URLParam(r, "id"), actorFrom(r)); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okMessage(w, "inquiry deleted")
}
