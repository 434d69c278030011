package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/middleware"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, env dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func ok(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dto.Envelope{Success: true, Data: data})
}

func okMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, dto.Envelope{Success: true, Message: msg})
}

func okPage[T any](w http.ResponseWriter, items []T, total int64, page, limit int) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, dto.Envelope{
		Success:    true,
		Data:       items,
		Pagination: dto.NewPagination(total, page, limit),
	})
}

func statusFor(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindLimitExceeded:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError: единственное место, где ошибки сервисов превращаются в HTTP-ответ.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	var se *service.Error
	if !errors.As(err, &se) || se.Kind == service.KindInternal {
		logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.Envelope{Message: "internal error"})
		return
	}
	writeJSON(w, statusFor(se.Kind), dto.Envelope{Message: se.Message, Errors: se.Fields})
}

func badRequest(w http.ResponseWriter, msg string, fields ...dto.FieldError) {
	writeJSON(w, http.StatusBadRequest, dto.Envelope{Message: msg, Errors: fields})
}

// decodeJSON читает тело запроса в dst; при ошибке ответ уже записан.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, dto.Envelope{Message: "request body too large"})
			return false
		}
		if errors.Is(err, io.EOF) {
			badRequest(w, "request body is empty")
			return false
		}
		badRequest(w, "invalid request body")
		return false
	}
	return true
}

// actorFrom строит участника из claims; для анонимного запроса: nil.
func actorFrom(r *http.Request) *service.Actor {
	c, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil
	}
	return &service.Actor{ID: c.ID, Admin: c.IsAdmin()}
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
