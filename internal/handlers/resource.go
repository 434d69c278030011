package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// ResourceHandler: объявления и их изображения.
type ResourceHandler struct {
	ResourceService *service.ResourceService
	Logger          *zap.SugaredLogger
	MaxImageBytes   int64
}

func NewResourceHandler(resourceService *service.ResourceService, logger *zap.SugaredLogger, maxImageBytes int64) *ResourceHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 << 20
	}
	return &ResourceHandler{ResourceService: resourceService, Logger: logger, MaxImageBytes: maxImageBytes}
}

func parseFloatParam(r *http.Request, key string) (*float64, *dto.FieldError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &dto.FieldError{Field: key, Message: key + " must be a number"}
	}
	return &v, nil
}

func parseQuery(r *http.Request) (service.ResourceQuery, []dto.FieldError) {
	q := r.URL.Query()
	out := service.ResourceQuery{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		City:     q.Get("city"),
		Status:   q.Get("status"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}
	var fields []dto.FieldError
	var fe *dto.FieldError
	if out.MinPrice, fe = parseFloatParam(r, "minPrice"); fe != nil {
		fields = append(fields, *fe)
	}
	if out.MaxPrice, fe = parseFloatParam(r, "maxPrice"); fe != nil {
		fields = append(fields, *fe)
	}
	if raw := q.Get("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields = append(fields, dto.FieldError{Field: "featured", Message: "featured must be true or false"})
		} else {
			out.Featured = &b
		}
	}
	return out, fields
}

// List публичный поиск объявлений
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	query, fields := parseQuery(r)
	if len(fields) > 0 {
		badRequest(w, "invalid query parameters", fields...)
		return
	}
	p, err := h.ResourceService.List(r.Context(), query, actorFrom(r))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okPage(w, resourceViews(p.Items), p.Total, p.Page, p.Limit)
}

// Mine объявления текущего пользователя во всех статусах
func (h *ResourceHandler) Mine(w http.ResponseWriter, r *http.Request) {
	p, err := h.ResourceService.ListMine(r.Context(), actorFrom(r), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okPage(w, resourceViews(p.Items), p.Total, p.Page, p.Limit)
}

// GetBySlug карточка объявления; увеличивает счётчик просмотров
func (h *ResourceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	res, err := h.ResourceService.GetBySlug(r.Context(), chi.URLParam(r, "slug"), actorFrom(r))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, resourceView(res))
}

// GetByID чтение для кабинета, без счётчика просмотров
func (h *ResourceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	res, err := h.ResourceService.GetByID(r.Context(), chi.URLParam(r, "id"), actorFrom(r))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, resourceView(res))
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.ResourceService.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusCreated, resourceView(res))
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateResourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.ResourceService.Update(r.Context(), chi.URLParam(r, "id"), actorFrom(r), req)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, resourceView(res))
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ResourceService.Delete(r.Context(), chi.URLParam(r, "id"), actorFrom(r)); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	okMessage(w, "resource deleted")
}

// UploadImages multipart-загрузка: поле images (несколько файлов) и alt (по одному на файл)
func (h *ResourceHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	maxBody := h.MaxImageBytes*service.MaxImagesPerResource + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Logger.Warnw("UploadImages: payload too large", "limit", maxBody)
			writeJSON(w, http.StatusRequestEntityTooLarge, dto.Envelope{Message: "payload too large"})
			return
		}
		h.Logger.Warnw("UploadImages: invalid multipart form", "error", err)
		badRequest(w, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["images"]
	alts := r.MultipartForm.Value["alt"]
	uploads := make([]service.ImageUpload, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.Logger.Warnw("UploadImages: open part", "file", fh.Filename, "error", err)
			badRequest(w, "failed to read image")
			return
		}
		// +1 байт, чтобы сервис увидел превышение лимита
		data, err := io.ReadAll(io.LimitReader(f, h.MaxImageBytes+1))
		_ = f.Close()
		if err != nil {
			h.Logger.Warnw("UploadImages: read part", "file", fh.Filename, "error", err)
			badRequest(w, "failed to read image")
			return
		}
		up := service.ImageUpload{Data: data}
		if i < len(alts) {
			up.Alt = alts[i]
		}
		uploads = append(uploads, up)
	}

	res, err := h.ResourceService.AddImages(r.Context(), chi.URLParam(r, "id"), actorFrom(r), uploads)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.ResourceResponse{Resource: resourceView(res)})
}

func (h *ResourceHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	order, err := strconv.Atoi(chi.URLParam(r, "order"))
	if err != nil {
		badRequest(w, "invalid image order", dto.FieldError{Field: "order", Message: "order must be an integer"})
		return
	}
	res, err := h.ResourceService.RemoveImage(r.Context(), chi.URLParam(r, "id"), actorFrom(r), order)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	ok(w, http.StatusOK, dto.ResourceResponse{Resource: resourceView(res)})
}

// Image отдаёт байты изображения в исходном виде
func (h *ResourceHandler) Image(w http.ResponseWriter, r *http.Request) {
	obj, err := h.ResourceService.OpenImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	w.Header().Set("Content-Type", obj.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}
