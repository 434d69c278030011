package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/auth"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/middleware"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
)

// лимит попыток входа/регистрации с одного IP в минуту
const authRatePerMin = 20

type Handler struct {
	Router chi.Router
}

// Services: набор сервисов, которые обслуживает API.
type Services struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Categories *service.CategoryService
	Resources  *service.ResourceService
	Favorites  *service.FavoriteService
	Inquiries  *service.InquiryService
}

// NewHandler разводящий для хендлеров. ready проверяет доступность хранилища для /readyz.
func NewHandler(
	svc Services,
	tokens *auth.TokenManager,
	ready func(context.Context) error,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(tokens))
	r.Use(middleware.WithAccountCheck(svc.Auth.AccountStatus))

	// Handlers
	authHandler := NewAuthHandler(svc.Auth, logger)
	userHandler := NewUserHandler(svc.Users, logger)
	categoryHandler := NewCategoryHandler(svc.Categories, logger)
	resourceHandler := NewResourceHandler(svc.Resources, logger, int64(cfg.UploadMaxMB)<<20)
	favoriteHandler := NewFavoriteHandler(svc.Favorites, logger)
	inquiryHandler := NewInquiryHandler(svc.Inquiries, logger)

	authLimiter := middleware.NewIPRateLimiter(authRatePerMin, authRatePerMin)
	inquiryLimiter := middleware.NewIPRateLimiter(cfg.InquiryPerMin, cfg.InquiryPerMin)

	// Ops
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		okMessage(w, "ok")
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if ready != nil {
			if err := ready(ctx); err != nil {
				logger.Warnw("readiness check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, dto.Envelope{Message: "not ready"})
				return
			}
		}
		okMessage(w, "ready")
	})
	// сжатие ответа выполняет WithGzip
	r.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}))

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.With(authLimiter.Handler).Post("/auth/register", authHandler.Register)
		r.With(authLimiter.Handler).Post("/auth/login", authHandler.Login)
		r.With(middleware.RequireAuth).Get("/auth/me", authHandler.Me)

		// Categories
		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{slug}", categoryHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/categories", categoryHandler.Create)
			r.Put("/categories/{id}", categoryHandler.Update)
			r.Delete("/categories/{id}", categoryHandler.Delete)
		})

		// Resources
		r.Get("/resources", resourceHandler.List)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/resources/mine", resourceHandler.Mine)
			r.Get("/resources/id/{id}", resourceHandler.GetByID)
			r.Post("/resources", resourceHandler.Create)
			r.Put("/resources/{id}", resourceHandler.Update)
			r.Delete("/resources/{id}", resourceHandler.Delete)
			r.Post("/resources/{id}/images", resourceHandler.UploadImages)
			r.Delete("/resources/{id}/images/{order}", resourceHandler.RemoveImage)
		})
		r.Get("/resources/{slug}", resourceHandler.GetBySlug)
		r.Get("/images/{id}", resourceHandler.Image)

		// Favorites
		r.Route("/favorites", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", favoriteHandler.List)
			r.Post("/{resourceId}", favoriteHandler.Add)
			r.Delete("/{resourceId}", favoriteHandler.Remove)
			r.Get("/{resourceId}/check", favoriteHandler.Check)
			r.Post("/{resourceId}/toggle", favoriteHandler.Toggle)
		})

		// Inquiries
		r.With(inquiryLimiter.Handler).Post("/inquiries", inquiryHandler.Create)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/inquiries", inquiryHandler.List)
			r.Patch("/inquiries/{id}/status", inquiryHandler.UpdateStatus)
			r.Delete("/inquiries/{id}", inquiryHandler.Delete)
		})

		// Users
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Put("/users/me", userHandler.UpdateProfile)
			r.Put("/users/me/password", userHandler.ChangePassword)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/users", userHandler.List)
			r.Patch("/users/{id}/active", userHandler.SetActive)
			r.Delete("/users/{id}", userHandler.Delete)
		})
	})

	return &Handler{Router: r}
}
