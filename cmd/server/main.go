package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stevans93/rent-and-co-sub001/internal/auth"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
	"github.com/stevans93/rent-and-co-sub001/internal/handlers"
	"github.com/stevans93/rent-and-co-sub001/internal/logger"
	"github.com/stevans93/rent-and-co-sub001/internal/middleware"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
	"github.com/stevans93/rent-and-co-sub001/internal/storage"
	"github.com/stevans93/rent-and-co-sub001/internal/tracing"
)

func main() {
	cfg := config.NewConfig()

	zl, err := logger.New(logger.Options{
		Development: cfg.Environment == config.EnvDev,
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := zl.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = zl.Sync()
	}()

	if err := cfg.ValidateServer(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, sugar, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		sugar.Fatalw("failed to initialize tracing", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.IsPostgres())
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql.DB", "error", err)
	}

	// хранилище изображений: GridFS при заданном MONGO_URI, иначе файловая система
	var images storage.Store
	if cfg.MongoURI != "" {
		gfs, err := storage.ConnectGridFS(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			sugar.Fatalw("failed to connect to MongoDB", "error", err)
		}
		defer func() { _ = gfs.Close(context.Background()) }()
		images = gfs
		sugar.Infow("image storage: gridfs", "db", cfg.MongoDatabase)
	} else {
		fsStore, err := storage.NewFSStore(cfg.UploadDir)
		if err != nil {
			sugar.Fatalw("failed to prepare upload dir", "dir", cfg.UploadDir, "error", err)
		}
		images = fsStore
		sugar.Infow("image storage: filesystem", "dir", cfg.UploadDir)
	}

	tokens := auth.NewTokenManager(cfg.AuthSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	resourceRepo := repo.NewResourceRepository(gormDB)
	favoriteRepo := repo.NewFavoriteRepository(gormDB)
	inquiryRepo := repo.NewInquiryRepository(gormDB)

	svc := handlers.Services{
		Auth:       service.NewAuthService(userRepo, tokens, cfg.BcryptCost, sugar),
		Users:      service.NewUserService(userRepo, favoriteRepo, cfg.BcryptCost, sugar),
		Categories: service.NewCategoryService(categoryRepo, sugar),
		Resources: service.NewResourceService(resourceRepo, categoryRepo, favoriteRepo, inquiryRepo,
			images, int64(cfg.UploadMaxMB)<<20, sugar),
		Favorites: service.NewFavoriteService(favoriteRepo, resourceRepo, sugar),
		Inquiries: service.NewInquiryService(inquiryRepo, resourceRepo, sugar),
	}

	h := handlers.NewHandler(svc, tokens, sqlDB.PingContext, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           otelhttp.NewHandler(h.Router, tracing.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:       90 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"env", cfg.Environment,
		"postgres", cfg.IsPostgres(),
		"cors", cfg.CORSOrigins,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		sugar.Warnw("tracing shutdown failed", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		sugar.Warnw("close database", "error", err)
	}
}
