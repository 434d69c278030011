package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/auth"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/handlers"
	"github.com/stevans93/rent-and-co-sub001/internal/middleware"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/service"
	"github.com/stevans93/rent-and-co-sub001/internal/storage"
)

// pngHeader: минимальные байты, которые http.DetectContentType распознаёт как image/png
var pngHeader = []byte("\x89PNG\r\n\x1a\n0000000000000000")

type testAPI struct {
	t      *testing.T
	router http.Handler
	db     *gorm.DB
}

// newTestAPI собирает полный роутер поверх in-memory SQLite и файлового хранилища в t.TempDir()
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := repo.InitDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)
	cfg := &config.Config{
		AuthSecret:     "test-secret",
		RequestTimeout: 5 * time.Second,
		UploadMaxMB:    1,
		InquiryPerMin:  5,
		CORSOrigins:    []string{"http://localhost:5173"},
	}
	tokens := auth.NewTokenManager(cfg.AuthSecret, time.Hour)

	users := repo.NewUserRepository(db)
	categories := repo.NewCategoryRepository(db)
	resources := repo.NewResourceRepository(db)
	favorites := repo.NewFavoriteRepository(db)
	inquiries := repo.NewInquiryRepository(db)

	svc := handlers.Services{
		Auth:       service.NewAuthService(users, tokens, bcrypt.MinCost, logger),
		Users:      service.NewUserService(users, favorites, bcrypt.MinCost, logger),
		Categories: service.NewCategoryService(categories, logger),
		Resources:  service.NewResourceService(resources, categories, favorites, inquiries, store, 1<<20, logger),
		Favorites:  service.NewFavoriteService(favorites, resources, logger),
		Inquiries:  service.NewInquiryService(inquiries, resources, logger),
	}
	ready := func(ctx context.Context) error { return sqlDB.PingContext(ctx) }
	h := handlers.NewHandler(svc, tokens, ready, logger, cfg)
	return &testAPI{t: t, router: h.Router, db: db}
}

func (a *testAPI) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testAPI) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(req, token)
}

// decode разбирает конверт и, если out != nil, поле data
func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) dto.RawEnvelope {
	t.Helper()
	var env dto.RawEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out), "data: %s", string(env.Data))
	}
	return env
}

// register регистрирует пользователя и возвращает его токен и id
func (a *testAPI) register(first, email string) (string, string) {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		FirstName: first, LastName: "Petrović", Email: email, Password: "secret123",
	}, "")
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp dto.AuthResponse
	decode(a.t, rr, &resp)
	return resp.Token, resp.User.ID
}

// admin регистрирует пользователя, повышает до admin и перелогинивается
func (a *testAPI) admin(email string) string {
	a.t.Helper()
	_, id := a.register("Admin", email)
	require.NoError(a.t, a.db.Model(&model.User{}).Where("id = ?", id).Update("role", model.RoleAdmin).Error)
	rr := a.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: "secret123"}, "")
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
	var resp dto.AuthResponse
	decode(a.t, rr, &resp)
	return resp.Token
}

func (a *testAPI) createCategory(adminToken, name string) dto.CategoryView {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/categories", dto.CategoryRequest{Name: name}, adminToken)
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())
	var c dto.CategoryView
	decode(a.t, rr, &c)
	return c
}

func (a *testAPI) createResource(token, categoryID, title string) dto.ResourceView {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/resources", dto.CreateResourceRequest{
		Title:       title,
		Description: "Odlično očuvano, dostupno odmah.",
		CategoryID:  categoryID,
		PricePerDay: 25,
		Options:     []string{"GPS"},
		Location:    dto.LocationView{Country: "Srbija", City: "Beograd"},
	}, token)
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())
	var res dto.ResourceView
	decode(a.t, rr, &res)
	return res
}

func (a *testAPI) activate(adminToken, id string) {
	a.t.Helper()
	st := model.StatusActive
	rr := a.do(http.MethodPut, "/api/resources/"+id, dto.UpdateResourceRequest{Status: &st}, adminToken)
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
}
