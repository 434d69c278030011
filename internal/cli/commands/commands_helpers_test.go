package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	fsrepo "github.com/stevans93/rent-and-co-sub001/internal/cli/repo/fs"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/профиль/настройки) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// fakeAPI: минимальная имитация сервера Rent&Co.
type fakeAPI struct {
	mu    sync.Mutex
	hits  map[string]int
	fav   map[string]bool
	token string
}

func writeEnvelope(w http.ResponseWriter, status int, env dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()

	authed := r.Header.Get("Authorization") == "Bearer "+f.token
	user := dto.UserView{ID: "u1", FirstName: "Marko", LastName: "Markovic", Email: "marko@rentco.rs", Role: "user", Phone: "+381601234567", Language: "sr"}
	audi := dto.ResourceView{ID: "r1", Slug: "audi-a4", Title: "Audi A4", PricePerDay: 45, Currency: "EUR", Status: "active",
		Location: dto.LocationView{City: "Beograd"}}

	switch r.Method + " " + r.URL.Path {
	case "POST /api/auth/login":
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret1" {
			writeEnvelope(w, http.StatusBadRequest, dto.Envelope{Message: "invalid email or password"})
			return
		}
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: dto.AuthResponse{User: user, Token: f.token}})
	case "POST /api/auth/register":
		var req dto.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "taken@rentco.rs" {
			writeEnvelope(w, http.StatusConflict, dto.Envelope{Message: "email already registered"})
			return
		}
		if len(req.Password) < 6 {
			writeEnvelope(w, http.StatusBadRequest, dto.Envelope{Message: "validation failed",
				Errors: []dto.FieldError{{Field: "password", Message: "password must be at least 6 characters"}}})
			return
		}
		user.Email = req.Email
		writeEnvelope(w, http.StatusCreated, dto.Envelope{Success: true, Data: dto.AuthResponse{User: user, Token: f.token}})
	case "GET /api/auth/me":
		if !authed {
			writeEnvelope(w, http.StatusUnauthorized, dto.Envelope{Message: "unauthorized"})
			return
		}
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: dto.MeResponse{User: user}})
	case "GET /api/categories":
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: []dto.CategoryView{{ID: "c1", Name: "Vozila", Slug: "vozila", ResourceCount: 1}}})
	case "GET /api/resources":
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: []dto.ResourceView{audi}, Pagination: dto.NewPagination(1, 1, 12)})
	case "GET /api/resources/audi-a4":
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: audi})
	case "POST /api/favorites/r1/toggle":
		if !authed {
			writeEnvelope(w, http.StatusUnauthorized, dto.Envelope{Message: "unauthorized"})
			return
		}
		f.mu.Lock()
		f.fav["r1"] = !f.fav["r1"]
		on := f.fav["r1"]
		f.mu.Unlock()
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: dto.FavoriteState{ResourceID: "r1", IsFavorite: on}})
	case "GET /api/favorites":
		var items []dto.ResourceView
		f.mu.Lock()
		if f.fav["r1"] {
			items = append(items, audi)
		}
		f.mu.Unlock()
		writeEnvelope(w, http.StatusOK, dto.Envelope{Success: true, Data: items})
	case "POST /api/inquiries":
		var req dto.InquiryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Message) < 10 {
			writeEnvelope(w, http.StatusBadRequest, dto.Envelope{Message: "validation failed",
				Errors: []dto.FieldError{{Field: "message", Message: "message must be at least 10 characters"}}})
			return
		}
		writeEnvelope(w, http.StatusCreated, dto.Envelope{Success: true, Data: dto.InquiryView{ID: "q1", ResourceID: req.ResourceID, Email: req.Email, Status: "new"}})
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{hits: map[string]int{}, fav: map[string]bool{}, token: "tok-123"}
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return f, ts
}

// newTestApp собирает App поверх тестового сервера, кэша в памяти и временного каталога состояния.
func newTestApp(t *testing.T, serverURL string) *state.App {
	t.Helper()
	app := state.NewApp(api.New(serverURL, time.Second), cache.NewMemory(), fsrepo.StateFSStore{Dir: t.TempDir()})
	if err := app.Init(); err != nil {
		t.Fatalf("init app: %v", err)
	}
	return app
}

func signedIn(t *testing.T, app *state.App) {
	t.Helper()
	if err := (loginCmd{}).Run(context.Background(), app, []string{"marko@rentco.rs", "secret1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}
