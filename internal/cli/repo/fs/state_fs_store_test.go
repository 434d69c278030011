package fs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// setTempCfg перенастраивает пользовательский конфиг‑каталог в temp для изоляции тестов.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestStateFSStore_Token_DefaultDirAndTrim(t *testing.T) {
	dir := setTempCfg(t)
	st := StateFSStore{}
	if err := st.Save("tok-123\n"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	// токен лежит в %CONFIG%/RentCo/auth_token
	p := filepath.Join(dir, "RentCo", "auth_token")
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("token file not in config dir: %v", err)
	}
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	if err != nil || tok != "tok-123" {
		t.Fatalf("load token: %q, %v", tok, err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := st.Load(); !errors.Is(err, repo.ErrNoValue) {
		t.Fatalf("expected ErrNoValue after clear, got %v", err)
	}
	// повторная очистка не ошибка
	if err := st.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestStateFSStore_EmptyFileIsNoValue(t *testing.T) {
	st := StateFSStore{Dir: t.TempDir()}
	_ = os.WriteFile(filepath.Join(st.Dir, "auth_token"), []byte("\n"), 0o600)
	if _, err := st.Load(); !errors.Is(err, repo.ErrNoValue) {
		t.Fatalf("expected ErrNoValue for empty file, got %v", err)
	}
	if err := st.Save("   "); err == nil {
		t.Fatalf("expected error for blank token")
	}
}

func TestStateFSStore_UserPrefsFavorites(t *testing.T) {
	st := StateFSStore{Dir: filepath.Join(t.TempDir(), "state")}

	if _, err := st.LoadUser(); !errors.Is(err, repo.ErrNoValue) {
		t.Fatalf("expected ErrNoValue for missing user, got %v", err)
	}
	u := dto.UserView{ID: "u1", FirstName: "Ana", Email: "ana@example.com", Language: "sr"}
	if err := st.SaveUser(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, err := st.LoadUser()
	if err != nil || got.ID != "u1" || got.Email != "ana@example.com" {
		t.Fatalf("load user: %+v, %v", got, err)
	}
	if err := st.SaveUser(dto.UserView{}); err == nil {
		t.Fatalf("expected error for user without id")
	}

	if err := st.SavePreferences(repo.PreferencesRecord{Language: "en", Theme: "dark"}); err != nil {
		t.Fatalf("save prefs: %v", err)
	}
	p, err := st.LoadPreferences()
	if err != nil || p.Language != "en" || p.Theme != "dark" {
		t.Fatalf("load prefs: %+v, %v", p, err)
	}

	if err := st.SaveFavoriteIDs([]string{"r2", "r1"}); err != nil {
		t.Fatalf("save favorites: %v", err)
	}
	ids, err := st.LoadFavoriteIDs()
	if err != nil || len(ids) != 2 || ids[0] != "r2" {
		t.Fatalf("load favorites: %v, %v", ids, err)
	}
	if err := st.ClearFavoriteIDs(); err != nil {
		t.Fatalf("clear favorites: %v", err)
	}
	if err := st.ClearUser(); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	if _, err := os.Stat(filepath.Join(st.Dir, "user.json")); !os.IsNotExist(err) {
		t.Fatalf("user.json must be removed, stat err: %v", err)
	}
}
