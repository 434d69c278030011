package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

const (
	appDirName    = "RentCo"
	tokenFile     = "auth_token"
	userFile      = "user.json"
	prefsFile     = "preferences.json"
	favoritesFile = "favorites.json"
)

// StateFSStore: файловое хранилище токена, профиля, настроек и избранного для CLI.
// Dir пуст: используется os.UserConfigDir()/RentCo.
type StateFSStore struct {
	Dir string
}

var _ repo.StateStore = StateFSStore{}

func (s StateFSStore) configDir() (string, error) {
	p := s.Dir
	if p == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, appDirName)
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s StateFSStore) path(name string) (string, error) {
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// write пишет файл через временный и rename, чтобы не оставить его обрезанным.
func (s StateFSStore) write(name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

func (s StateFSStore) read(name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, repo.ErrNoValue
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, repo.ErrNoValue
	}
	return b, nil
}

func (s StateFSStore) remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}

func (s StateFSStore) writeJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.write(name, b)
}

func (s StateFSStore) readJSON(name string, v any) error {
	b, err := s.read(name)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// Save сохраняет auth‑токен в файл.
func (s StateFSStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	return s.write(tokenFile, []byte(token))
}

// Load читает auth‑токен из файла, обрезая пробельные символы.
func (s StateFSStore) Load() (string, error) {
	b, err := s.read(tokenFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Clear удаляет auth‑токен.
func (s StateFSStore) Clear() error { return s.remove(tokenFile) }

func (s StateFSStore) SaveUser(u dto.UserView) error {
	if u.ID == "" {
		return errors.New("empty user id")
	}
	return s.writeJSON(userFile, u)
}

func (s StateFSStore) LoadUser() (dto.UserView, error) {
	var u dto.UserView
	err := s.readJSON(userFile, &u)
	return u, err
}

func (s StateFSStore) ClearUser() error { return s.remove(userFile) }

func (s StateFSStore) SavePreferences(p repo.PreferencesRecord) error {
	return s.writeJSON(prefsFile, p)
}

func (s StateFSStore) LoadPreferences() (repo.PreferencesRecord, error) {
	var p repo.PreferencesRecord
	err := s.readJSON(prefsFile, &p)
	return p, err
}

func (s StateFSStore) SaveFavoriteIDs(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.writeJSON(favoritesFile, ids)
}

func (s StateFSStore) LoadFavoriteIDs() ([]string, error) {
	var ids []string
	err := s.readJSON(favoritesFile, &ids)
	return ids, err
}

func (s StateFSStore) ClearFavoriteIDs() error { return s.remove(favoritesFile) }
