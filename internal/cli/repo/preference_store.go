package repo

import "errors"

// ErrNoValue: значение ещё ни разу не сохранялось (или файл пуст).
var ErrNoValue = errors.New("no stored value")

// PreferencesRecord: сохранённые настройки интерфейса.
type PreferencesRecord struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// PreferenceStore хранит настройки языка и темы.
type PreferenceStore interface {
	SavePreferences(p PreferencesRecord) error
	LoadPreferences() (PreferencesRecord, error)
}

// FavoriteStore хранит локальную копию множества избранного.
type FavoriteStore interface {
	SaveFavoriteIDs(ids []string) error
	LoadFavoriteIDs() ([]string, error)
	ClearFavoriteIDs() error
}

// StateStore: всё состояние клиента, которое переживает перезапуск.
type StateStore interface {
	TokenStore
	UserContextStore
	PreferenceStore
	FavoriteStore
}
