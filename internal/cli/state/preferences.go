package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
)

const (
	LangSR = "sr"
	LangEN = "en"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrInvalidPreference is returned for an unknown language or theme.
var ErrInvalidPreference = errors.New("invalid preference value")

// Preferences are the UI language and theme.
type Preferences struct {
	store repo.PreferenceStore

	mu       sync.RWMutex
	language string
	theme    string
}

func NewPreferences(store repo.PreferenceStore) *Preferences {
	return &Preferences{store: store, language: LangSR, theme: ThemeLight}
}

// Hydrate loads stored values; unknown values fall back to defaults.
func (p *Preferences) Hydrate() error {
	rec, err := p.store.LoadPreferences()
	if errors.Is(err, repo.ErrNoValue) {
		return nil
	}
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if validLanguage(rec.Language) {
		p.language = rec.Language
	}
	if validTheme(rec.Theme) {
		p.theme = rec.Theme
	}
	return nil
}

func validLanguage(l string) bool { return l == LangSR || l == LangEN }
func validTheme(t string) bool    { return t == ThemeLight || t == ThemeDark }

func (p *Preferences) Language() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.language
}

func (p *Preferences) Theme() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

func (p *Preferences) SetLanguage(l string) error {
	if !validLanguage(l) {
		return fmt.Errorf("%w: language %q (sr|en)", ErrInvalidPreference, l)
	}
	p.mu.Lock()
	p.language = l
	p.mu.Unlock()
	return p.Persist()
}

func (p *Preferences) SetTheme(t string) error {
	if !validTheme(t) {
		return fmt.Errorf("%w: theme %q (light|dark)", ErrInvalidPreference, t)
	}
	p.mu.Lock()
	p.theme = t
	p.mu.Unlock()
	return p.Persist()
}

func (p *Preferences) Persist() error {
	p.mu.RLock()
	rec := repo.PreferencesRecord{Language: p.language, Theme: p.theme}
	p.mu.RUnlock()
	return p.store.SavePreferences(rec)
}
