package state

import (
	"context"
	"errors"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// Cache key prefixes for per-user data.
const (
	KeyMe        = "me:"
	KeyFavorites = "favorites:"
	KeyMine      = "mine:"
)

// App wires the API client, cache and state providers of one CLI run.
type App struct {
	API   *api.Client
	Cache cache.Store
	Store repo.StateStore

	Session     *Session
	Preferences *Preferences
	Favorites   *Favorites
}

func NewApp(client *api.Client, c cache.Store, store repo.StateStore) *App {
	return &App{
		API:         client,
		Cache:       c,
		Store:       store,
		Session:     NewSession(store, store),
		Preferences: NewPreferences(store),
		Favorites:   NewFavorites(client, store),
	}
}

// Init hydrates the providers and configures the client from them.
func (a *App) Init() error {
	if err := a.Session.Hydrate(); err != nil {
		return err
	}
	if err := a.Preferences.Hydrate(); err != nil {
		return err
	}
	if err := a.Favorites.Hydrate(); err != nil {
		return err
	}
	a.API.SetToken(a.Session.Token())
	a.API.SetLanguage(a.Preferences.Language())
	return nil
}

// Close persists state and releases the cache.
func (a *App) Close() error {
	return errors.Join(
		a.Session.Persist(),
		a.Preferences.Persist(),
		a.Favorites.Persist(),
		a.Cache.Close(),
	)
}

func (a *App) Login(ctx context.Context, req dto.LoginRequest) (dto.UserView, error) {
	res, err := a.API.Login(ctx, req)
	if err != nil {
		return dto.UserView{}, err
	}
	return res.User, a.signIn(ctx, res)
}

func (a *App) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserView, error) {
	res, err := a.API.Register(ctx, req)
	if err != nil {
		return dto.UserView{}, err
	}
	return res.User, a.signIn(ctx, res)
}

func (a *App) signIn(ctx context.Context, res dto.AuthResponse) error {
	// данные прошлого пользователя не должны пережить смену сессии
	if err := a.dropUserData(ctx); err != nil {
		return err
	}
	if err := a.Session.SignIn(res.Token, res.User); err != nil {
		return err
	}
	a.API.SetToken(res.Token)
	return nil
}

// Logout forgets the session, favorites and per-user cache entries.
func (a *App) Logout(ctx context.Context) error {
	a.API.SetToken("")
	return errors.Join(a.Session.SignOut(), a.dropUserData(ctx))
}

func (a *App) dropUserData(ctx context.Context) error {
	errs := []error{a.Favorites.Reset()}
	for _, p := range []string{KeyMe, KeyFavorites, KeyMine} {
		if _, err := a.Cache.Invalidate(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetLanguage changes the language and the Accept-Language of the client.
func (a *App) SetLanguage(lang string) error {
	if err := a.Preferences.SetLanguage(lang); err != nil {
		return err
	}
	a.API.SetLanguage(lang)
	return nil
}
