package state

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// FavoritesAPI is the server side of the favorites toggle.
type FavoritesAPI interface {
	ToggleFavorite(ctx context.Context, resourceID string) (dto.FavoriteState, error)
}

// Favorites is the local set of favorite resource ids.
type Favorites struct {
	api   FavoritesAPI
	store repo.FavoriteStore

	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewFavorites(api FavoritesAPI, store repo.FavoriteStore) *Favorites {
	return &Favorites{api: api, store: store, ids: map[string]struct{}{}}
}

func (f *Favorites) Hydrate() error {
	ids, err := f.store.LoadFavoriteIDs()
	if errors.Is(err, repo.ErrNoValue) {
		return nil
	}
	if err != nil {
		return err
	}
	f.Replace(ids)
	return nil
}

func (f *Favorites) Has(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ids[id]
	return ok
}

// IDs returns the ids sorted.
func (f *Favorites) IDs() []string {
	f.mu.RLock()
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	f.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Replace adopts ids (typically the server's list) without persisting.
func (f *Favorites) Replace(ids []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	f.mu.Lock()
	f.ids = set
	f.mu.Unlock()
}

func (f *Favorites) set(id string, on bool) {
	f.mu.Lock()
	if on {
		f.ids[id] = struct{}{}
	} else {
		delete(f.ids, id)
	}
	f.mu.Unlock()
}

// Toggle flips membership optimistically, then adopts the server's answer.
// On failure the previous local state is restored and the error returned.
func (f *Favorites) Toggle(ctx context.Context, id string) (bool, error) {
	prev := f.Has(id)
	f.set(id, !prev)

	st, err := f.api.ToggleFavorite(ctx, id)
	if err != nil {
		f.set(id, prev)
		return prev, err
	}
	f.set(id, st.IsFavorite)
	return st.IsFavorite, f.Persist()
}

func (f *Favorites) Persist() error { return f.store.SaveFavoriteIDs(f.IDs()) }

// Reset clears the set and its stored copy.
func (f *Favorites) Reset() error {
	f.Replace(nil)
	return f.store.ClearFavoriteIDs()
}
