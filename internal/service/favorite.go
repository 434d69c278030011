package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
)

// FavoriteService: избранное пользователя (не более model.MaxFavorites записей).
type FavoriteService struct {
	favorites repo.FavoriteRepository
	resources repo.ResourceRepository
	logger    *zap.SugaredLogger
}

func NewFavoriteService(favorites repo.FavoriteRepository, resources repo.ResourceRepository, logger *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{favorites: favorites, resources: resources, logger: logger}
}

// List возвращает активные объявления из избранного, новые первыми.
// Ссылки на удалённые объявления молча пропускаются.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]model.Resource, error) {
	ids, err := s.favorites.ListFavoriteIDs(ctx, userID)
	if err != nil {
		return nil, internal("list favorites", err)
	}
	found, err := s.resources.ListResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, internal("load favorite resources", err)
	}
	byID := make(map[string]model.Resource, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	out := make([]model.Resource, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok || r.Status != model.StatusActive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Add идемпотентно добавляет объявление в избранное.
func (s *FavoriteService) Add(ctx context.Context, userID, resourceID string) error {
	res, err := s.resources.GetResourceByID(ctx, resourceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrResourceNotFound
		}
		return internal("get resource", err)
	}
	// чужие скрытые объявления для пользователя не существуют
	if !visible(res, &Actor{ID: userID}) {
		return ErrResourceNotFound
	}
	exists, err := s.favorites.IsFavorite(ctx, userID, resourceID)
	if err != nil {
		return internal("check favorite", err)
	}
	if exists {
		return nil
	}
	// проверка предела и вставка не атомарны: параллельные добавления могут слегка превысить предел
	n, err := s.favorites.CountFavorites(ctx, userID)
	if err != nil {
		return internal("count favorites", err)
	}
	if n >= maxFavorites {
		return ErrFavoritesLimit
	}
	if _, err := s.favorites.AddFavorite(ctx, userID, resourceID); err != nil {
		return internal("add favorite", err)
	}
	return nil
}

// Remove идемпотентно убирает объявление из избранного.
func (s *FavoriteService) Remove(ctx context.Context, userID, resourceID string) error {
	if err := s.favorites.RemoveFavorite(ctx, userID, resourceID); err != nil {
		return internal("remove favorite", err)
	}
	return nil
}

func (s *FavoriteService) Check(ctx context.Context, userID, resourceID string) (bool, error) {
	ok, err := s.favorites.IsFavorite(ctx, userID, resourceID)
	if err != nil {
		return false, internal("check favorite", err)
	}
	return ok, nil
}

// Toggle переключает членство и возвращает состояние, прочитанное из хранилища.
func (s *FavoriteService) Toggle(ctx context.Context, userID, resourceID string) (bool, error) {
	current, err := s.Check(ctx, userID, resourceID)
	if err != nil {
		return false, err
	}
	if current {
		err = s.Remove(ctx, userID, resourceID)
	} else {
		err = s.Add(ctx, userID, resourceID)
	}
	if err != nil {
		return current, err
	}
	return s.Check(ctx, userID, resourceID)
}
