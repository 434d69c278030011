package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// FavoriteRepository: связи пользователь ↔ объявление.
type FavoriteRepository interface {
	// AddFavorite вставляет связь; false: связь уже была.
	AddFavorite(ctx context.Context, userID, resourceID string) (bool, error)
	RemoveFavorite(ctx context.Context, userID, resourceID string) error
	IsFavorite(ctx context.Context, userID, resourceID string) (bool, error)
	CountFavorites(ctx context.Context, userID string) (int64, error)
	// ListFavoriteIDs: id объявлений, новые первыми.
	ListFavoriteIDs(ctx context.Context, userID string) ([]string, error)
	DeleteFavoritesByResource(ctx context.Context, resourceID string) error
	DeleteFavoritesByUser(ctx context.Context, userID string) error
}

type favoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) AddFavorite(ctx context.Context, userID, resourceID string) (bool, error) {
	fav := model.Favorite{UserID: userID, ResourceID: resourceID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *favoriteRepo) RemoveFavorite(ctx context.Context, userID, resourceID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		Delete(&model.Favorite{}).Error
}

func (r *favoriteRepo) IsFavorite(ctx context.Context, userID, resourceID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		Count(&n).Error
	return n > 0, err
}

func (r *favoriteRepo) CountFavorites(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *favoriteRepo) ListFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at desc, resource_id asc").
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *favoriteRepo) DeleteFavoritesByResource(ctx context.Context, resourceID string) error {
	return r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&model.Favorite{}).Error
}

func (r *favoriteRepo) DeleteFavoritesByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Favorite{}).Error
}
