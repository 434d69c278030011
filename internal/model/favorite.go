package model

import "time"

// MaxFavorites: максимальный размер избранного одного пользователя.
const MaxFavorites = 30

// Favorite: связь пользователь ↔ объявление в избранном.
type Favorite struct {
	UserID     string    `gorm:"primaryKey;type:uuid"`
	ResourceID string    `gorm:"primaryKey;type:uuid;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
