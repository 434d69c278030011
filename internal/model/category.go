package model

import "time"

// Category: плоская категория каталога.
type Category struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Name       string `gorm:"not null"`
	Slug       string `gorm:"not null;uniqueIndex"`
	Icon       string
	CoverImage string
	Order      int `gorm:"column:sort_order;not null;default:0;index"`

	// ResourceCount вычисляется при чтении и не хранится
	ResourceCount int64 `gorm:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
