package model

import (
	"time"

	"gorm.io/datatypes"
)

// Статусы объявления
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Валюты
const (
	CurrencyEUR = "EUR"
	CurrencyRSD = "RSD"
	CurrencyUSD = "USD"
)

// Image: изображение объявления; первое по порядку считается основным.
type Image struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Order int    `json:"order"`
}

// ExtraInfo: произвольная пара «название: значение».
type ExtraInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Location: адрес объявления (хранится во встроенных колонках location_*).
type Location struct {
	Country string
	City    string `gorm:"index"`
	Address string
}

// Resource: объявление об аренде.
type Resource struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Title       string `gorm:"not null"`
	Slug        string `gorm:"not null;uniqueIndex"`
	Description string `gorm:"not null"`

	CategoryID string    `gorm:"type:uuid;not null;index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
	OwnerID    string    `gorm:"type:uuid;not null;index"`
	Owner      *User     `gorm:"foreignKey:OwnerID"`

	PricePerDay float64 `gorm:"not null"`
	Currency    string  `gorm:"not null;default:EUR"`
	Status      string  `gorm:"not null;default:pending;index"`
	IsFeatured  bool    `gorm:"not null;default:false"`

	Options   datatypes.JSONSlice[string]    `gorm:"type:json"`
	Images    datatypes.JSONSlice[Image]     `gorm:"type:json"`
	Location  Location                       `gorm:"embedded;embeddedPrefix:location_"`
	ExtraInfo datatypes.JSONSlice[ExtraInfo] `gorm:"type:json"`

	Views int64 `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
