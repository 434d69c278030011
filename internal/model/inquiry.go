package model

import "time"

// Статусы обращения
const (
	InquiryNew       = "new"
	InquiryRead      = "read"
	InquiryResponded = "responded"
)

// Inquiry: сообщение посетителя владельцу объявления.
type Inquiry struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	ResourceID string `gorm:"type:uuid;not null;index"`
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	Email      string `gorm:"not null"`
	Message    string `gorm:"not null"`
	Status     string `gorm:"not null;default:new;index"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
