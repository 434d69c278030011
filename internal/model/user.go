package model

import "time"

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Social: ссылки на соцсети владельца объявлений.
type Social struct {
	Website   string
	Facebook  string
	Instagram string
	LinkedIn  string
}

// User: серверная модель пользователя.
type User struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"` // хранится в нижнем регистре
	Password  string `gorm:"not null" json:"-"`   // bcrypt-хеш, наружу не отдаётся
	Role      string `gorm:"not null;default:user"`
	Active    bool   `gorm:"not null;default:true"`
	Language  string `gorm:"not null;default:sr"`

	Phone          string
	Address        string
	Company        string
	CompanyAddress string
	PIB            string
	Social         Social `gorm:"embedded;embeddedPrefix:social_"`
	ProfileImage   string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// IsAdmin сообщает, обладает ли пользователь правами администратора.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
