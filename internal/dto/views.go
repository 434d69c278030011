package dto

import "time"

// SocialView: ссылки на соцсети.
type SocialView struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// UserView: пользователь без пароля.
type UserView struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Active         bool       `json:"active"`
	Language       string     `json:"language"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	Company        string     `json:"company,omitempty"`
	CompanyAddress string     `json:"companyAddress,omitempty"`
	PIB            string     `json:"pib,omitempty"`
	Social         SocialView `json:"social"`
	ProfileImage   string     `json:"profileImage,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// OwnerView: публичные данные владельца объявления.
type OwnerView struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// CategoryView: категория с количеством активных объявлений.
type CategoryView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Icon          string `json:"icon,omitempty"`
	CoverImage    string `json:"coverImage,omitempty"`
	Order         int    `json:"order"`
	ResourceCount int64  `json:"resourceCount"`
}

type ImageView struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Order int    `json:"order"`
}

type ExtraInfoView struct {
	Label string `json:"label" validate:"required,max=100"`
	Value string `json:"value" validate:"max=500"`
}

type LocationView struct {
	Country string `json:"country,omitempty" validate:"max=100"`
	City    string `json:"city" validate:"required,max=100"`
	Address string `json:"address,omitempty" validate:"max=200"`
}

// ResourceView: объявление; categoryId и ownerId раскрыты в объекты.
type ResourceView struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Category    *CategoryView   `json:"categoryId"`
	Owner       *OwnerView      `json:"ownerId"`
	PricePerDay float64         `json:"pricePerDay"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	IsFeatured  bool            `json:"isFeatured"`
	Options     []string        `json:"options"`
	Images      []ImageView     `json:"images"`
	Location    LocationView    `json:"location"`
	ExtraInfo   []ExtraInfoView `json:"extraInfo"`
	Views       int64           `json:"views"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// InquiryView: обращение по объявлению.
type InquiryView struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resourceId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResponse: ответ на регистрацию и вход.
type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// MeResponse: ответ /api/auth/me.
type MeResponse struct {
	User UserView `json:"user"`
}

// ResourceResponse: обёртка для одиночного объявления.
type ResourceResponse struct {
	Resource ResourceView `json:"resource"`
}

// FavoriteState: состояние избранного для одного объявления.
type FavoriteState struct {
	ResourceID string `json:"resourceId"`
	IsFavorite bool   `json:"isFavorite"`
}
