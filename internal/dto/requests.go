package dto

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest: частичное обновление профиля; nil означает «не менять».
type UpdateProfileRequest struct {
	FirstName      *string     `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName       *string     `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Language       *string     `json:"language,omitempty" validate:"omitempty,oneof=sr en"`
	Phone          *string     `json:"phone,omitempty" validate:"omitempty,phone"`
	Address        *string     `json:"address,omitempty" validate:"omitempty,max=200"`
	Company        *string     `json:"company,omitempty" validate:"omitempty,max=100"`
	CompanyAddress *string     `json:"companyAddress,omitempty" validate:"omitempty,max=200"`
	PIB            *string     `json:"pib,omitempty" validate:"omitempty,numeric,len=9"`
	Social         *SocialView `json:"social,omitempty"`
	ProfileImage   *string     `json:"profileImage,omitempty" validate:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

// CategoryRequest: создание и обновление категории (slug выводится из name, если пуст).
type CategoryRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Slug       string `json:"slug" validate:"omitempty,slug,max=60"`
	Icon       string `json:"icon" validate:"max=100"`
	CoverImage string `json:"coverImage" validate:"max=500"`
	Order      int    `json:"order" validate:"gte=0"`
}

type CreateResourceRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"required,min=10,max=2000"`
	CategoryID  string          `json:"categoryId" validate:"required"`
	PricePerDay float64         `json:"pricePerDay" validate:"gt=0"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=EUR RSD USD"`
	Options     []string        `json:"options" validate:"max=30,dive,min=1,max=50"`
	Images      []ImageView     `json:"images" validate:"max=20"`
	Location    LocationView    `json:"location"`
	ExtraInfo   []ExtraInfoView `json:"extraInfo" validate:"max=30,dive"`
}

// UpdateResourceRequest: частичное обновление объявления.
type UpdateResourceRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=10,max=2000"`
	CategoryID  *string          `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	PricePerDay *float64         `json:"pricePerDay,omitempty" validate:"omitempty,gt=0"`
	Currency    *string          `json:"currency,omitempty" validate:"omitempty,oneof=EUR RSD USD"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=pending active inactive"`
	IsFeatured  *bool            `json:"isFeatured,omitempty"`
	Options     *[]string        `json:"options,omitempty" validate:"omitempty,max=30,dive,min=1,max=50"`
	Location    *LocationView    `json:"location,omitempty"`
	ExtraInfo   *[]ExtraInfoView `json:"extraInfo,omitempty" validate:"omitempty,max=30,dive"`
}

type InquiryRequest struct {
	ResourceID string `json:"resourceId" validate:"required"`
	FirstName  string `json:"firstName" validate:"required,max=50"`
	LastName   string `json:"lastName" validate:"required,max=50"`
	Phone      string `json:"phone" validate:"required,phone"`
	Email      string `json:"email" validate:"required,email"`
	Message    string `json:"message" validate:"required,min=10,max=1000"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}
