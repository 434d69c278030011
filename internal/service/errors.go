package service

import (
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// Kind: класс доменной ошибки; по нему HTTP-слой выбирает статус.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindLimitExceeded
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindLimitExceeded:
		return "limit_exceeded"
	default:
		return "internal"
	}
}

// Error: доменная ошибка сервиса. Message безопасно показывать клиенту.
type Error struct {
	Kind    Kind
	Message string
	Fields  []dto.FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

// internal оборачивает инфраструктурную ошибку; клиент увидит только "internal error".
func internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: fmt.Errorf("%s: %w", op, err)}
}

// Ошибки сервисов
var (
	ErrEmailTaken         = newError(KindConflict, "email already registered")
	ErrInvalidCredentials = newError(KindValidation, "invalid email or password")
	ErrAccountDisabled    = newError(KindForbidden, "account is deactivated")
	ErrUnauthorized       = newError(KindUnauthorized, "unauthorized")
	ErrForbidden          = newError(KindForbidden, "forbidden")
	ErrWrongPassword      = newError(KindValidation, "current password is incorrect")

	ErrUserNotFound     = newError(KindNotFound, "user not found")
	ErrCategoryNotFound = newError(KindNotFound, "category not found")
	ErrResourceNotFound = newError(KindNotFound, "resource not found")
	ErrInquiryNotFound  = newError(KindNotFound, "inquiry not found")
	ErrImageNotFound    = newError(KindNotFound, "image not found")

	ErrCategorySlugTaken = newError(KindConflict, "category slug already exists")
	ErrFavoritesLimit    = newError(KindLimitExceeded, fmt.Sprintf("favorites limit of %d reached", maxFavorites))
	ErrStatusNotAllowed  = newError(KindForbidden, "status change not allowed")
	ErrFeaturedAdminOnly = newError(KindForbidden, "only administrators can feature resources")
	ErrUnsupportedImage  = newError(KindValidation, "unsupported image type")
	ErrImageTooLarge     = newError(KindValidation, "image is too large")
	ErrNoImages          = newError(KindValidation, "no images uploaded")
)

// CategoryInUseError: категория не удаляется, пока на неё ссылаются объявления.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category is used by %d resources", e.Count)
}

func categoryInUse(n int64) *Error {
	inUse := &CategoryInUseError{Count: n}
	return &Error{Kind: KindConflict, Message: inUse.Error(), Err: inUse}
}
