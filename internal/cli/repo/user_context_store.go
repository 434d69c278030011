package repo

import "github.com/stevans93/rent-and-co-sub001/internal/dto"

// UserContextStore хранит профиль вошедшего пользователя между запусками CLI.
type UserContextStore interface {
	SaveUser(u dto.UserView) error
	LoadUser() (dto.UserView, error)
	ClearUser() error
}
