package service

import (
	"strings"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// Параметры постраничной выдачи
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

const maxFavorites = model.MaxFavorites

// Actor: аутентифицированный участник запроса; nil означает анонима.
type Actor struct {
	ID    string
	Admin bool
}

// IsAdmin безопасен для nil.
func (a *Actor) IsAdmin() bool { return a != nil && a.Admin }

// Owns: является ли участник владельцем (или администратором).
func (a *Actor) Owns(ownerID string) bool {
	if a == nil {
		return false
	}
	return a.Admin || a.ID == ownerID
}

// Page: страница результатов.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// TotalPages: число страниц при текущем лимите.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// normalizePage приводит page/limit к допустимым значениям и возвращает offset.
func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, (page - 1) * limit
}

// trimPtr обрезает пробелы у необязательного поля, nil остаётся nil.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
