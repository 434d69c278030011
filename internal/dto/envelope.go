// Package dto содержит общие типы запросов и ответов API.
// Используется и сервером (handlers), и CLI-клиентом, чтобы формат не расходился.
package dto

import "encoding/json"

// FieldError: ошибка валидации конкретного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination: поля постраничной выдачи, выводятся на верхнем уровне конверта.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination считает число страниц.
func NewPagination(total int64, page, limit int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// Envelope: единый конверт ответа сервера.
type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	*Pagination
}

// RawEnvelope: конверт на стороне клиента: data декодируется отдельно.
type RawEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
	*Pagination
}
