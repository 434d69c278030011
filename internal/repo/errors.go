package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation: код ошибки PostgreSQL unique_violation.
const pgUniqueViolation = "23505"

// IsDuplicateKey распознаёт нарушение уникального индекса во всех поддерживаемых драйверах.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// modernc.org/sqlite не переводится gorm-ом, остаётся текст ошибки
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// IsNotFound: запись не найдена.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
