package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// InitDB открывает БД (PostgreSQL или SQLite через modernc) и применяет миграции.
func InitDB(dsn string, usePostgres bool) (*gorm.DB, error) {
	var dial gorm.Dialector
	if usePostgres {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{
		// связи между сущностями: обычные id-колонки, целостность держит сервис
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Resource{},
		&model.Favorite{},
		&model.Inquiry{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
