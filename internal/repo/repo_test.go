package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := InitDB(dsn, false)
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// одно соединение: in-memory база живёт, пока оно открыто
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.NewString(), FirstName: "Ana", LastName: "Jović", Email: email, Password: "hash", Role: model.RoleUser, Active: true, Language: "sr"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string, order int) *model.Category {
	t.Helper()
	c := &model.Category{ID: uuid.NewString(), Name: name, Slug: slug, Order: order}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedResource(t *testing.T, db *gorm.DB, owner *model.User, cat *model.Category, slug, status string, price float64) *model.Resource {
	t.Helper()
	r := &model.Resource{
		ID:          uuid.NewString(),
		Title:       "Title " + slug,
		Slug:        slug,
		Description: "Description of " + slug,
		CategoryID:  cat.ID,
		OwnerID:     owner.ID,
		PricePerDay: price,
		Currency:    model.CurrencyEUR,
		Status:      status,
		Location:    model.Location{City: "Beograd"},
		CreatedAt:   time.Now().UTC(),
	}
	if err := NewResourceRepository(db).CreateResource(context.Background(), r); err != nil {
		t.Fatalf("seed resource: %v", err)
	}
	return r
}
