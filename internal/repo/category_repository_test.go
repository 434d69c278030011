package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func TestCategoryRepository_ListOrderAndCounts(t *testing.T) {
	db := newTestDB(t)
	r := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	vozila := seedCategory(t, db, "Vozila", "vozila", 1)
	alati := seedCategory(t, db, "Alati", "alati", 0)
	seedResource(t, db, owner, vozila, "golf", model.StatusActive, 30)
	seedResource(t, db, owner, vozila, "passat", model.StatusActive, 40)
	seedResource(t, db, owner, vozila, "polo", model.StatusPending, 20)

	list, err := r.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alati", list[0].Slug)
	assert.Equal(t, "vozila", list[1].Slug)

	counts, err := r.CountActiveResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[vozila.ID])
	assert.Equal(t, int64(0), counts[alati.ID])

	all, err := r.CountResources(ctx, vozila.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all)
}

func TestCategoryRepository_SlugUniqueAndUpdate(t *testing.T) {
	db := newTestDB(t)
	r := NewCategoryRepository(db)
	ctx := context.Background()

	c := &model.Category{ID: uuid.NewString(), Name: "Vozila", Slug: "vozila"}
	require.NoError(t, r.CreateCategory(ctx, c))

	err := r.CreateCategory(ctx, &model.Category{ID: uuid.NewString(), Name: "Vozila 2", Slug: "vozila"})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	c.Name = "Automobili"
	c.Order = 5
	require.NoError(t, r.UpdateCategory(ctx, c))
	got, err := r.GetCategoryBySlug(ctx, "vozila")
	require.NoError(t, err)
	assert.Equal(t, "Automobili", got.Name)
	assert.Equal(t, 5, got.Order)

	require.NoError(t, r.DeleteCategory(ctx, c.ID))
	_, err = r.GetCategoryByID(ctx, c.ID)
	assert.True(t, IsNotFound(err))
}
