package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func TestCategoryService_ListWithCounts(t *testing.T) {
	ctx := context.Background()
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, nopLogger)

	m.On("ListCategories", mock.Anything).Return([]model.Category{{ID: "c1", Slug: "vozila"}, {ID: "c2", Slug: "alati"}}, nil).Once()
	m.On("CountActiveResources", mock.Anything).Return(map[string]int64{"c1": 3}, nil).Once()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list[0].ResourceCount)
	assert.Equal(t, int64(0), list[1].ResourceCount)
	m.AssertExpectations(t)
}

func TestCategoryService_CreateDerivesSlug(t *testing.T) {
	ctx := context.Background()
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, nopLogger)

	m.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Slug == "alati-i-masine" && c.ID != ""
	})).Return(nil).Once()
	c, err := svc.Create(ctx, dto.CategoryRequest{Name: "Alati i mašine"})
	require.NoError(t, err)
	assert.Equal(t, "alati-i-masine", c.Slug)

	m.On("CreateCategory", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	_, err = svc.Create(ctx, dto.CategoryRequest{Name: "Alati i mašine"})
	assert.ErrorIs(t, err, ErrCategorySlugTaken)

	_, err = svc.Create(ctx, dto.CategoryRequest{Name: "Bad", Slug: "Not A Slug"})
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "slug", se.Fields[0].Field)
	m.AssertExpectations(t)
}

func TestCategoryService_UpdateKeepsSlug(t *testing.T) {
	ctx := context.Background()
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, nopLogger)

	m.On("GetCategoryByID", mock.Anything, "c1").Return(&model.Category{ID: "c1", Name: "Vozila", Slug: "vozila"}, nil).Once()
	m.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Automobili" && c.Slug == "vozila"
	})).Return(nil).Once()

	c, err := svc.Update(ctx, "c1", dto.CategoryRequest{Name: "Automobili", Order: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Order)
	m.AssertExpectations(t)
}

func TestCategoryService_DeleteBlockedWhileUsed(t *testing.T) {
	ctx := context.Background()
	m := new(mockCategoryRepo)
	svc := NewCategoryService(m, nopLogger)

	t.Run("in use", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetCategoryByID", mock.Anything, "c1").Return(&model.Category{ID: "c1"}, nil).Once()
		m.On("CountResources", mock.Anything, "c1").Return(int64(2), nil).Once()

		err := svc.Delete(ctx, "c1")
		var inUse *CategoryInUseError
		require.True(t, errors.As(err, &inUse))
		assert.Equal(t, int64(2), inUse.Count)
		var se *Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, KindConflict, se.Kind)
		assert.Equal(t, "category is used by 2 resources", se.Message)
		m.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetCategoryByID", mock.Anything, "c1").Return(&model.Category{ID: "c1"}, nil).Once()
		m.On("CountResources", mock.Anything, "c1").Return(int64(0), nil).Once()
		m.On("DeleteCategory", mock.Anything, "c1").Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, "c1"))
		m.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetCategoryByID", mock.Anything, "nope").Return((*model.Category)(nil), gorm.ErrRecordNotFound).Once()
		assert.ErrorIs(t, svc.Delete(ctx, "nope"), ErrCategoryNotFound)
	})
}
