package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func newFavoriteSvc() (*FavoriteService, *mockFavoriteRepo, *mockResourceRepo) {
	favs := new(mockFavoriteRepo)
	res := new(mockResourceRepo)
	return NewFavoriteService(favs, res, nopLogger), favs, res
}

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("limit reached", func(t *testing.T) {
		svc, favs, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "r31").Return(&model.Resource{ID: "r31", Status: model.StatusActive}, nil).Once()
		favs.On("IsFavorite", mock.Anything, "u1", "r31").Return(false, nil).Once()
		favs.On("CountFavorites", mock.Anything, "u1").Return(int64(model.MaxFavorites), nil).Once()

		err := svc.Add(ctx, "u1", "r31")
		assert.ErrorIs(t, err, ErrFavoritesLimit)
		var se *Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, KindLimitExceeded, se.Kind)
		assert.Equal(t, "favorites limit of 30 reached", se.Message)
		favs.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already present is a no-op even when full", func(t *testing.T) {
		svc, favs, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "r1").Return(&model.Resource{ID: "r1", Status: model.StatusActive}, nil).Once()
		favs.On("IsFavorite", mock.Anything, "u1", "r1").Return(true, nil).Once()

		assert.NoError(t, svc.Add(ctx, "u1", "r1"))
		favs.AssertNotCalled(t, "CountFavorites", mock.Anything, mock.Anything)
	})

	t.Run("unknown resource", func(t *testing.T) {
		svc, _, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "nope").Return((*model.Resource)(nil), gorm.ErrRecordNotFound).Once()
		assert.ErrorIs(t, svc.Add(ctx, "u1", "nope"), ErrResourceNotFound)
	})

	t.Run("hidden resource of another owner", func(t *testing.T) {
		svc, favs, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "r5").Return(&model.Resource{ID: "r5", OwnerID: "u2", Status: model.StatusPending}, nil).Once()

		assert.ErrorIs(t, svc.Add(ctx, "u1", "r5"), ErrResourceNotFound)
		favs.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("own inactive resource", func(t *testing.T) {
		svc, favs, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "r6").Return(&model.Resource{ID: "r6", OwnerID: "u1", Status: model.StatusInactive}, nil).Once()
		favs.On("IsFavorite", mock.Anything, "u1", "r6").Return(false, nil).Once()
		favs.On("CountFavorites", mock.Anything, "u1").Return(int64(0), nil).Once()
		favs.On("AddFavorite", mock.Anything, "u1", "r6").Return(true, nil).Once()

		assert.NoError(t, svc.Add(ctx, "u1", "r6"))
		favs.AssertExpectations(t)
	})

	t.Run("ok", func(t *testing.T) {
		svc, favs, res := newFavoriteSvc()
		res.On("GetResourceByID", mock.Anything, "r2").Return(&model.Resource{ID: "r2", Status: model.StatusActive}, nil).Once()
		favs.On("IsFavorite", mock.Anything, "u1", "r2").Return(false, nil).Once()
		favs.On("CountFavorites", mock.Anything, "u1").Return(int64(29), nil).Once()
		favs.On("AddFavorite", mock.Anything, "u1", "r2").Return(true, nil).Once()

		assert.NoError(t, svc.Add(ctx, "u1", "r2"))
		favs.AssertExpectations(t)
	})
}

func TestFavoriteService_ListSkipsDanglingAndInactive(t *testing.T) {
	ctx := context.Background()
	svc, favs, res := newFavoriteSvc()

	favs.On("ListFavoriteIDs", mock.Anything, "u1").Return([]string{"r3", "gone", "r1", "r2"}, nil).Once()
	res.On("ListResourcesByIDs", mock.Anything, []string{"r3", "gone", "r1", "r2"}).Return([]model.Resource{
		{ID: "r1", Status: model.StatusActive},
		{ID: "r2", Status: model.StatusInactive},
		{ID: "r3", Status: model.StatusActive},
	}, nil).Once()

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r3", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)
}

func TestFavoriteService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc, favs, res := newFavoriteSvc()

	// было в избранном → удаляем, отдаём состояние из хранилища
	favs.On("IsFavorite", mock.Anything, "u1", "r1").Return(true, nil).Once()
	favs.On("RemoveFavorite", mock.Anything, "u1", "r1").Return(nil).Once()
	favs.On("IsFavorite", mock.Anything, "u1", "r1").Return(false, nil).Once()

	state, err := svc.Toggle(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.False(t, state)

	// не было → добавление упирается в предел, состояние не меняется
	favs.On("IsFavorite", mock.Anything, "u1", "r2").Return(false, nil).Twice()
	res.On("GetResourceByID", mock.Anything, "r2").Return(&model.Resource{ID: "r2", Status: model.StatusActive}, nil).Once()
	favs.On("CountFavorites", mock.Anything, "u1").Return(int64(30), nil).Once()

	state, err = svc.Toggle(ctx, "u1", "r2")
	assert.ErrorIs(t, err, ErrFavoritesLimit)
	assert.False(t, state)
	favs.AssertExpectations(t)
}
