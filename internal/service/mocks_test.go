package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/storage"
)

var nopLogger = zap.NewNop().Sugar()

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, *model.User) *model.User); ok {
		return fn(ctx, user), args.Error(1)
	}
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *mockUserRepo) ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	users, _ := args.Get(0).([]model.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.CategoryRepository
type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Category)
	return list, args.Error(1)
}

func (m *mockCategoryRepo) CountActiveResources(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func (m *mockCategoryRepo) CountResources(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

// мок для repo.ResourceRepository
type mockResourceRepo struct{ mock.Mock }

func (m *mockResourceRepo) CreateResource(ctx context.Context, res *model.Resource) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockResourceRepo) GetResourceByID(ctx context.Context, id string) (*model.Resource, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*model.Resource); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResourceRepo) GetResourceBySlug(ctx context.Context, slug string) (*model.Resource, error) {
	args := m.Called(ctx, slug)
	if r, ok := args.Get(0).(*model.Resource); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResourceRepo) ListResources(ctx context.Context, f repo.ResourceFilter) ([]model.Resource, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Resource)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockResourceRepo) ListResourcesByIDs(ctx context.Context, ids []string) ([]model.Resource, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Resource)
	return items, args.Error(1)
}

func (m *mockResourceRepo) UpdateResource(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *mockResourceRepo) DeleteResource(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResourceRepo) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ResourceRepository = (*mockResourceRepo)(nil)

// мок для repo.FavoriteRepository
type mockFavoriteRepo struct{ mock.Mock }

func (m *mockFavoriteRepo) AddFavorite(ctx context.Context, userID, resourceID string) (bool, error) {
	args := m.Called(ctx, userID, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) RemoveFavorite(ctx context.Context, userID, resourceID string) error {
	return m.Called(ctx, userID, resourceID).Error(0)
}

func (m *mockFavoriteRepo) IsFavorite(ctx context.Context, userID, resourceID string) (bool, error) {
	args := m.Called(ctx, userID, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) CountFavorites(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFavoriteRepo) ListFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockFavoriteRepo) DeleteFavoritesByResource(ctx context.Context, resourceID string) error {
	return m.Called(ctx, resourceID).Error(0)
}

func (m *mockFavoriteRepo) DeleteFavoritesByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ repo.FavoriteRepository = (*mockFavoriteRepo)(nil)

// мок для repo.InquiryRepository
type mockInquiryRepo struct{ mock.Mock }

func (m *mockInquiryRepo) CreateInquiry(ctx context.Context, inq *model.Inquiry) error {
	return m.Called(ctx, inq).Error(0)
}

func (m *mockInquiryRepo) GetInquiryByID(ctx context.Context, id string) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if inq, ok := args.Get(0).(*model.Inquiry); ok {
		return inq, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInquiryRepo) ListInquiries(ctx context.Context, f repo.InquiryFilter) ([]model.Inquiry, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]model.Inquiry)
	return list, args.Error(1)
}

func (m *mockInquiryRepo) UpdateInquiryStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockInquiryRepo) DeleteInquiry(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInquiryRepo) DeleteInquiriesByResource(ctx context.Context, resourceID string) error {
	return m.Called(ctx, resourceID).Error(0)
}

var _ repo.InquiryRepository = (*mockInquiryRepo)(nil)

// мок для storage.Store
type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Open(ctx context.Context, id string) (*storage.Object, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*storage.Object); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ storage.Store = (*mockStore)(nil)
