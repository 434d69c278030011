package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
)

// CategoryService: каталог категорий.
type CategoryService struct {
	categories repo.CategoryRepository
	logger     *zap.SugaredLogger
}

func NewCategoryService(categories repo.CategoryRepository, logger *zap.SugaredLogger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

// List возвращает все категории с актуальным числом активных объявлений.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	list, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, internal("list categories", err)
	}
	counts, err := s.categories.CountActiveResources(ctx)
	if err != nil {
		return nil, internal("count resources", err)
	}
	for i := range list {
		list[i].ResourceCount = counts[list[i].ID]
	}
	return list, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.categories.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, internal("get category", err)
	}
	n, err := s.categories.CountActiveResources(ctx)
	if err != nil {
		return nil, internal("count resources", err)
	}
	c.ResourceCount = n[c.ID]
	return c, nil
}

// normalizeCategory чистит ввод; при создании пустой slug выводится из имени.
func normalizeCategory(req *dto.CategoryRequest, deriveSlug bool) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Slug == "" && deriveSlug {
		req.Slug = Slugify(req.Name)
	}
}

func (s *CategoryService) Create(ctx context.Context, req dto.CategoryRequest) (*model.Category, error) {
	normalizeCategory(&req, true)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Slug == "" {
		return nil, fieldError("slug", "is required")
	}
	c := &model.Category{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Slug:       req.Slug,
		Icon:       req.Icon,
		CoverImage: req.CoverImage,
		Order:      req.Order,
	}
	if err := s.categories.CreateCategory(ctx, c); err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, ErrCategorySlugTaken
		}
		return nil, internal("create category", err)
	}
	s.logger.Infow("category created", "category_id", c.ID, "slug", c.Slug)
	return c, nil
}

// Update перезаписывает поля категории; пустой slug оставляет прежний.
func (s *CategoryService) Update(ctx context.Context, id string, req dto.CategoryRequest) (*model.Category, error) {
	normalizeCategory(&req, false)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, internal("get category", err)
	}
	c.Name = req.Name
	if req.Slug != "" {
		c.Slug = req.Slug
	}
	c.Icon = req.Icon
	c.CoverImage = req.CoverImage
	c.Order = req.Order
	if err := s.categories.UpdateCategory(ctx, c); err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, ErrCategorySlugTaken
		}
		if repo.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, internal("update category", err)
	}
	return c, nil
}

// Delete удаляет категорию, только если на неё не ссылается ни одно объявление.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.GetCategoryByID(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return internal("get category", err)
	}
	n, err := s.categories.CountResources(ctx, id)
	if err != nil {
		return internal("count resources", err)
	}
	if n > 0 {
		return categoryInUse(n)
	}
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return internal("delete category", err)
	}
	s.logger.Infow("category deleted", "category_id", id)
	return nil
}
