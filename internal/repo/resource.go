package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// ResourceFilter: параметры выборки объявлений. Пустые поля не фильтруют.
type ResourceFilter struct {
	CategorySlug string
	Query        string
	MinPrice     *float64
	MaxPrice     *float64
	City         string
	Status       string
	OwnerID      string
	Featured     *bool
	Offset       int
	Limit        int
}

// ResourceRepository: доступ к объявлениям. Чтения возвращают объявление с категорией и владельцем.
type ResourceRepository interface {
	CreateResource(ctx context.Context, res *model.Resource) error
	GetResourceByID(ctx context.Context, id string) (*model.Resource, error)
	GetResourceBySlug(ctx context.Context, slug string) (*model.Resource, error)
	ListResources(ctx context.Context, f ResourceFilter) ([]model.Resource, int64, error)
	// ListResourcesByIDs возвращает найденные объявления в произвольном порядке.
	ListResourcesByIDs(ctx context.Context, ids []string) ([]model.Resource, error)
	UpdateResource(ctx context.Context, id string, updates map[string]any) error
	DeleteResource(ctx context.Context, id string) error
	// IncrementViews атомарно увеличивает счётчик просмотров на 1.
	IncrementViews(ctx context.Context, id string) error
}

type resourceRepo struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Owner")
}

func (r *resourceRepo) CreateResource(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Omit("Category", "Owner").Create(res).Error
}

func (r *resourceRepo) GetResourceByID(ctx context.Context, id string) (*model.Resource, error) {
	var res model.Resource
	if err := r.populated(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) GetResourceBySlug(ctx context.Context, slug string) (*model.Resource, error) {
	var res model.Resource
	if err := r.populated(ctx).Where("slug = ?", slug).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// likeEscaper экранирует метасимволы LIKE в пользовательском тексте поиска.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applyFilter навешивает условия фильтра на запрос по resources.
func (r *resourceRepo) applyFilter(q *gorm.DB, f ResourceFilter) *gorm.DB {
	if f.CategorySlug != "" {
		sub := r.db.Model(&model.Category{}).Select("id").Where("slug = ?", f.CategorySlug)
		q = q.Where("category_id IN (?)", sub)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, like, like)
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_day >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_day <= ?", *f.MaxPrice)
	}
	if c := strings.TrimSpace(f.City); c != "" {
		q = q.Where("LOWER(location_city) = ?", strings.ToLower(c))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	return q
}

func (r *resourceRepo) ListResources(ctx context.Context, f ResourceFilter) ([]model.Resource, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&model.Resource{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []model.Resource
	err := r.applyFilter(r.populated(ctx), f).
		Order("is_featured desc, created_at desc, id desc").
		Offset(f.Offset).Limit(f.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *resourceRepo) ListResourcesByIDs(ctx context.Context, ids []string) ([]model.Resource, error) {
	if len(ids) == 0 {
		return []model.Resource{}, nil
	}
	var items []model.Resource
	if err := r.populated(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *resourceRepo) UpdateResource(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.Resource{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resourceRepo) DeleteResource(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Resource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resourceRepo) IncrementViews(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Resource{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
