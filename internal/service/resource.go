package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
	"github.com/stevans93/rent-and-co-sub001/internal/storage"
)

// MaxImagesPerResource: предел изображений у одного объявления.
const MaxImagesPerResource = 20

// ResourceQuery: публичные параметры поиска объявлений.
type ResourceQuery struct {
	Category string
	Query    string
	MinPrice *float64
	MaxPrice *float64
	City     string
	Status   string
	Featured *bool
	Page     int
	Limit    int
}

// ImageUpload: один загружаемый файл изображения.
type ImageUpload struct {
	Data []byte
	Alt  string
}

// ResourceService: объявления: поиск, просмотр, управление, изображения.
type ResourceService struct {
	resources     repo.ResourceRepository
	categories    repo.CategoryRepository
	favorites     repo.FavoriteRepository
	inquiries     repo.InquiryRepository
	images        storage.Store
	maxImageBytes int64
	logger        *zap.SugaredLogger
}

func NewResourceService(
	resources repo.ResourceRepository,
	categories repo.CategoryRepository,
	favorites repo.FavoriteRepository,
	inquiries repo.InquiryRepository,
	images storage.Store,
	maxImageBytes int64,
	logger *zap.SugaredLogger,
) *ResourceService {
	return &ResourceService{
		resources:     resources,
		categories:    categories,
		favorites:     favorites,
		inquiries:     inquiries,
		images:        images,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// List: публичный поиск. Не-администраторы видят только активные объявления.
func (s *ResourceService) List(ctx context.Context, q ResourceQuery, actor *Actor) (Page[model.Resource], error) {
	page, limit, offset := normalizePage(q.Page, q.Limit)
	status := model.StatusActive
	if actor.IsAdmin() && q.Status != "" {
		status = q.Status
	}
	f := repo.ResourceFilter{
		CategorySlug: strings.TrimSpace(q.Category),
		Query:        q.Query,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		City:         q.City,
		Status:       status,
		Featured:     q.Featured,
		Offset:       offset,
		Limit:        limit,
	}
	return s.list(ctx, f, page, limit)
}

// ListMine: объявления участника во всех статусах.
func (s *ResourceService) ListMine(ctx context.Context, actor *Actor, page, limit int) (Page[model.Resource], error) {
	if actor == nil {
		return Page[model.Resource]{}, ErrUnauthorized
	}
	page, limit, offset := normalizePage(page, limit)
	return s.list(ctx, repo.ResourceFilter{OwnerID: actor.ID, Offset: offset, Limit: limit}, page, limit)
}

func (s *ResourceService) list(ctx context.Context, f repo.ResourceFilter, page, limit int) (Page[model.Resource], error) {
	items, total, err := s.resources.ListResources(ctx, f)
	if err != nil {
		return Page[model.Resource]{}, internal("list resources", err)
	}
	return Page[model.Resource]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func visible(res *model.Resource, actor *Actor) bool {
	return res.Status == model.StatusActive || actor.Owns(res.OwnerID)
}

// GetBySlug возвращает объявление и засчитывает просмотр.
func (s *ResourceService) GetBySlug(ctx context.Context, slug string, actor *Actor) (*model.Resource, error) {
	res, err := s.resources.GetResourceBySlug(ctx, slug)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrResourceNotFound
		}
		return nil, internal("get resource", err)
	}
	if !visible(res, actor) {
		return nil, ErrResourceNotFound
	}
	// ошибка счётчика не мешает чтению
	if err := s.resources.IncrementViews(ctx, res.ID); err != nil {
		s.logger.Warnw("increment views failed", "resource_id", res.ID, "error", err)
	} else {
		res.Views++
	}
	return res, nil
}

// GetByID: чтение для кабинета, без подсчёта просмотров.
func (s *ResourceService) GetByID(ctx context.Context, id string, actor *Actor) (*model.Resource, error) {
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visible(res, actor) {
		return nil, ErrResourceNotFound
	}
	return res, nil
}

func (s *ResourceService) load(ctx context.Context, id string) (*model.Resource, error) {
	res, err := s.resources.GetResourceByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrResourceNotFound
		}
		return nil, internal("get resource", err)
	}
	return res, nil
}

// loadOwned загружает объявление и проверяет права владельца или администратора.
func (s *ResourceService) loadOwned(ctx context.Context, id string, actor *Actor) (*model.Resource, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	res, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(res.OwnerID) {
		return nil, ErrForbidden
	}
	return res, nil
}

func (s *ResourceService) ensureCategory(ctx context.Context, id string) error {
	if _, err := s.categories.GetCategoryByID(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return internal("get category", err)
	}
	return nil
}

func toLocation(l dto.LocationView) model.Location {
	return model.Location{
		Country: strings.TrimSpace(l.Country),
		City:    strings.TrimSpace(l.City),
		Address: strings.TrimSpace(l.Address),
	}
}

func toExtraInfo(in []dto.ExtraInfoView) datatypes.JSONSlice[model.ExtraInfo] {
	out := make([]model.ExtraInfo, 0, len(in))
	for _, e := range in {
		out = append(out, model.ExtraInfo{Label: strings.TrimSpace(e.Label), Value: strings.TrimSpace(e.Value)})
	}
	return out
}

func toOptions(in []string) datatypes.JSONSlice[string] {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Create создаёт объявление в статусе pending с уникальным slug.
func (s *ResourceService) Create(ctx context.Context, actor *Actor, req dto.CreateResourceRequest) (*model.Resource, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Location.City = strings.TrimSpace(req.Location.City)
	if req.Currency == "" {
		req.Currency = model.CurrencyEUR
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	images := make([]model.Image, 0, len(req.Images))
	for i, img := range req.Images {
		images = append(images, model.Image{URL: img.URL, Alt: img.Alt, Order: i})
	}
	res := &model.Resource{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		OwnerID:     actor.ID,
		PricePerDay: req.PricePerDay,
		Currency:    req.Currency,
		Status:      model.StatusPending,
		Options:     toOptions(req.Options),
		Images:      images,
		Location:    toLocation(req.Location),
		ExtraInfo:   toExtraInfo(req.ExtraInfo),
	}

	base := Slugify(req.Title)
	if base == "" {
		base = "resource"
	}
	for n := 0; ; n++ {
		res.ID = uuid.NewString()
		res.Slug = slugCandidate(base, n)
		if reservedSlug(res.Slug) {
			continue
		}
		err := s.resources.CreateResource(ctx, res)
		if err == nil {
			break
		}
		if !repo.IsDuplicateKey(err) || n+1 >= slugMaxAttempts {
			return nil, internal("create resource", err)
		}
	}
	s.logger.Infow("resource created", "resource_id", res.ID, "slug", res.Slug, "owner_id", actor.ID)
	return s.load(ctx, res.ID)
}

// Update частично обновляет объявление. Slug при смене заголовка не меняется.
func (s *ResourceService) Update(ctx context.Context, id string, actor *Actor, req dto.UpdateResourceRequest) (*model.Resource, error) {
	res, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	req.Title = trimPtr(req.Title)
	req.Description = trimPtr(req.Description)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil && *req.CategoryID != res.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.PricePerDay != nil {
		updates["price_per_day"] = *req.PricePerDay
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Status != nil && *req.Status != res.Status {
		if err := checkStatusChange(actor, res.Status, *req.Status); err != nil {
			return nil, err
		}
		updates["status"] = *req.Status
	}
	if req.IsFeatured != nil && *req.IsFeatured != res.IsFeatured {
		if !actor.IsAdmin() {
			return nil, ErrFeaturedAdminOnly
		}
		updates["is_featured"] = *req.IsFeatured
	}
	if req.Options != nil {
		updates["options"] = toOptions(*req.Options)
	}
	if req.Location != nil {
		if strings.TrimSpace(req.Location.City) == "" {
			return nil, fieldError("location.city", "is required")
		}
		loc := toLocation(*req.Location)
		updates["location_country"] = loc.Country
		updates["location_city"] = loc.City
		updates["location_address"] = loc.Address
	}
	if req.ExtraInfo != nil {
		updates["extra_info"] = toExtraInfo(*req.ExtraInfo)
	}

	if len(updates) > 0 {
		if err := s.resources.UpdateResource(ctx, id, updates); err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrResourceNotFound
			}
			return nil, internal("update resource", err)
		}
	}
	return s.load(ctx, id)
}

// checkStatusChange: администратор меняет статус свободно; владелец может снять
// объявление или вернуть в active, если оно уже прошло модерацию.
func checkStatusChange(actor *Actor, from, to string) error {
	if actor.IsAdmin() {
		return nil
	}
	switch to {
	case model.StatusInactive:
		return nil
	case model.StatusActive:
		if from == model.StatusPending {
			return ErrStatusNotAllowed
		}
		return nil
	default:
		return ErrStatusNotAllowed
	}
}

// Delete удаляет объявление и затем, без атомарности, его избранное, обращения и изображения.
func (s *ResourceService) Delete(ctx context.Context, id string, actor *Actor) error {
	res, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := s.resources.DeleteResource(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrResourceNotFound
		}
		return internal("delete resource", err)
	}
	if err := s.favorites.DeleteFavoritesByResource(ctx, id); err != nil {
		s.logger.Warnw("cascade favorites failed", "resource_id", id, "error", err)
	}
	if err := s.inquiries.DeleteInquiriesByResource(ctx, id); err != nil {
		s.logger.Warnw("cascade inquiries failed", "resource_id", id, "error", err)
	}
	for _, img := range res.Images {
		s.dropImage(ctx, img.URL)
	}
	s.logger.Infow("resource deleted", "resource_id", id)
	return nil
}

func (s *ResourceService) dropImage(ctx context.Context, url string) {
	imageID := storage.IDFromURL(url)
	if imageID == "" {
		return
	}
	if err := s.images.Delete(ctx, imageID); err != nil {
		s.logger.Warnw("delete image failed", "image_id", imageID, "error", err)
	}
}

// AddImages сохраняет файлы как есть и дописывает их в конец списка изображений.
func (s *ResourceService) AddImages(ctx context.Context, id string, actor *Actor, uploads []ImageUpload) (*model.Resource, error) {
	res, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, ErrNoImages
	}
	if len(res.Images)+len(uploads) > MaxImagesPerResource {
		return nil, fieldError("images", "too many images")
	}

	types := make([]string, len(uploads))
	for i, up := range uploads {
		if s.maxImageBytes > 0 && int64(len(up.Data)) > s.maxImageBytes {
			return nil, ErrImageTooLarge
		}
		ct := http.DetectContentType(up.Data)
		if !storage.Supported(ct) {
			return nil, ErrUnsupportedImage
		}
		types[i] = ct
	}

	images := append([]model.Image{}, res.Images...)
	stored := make([]string, 0, len(uploads))
	for i, up := range uploads {
		imageID, err := s.images.Put(ctx, types[i], up.Data)
		if err != nil {
			s.rollbackImages(ctx, stored)
			return nil, internal("store image", err)
		}
		stored = append(stored, imageID)
		images = append(images, model.Image{URL: storage.URL(imageID), Alt: strings.TrimSpace(up.Alt), Order: len(images)})
	}

	if err := s.resources.UpdateResource(ctx, id, map[string]any{"images": datatypes.JSONSlice[model.Image](images)}); err != nil {
		s.rollbackImages(ctx, stored)
		return nil, internal("save images", err)
	}
	s.logger.Infow("images added", "resource_id", id, "count", len(uploads))
	return s.load(ctx, id)
}

func (s *ResourceService) rollbackImages(ctx context.Context, ids []string) {
	for _, imageID := range ids {
		if err := s.images.Delete(ctx, imageID); err != nil {
			s.logger.Warnw("rollback image failed", "image_id", imageID, "error", err)
		}
	}
}

// RemoveImage удаляет изображение с указанным порядковым номером и перенумеровывает остальные.
func (s *ResourceService) RemoveImage(ctx context.Context, id string, actor *Actor, order int) (*model.Resource, error) {
	res, err := s.loadOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, img := range res.Images {
		if img.Order == order {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrImageNotFound
	}
	removed := res.Images[idx]

	images := make([]model.Image, 0, len(res.Images)-1)
	for i, img := range res.Images {
		if i == idx {
			continue
		}
		img.Order = len(images)
		images = append(images, img)
	}
	if err := s.resources.UpdateResource(ctx, id, map[string]any{"images": datatypes.JSONSlice[model.Image](images)}); err != nil {
		return nil, internal("save images", err)
	}
	s.dropImage(ctx, removed.URL)
	return s.load(ctx, id)
}

// OpenImage отдаёт сохранённое изображение.
func (s *ResourceService) OpenImage(ctx context.Context, imageID string) (*storage.Object, error) {
	obj, err := s.images.Open(ctx, imageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, internal("open image", err)
	}
	return obj, nil
}
