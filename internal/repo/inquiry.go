package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

// InquiryFilter: выборка обращений. Пустой OwnerID означает «все» (для администратора).
type InquiryFilter struct {
	OwnerID    string
	Status     string
	ResourceID string
}

// InquiryRepository: доступ к обращениям.
type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inq *model.Inquiry) error
	GetInquiryByID(ctx context.Context, id string) (*model.Inquiry, error)
	ListInquiries(ctx context.Context, f InquiryFilter) ([]model.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) error
	DeleteInquiry(ctx context.Context, id string) error
	DeleteInquiriesByResource(ctx context.Context, resourceID string) error
}

type inquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) CreateInquiry(ctx context.Context, inq *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryRepo) GetInquiryByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var inq model.Inquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inq).Error; err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *inquiryRepo) ListInquiries(ctx context.Context, f InquiryFilter) ([]model.Inquiry, error) {
	q := r.db.WithContext(ctx).Model(&model.Inquiry{})
	if f.OwnerID != "" {
		owned := r.db.Model(&model.Resource{}).Select("id").Where("owner_id = ?", f.OwnerID)
		q = q.Where("resource_id IN (?)", owned)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ResourceID != "" {
		q = q.Where("resource_id = ?", f.ResourceID)
	}
	var out []model.Inquiry
	if err := q.Order("created_at desc, id desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inquiryRepo) UpdateInquiryStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inquiryRepo) DeleteInquiry(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Inquiry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inquiryRepo) DeleteInquiriesByResource(ctx context.Context, resourceID string) error {
	return r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&model.Inquiry{}).Error
}
