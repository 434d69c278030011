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

// InquiryFilter: фильтр списка обращений владельца.
type InquiryFilter struct {
	Status     string
	ResourceID string
}

// InquiryService: обращения посетителей к владельцам объявлений.
type InquiryService struct {
	inquiries repo.InquiryRepository
	resources repo.ResourceRepository
	logger    *zap.SugaredLogger
}

func NewInquiryService(inquiries repo.InquiryRepository, resources repo.ResourceRepository, logger *zap.SugaredLogger) *InquiryService {
	return &InquiryService{inquiries: inquiries, resources: resources, logger: logger}
}

// Create: публичная отправка обращения.
func (s *InquiryService) Create(ctx context.Context, req dto.InquiryRequest) (*model.Inquiry, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = NormalizeEmail(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	res, err := s.resources.GetResourceByID(ctx, req.ResourceID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrResourceNotFound
		}
		return nil, internal("get resource", err)
	}
	if !visible(res, nil) {
		return nil, ErrResourceNotFound
	}
	inq := &model.Inquiry{
		ID:         uuid.NewString(),
		ResourceID: req.ResourceID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		Message:    req.Message,
		Status:     model.InquiryNew,
	}
	if err := s.inquiries.CreateInquiry(ctx, inq); err != nil {
		return nil, internal("create inquiry", err)
	}
	s.logger.Infow("inquiry created", "inquiry_id", inq.ID, "resource_id", inq.ResourceID)
	return inq, nil
}

// List: обращения к объявлениям участника; администратор видит все.
func (s *InquiryService) List(ctx context.Context, actor *Actor, f InquiryFilter) ([]model.Inquiry, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if f.Status != "" && !validInquiryStatus(f.Status) {
		return nil, fieldError("status", "must be one of: new read responded")
	}
	rf := repo.InquiryFilter{Status: f.Status, ResourceID: f.ResourceID}
	if !actor.IsAdmin() {
		rf.OwnerID = actor.ID
	}
	list, err := s.inquiries.ListInquiries(ctx, rf)
	if err != nil {
		return nil, internal("list inquiries", err)
	}
	return list, nil
}

func validInquiryStatus(st string) bool {
	switch st {
	case model.InquiryNew, model.InquiryRead, model.InquiryResponded:
		return true
	}
	return false
}

// authorize: обращение доступно владельцу объявления или администратору.
func (s *InquiryService) authorize(ctx context.Context, id string, actor *Actor) (*model.Inquiry, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	inq, err := s.inquiries.GetInquiryByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, internal("get inquiry", err)
	}
	if actor.IsAdmin() {
		return inq, nil
	}
	res, err := s.resources.GetResourceByID(ctx, inq.ResourceID)
	if err != nil {
		if repo.IsNotFound(err) {
			// объявление удалено: владельца не установить
			return nil, ErrForbidden
		}
		return nil, internal("get resource", err)
	}
	if res.OwnerID != actor.ID {
		return nil, ErrForbidden
	}
	return inq, nil
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id string, actor *Actor, req dto.InquiryStatusRequest) (*model.Inquiry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	inq, err := s.authorize(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := s.inquiries.UpdateInquiryStatus(ctx, id, req.Status); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, internal("update inquiry", err)
	}
	inq.Status = req.Status
	return inq, nil
}

func (s *InquiryService) Delete(ctx context.Context, id string, actor *Actor) error {
	if _, err := s.authorize(ctx, id, actor); err != nil {
		return err
	}
	if err := s.inquiries.DeleteInquiry(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrInquiryNotFound
		}
		return internal("delete inquiry", err)
	}
	return nil
}
