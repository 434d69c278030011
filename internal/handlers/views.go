package handlers

import (
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func userView(u *model.User) dto.UserView {
	return dto.UserView{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Role:           u.Role,
		Active:         u.Active,
		Language:       u.Language,
		Phone:          u.Phone,
		Address:        u.Address,
		Company:        u.Company,
		CompanyAddress: u.CompanyAddress,
		PIB:            u.PIB,
		Social: dto.SocialView{
			Website:   u.Social.Website,
			Facebook:  u.Social.Facebook,
			Instagram: u.Social.Instagram,
			LinkedIn:  u.Social.LinkedIn,
		},
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

func ownerView(u *model.User) *dto.OwnerView {
	if u == nil {
		return nil
	}
	return &dto.OwnerView{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Company:      u.Company,
		ProfileImage: u.ProfileImage,
	}
}

func categoryView(c *model.Category) *dto.CategoryView {
	if c == nil {
		return nil
	}
	return &dto.CategoryView{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Icon:          c.Icon,
		CoverImage:    c.CoverImage,
		Order:         c.Order,
		ResourceCount: c.ResourceCount,
	}
}

func resourceView(res *model.Resource) dto.ResourceView {
	v := dto.ResourceView{
		ID:          res.ID,
		Title:       res.Title,
		Slug:        res.Slug,
		Description: res.Description,
		Category:    categoryView(res.Category),
		Owner:       ownerView(res.Owner),
		PricePerDay: res.PricePerDay,
		Currency:    res.Currency,
		Status:      res.Status,
		IsFeatured:  res.IsFeatured,
		Options:     append([]string{}, res.Options...),
		Images:      make([]dto.ImageView, 0, len(res.Images)),
		Location: dto.LocationView{
			Country: res.Location.Country,
			City:    res.Location.City,
			Address: res.Location.Address,
		},
		ExtraInfo: make([]dto.ExtraInfoView, 0, len(res.ExtraInfo)),
		Views:     res.Views,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
	for _, img := range res.Images {
		v.Images = append(v.Images, dto.ImageView{URL: img.URL, Alt: img.Alt, Order: img.Order})
	}
	for _, e := range res.ExtraInfo {
		v.ExtraInfo = append(v.ExtraInfo, dto.ExtraInfoView{Label: e.Label, Value: e.Value})
	}
	return v
}

func resourceViews(items []model.Resource) []dto.ResourceView {
	out := make([]dto.ResourceView, 0, len(items))
	for i := range items {
		out = append(out, resourceView(&items[i]))
	}
	return out
}

func inquiryView(q *model.Inquiry) dto.InquiryView {
	return dto.InquiryView{
		ID:         q.ID,
		ResourceID: q.ResourceID,
		FirstName:  q.FirstName,
		LastName:   q.LastName,
		Phone:      q.Phone,
		Email:      q.Email,
		Message:    q.Message,
		Status:     q.Status,
		CreatedAt:  q.CreatedAt,
	}
}
