package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
)

// ResourceParams are the public search parameters.
type ResourceParams struct {
	Category string
	Query    string
	City     string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	Page     int
	Limit    int
}

// Values encodes non-empty parameters; the encoding is stable and usable as a cache key.
func (p ResourceParams) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("category", p.Category)
	set("q", p.Query)
	set("city", p.City)
	if p.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.Featured != nil {
		v.Set("featured", strconv.FormatBool(*p.Featured))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	_, err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	_, err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (dto.UserView, error) {
	var out dto.MeResponse
	_, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out.User, err
}

func (c *Client) Categories(ctx context.Context) ([]dto.CategoryView, error) {
	var out []dto.CategoryView
	_, err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out)
	return out, err
}

func (c *Client) Resources(ctx context.Context, p ResourceParams) (Page[dto.ResourceView], error) {
	var items []dto.ResourceView
	pg, err := c.do(ctx, http.MethodGet, withQuery("/api/resources", p.Values()), nil, &items)
	if err != nil {
		return Page[dto.ResourceView]{}, err
	}
	return page(items, pg), nil
}

func (c *Client) Resource(ctx context.Context, slug string) (dto.ResourceView, error) {
	var out dto.ResourceView
	_, err := c.do(ctx, http.MethodGet, "/api/resources/"+url.PathEscape(slug), nil, &out)
	return out, err
}

func (c *Client) MyResources(ctx context.Context, pageNum, limit int) (Page[dto.ResourceView], error) {
	v := url.Values{}
	if pageNum > 0 {
		v.Set("page", strconv.Itoa(pageNum))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var items []dto.ResourceView
	pg, err := c.do(ctx, http.MethodGet, withQuery("/api/resources/mine", v), nil, &items)
	if err != nil {
		return Page[dto.ResourceView]{}, err
	}
	return page(items, pg), nil
}

func (c *Client) Favorites(ctx context.Context) ([]dto.ResourceView, error) {
	var out []dto.ResourceView
	_, err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &out)
	return out, err
}

func (c *Client) ToggleFavorite(ctx context.Context, resourceID string) (dto.FavoriteState, error) {
	var out dto.FavoriteState
	_, err := c.do(ctx, http.MethodPost, "/api/favorites/"+url.PathEscape(resourceID)+"/toggle", nil, &out)
	return out, err
}

func (c *Client) CheckFavorite(ctx context.Context, resourceID string) (dto.FavoriteState, error) {
	var out dto.FavoriteState
	_, err := c.do(ctx, http.MethodGet, "/api/favorites/"+url.PathEscape(resourceID)+"/check", nil, &out)
	return out, err
}

func (c *Client) CreateInquiry(ctx context.Context, req dto.InquiryRequest) (dto.InquiryView, error) {
	var out dto.InquiryView
	_, err := c.do(ctx, http.MethodPost, "/api/inquiries", req, &out)
	return out, err
}

func (c *Client) Inquiries(ctx context.Context, status, resourceID string) ([]dto.InquiryView, error) {
	v := url.Values{}
	if status != "" {
		v.Set("status", status)
	}
	if resourceID != "" {
		v.Set("resourceId", resourceID)
	}
	var out []dto.InquiryView
	_, err := c.do(ctx, http.MethodGet, withQuery("/api/inquiries", v), nil, &out)
	return out, err
}

func (c *Client) UpdateInquiryStatus(ctx context.Context, id, status string) (dto.InquiryView, error) {
	var out dto.InquiryView
	_, err := c.do(ctx, http.MethodPatch, "/api/inquiries/"+url.PathEscape(id)+"/status", dto.InquiryStatusRequest{Status: status}, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (dto.UserView, error) {
	var out dto.MeResponse
	_, err := c.do(ctx, http.MethodPut, "/api/users/me", req, &out)
	return out.User, err
}
