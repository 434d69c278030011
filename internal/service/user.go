package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
)

// UserService: профиль пользователя и администрирование аккаунтов.
type UserService struct {
	users      repo.UserRepository
	favorites  repo.FavoriteRepository
	bcryptCost int
	logger     *zap.SugaredLogger
}

func NewUserService(users repo.UserRepository, favorites repo.FavoriteRepository, bcryptCost int, logger *zap.SugaredLogger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, favorites: favorites, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, internal("get user", err)
	}
	return u, nil
}

// UpdateProfile частично обновляет профиль. Email и роль здесь не меняются.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*model.User, error) {
	for _, f := range []**string{
		&req.FirstName, &req.LastName, &req.Language, &req.Phone, &req.Address,
		&req.Company, &req.CompanyAddress, &req.PIB, &req.ProfileImage,
	} {
		*f = trimPtr(*f)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setString("first_name", req.FirstName)
	setString("last_name", req.LastName)
	setString("language", req.Language)
	setString("phone", req.Phone)
	setString("address", req.Address)
	setString("company", req.Company)
	setString("company_address", req.CompanyAddress)
	setString("pib", req.PIB)
	setString("profile_image", req.ProfileImage)
	if req.Social != nil {
		updates["social_website"] = req.Social.Website
		updates["social_facebook"] = req.Social.Facebook
		updates["social_instagram"] = req.Social.Instagram
		updates["social_linked_in"] = req.Social.LinkedIn
	}

	if len(updates) > 0 {
		if err := s.users.UpdateUser(ctx, userID, updates); err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrUserNotFound
			}
			return nil, internal("update user", err)
		}
	}
	return s.get(ctx, userID)
}

// ChangePassword меняет пароль после проверки текущего.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	u, err := s.get(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return internal("hash password", err)
	}
	if err := s.users.UpdateUser(ctx, userID, map[string]any{"password": string(hash)}); err != nil {
		return internal("update password", err)
	}
	s.logger.Infow("password changed", "user_id", userID)
	return nil
}

// List: постраничный список пользователей (для администратора).
func (s *UserService) List(ctx context.Context, page, limit int) (Page[model.User], error) {
	page, limit, offset := normalizePage(page, limit)
	users, total, err := s.users.ListUsers(ctx, offset, limit)
	if err != nil {
		return Page[model.User]{}, internal("list users", err)
	}
	return Page[model.User]{Items: users, Total: total, Page: page, Limit: limit}, nil
}

// SetActive включает или отключает аккаунт.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	if err := s.users.UpdateUser(ctx, id, map[string]any{"active": active}); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, internal("set active", err)
	}
	s.logger.Infow("user active changed", "user_id", id, "active", active)
	return s.get(ctx, id)
}

// Delete удаляет пользователя; его избранное удаляется без гарантии атомарности.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return internal("delete user", err)
	}
	if err := s.favorites.DeleteFavoritesByUser(ctx, id); err != nil {
		s.logger.Warnw("delete user favorites failed", "user_id", id, "error", err)
	}
	s.logger.Infow("user deleted", "user_id", id)
	return nil
}
