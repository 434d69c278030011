package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stevans93/rent-and-co-sub001/internal/auth"
	"github.com/stevans93/rent-and-co-sub001/internal/dto"
	"github.com/stevans93/rent-and-co-sub001/internal/model"
	"github.com/stevans93/rent-and-co-sub001/internal/repo"
)

// AuthService: регистрация, вход и текущий пользователь.
type AuthService struct {
	users      repo.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.SugaredLogger
}

func NewAuthService(users repo.UserRepository, tokens *auth.TokenManager, bcryptCost int, logger *zap.SugaredLogger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создаёт пользователя и выпускает токен.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, string, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = NormalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, "", err
	}

	// проверяем уникальность email заранее; гонку закрывает уникальный индекс
	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil && !repo.IsNotFound(err) {
		return nil, "", internal("get user by email", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, "", internal("hash password", err)
	}

	user := &model.User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      model.RoleUser,
		Active:    true,
		Language:  "sr",
	}
	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", internal("create user", err)
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", internal("issue token", err)
	}
	s.logger.Infow("user registered", "user_id", created.ID)
	return created, token, nil
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if repo.IsNotFound(err) {
			s.logger.Infow("login failed: unknown email")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", internal("get user by email", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Infow("login failed: wrong password", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}
	if !user.Active {
		return nil, "", ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", internal("issue token", err)
	}
	return user, token, nil
}

// AccountStatus: существует ли пользователь и не деактивирован ли он.
func (s *AuthService) AccountStatus(ctx context.Context, userID string) (found, active bool, err error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, false, nil
		}
		return false, false, internal("get user", err)
	}
	return true, user.Active, nil
}

// Me загружает пользователя по id из токена.
func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, internal("get user", err)
	}
	if !user.Active {
		return nil, ErrAccountDisabled
	}
	return user, nil
}
