package services

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/app/repositories"
	"storefront/pkg/auth"
)

// AuthService handles account registration, login and lookups.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,alpha_dash,min=2,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account and issues its first token pair.
func (s *AuthService) Register(input RegisterInput) (models.User, auth.TokenPair, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, auth.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     "user",
	}
	if err := s.users.Create(&user); err != nil {
		if isDuplicate(err) {
			return models.User{}, auth.TokenPair{}, fmt.Errorf("%w: username or email already taken", ErrConflict)
		}
		return models.User{}, auth.TokenPair{}, err
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}

	return user, tokens, nil
}

// Login verifies credentials and issues a fresh token pair.
func (s *AuthService) Login(input LoginInput) (models.User, auth.TokenPair, error) {
	user, err := s.users.FindByEmail(input.Email)
	if err != nil {
		if notFound(err) {
			return models.User{}, auth.TokenPair{}, ErrInvalidCredentials
		}
		return models.User{}, auth.TokenPair{}, err
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		return models.User{}, auth.TokenPair{}, ErrInvalidCredentials
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return models.User{}, auth.TokenPair{}, err
	}

	return user, tokens, nil
}

// Account returns the user behind a validated token.
func (s *AuthService) Account(userID uint) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if notFound(err) {
		return user, fmt.Errorf("%w: user %d", ErrReferenceNotFound, userID)
	}
	return user, err
}
