package service

import (
	"context"
	"fmt"

	"villeh/bloglist/internal/api/models"
	"villeh/bloglist/internal/api/repository"
	apivalidator "villeh/bloglist/internal/validator"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	ListAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListAll returns all users in insertion order. Password hashes stay
// out of the JSON representation at the model level.
func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListAll(ctx)
}

// Create validates the payload and registers a new user. The username
// uniqueness guarantee comes from the repository's unique index, not
// from a check-then-insert here.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := apivalidator.GetValidator().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, missingFields(err))
	}

	user := &models.User{
		Username: req.Username,
		Name:     req.Name,
	}
	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}
	return user, nil
}
