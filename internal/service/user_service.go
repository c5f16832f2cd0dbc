package service

import (
	"errors"
	"fmt"
	"strings"

	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"
	"kosteo-api/pkg/database"
	"kosteo-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// PatchUserRequest accepts any subset of mutable fields; at least one must
// be present.
type PatchUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserPage is the offset-paginated list response.
type UserPage struct {
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Total int64        `json:"total"`
	Items []model.User `json:"items"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	ListUsers(query string, page, limit int) (*UserPage, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	PatchUser(id uuid.UUID, req *PatchUserRequest) (*model.User, error)
	DeleteUser(id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user := &model.User{Name: req.Name, Email: req.Email}
	if err := s.userRepo.Create(user); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers clamps page to >=1 and limit to [1,100], defaulting to 20.
func (s *userService) ListUsers(query string, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	users, total, err := s.userRepo.Search(query, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}

	return &UserPage{Page: page, Limit: limit, Total: total, Items: users}, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email

	if err := s.userRepo.Update(existing); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, err
	}
	return existing, nil
}

func (s *userService) PatchUser(id uuid.UUID, req *PatchUserRequest) (*model.User, error) {
	if req.Name == nil && req.Email == nil {
		return nil, fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		req.Name = &trimmed
	}
	if req.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*req.Email))
		if lowered == "" {
			return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		req.Email = &lowered
	}

	if err := validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}

	if err := s.userRepo.Update(existing); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, err
	}
	return existing, nil
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return nil
}
