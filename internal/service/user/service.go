package user

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anandamid/presensi-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Nama:      u.Nama,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if role == "" {
		role = user.RolePKL
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Nama:         req.Nama,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// Search implements user.UserService.
func (s *UserServiceImpl) Search(ctx context.Context, query string) ([]user.UserResponse, error) {
	users, err := s.UserRepository.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// Update implements user.UserService. Only provided fields change.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Nama != nil {
		existing.Nama = *req.Nama
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(existing), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.UserRepository.Delete(ctx, id)
}
