package usecase

import (
	"context"
	"fmt"

	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) (*response.UserListResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

// GetUsers lists credential records. Password hashes never leave this layer.
func (s *userService) GetUsers(ctx context.Context) (*response.UserListResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	resp := &response.UserListResponse{Users: make([]response.UserResponse, len(users))}
	for i := range users {
		resp.Users[i] = response.UserToResponse(&users[i])
	}

	return resp, nil
}
