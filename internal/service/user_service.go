package service

import (
	"context"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get returns the singleton profile, creating it with defaults on first read.
func (s *UserService) Get(ctx context.Context) (*models.UserProfile, error) {
	return s.repo.GetOrCreate(ctx)
}

// Update merges the provided fields onto the profile, creating it if absent.
func (s *UserService) Update(ctx context.Context, req models.UpdateUserProfileRequest) (*models.UserProfile, error) {
	return s.repo.Update(ctx, req.SetDoc())
}
