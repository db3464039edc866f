package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/repositories"
)

// UserService handles user profile operations
type UserService struct {
	userRepo *repositories.UserRepository
	roleRepo *repositories.RoleRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, roleRepo *repositories.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// GetProfile returns the profile of a user
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		IsActive: user.IsActive,
	}

	role, err := s.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("roleID", user.RoleID).Msg("Could not resolve role name")
	} else {
		resp.RoleName = role.Name
	}

	return resp, nil
}

// UpdateProfile updates name and email of a user
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Email); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return s.GetProfile(ctx, userID)
}
