package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

type roleStore interface {
	Create(ctx context.Context, role *models.Role) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	GetAll(ctx context.Context) ([]*models.Role, error)
	NameExistsExcluding(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id int64) error
}

type userCountStore interface {
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}

// RoleService handles role management. Admin-only at the route level.
type RoleService struct {
	roleRepo roleStore
	userRepo userCountStore
	logger   zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo roleStore, userRepo userCountStore, logger zerolog.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new role with a unique name
func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*models.Role, error) {
	taken, err := s.roleRepo.NameExistsExcluding(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking role name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrRoleNameTaken
	}

	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := s.roleRepo.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	role.ID = id

	s.logger.Info().Int64("roleID", id).Str("name", role.Name).Msg("Role created")
	return role, nil
}

// GetAll returns every role
func (s *RoleService) GetAll(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.GetAll(ctx)
}

// GetByID returns a single role
func (s *RoleService) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

// Update renames a role. The uniqueness check excludes the role being
// updated, so saving a role under its own unchanged name succeeds.
func (s *RoleService) Update(ctx context.Context, id int64, req *dto.UpdateRoleRequest) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.roleRepo.NameExistsExcluding(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("error checking role name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrRoleNameTaken
	}

	role.Name = req.Name
	role.Description = req.Description

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role that is not assigned to any user
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	count, err := s.userRepo.CountByRole(ctx, id)
	if err != nil {
		return fmt.Errorf("error counting role assignments: %w", err)
	}
	if count > 0 {
		return apperrors.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, id)
}
