package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
	"github.com/mertc/coursehub/internal/pkg/logger"
)

// AuthorizationService answers ownership and role questions for handlers
// that need more than the route-level role check.
type AuthorizationService struct {
	userRepo   *repositories.UserRepository
	courseRepo *repositories.CourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository, courseRepo *repositories.CourseRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// IsAdmin checks if the user holds the administrator role
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsAdmin")
		return false, err
	}
	return user.RoleID == models.RoleAdmin, nil
}

// CanModifyCourse checks whether a user may modify a course: administrators
// always can, otherwise only the owning instructor.
func (s *AuthorizationService) CanModifyCourse(ctx context.Context, courseID, userID int64) (bool, error) {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return false, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error getting course by ID")
		return false, err
	}

	return course.UserID == userID, nil
}

// ValidateCourseOwnership returns an error unless the user may modify the course
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64) error {
	canModify, err := s.CanModifyCourse(ctx, courseID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) || errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		logger.Error().Err(err).Int64("courseID", courseID).Int64("userID", userID).Msg("Unexpected error during course ownership validation")
		return fmt.Errorf("failed to check course ownership: %w", err)
	}

	if !canModify {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

// GetUserInfo returns user information
func (s *AuthorizationService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in GetUserInfo")
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}

	return user, nil
}
