package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// EnrollmentService handles course enrollments
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	userRepo       *repositories.UserRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Enroll adds a user to a course. User and course must both exist before the
// enrollment row is written.
func (s *EnrollmentService) Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	exists, err := s.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	exists, err = s.courseRepo.ExistsByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	enrollment := &models.Enrollment{
		UserID:     req.UserID,
		CourseID:   req.CourseID,
		EnrolledAt: time.Now(),
		Status:     models.EnrollmentActive,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	enrollment.ID = id

	s.logger.Info().Int64("userID", req.UserID).Int64("courseID", req.CourseID).Msg("User enrolled")
	return enrollment, nil
}

// GetByID returns a single enrollment
func (s *EnrollmentService) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// ListByUser returns the enrollments of a user
func (s *EnrollmentService) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userID)
}
