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

// ProgressService records lesson completion against enrollments
type ProgressService struct {
	progressRepo   *repositories.ProgressRepository
	lessonRepo     *repositories.LessonRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo *repositories.ProgressRepository,
	lessonRepo *repositories.LessonRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *ProgressService {
	return &ProgressService{
		progressRepo:   progressRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Record upserts completion state for (lesson, enrollment). Both references
// must exist before the row is written.
func (s *ProgressService) Record(ctx context.Context, req *dto.CreateProgressRequest) (*models.Progress, error) {
	exists, err := s.lessonRepo.ExistsByID(ctx, req.LessonID)
	if err != nil {
		return nil, fmt.Errorf("error checking lesson: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrLessonNotFound
	}

	exists, err = s.enrollmentRepo.ExistsByID(ctx, req.EnrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	progress := &models.Progress{
		LessonID:     req.LessonID,
		EnrollmentID: req.EnrollmentID,
		IsCompleted:  req.IsCompleted,
	}
	if req.IsCompleted {
		now := time.Now()
		progress.CompletedAt = &now
	}

	id, err := s.progressRepo.Upsert(ctx, progress)
	if err != nil {
		return nil, err
	}

	return s.progressRepo.GetByID(ctx, id)
}

// GetByID returns a single progress row
func (s *ProgressService) GetByID(ctx context.Context, id int64) (*models.Progress, error) {
	return s.progressRepo.GetByID(ctx, id)
}

// ListByEnrollment returns all progress rows of an enrollment
func (s *ProgressService) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]*models.Progress, error) {
	exists, err := s.enrollmentRepo.ExistsByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	return s.progressRepo.ListByEnrollment(ctx, enrollmentID)
}

// Update applies a partial update to a progress row
func (s *ProgressService) Update(ctx context.Context, id int64, req *dto.UpdateProgressRequest) (*models.Progress, error) {
	fields := map[string]interface{}{}
	if req.IsCompleted != nil {
		fields["is_completed"] = *req.IsCompleted
		if *req.IsCompleted {
			fields["completed_at"] = time.Now()
		} else {
			fields["completed_at"] = nil
		}
	}

	if len(fields) > 0 {
		if err := s.progressRepo.UpdatePartial(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.progressRepo.GetByID(ctx, id)
}
