package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// CourseService handles course and lesson operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
	lessonRepo *repositories.LessonRepository
	userRepo   *repositories.UserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	lessonRepo *repositories.LessonRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create creates a new course. The owning user must exist before anything is
// written.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking course owner: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	course := &models.Course{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		LearningObject: req.LearningObject,
		UserID:         req.UserID,
		IsFeatured:     req.IsFeatured,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", id).Str("title", course.Title).Msg("Course created")
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll returns every course
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetByID returns a single course
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Update applies a partial update: only fields present in the request are
// written, absent fields keep their stored values.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.LearningObject != nil {
		fields["learning_object"] = *req.LearningObject
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}

	if len(fields) > 0 {
		if err := s.courseRepo.UpdatePartial(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// CreateLesson adds a lesson to an existing course
func (s *CourseService) CreateLesson(ctx context.Context, courseID int64, title string, position int) (*models.Lesson, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	lesson := &models.Lesson{
		CourseID: courseID,
		Title:    title,
		Position: position,
	}

	id, err := s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}
	lesson.ID = id

	return lesson, nil
}

// ListLessons returns the lessons of a course in position order
func (s *CourseService) ListLessons(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	return s.lessonRepo.ListByCourse(ctx, courseID)
}
