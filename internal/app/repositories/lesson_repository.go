package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
	"github.com/mertc/coursehub/internal/pkg/dberrors"
	"github.com/mertc/coursehub/internal/pkg/logger"
)

// LessonRepository handles lesson database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lesson and returns its ID
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	sql, args, err := r.sb.Insert("lessons").
		Columns("course_id", "title", "position").
		Values(lesson.CourseID, lesson.Title, lesson.Position).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create lesson query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create lesson query")
		return 0, fmt.Errorf("error creating lesson: %w", err)
	}

	return id, nil
}

// ListByCourse retrieves all lessons of a course in order
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title", "position").
		From("lessons").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list lessons query")
		return nil, fmt.Errorf("error querying lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*models.Lesson{}
	for rows.Next() {
		lesson := &models.Lesson{}
		if err := rows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Position); err != nil {
			return nil, fmt.Errorf("error scanning lesson row: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// ExistsByID checks whether a lesson row exists
func (r *LessonRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build lesson exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("lessonID", id).Msg("Error checking lesson existence")
		return false, fmt.Errorf("error checking lesson existence: %w", err)
	}

	return exists, nil
}
