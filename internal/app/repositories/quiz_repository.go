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

// QuizRepository handles quiz database operations
type QuizRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new quiz and returns its ID
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) (int64, error) {
	sql, args, err := r.sb.Insert("quizzes").
		Columns("course_id", "title").
		Values(quiz.CourseID, quiz.Title).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create quiz query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create quiz query")
		return 0, fmt.Errorf("error creating quiz: %w", err)
	}

	return id, nil
}

// GetByID retrieves a quiz by ID
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title").
		From("quizzes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get quiz query: %w", err)
	}

	quiz := &models.Quiz{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&quiz.ID, &quiz.CourseID, &quiz.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Int64("quizID", id).Msg("Error scanning quiz row")
		return nil, fmt.Errorf("error getting quiz by ID: %w", err)
	}

	return quiz, nil
}

// ExistsByID checks whether a quiz row exists
func (r *QuizRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("quizzes").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build quiz exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("quizID", id).Msg("Error checking quiz existence")
		return false, fmt.Errorf("error checking quiz existence: %w", err)
	}

	return exists, nil
}
