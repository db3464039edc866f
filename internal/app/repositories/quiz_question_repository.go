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

// QuizQuestionRepository handles quiz question database operations
type QuizQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizQuestionRepository creates a new QuizQuestionRepository
func NewQuizQuestionRepository(db *pgxpool.Pool) *QuizQuestionRepository {
	return &QuizQuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new quiz question and returns its ID
func (r *QuizQuestionRepository) Create(ctx context.Context, question *models.QuizQuestion) (int64, error) {
	sql, args, err := r.sb.Insert("quiz_questions").
		Columns("question", "answer", "quiz_id").
		Values(question.Question, question.Answer, question.QuizID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create quiz question query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Msg("Error executing create quiz question query")
		return 0, fmt.Errorf("error creating quiz question: %w", err)
	}

	return id, nil
}

// GetByID retrieves a quiz question by ID
func (r *QuizQuestionRepository) GetByID(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	sql, args, err := r.sb.Select("id", "question", "answer", "quiz_id").
		From("quiz_questions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get quiz question query: %w", err)
	}

	question := &models.QuizQuestion{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&question.ID, &question.Question, &question.Answer, &question.QuizID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizQuestionNotFound
		}
		logger.Error().Err(err).Int64("questionID", id).Msg("Error scanning quiz question row")
		return nil, fmt.Errorf("error getting quiz question by ID: %w", err)
	}

	return question, nil
}

// ListByQuiz retrieves all questions of a quiz
func (r *QuizQuestionRepository) ListByQuiz(ctx context.Context, quizID int64) ([]*models.QuizQuestion, error) {
	sql, args, err := r.sb.Select("id", "question", "answer", "quiz_id").
		From("quiz_questions").
		Where(squirrel.Eq{"quiz_id": quizID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list quiz questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("quizID", quizID).Msg("Error executing list quiz questions query")
		return nil, fmt.Errorf("error querying quiz questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.QuizQuestion{}
	for rows.Next() {
		question := &models.QuizQuestion{}
		if err := rows.Scan(&question.ID, &question.Question, &question.Answer, &question.QuizID); err != nil {
			return nil, fmt.Errorf("error scanning quiz question row: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz question rows: %w", err)
	}

	return questions, nil
}

// ExistsByID checks whether a quiz question row exists
func (r *QuizQuestionRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("quiz_questions").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build quiz question exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("questionID", id).Msg("Error checking quiz question existence")
		return false, fmt.Errorf("error checking quiz question existence: %w", err)
	}

	return exists, nil
}

// UpdatePartial updates only the provided fields of a quiz question
func (r *QuizQuestionRepository) UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("quiz_questions").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update quiz question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrQuizNotFound
		}
		logger.Error().Err(err).Int64("questionID", id).Msg("Error executing update quiz question query")
		return fmt.Errorf("error updating quiz question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizQuestionNotFound
	}

	return nil
}

// Delete deletes a quiz question by ID
func (r *QuizQuestionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("quiz_questions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete quiz question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("questionID", id).Msg("Error executing delete quiz question query")
		return fmt.Errorf("error deleting quiz question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizQuestionNotFound
	}

	return nil
}
