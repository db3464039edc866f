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

// QuizAnswerRepository handles quiz answer database operations
type QuizAnswerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizAnswerRepository creates a new QuizAnswerRepository
func NewQuizAnswerRepository(db *pgxpool.Pool) *QuizAnswerRepository {
	return &QuizAnswerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new quiz answer and returns its ID
func (r *QuizAnswerRepository) Create(ctx context.Context, answer *models.QuizAnswer) (int64, error) {
	sql, args, err := r.sb.Insert("quiz_answers").
		Columns("quiz_question_id", "user_id", "answer", "is_correct", "score").
		Values(answer.QuizQuestionID, answer.UserID, answer.Answer, answer.IsCorrect, answer.Score).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create quiz answer query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrQuizQuestionNotFound
		}
		logger.Error().Err(err).Msg("Error executing create quiz answer query")
		return 0, fmt.Errorf("error creating quiz answer: %w", err)
	}

	return id, nil
}

// GetByID retrieves a quiz answer by ID
func (r *QuizAnswerRepository) GetByID(ctx context.Context, id int64) (*models.QuizAnswer, error) {
	sql, args, err := r.sb.Select("id", "quiz_question_id", "user_id", "answer", "is_correct", "score").
		From("quiz_answers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get quiz answer query: %w", err)
	}

	answer := &models.QuizAnswer{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&answer.ID, &answer.QuizQuestionID, &answer.UserID,
		&answer.Answer, &answer.IsCorrect, &answer.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizAnswerNotFound
		}
		logger.Error().Err(err).Int64("answerID", id).Msg("Error scanning quiz answer row")
		return nil, fmt.Errorf("error getting quiz answer by ID: %w", err)
	}

	return answer, nil
}

// ListByQuestion retrieves all answers submitted for a question
func (r *QuizAnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]*models.QuizAnswer, error) {
	sql, args, err := r.sb.Select("id", "quiz_question_id", "user_id", "answer", "is_correct", "score").
		From("quiz_answers").
		Where(squirrel.Eq{"quiz_question_id": questionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list quiz answers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("questionID", questionID).Msg("Error executing list quiz answers query")
		return nil, fmt.Errorf("error querying quiz answers: %w", err)
	}
	defer rows.Close()

	answers := []*models.QuizAnswer{}
	for rows.Next() {
		answer := &models.QuizAnswer{}
		if err := rows.Scan(&answer.ID, &answer.QuizQuestionID, &answer.UserID,
			&answer.Answer, &answer.IsCorrect, &answer.Score); err != nil {
			return nil, fmt.Errorf("error scanning quiz answer row: %w", err)
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz answer rows: %w", err)
	}

	return answers, nil
}

// UpdatePartial updates only the provided fields of a quiz answer
func (r *QuizAnswerRepository) UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("quiz_answers").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update quiz answer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("answerID", id).Msg("Error executing update quiz answer query")
		return fmt.Errorf("error updating quiz answer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizAnswerNotFound
	}

	return nil
}
