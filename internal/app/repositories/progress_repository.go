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

// ProgressRepository handles lesson progress database operations
type ProgressRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records completion state for (lesson, enrollment). An existing row
// is updated in place, relying on the unique constraint on the pair.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.Progress) (int64, error) {
	query := `
		INSERT INTO progress (lesson_id, enrollment_id, is_completed, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lesson_id, enrollment_id)
		DO UPDATE SET is_completed = EXCLUDED.is_completed, completed_at = EXCLUDED.completed_at
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, progress.LessonID, progress.EnrollmentID,
		progress.IsCompleted, progress.CompletedAt).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Msg("Error executing upsert progress query")
		return 0, fmt.Errorf("error upserting progress: %w", err)
	}

	return id, nil
}

// GetByID retrieves a progress row by ID
func (r *ProgressRepository) GetByID(ctx context.Context, id int64) (*models.Progress, error) {
	sql, args, err := r.sb.Select("id", "lesson_id", "enrollment_id", "is_completed", "completed_at").
		From("progress").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get progress query: %w", err)
	}

	progress := &models.Progress{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&progress.ID, &progress.LessonID,
		&progress.EnrollmentID, &progress.IsCompleted, &progress.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgressNotFound
		}
		logger.Error().Err(err).Int64("progressID", id).Msg("Error scanning progress row")
		return nil, fmt.Errorf("error getting progress by ID: %w", err)
	}

	return progress, nil
}

// ListByEnrollment retrieves all progress rows of an enrollment
func (r *ProgressRepository) ListByEnrollment(ctx context.Context, enrollmentID int64) ([]*models.Progress, error) {
	sql, args, err := r.sb.Select("id", "lesson_id", "enrollment_id", "is_completed", "completed_at").
		From("progress").
		Where(squirrel.Eq{"enrollment_id": enrollmentID}).
		OrderBy("lesson_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list progress query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", enrollmentID).Msg("Error executing list progress query")
		return nil, fmt.Errorf("error querying progress: %w", err)
	}
	defer rows.Close()

	records := []*models.Progress{}
	for rows.Next() {
		progress := &models.Progress{}
		if err := rows.Scan(&progress.ID, &progress.LessonID, &progress.EnrollmentID,
			&progress.IsCompleted, &progress.CompletedAt); err != nil {
			return nil, fmt.Errorf("error scanning progress row: %w", err)
		}
		records = append(records, progress)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress rows: %w", err)
	}

	return records, nil
}

// UpdatePartial updates only the provided fields of a progress row
func (r *ProgressRepository) UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("progress").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update progress query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("progressID", id).Msg("Error executing update progress query")
		return fmt.Errorf("error updating progress: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgressNotFound
	}

	return nil
}
