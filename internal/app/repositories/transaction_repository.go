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

// TransactionRepository handles payment transaction database operations
type TransactionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const transactionColumns = "id, user_id, course_id, amount, payment_date, status, gateway_ref"

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := row.Scan(&tx.ID, &tx.UserID, &tx.CourseID, &tx.Amount, &tx.PaymentDate, &tx.Status, &tx.GatewayRef)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// Create inserts a new transaction and returns its ID
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) (int64, error) {
	sql, args, err := r.sb.Insert("transactions").
		Columns("user_id", "course_id", "amount", "payment_date", "status", "gateway_ref").
		Values(tx.UserID, tx.CourseID, tx.Amount, tx.PaymentDate, tx.Status, tx.GatewayRef).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create transaction query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create transaction query")
		return 0, fmt.Errorf("error creating transaction: %w", err)
	}

	return id, nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	sql, args, err := r.sb.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get transaction query: %w", err)
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		logger.Error().Err(err).Int64("transactionID", id).Msg("Error scanning transaction row")
		return nil, fmt.Errorf("error getting transaction by ID: %w", err)
	}

	return tx, nil
}

// ListByUser retrieves all transactions of a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	sql, args, err := r.sb.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("payment_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list transactions query")
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	txs := []*models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txs, nil
}

// UpdateStatus sets the status of a transaction
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) error {
	sql, args, err := r.sb.Update("transactions").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update transaction status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("transactionID", id).Msg("Error executing update transaction status query")
		return fmt.Errorf("error updating transaction status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// SetGatewayRef stores the payment gateway order reference
func (r *TransactionRepository) SetGatewayRef(ctx context.Context, id int64, ref string) error {
	sql, args, err := r.sb.Update("transactions").
		Set("gateway_ref", ref).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set gateway ref query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("transactionID", id).Msg("Error executing set gateway ref query")
		return fmt.Errorf("error setting gateway ref: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
