package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// TokenRepository manages refresh tokens in the database
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// CreateRefreshToken stores a new refresh token
func (r *TokenRepository) CreateRefreshToken(ctx context.Context, userID int64, token string, expiryDate time.Time) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expiry_date)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, userID, token, expiryDate)
	if err != nil {
		return fmt.Errorf("error creating refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves the owning user and expiry for a refresh token
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (int64, time.Time, bool, error) {
	query := `
		SELECT user_id, expiry_date, revoked
		FROM refresh_tokens
		WHERE token = $1
	`

	var userID int64
	var expiryDate time.Time
	var revoked bool

	err := r.db.QueryRow(ctx, query, token).Scan(&userID, &expiryDate, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, false, apperrors.ErrTokenNotFound
		}
		return 0, time.Time{}, false, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	return userID, expiryDate, revoked, nil
}

// RevokeRefreshToken marks a refresh token as revoked
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE token = $1
	`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredTokens removes refresh tokens past their expiry
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expiry_date < NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return result.RowsAffected(), nil
}
