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

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const certificateColumns = "id, user_id, course_id, certificate_path, issued_at"

// FindOrCreate returns the existing certificate for (user, course) or inserts
// a new one. The unique constraint on the pair guarantees one certificate per
// user per course even under concurrent issuance.
func (r *CertificateRepository) FindOrCreate(ctx context.Context, cert *models.Certificate) (*models.Certificate, bool, error) {
	insertQuery := `
		INSERT INTO certificates (user_id, course_id, certificate_path, issued_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, course_id) DO NOTHING
		RETURNING ` + certificateColumns

	created := &models.Certificate{}
	err := r.db.QueryRow(ctx, insertQuery, cert.UserID, cert.CourseID, cert.CertificatePath, cert.IssuedAt).
		Scan(&created.ID, &created.UserID, &created.CourseID, &created.CertificatePath, &created.IssuedAt)
	if err == nil {
		return created, true, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error executing insert certificate query")
		return nil, false, fmt.Errorf("error creating certificate: %w", err)
	}

	// Conflict: the certificate already exists, fetch it
	existing, err := r.GetByUserAndCourse(ctx, cert.UserID, cert.CourseID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByID retrieves a certificate by ID
func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	sql, args, err := r.sb.Select(certificateColumns).
		From("certificates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get certificate query: %w", err)
	}

	cert := &models.Certificate{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&cert.ID, &cert.UserID, &cert.CourseID,
		&cert.CertificatePath, &cert.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Int64("certificateID", id).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting certificate by ID: %w", err)
	}

	return cert, nil
}

// GetByUserAndCourse retrieves the certificate for a (user, course) pair
func (r *CertificateRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Certificate, error) {
	sql, args, err := r.sb.Select(certificateColumns).
		From("certificates").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get certificate query: %w", err)
	}

	cert := &models.Certificate{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&cert.ID, &cert.UserID, &cert.CourseID,
		&cert.CertificatePath, &cert.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting certificate: %w", err)
	}

	return cert, nil
}

// ListByUser retrieves all certificates issued to a user
func (r *CertificateRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Certificate, error) {
	sql, args, err := r.sb.Select(certificateColumns).
		From("certificates").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("issued_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list certificates query")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.Certificate{}
	for rows.Next() {
		cert := &models.Certificate{}
		if err := rows.Scan(&cert.ID, &cert.UserID, &cert.CourseID, &cert.CertificatePath, &cert.IssuedAt); err != nil {
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}
