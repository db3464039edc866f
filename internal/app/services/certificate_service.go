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
	"github.com/mertc/coursehub/internal/pkg/filestorage"
)

// CertificateService issues completion certificates. Issuing is idempotent:
// a user holds at most one certificate per course.
type CertificateService struct {
	certificateRepo *repositories.CertificateRepository
	userRepo        *repositories.UserRepository
	courseRepo      *repositories.CourseRepository
	storage         *filestorage.LocalStorage
	logger          zerolog.Logger
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(
	certificateRepo *repositories.CertificateRepository,
	userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository,
	storage *filestorage.LocalStorage,
	logger zerolog.Logger,
) *CertificateService {
	return &CertificateService{
		certificateRepo: certificateRepo,
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		storage:         storage,
		logger:          logger,
	}
}

// Issue returns the certificate for (user, course), creating it on first
// call. Repeated calls return the same certificate.
func (s *CertificateService) Issue(ctx context.Context, req *dto.IssueCertificateRequest) (*dto.CertificateResponse, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	docPath, err := s.renderDocument(user, course, issuedAt)
	if err != nil {
		return nil, fmt.Errorf("error rendering certificate document: %w", err)
	}

	cert := &models.Certificate{
		UserID:          user.ID,
		CourseID:        course.ID,
		CertificatePath: docPath,
		IssuedAt:        issuedAt,
	}

	stored, created, err := s.certificateRepo.FindOrCreate(ctx, cert)
	if err != nil {
		return nil, err
	}

	if !created {
		// Lost the race or already issued: discard the freshly rendered copy
		if err := s.storage.DeleteFile(docPath); err != nil {
			s.logger.Warn().Err(err).Str("path", docPath).Msg("Could not remove superfluous certificate document")
		}
	} else {
		s.logger.Info().Int64("userID", user.ID).Int64("courseID", course.ID).Msg("Certificate issued")
	}

	return s.toResponse(stored), nil
}

// GetByID returns a single certificate
func (s *CertificateService) GetByID(ctx context.Context, id int64) (*dto.CertificateResponse, error) {
	cert, err := s.certificateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cert), nil
}

// ListByUser returns all certificates issued to a user
func (s *CertificateService) ListByUser(ctx context.Context, userID int64) ([]*dto.CertificateResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	certs, err := s.certificateRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		out = append(out, s.toResponse(cert))
	}
	return out, nil
}

// toResponse attaches the public document URL to a certificate
func (s *CertificateService) toResponse(cert *models.Certificate) *dto.CertificateResponse {
	return &dto.CertificateResponse{
		ID:          cert.ID,
		UserID:      cert.UserID,
		CourseID:    cert.CourseID,
		DocumentURL: s.storage.FileURL(cert.CertificatePath),
		IssuedAt:    cert.IssuedAt,
	}
}

// renderDocument writes the certificate HTML document to storage and returns
// its relative path.
func (s *CertificateService) renderDocument(user *models.User, course *models.Course, issuedAt time.Time) (string, error) {
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Certificate of Completion</title></head>
<body style="font-family: Georgia, serif; text-align: center; padding: 60px;">
	<h1>Certificate of Completion</h1>
	<p>This certifies that</p>
	<h2>%s</h2>
	<p>has successfully completed the course</p>
	<h2>%s</h2>
	<p>Issued on %s</p>
</body>
</html>
`, user.Name, course.Title, issuedAt.Format("January 2, 2006"))

	name := fmt.Sprintf("certificate_%d_%d_%d.html", user.ID, course.ID, issuedAt.Unix())
	return s.storage.SaveBytes([]byte(doc), "certificates", name)
}
