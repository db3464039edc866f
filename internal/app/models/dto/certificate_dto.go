package dto

import "time"

// IssueCertificateRequest issues a certificate to a user for a course
type IssueCertificateRequest struct {
	UserID   int64 `json:"userId" binding:"required,min=1"`
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// CertificateResponse is a certificate with the public URL of its document
type CertificateResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	CourseID    int64     `json:"courseId"`
	DocumentURL string    `json:"documentUrl"`
	IssuedAt    time.Time `json:"issuedAt"`
}
