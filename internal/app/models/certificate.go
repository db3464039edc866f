package models

import "time"

// Certificate is issued to a user for completing a course.
// One certificate per (user_id, course_id), enforced by a unique constraint.
type Certificate struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	CourseID        int64     `json:"courseId" db:"course_id"`
	CertificatePath string    `json:"certificatePath" db:"certificate_path"`
	IssuedAt        time.Time `json:"issuedAt" db:"issued_at"`
}
