package models

import "time"

// Enrollment ties a user to a course they are taking.
// (user_id, course_id) is unique.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	UserID     int64            `json:"userId" db:"user_id"`
	CourseID   int64            `json:"courseId" db:"course_id"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`
	Status     EnrollmentStatus `json:"status" db:"status"`

	Course *Course `json:"course,omitempty"`
}

// Progress records a user's completion state for one lesson of an enrollment.
// (lesson_id, enrollment_id) is unique.
type Progress struct {
	ID           int64      `json:"id" db:"id"`
	LessonID     int64      `json:"lessonId" db:"lesson_id"`
	EnrollmentID int64      `json:"enrollmentId" db:"enrollment_id"`
	IsCompleted  bool       `json:"isCompleted" db:"is_completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty" db:"completed_at"` // Nullable
}
