package dto

// CreateEnrollmentRequest enrolls a user into a course
type CreateEnrollmentRequest struct {
	UserID   int64 `json:"userId" binding:"required,min=1"`
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// CreateProgressRequest records lesson completion state for an enrollment
type CreateProgressRequest struct {
	LessonID     int64 `json:"lessonId" binding:"required,min=1"`
	EnrollmentID int64 `json:"enrollmentId" binding:"required,min=1"`
	IsCompleted  bool  `json:"isCompleted"`
}

// UpdateProgressRequest applies a partial update to a progress row
type UpdateProgressRequest struct {
	IsCompleted *bool `json:"isCompleted"`
}
