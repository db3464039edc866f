package dto

// CreateQuizRequest creates a quiz under a course
type CreateQuizRequest struct {
	CourseID int64  `json:"courseId" binding:"required,min=1"`
	Title    string `json:"title" binding:"required,max=255"`
}

// CreateQuizQuestionRequest represents quiz question creation data
type CreateQuizQuestionRequest struct {
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required,max=255"`
	QuizID   int64  `json:"quizId" binding:"required,min=1"` // Must reference an existing quiz
}

// UpdateQuizQuestionRequest applies a partial update: only fields present in
// the payload are validated and written, absent fields stay untouched.
type UpdateQuizQuestionRequest struct {
	Question *string `json:"question" binding:"omitempty,max=500"`
	Answer   *string `json:"answer" binding:"omitempty,max=255"`
	QuizID   *int64  `json:"quizId" binding:"omitempty,min=1"`
}

// IsEmpty reports whether the payload carries no updatable field
func (r *UpdateQuizQuestionRequest) IsEmpty() bool {
	return r.Question == nil && r.Answer == nil && r.QuizID == nil
}

// CreateQuizAnswerRequest represents a submitted answer.
// Both foreign keys are mandatory and must reference existing rows.
type CreateQuizAnswerRequest struct {
	QuizQuestionID int64  `json:"quizQuestionId" binding:"required,min=1"`
	UserID         int64  `json:"userId" binding:"required,min=1"`
	Answer         string `json:"answer" binding:"required,max=255"`
	IsCorrect      *bool  `json:"isCorrect" binding:"required"`
	Score          *int   `json:"score" binding:"required"`
}

// UpdateQuizAnswerRequest applies a partial update to an answer
type UpdateQuizAnswerRequest struct {
	Answer    *string `json:"answer" binding:"omitempty,max=255"`
	IsCorrect *bool   `json:"isCorrect"`
	Score     *int    `json:"score"`
}

// IsEmpty reports whether the payload carries no updatable field
func (r *UpdateQuizAnswerRequest) IsEmpty() bool {
	return r.Answer == nil && r.IsCorrect == nil && r.Score == nil
}
