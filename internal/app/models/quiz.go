package models

// Quiz groups questions under a course.
type Quiz struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"courseId" db:"course_id"`
	Title    string `json:"title" db:"title"`
}

// QuizQuestion is a single question belonging to a quiz.
type QuizQuestion struct {
	ID       int64  `json:"id" db:"id"`
	Question string `json:"question" db:"question"` // Max 500 chars
	Answer   string `json:"answer" db:"answer"`     // Expected answer, max 255 chars
	QuizID   int64  `json:"quizId" db:"quiz_id"`
}

// QuizAnswer records a user's submitted answer to a question.
type QuizAnswer struct {
	ID             int64  `json:"id" db:"id"`
	QuizQuestionID int64  `json:"quizQuestionId" db:"quiz_question_id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Answer         string `json:"answer" db:"answer"`
	IsCorrect      bool   `json:"isCorrect" db:"is_correct"`
	Score          int    `json:"score" db:"score"`
}
