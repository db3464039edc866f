package models

import "time"

// Course represents a course published by an instructor.
type Course struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    *string   `json:"description,omitempty" db:"description"` // Nullable
	Price          float64   `json:"price" db:"price"`                       // Stored as NUMERIC(8,2)
	LearningObject *string   `json:"learningObject,omitempty" db:"learning_object"`
	UserID         int64     `json:"userId" db:"user_id"` // Owning instructor, references users.id
	IsFeatured     bool      `json:"isFeatured" db:"is_featured"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Owner *User `json:"owner,omitempty"`
}

// Lesson represents a single lesson inside a course.
type Lesson struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"courseId" db:"course_id"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`
}
