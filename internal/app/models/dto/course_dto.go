package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	Price          float64 `json:"price" binding:"min=0"`
	LearningObject *string `json:"learningObject" binding:"omitempty,max=2000"`
	UserID         int64   `json:"userId" binding:"required,min=1"` // Owning instructor, must exist
	IsFeatured     bool    `json:"isFeatured"`
}

// UpdateCourseRequest updates a course; absent fields are left untouched
type UpdateCourseRequest struct {
	Title          *string  `json:"title" binding:"omitempty,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=2000"`
	Price          *float64 `json:"price" binding:"omitempty,min=0"`
	LearningObject *string  `json:"learningObject" binding:"omitempty,max=2000"`
	IsFeatured     *bool    `json:"isFeatured"`
}
