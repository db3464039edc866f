package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name            string     `json:"name" db:"name" example:"Jane Doe"`                        // Display name
	Email           string     `json:"email" db:"email" example:"jane@example.com"`              // User's email address
	Password        string     `json:"-" db:"password"`                                          // Bcrypt hash (excluded from JSON)
	RoleID          int64      `json:"roleId" db:"role_id" example:"3"`                          // References roles.id
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty" db:"email_verified_at"`         // Set once the address is verified (nullable)
	IsActive        bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Creation timestamp
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Last update timestamp

	Role *Role `json:"role,omitempty"` // Relation, no db tag
}
