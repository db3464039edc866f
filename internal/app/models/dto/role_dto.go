package dto

// CreateRoleRequest represents role creation data
type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required,max=20"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateRoleRequest updates a role. Name uniqueness is checked against every
// role except the one addressed by the route id, so saving a role under its
// own unchanged name succeeds.
type UpdateRoleRequest struct {
	Name        string  `json:"name" binding:"required,max=20"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}
