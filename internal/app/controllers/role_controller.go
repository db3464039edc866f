package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/middleware"
)

// RoleController handles role management. All routes are admin-only.
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// CreateRole creates a new role
// @Summary Create a role
// @Description Creates a role with a unique name of at most 20 characters
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "Role information"
// @Success 201 {object} dto.APIResponse{data=models.Role} "Role created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 409 {object} dto.ErrorResponse "Role name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	role, err := c.roleService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      role,
		Timestamp: time.Now(),
	})
}

// GetAllRoles retrieves all roles
// @Summary Get all roles
// @Description Retrieves a list of all roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role} "Roles retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [get]
func (c *RoleController) GetAllRoles(ctx *gin.Context) {
	roles, err := c.roleService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      roles,
		Timestamp: time.Now(),
	})
}

// GetRoleByID retrieves a role by ID
// @Summary Get role details
// @Description Retrieves a single role by its ID
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Role} "Role retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid role ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [get]
func (c *RoleController) GetRoleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, err := c.roleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      role,
		Timestamp: time.Now(),
	})
}

// UpdateRole renames a role
// @Summary Update a role
// @Description Renames a role. The uniqueness check excludes the role itself, so saving an unchanged name succeeds.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoleRequest true "Updated role information"
// @Success 200 {object} dto.APIResponse{data=models.Role} "Role updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 409 {object} dto.ErrorResponse "Role name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [patch]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	role, err := c.roleService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      role,
		Timestamp: time.Now(),
	})
}

// DeleteRole removes a role
// @Summary Delete a role
// @Description Deletes a role that is not assigned to any user
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Role deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid role ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 409 {object} dto.ErrorResponse "Role still assigned to users"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roleService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Role deleted",
		Timestamp: time.Now(),
	})
}
