package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/middleware"
)

// ProgressController handles lesson progress tracking
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// CreateProgress records lesson completion state
// @Summary Record lesson progress
// @Description Upserts completion state for a (lesson, enrollment) pair. Both references must exist.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgressRequest true "Progress information"
// @Success 201 {object} dto.APIResponse{data=models.Progress} "Progress recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Lesson or enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress [post]
func (c *ProgressController) CreateProgress(ctx *gin.Context) {
	var req dto.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	progress, err := c.progressService.Record(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      progress,
		Timestamp: time.Now(),
	})
}

// GetProgressByID retrieves a progress row by ID
// @Summary Get progress details
// @Description Retrieves a single progress record by its ID
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Progress ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Progress} "Progress retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid progress ID"
// @Failure 404 {object} dto.ErrorResponse "Progress not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress/{id} [get]
func (c *ProgressController) GetProgressByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	progress, err := c.progressService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      progress,
		Timestamp: time.Now(),
	})
}

// ListProgressByEnrollment lists the progress rows of an enrollment
// @Summary List enrollment progress
// @Description Returns all progress records of an enrollment
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Progress} "Progress retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/progress [get]
func (c *ProgressController) ListProgressByEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.progressService.ListByEnrollment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      records,
		Timestamp: time.Now(),
	})
}

// UpdateProgress applies a partial update to a progress row
// @Summary Update progress
// @Description Updates only the fields present in the payload
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Progress ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgressRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Progress} "Progress updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Progress not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress/{id} [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	progress, err := c.progressService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      progress,
		Timestamp: time.Now(),
	})
}
