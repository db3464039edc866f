package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/middleware"
)

// CertificateController handles completion certificates
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// IssueCertificate issues a certificate for a completed course
// @Summary Issue a certificate
// @Description Returns the certificate for (user, course), creating it on first call. Repeated calls return the same certificate.
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueCertificateRequest true "Certificate information"
// @Success 200 {object} dto.APIResponse{data=dto.CertificateResponse} "Certificate issued or already present"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates [post]
func (c *CertificateController) IssueCertificate(ctx *gin.Context) {
	var req dto.IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	cert, err := c.certificateService.Issue(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      cert,
		Timestamp: time.Now(),
	})
}

// GetCertificateByID retrieves a certificate by ID
// @Summary Get certificate details
// @Description Retrieves a single certificate by its ID
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CertificateResponse} "Certificate retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid certificate ID"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates/{id} [get]
func (c *CertificateController) GetCertificateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cert, err := c.certificateService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      cert,
		Timestamp: time.Now(),
	})
}

// ListMyCertificates lists the authenticated user's certificates
// @Summary List own certificates
// @Description Returns all certificates issued to the authenticated user
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CertificateResponse} "Certificates retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates [get]
func (c *CertificateController) ListMyCertificates(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	certs, err := c.certificateService.ListByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      certs,
		Timestamp: time.Now(),
	})
}
