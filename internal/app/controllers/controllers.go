package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appauth "github.com/mertc/coursehub/internal/app/auth"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
)

// Controllers bundles every controller for route registration
type Controllers struct {
	AuthController        *AuthController
	UserController        *UserController
	CourseController      *CourseController
	QuizController        *QuizController
	RoleController        *RoleController
	EnrollmentController  *EnrollmentController
	ProgressController    *ProgressController
	CertificateController *CertificateController
	TransactionController *TransactionController
}

// NewControllers wires all controllers against the service layer
func NewControllers(svcs *services.Services, authzService *appauth.AuthorizationService) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svcs.AuthService),
		UserController:        NewUserController(svcs.UserService),
		CourseController:      NewCourseController(svcs.CourseService, authzService),
		QuizController:        NewQuizController(svcs.QuizService),
		RoleController:        NewRoleController(svcs.RoleService),
		EnrollmentController:  NewEnrollmentController(svcs.EnrollmentService),
		ProgressController:    NewProgressController(svcs.ProgressService),
		CertificateController: NewCertificateController(svcs.CertificateService),
		TransactionController: NewTransactionController(svcs.TransactionService),
	}
}

// parseIDParam parses a numeric route parameter, writing a 400 response on
// failure. The boolean reports whether the caller should continue.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
