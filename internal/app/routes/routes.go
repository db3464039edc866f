package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/controllers"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
		auth.POST("/refresh", ctrls.AuthController.RefreshToken)
		auth.POST("/forgot-password", ctrls.AuthController.ForgotPassword)
		auth.POST("/reset-password", ctrls.AuthController.ResetPassword)
	}

	// --- Public Course routes ---
	// The course catalog is browsable without authentication
	courses := v1.Group("/courses")
	{
		courses.GET("", ctrls.CourseController.GetAllCourses)
		courses.GET("/:id", ctrls.CourseController.GetCourseByID)
		courses.GET("/:id/lessons", ctrls.CourseController.ListLessons)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrls.AuthController.Logout)

		// Profile routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", ctrls.UserController.GetProfile)
			users.PUT("/me", ctrls.UserController.UpdateProfile)
		}

		// Course management
		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.POST("", ctrls.CourseController.CreateCourse)
			coursesProtected.PATCH("/:id", ctrls.CourseController.UpdateCourse)
			coursesProtected.DELETE("/:id", ctrls.CourseController.DeleteCourse)
			coursesProtected.POST("/:id/lessons", ctrls.CourseController.CreateLesson)
		}

		// Quizzes and their questions
		quizzes := authenticated.Group("/quizzes")
		{
			quizzes.POST("", ctrls.QuizController.CreateQuiz)
			quizzes.GET("/:id", ctrls.QuizController.GetQuiz)
			quizzes.GET("/:id/questions", ctrls.QuizController.ListQuestions)
		}

		quizQuestions := authenticated.Group("/quiz-questions")
		{
			quizQuestions.POST("", ctrls.QuizController.CreateQuestion)
			quizQuestions.GET("/:id", ctrls.QuizController.GetQuestion)
			quizQuestions.PATCH("/:id", ctrls.QuizController.UpdateQuestion)
			quizQuestions.DELETE("/:id", ctrls.QuizController.DeleteQuestion)
		}

		quizAnswers := authenticated.Group("/quiz-answers")
		{
			quizAnswers.POST("", ctrls.QuizController.CreateAnswer)
			quizAnswers.GET("/:id", ctrls.QuizController.GetAnswer)
			quizAnswers.PATCH("/:id", ctrls.QuizController.UpdateAnswer)
		}

		// Enrollments and lesson progress
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.POST("", ctrls.EnrollmentController.CreateEnrollment)
			enrollments.GET("", ctrls.EnrollmentController.ListMyEnrollments)
			enrollments.GET("/:id", ctrls.EnrollmentController.GetEnrollmentByID)
			enrollments.GET("/:id/progress", ctrls.ProgressController.ListProgressByEnrollment)
		}

		progress := authenticated.Group("/progress")
		{
			progress.POST("", ctrls.ProgressController.CreateProgress)
			progress.GET("/:id", ctrls.ProgressController.GetProgressByID)
			progress.PATCH("/:id", ctrls.ProgressController.UpdateProgress)
		}

		// Certificates
		certificates := authenticated.Group("/certificates")
		{
			certificates.POST("", ctrls.CertificateController.IssueCertificate)
			certificates.GET("", ctrls.CertificateController.ListMyCertificates)
			certificates.GET("/:id", ctrls.CertificateController.GetCertificateByID)
		}

		// Transactions
		transactions := authenticated.Group("/transactions")
		{
			transactions.POST("", ctrls.TransactionController.CreateTransaction)
			transactions.GET("", ctrls.TransactionController.ListMyTransactions)
			transactions.GET("/:id", ctrls.TransactionController.GetTransactionByID)
		}

		// --- Admin-only routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			roles := admin.Group("/roles")
			{
				roles.POST("", ctrls.RoleController.CreateRole)
				roles.GET("", ctrls.RoleController.GetAllRoles)
				roles.GET("/:id", ctrls.RoleController.GetRoleByID)
				roles.PATCH("/:id", ctrls.RoleController.UpdateRole)
				roles.DELETE("/:id", ctrls.RoleController.DeleteRole)
			}

			admin.PATCH("/transactions/:id/status", ctrls.TransactionController.UpdateTransactionStatus)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
