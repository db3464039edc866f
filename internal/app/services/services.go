package services

import (
	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/auth"
	"github.com/mertc/coursehub/internal/pkg/email"
	"github.com/mertc/coursehub/internal/pkg/filestorage"
	"github.com/mertc/coursehub/internal/pkg/payment"
)

// Services bundles every application service for wiring in bootstrap
type Services struct {
	AuthService        *AuthService
	UserService        *UserService
	CourseService      *CourseService
	QuizService        *QuizService
	RoleService        *RoleService
	EnrollmentService  *EnrollmentService
	ProgressService    *ProgressService
	CertificateService *CertificateService
	TransactionService *TransactionService
}

// NewServices wires all services against the shared repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	gateway *payment.Gateway,
	storage *filestorage.LocalStorage,
	checkMX bool,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.RoleRepository,
			repos.TokenRepository,
			repos.PasswordResetTokenRepository,
			jwtService,
			emailService,
			checkMX,
			logger,
		),
		UserService:   NewUserService(repos.UserRepository, repos.RoleRepository, logger),
		CourseService: NewCourseService(repos.CourseRepository, repos.LessonRepository, repos.UserRepository, logger),
		QuizService: NewQuizService(
			repos.QuizRepository,
			repos.QuizQuestionRepository,
			repos.QuizAnswerRepository,
			repos.CourseRepository,
			repos.UserRepository,
			logger,
		),
		RoleService:        NewRoleService(repos.RoleRepository, repos.UserRepository, logger),
		EnrollmentService:  NewEnrollmentService(repos.EnrollmentRepository, repos.CourseRepository, repos.UserRepository, logger),
		ProgressService:    NewProgressService(repos.ProgressRepository, repos.LessonRepository, repos.EnrollmentRepository, logger),
		CertificateService: NewCertificateService(repos.CertificateRepository, repos.UserRepository, repos.CourseRepository, storage, logger),
		TransactionService: NewTransactionService(repos.TransactionRepository, repos.CourseRepository, repos.UserRepository, gateway, logger),
	}
}
