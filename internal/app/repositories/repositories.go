package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection
type Repositories struct {
	UserRepository               *UserRepository
	RoleRepository               *RoleRepository
	CourseRepository             *CourseRepository
	LessonRepository             *LessonRepository
	QuizRepository               *QuizRepository
	QuizQuestionRepository       *QuizQuestionRepository
	QuizAnswerRepository         *QuizAnswerRepository
	EnrollmentRepository         *EnrollmentRepository
	ProgressRepository           *ProgressRepository
	CertificateRepository        *CertificateRepository
	TransactionRepository        *TransactionRepository
	TokenRepository              *TokenRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		RoleRepository:               NewRoleRepository(db),
		CourseRepository:             NewCourseRepository(db),
		LessonRepository:             NewLessonRepository(db),
		QuizRepository:               NewQuizRepository(db),
		QuizQuestionRepository:       NewQuizQuestionRepository(db),
		QuizAnswerRepository:         NewQuizAnswerRepository(db),
		EnrollmentRepository:         NewEnrollmentRepository(db),
		ProgressRepository:           NewProgressRepository(db),
		CertificateRepository:        NewCertificateRepository(db),
		TransactionRepository:        NewTransactionRepository(db),
		TokenRepository:              NewTokenRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
	}
}
