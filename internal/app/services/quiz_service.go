package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// Narrow store interfaces keep the referential checks decoupled from the
// concrete repositories. The repositories package satisfies all of them.

type quizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Quiz, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type quizQuestionStore interface {
	Create(ctx context.Context, question *models.QuizQuestion) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.QuizQuestion, error)
	ListByQuiz(ctx context.Context, quizID int64) ([]*models.QuizQuestion, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

type quizAnswerStore interface {
	Create(ctx context.Context, answer *models.QuizAnswer) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.QuizAnswer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.QuizAnswer, error)
	UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error
}

type courseExistsStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type userExistsStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// QuizService handles quizzes, their questions and submitted answers
type QuizService struct {
	quizRepo     quizStore
	questionRepo quizQuestionStore
	answerRepo   quizAnswerStore
	courseRepo   courseExistsStore
	userRepo     userExistsStore
	logger       zerolog.Logger
}

// NewQuizService creates a new QuizService
func NewQuizService(
	quizRepo quizStore,
	questionRepo quizQuestionStore,
	answerRepo quizAnswerStore,
	courseRepo courseExistsStore,
	userRepo userExistsStore,
	logger zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateQuiz creates a quiz under an existing course
func (s *QuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*models.Quiz, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	quiz := &models.Quiz{
		CourseID: req.CourseID,
		Title:    req.Title,
	}

	id, err := s.quizRepo.Create(ctx, quiz)
	if err != nil {
		return nil, err
	}
	quiz.ID = id

	return quiz, nil
}

// GetQuiz returns a quiz by ID
func (s *QuizService) GetQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

// CreateQuestion creates a quiz question. The referenced quiz must exist
// before the row is written.
func (s *QuizService) CreateQuestion(ctx context.Context, req *dto.CreateQuizQuestionRequest) (*models.QuizQuestion, error) {
	exists, err := s.quizRepo.ExistsByID(ctx, req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("error checking quiz: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrQuizNotFound
	}

	question := &models.QuizQuestion{
		Question: req.Question,
		Answer:   req.Answer,
		QuizID:   req.QuizID,
	}

	id, err := s.questionRepo.Create(ctx, question)
	if err != nil {
		return nil, err
	}
	question.ID = id

	return question, nil
}

// GetQuestion returns a quiz question by ID
func (s *QuizService) GetQuestion(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions returns the questions of a quiz
func (s *QuizService) ListQuestions(ctx context.Context, quizID int64) ([]*models.QuizQuestion, error) {
	exists, err := s.quizRepo.ExistsByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("error checking quiz: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrQuizNotFound
	}

	return s.questionRepo.ListByQuiz(ctx, quizID)
}

// UpdateQuestion applies a partial update to a question. Absent fields stay
// untouched; a changed quiz reference must point at an existing quiz.
func (s *QuizService) UpdateQuestion(ctx context.Context, id int64, req *dto.UpdateQuizQuestionRequest) (*models.QuizQuestion, error) {
	if req.QuizID != nil {
		exists, err := s.quizRepo.ExistsByID(ctx, *req.QuizID)
		if err != nil {
			return nil, fmt.Errorf("error checking quiz: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrQuizNotFound
		}
	}

	fields := map[string]interface{}{}
	if req.Question != nil {
		fields["question"] = *req.Question
	}
	if req.Answer != nil {
		fields["answer"] = *req.Answer
	}
	if req.QuizID != nil {
		fields["quiz_id"] = *req.QuizID
	}

	if len(fields) > 0 {
		if err := s.questionRepo.UpdatePartial(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.questionRepo.GetByID(ctx, id)
}

// DeleteQuestion removes a quiz question
func (s *QuizService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.questionRepo.Delete(ctx, id)
}

// CreateAnswer records a submitted answer. Both the question and the user
// must exist before the row is written.
func (s *QuizService) CreateAnswer(ctx context.Context, req *dto.CreateQuizAnswerRequest) (*models.QuizAnswer, error) {
	exists, err := s.questionRepo.ExistsByID(ctx, req.QuizQuestionID)
	if err != nil {
		return nil, fmt.Errorf("error checking quiz question: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrQuizQuestionNotFound
	}

	exists, err = s.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	answer := &models.QuizAnswer{
		QuizQuestionID: req.QuizQuestionID,
		UserID:         req.UserID,
		Answer:         req.Answer,
		IsCorrect:      *req.IsCorrect,
		Score:          *req.Score,
	}

	id, err := s.answerRepo.Create(ctx, answer)
	if err != nil {
		return nil, err
	}
	answer.ID = id

	return answer, nil
}

// GetAnswer returns a quiz answer by ID
func (s *QuizService) GetAnswer(ctx context.Context, id int64) (*models.QuizAnswer, error) {
	return s.answerRepo.GetByID(ctx, id)
}

// ListAnswers returns the answers submitted for a question
func (s *QuizService) ListAnswers(ctx context.Context, questionID int64) ([]*models.QuizAnswer, error) {
	exists, err := s.questionRepo.ExistsByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("error checking quiz question: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrQuizQuestionNotFound
	}

	return s.answerRepo.ListByQuestion(ctx, questionID)
}

// UpdateAnswer applies a partial update to an answer
func (s *QuizService) UpdateAnswer(ctx context.Context, id int64, req *dto.UpdateQuizAnswerRequest) (*models.QuizAnswer, error) {
	fields := map[string]interface{}{}
	if req.Answer != nil {
		fields["answer"] = *req.Answer
	}
	if req.IsCorrect != nil {
		fields["is_correct"] = *req.IsCorrect
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}

	if len(fields) > 0 {
		if err := s.answerRepo.UpdatePartial(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.answerRepo.GetByID(ctx, id)
}
