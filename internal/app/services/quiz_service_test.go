package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

type fakeQuizStore struct {
	quizzes     map[int64]*models.Quiz
	createCalls int
}

func (s *fakeQuizStore) Create(ctx context.Context, quiz *models.Quiz) (int64, error) {
	s.createCalls++
	id := int64(len(s.quizzes) + 1)
	stored := *quiz
	stored.ID = id
	s.quizzes[id] = &stored
	return id, nil
}

func (s *fakeQuizStore) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, apperrors.ErrQuizNotFound
	}
	copied := *quiz
	return &copied, nil
}

func (s *fakeQuizStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.quizzes[id]
	return ok, nil
}

type fakeQuestionStore struct {
	questions    map[int64]*models.QuizQuestion
	createCalls  int
	updateCalls  int
	updateFields map[string]interface{}
}

func (s *fakeQuestionStore) Create(ctx context.Context, question *models.QuizQuestion) (int64, error) {
	s.createCalls++
	id := int64(len(s.questions) + 1)
	stored := *question
	stored.ID = id
	s.questions[id] = &stored
	return id, nil
}

func (s *fakeQuestionStore) GetByID(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	q, ok := s.questions[id]
	if !ok {
		return nil, apperrors.ErrQuizQuestionNotFound
	}
	copied := *q
	return &copied, nil
}

func (s *fakeQuestionStore) ListByQuiz(ctx context.Context, quizID int64) ([]*models.QuizQuestion, error) {
	var out []*models.QuizQuestion
	for _, q := range s.questions {
		if q.QuizID == quizID {
			copied := *q
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeQuestionStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := s.questions[id]
	return ok, nil
}

func (s *fakeQuestionStore) UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error {
	s.updateCalls++
	s.updateFields = fields
	q, ok := s.questions[id]
	if !ok {
		return apperrors.ErrQuizQuestionNotFound
	}
	if v, ok := fields["question"]; ok {
		q.Question = v.(string)
	}
	if v, ok := fields["answer"]; ok {
		q.Answer = v.(string)
	}
	if v, ok := fields["quiz_id"]; ok {
		q.QuizID = v.(int64)
	}
	return nil
}

func (s *fakeQuestionStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.questions[id]; !ok {
		return apperrors.ErrQuizQuestionNotFound
	}
	delete(s.questions, id)
	return nil
}

type fakeAnswerStore struct {
	answers     map[int64]*models.QuizAnswer
	createCalls int
}

func (s *fakeAnswerStore) Create(ctx context.Context, answer *models.QuizAnswer) (int64, error) {
	s.createCalls++
	id := int64(len(s.answers) + 1)
	stored := *answer
	stored.ID = id
	s.answers[id] = &stored
	return id, nil
}

func (s *fakeAnswerStore) GetByID(ctx context.Context, id int64) (*models.QuizAnswer, error) {
	a, ok := s.answers[id]
	if !ok {
		return nil, apperrors.ErrQuizAnswerNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *fakeAnswerStore) ListByQuestion(ctx context.Context, questionID int64) ([]*models.QuizAnswer, error) {
	var out []*models.QuizAnswer
	for _, a := range s.answers {
		if a.QuizQuestionID == questionID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeAnswerStore) UpdatePartial(ctx context.Context, id int64, fields map[string]interface{}) error {
	a, ok := s.answers[id]
	if !ok {
		return apperrors.ErrQuizAnswerNotFound
	}
	if v, ok := fields["answer"]; ok {
		a.Answer = v.(string)
	}
	if v, ok := fields["is_correct"]; ok {
		a.IsCorrect = v.(bool)
	}
	if v, ok := fields["score"]; ok {
		a.Score = v.(int)
	}
	return nil
}

type fakeExistsStore struct {
	ids map[int64]bool
}

func (s *fakeExistsStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.ids[id], nil
}

type quizFixture struct {
	quizzes   *fakeQuizStore
	questions *fakeQuestionStore
	answers   *fakeAnswerStore
	courses   *fakeExistsStore
	users     *fakeExistsStore
	svc       *QuizService
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		quizzes:   &fakeQuizStore{quizzes: map[int64]*models.Quiz{}},
		questions: &fakeQuestionStore{questions: map[int64]*models.QuizQuestion{}},
		answers:   &fakeAnswerStore{answers: map[int64]*models.QuizAnswer{}},
		courses:   &fakeExistsStore{ids: map[int64]bool{}},
		users:     &fakeExistsStore{ids: map[int64]bool{}},
	}
	f.svc = NewQuizService(f.quizzes, f.questions, f.answers, f.courses, f.users, zerolog.Nop())
	return f
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestCreateQuizRequiresExistingCourse(t *testing.T) {
	f := newQuizFixture()

	_, err := f.svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{CourseID: 7, Title: "Basics"})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if f.quizzes.createCalls != 0 {
		t.Fatalf("quiz must not be written when the course is missing, got %d create calls", f.quizzes.createCalls)
	}
}

func TestCreateQuestionRequiresExistingQuiz(t *testing.T) {
	f := newQuizFixture()

	_, err := f.svc.CreateQuestion(context.Background(), &dto.CreateQuizQuestionRequest{
		Question: "What is 2+2?",
		Answer:   "4",
		QuizID:   42,
	})
	if !errors.Is(err, apperrors.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
	if f.questions.createCalls != 0 {
		t.Fatalf("question must not be written when the quiz is missing, got %d create calls", f.questions.createCalls)
	}
}

func TestCreateQuestionWritesAfterChecks(t *testing.T) {
	f := newQuizFixture()
	f.quizzes.quizzes[1] = &models.Quiz{ID: 1, CourseID: 1, Title: "Basics"}

	question, err := f.svc.CreateQuestion(context.Background(), &dto.CreateQuizQuestionRequest{
		Question: "What is 2+2?",
		Answer:   "4",
		QuizID:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.ID == 0 {
		t.Fatal("expected question to be assigned an ID")
	}
}

func TestCreateAnswerRequiresExistingQuestionAndUser(t *testing.T) {
	f := newQuizFixture()
	f.users.ids[1] = true

	// Missing question fails before any write
	_, err := f.svc.CreateAnswer(context.Background(), &dto.CreateQuizAnswerRequest{
		QuizQuestionID: 9,
		UserID:         1,
		Answer:         "4",
		IsCorrect:      boolPtr(true),
		Score:          intPtr(10),
	})
	if !errors.Is(err, apperrors.ErrQuizQuestionNotFound) {
		t.Fatalf("expected ErrQuizQuestionNotFound, got %v", err)
	}

	// Missing user fails before any write
	f.questions.questions[9] = &models.QuizQuestion{ID: 9, QuizID: 1, Question: "What is 2+2?", Answer: "4"}
	_, err = f.svc.CreateAnswer(context.Background(), &dto.CreateQuizAnswerRequest{
		QuizQuestionID: 9,
		UserID:         55,
		Answer:         "4",
		IsCorrect:      boolPtr(true),
		Score:          intPtr(10),
	})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if f.answers.createCalls != 0 {
		t.Fatalf("answer must not be written when a reference is missing, got %d create calls", f.answers.createCalls)
	}
}

func TestUpdateQuestionAppliesOnlyProvidedFields(t *testing.T) {
	f := newQuizFixture()
	f.quizzes.quizzes[1] = &models.Quiz{ID: 1, CourseID: 1, Title: "Basics"}
	f.questions.questions[3] = &models.QuizQuestion{ID: 3, QuizID: 1, Question: "Old question", Answer: "Old answer"}

	updated, err := f.svc.UpdateQuestion(context.Background(), 3, &dto.UpdateQuizQuestionRequest{
		Question: strPtr("New question"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Question != "New question" {
		t.Fatalf("expected question to change, got %q", updated.Question)
	}
	if updated.Answer != "Old answer" {
		t.Fatalf("absent field must stay untouched, got %q", updated.Answer)
	}
	if _, ok := f.questions.updateFields["answer"]; ok {
		t.Fatal("absent field must not be part of the update")
	}
	if _, ok := f.questions.updateFields["quiz_id"]; ok {
		t.Fatal("absent field must not be part of the update")
	}
}

func TestUpdateQuestionWithEmptyPayloadWritesNothing(t *testing.T) {
	f := newQuizFixture()
	f.questions.questions[3] = &models.QuizQuestion{ID: 3, QuizID: 1, Question: "Question", Answer: "Answer"}

	updated, err := f.svc.UpdateQuestion(context.Background(), 3, &dto.UpdateQuizQuestionRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.questions.updateCalls != 0 {
		t.Fatalf("empty payload must not trigger a write, got %d update calls", f.questions.updateCalls)
	}
	if updated.Question != "Question" {
		t.Fatalf("unexpected question: %q", updated.Question)
	}
}

func TestUpdateQuestionRejectsMissingQuizReference(t *testing.T) {
	f := newQuizFixture()
	f.questions.questions[3] = &models.QuizQuestion{ID: 3, QuizID: 1, Question: "Question", Answer: "Answer"}

	missing := int64(42)
	_, err := f.svc.UpdateQuestion(context.Background(), 3, &dto.UpdateQuizQuestionRequest{QuizID: &missing})
	if !errors.Is(err, apperrors.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
	if f.questions.updateCalls != 0 {
		t.Fatalf("update must not be written when the quiz reference is missing, got %d calls", f.questions.updateCalls)
	}
}
