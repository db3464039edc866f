package dto

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func bindAnswerPayload(t *testing.T, answer string) error {
	t.Helper()
	payload := fmt.Sprintf(
		`{"quizQuestionId":1,"userId":1,"answer":%q,"isCorrect":true,"score":5}`, answer)
	req := httptest.NewRequest(http.MethodPost, "/quiz-answers", strings.NewReader(payload))

	var body CreateQuizAnswerRequest
	return binding.JSON.Bind(req, &body)
}

// The answer column caps at 255 characters, so binding must reject longer
// input as a field error instead of letting it reach the database.
func TestCreateQuizAnswerRequestAnswerLength(t *testing.T) {
	if err := bindAnswerPayload(t, strings.Repeat("a", 255)); err != nil {
		t.Fatalf("255-character answer must bind, got %v", err)
	}
	if err := bindAnswerPayload(t, strings.Repeat("a", 256)); err == nil {
		t.Fatal("expected a validation error for a 256-character answer")
	}
}
