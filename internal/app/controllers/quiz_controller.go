package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/middleware"
)

// QuizController handles quizzes, quiz questions and quiz answers
type QuizController struct {
	quizService *services.QuizService
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService *services.QuizService) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// CreateQuiz creates a quiz under a course
// @Summary Create a quiz
// @Description Creates a quiz under an existing course
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizRequest true "Quiz information"
// @Success 201 {object} dto.APIResponse{data=models.Quiz} "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	quiz, err := c.quizService.CreateQuiz(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      quiz,
		Timestamp: time.Now(),
	})
}

// GetQuiz retrieves a quiz by ID
// @Summary Get quiz details
// @Description Retrieves a single quiz by its ID
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Quiz} "Quiz retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuiz(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      quiz,
		Timestamp: time.Now(),
	})
}

// CreateQuestion creates a quiz question
// @Summary Create a quiz question
// @Description Creates a question under an existing quiz. The quiz must exist before anything is written.
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizQuestionRequest true "Question information"
// @Success 201 {object} dto.APIResponse{data=models.QuizQuestion} "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	question, err := c.quizService.CreateQuestion(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      question,
		Timestamp: time.Now(),
	})
}

// GetQuestion retrieves a quiz question by ID
// @Summary Get quiz question details
// @Description Retrieves a single quiz question by its ID
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.QuizQuestion} "Question retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-questions/{id} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	question, err := c.quizService.GetQuestion(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      question,
		Timestamp: time.Now(),
	})
}

// ListQuestions lists the questions of a quiz
// @Summary List quiz questions
// @Description Returns all questions of a quiz
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.QuizQuestion} "Questions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	questions, err := c.quizService.ListQuestions(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      questions,
		Timestamp: time.Now(),
	})
}

// UpdateQuestion applies a partial update to a quiz question
// @Summary Update a quiz question
// @Description Updates only the fields present in the payload, absent fields stay untouched
// @Tags quiz-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Param request body dto.UpdateQuizQuestionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.QuizQuestion} "Question updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Question or quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-questions/{id} [patch]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuizQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	question, err := c.quizService.UpdateQuestion(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      question,
		Timestamp: time.Now(),
	})
}

// DeleteQuestion removes a quiz question
// @Summary Delete a quiz question
// @Description Deletes a quiz question and its answers
// @Tags quiz-questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Question deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuestion(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Question deleted",
		Timestamp: time.Now(),
	})
}

// CreateAnswer records a submitted quiz answer
// @Summary Submit a quiz answer
// @Description Records an answer. Question and user must both exist before the row is written.
// @Tags quiz-answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizAnswerRequest true "Answer information"
// @Success 201 {object} dto.APIResponse{data=models.QuizAnswer} "Answer recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Question or user not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-answers [post]
func (c *QuizController) CreateAnswer(ctx *gin.Context) {
	var req dto.CreateQuizAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	answer, err := c.quizService.CreateAnswer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      answer,
		Timestamp: time.Now(),
	})
}

// GetAnswer retrieves a quiz answer by ID
// @Summary Get quiz answer details
// @Description Retrieves a single quiz answer by its ID
// @Tags quiz-answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.QuizAnswer} "Answer retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid answer ID"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-answers/{id} [get]
func (c *QuizController) GetAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	answer, err := c.quizService.GetAnswer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      answer,
		Timestamp: time.Now(),
	})
}

// UpdateAnswer applies a partial update to a quiz answer
// @Summary Update a quiz answer
// @Description Updates only the fields present in the payload, absent fields stay untouched
// @Tags quiz-answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID" Format(int64) minimum(1)
// @Param request body dto.UpdateQuizAnswerRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.QuizAnswer} "Answer updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-answers/{id} [patch]
func (c *QuizController) UpdateAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuizAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	answer, err := c.quizService.UpdateAnswer(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      answer,
		Timestamp: time.Now(),
	})
}
