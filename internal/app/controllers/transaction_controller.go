package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/services"
	"github.com/mertc/coursehub/internal/middleware"
)

// TransactionController handles course purchase transactions
type TransactionController struct {
	transactionService *services.TransactionService
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactionService *services.TransactionService) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// CreateTransaction starts a course purchase
// @Summary Create a transaction
// @Description Starts a pending purchase. The amount is the current course price. Includes a gateway redirect URL when a payment gateway is configured.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction information"
// @Success 201 {object} dto.APIResponse{data=dto.TransactionResponse} "Transaction created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 502 {object} dto.ErrorResponse "Payment gateway error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [post]
func (c *TransactionController) CreateTransaction(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	tx, err := c.transactionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      tx,
		Timestamp: time.Now(),
	})
}

// GetTransactionByID retrieves a transaction by ID
// @Summary Get transaction details
// @Description Retrieves a single transaction by its ID
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TransactionResponse} "Transaction retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid transaction ID"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions/{id} [get]
func (c *TransactionController) GetTransactionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tx, err := c.transactionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      tx,
		Timestamp: time.Now(),
	})
}

// ListMyTransactions lists the authenticated user's transactions
// @Summary List own transactions
// @Description Returns the transactions of the authenticated user, newest first
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TransactionResponse} "Transactions retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [get]
func (c *TransactionController) ListMyTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	txs, err := c.transactionService.ListByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      txs,
		Timestamp: time.Now(),
	})
}

// UpdateTransactionStatus settles or fails a transaction
// @Summary Update transaction status
// @Description Moves a transaction to pending, paid or failed. Administrators only.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.TransactionResponse} "Transaction updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - administrators only"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions/{id}/status [patch]
func (c *TransactionController) UpdateTransactionStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	tx, err := c.transactionService.UpdateStatus(ctx, id, models.TransactionStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      tx,
		Timestamp: time.Now(),
	})
}
