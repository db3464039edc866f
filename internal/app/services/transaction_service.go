package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
	"github.com/mertc/coursehub/internal/pkg/payment"
)

// TransactionService handles course purchases. When a payment gateway is
// configured, creating a transaction also opens a gateway checkout session.
type TransactionService struct {
	transactionRepo *repositories.TransactionRepository
	courseRepo      *repositories.CourseRepository
	userRepo        *repositories.UserRepository
	gateway         *payment.Gateway
	logger          zerolog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo *repositories.TransactionRepository,
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	gateway *payment.Gateway,
	logger zerolog.Logger,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// Create starts a pending transaction for a course purchase. The amount is
// the current course price, never client input.
func (s *TransactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:      user.ID,
		CourseID:    course.ID,
		Amount:      course.Price,
		PaymentDate: time.Now(),
		Status:      models.TransactionPending,
	}

	id, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	resp := toTransactionResponse(tx)

	if s.gateway != nil {
		orderID := fmt.Sprintf("coursehub-%d", id)
		checkout, err := s.gateway.CreateCheckout(orderID, tx.Amount, user.Name, user.Email)
		if err != nil {
			s.logger.Error().Err(err).Int64("transactionID", id).Msg("Gateway checkout failed")
			if statusErr := s.transactionRepo.UpdateStatus(ctx, id, models.TransactionFailed); statusErr != nil {
				s.logger.Error().Err(statusErr).Int64("transactionID", id).Msg("Could not mark transaction failed")
			}
			return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
		}

		if err := s.transactionRepo.SetGatewayRef(ctx, id, checkout.OrderID); err != nil {
			return nil, fmt.Errorf("error storing gateway reference: %w", err)
		}
		resp.GatewayRef = &checkout.OrderID
		resp.RedirectURL = checkout.RedirectURL
	}

	s.logger.Info().Int64("transactionID", id).Int64("userID", user.ID).
		Int64("courseID", course.ID).Float64("amount", tx.Amount).Msg("Transaction created")
	return resp, nil
}

// GetByID returns a single transaction
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// ListByUser returns the transactions of a user, newest first
func (s *TransactionService) ListByUser(ctx context.Context, userID int64) ([]*dto.TransactionResponse, error) {
	txs, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

// UpdateStatus settles or fails a transaction
func (s *TransactionService) UpdateStatus(ctx context.Context, id int64, status models.TransactionStatus) (*dto.TransactionResponse, error) {
	if err := s.transactionRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		CourseID:    tx.CourseID,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		PaymentDate: tx.PaymentDate.Format(time.RFC3339),
		GatewayRef:  tx.GatewayRef,
	}
}
