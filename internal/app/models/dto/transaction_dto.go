package dto

// CreateTransactionRequest starts a course purchase. The amount is taken
// from the course price, not from the client.
type CreateTransactionRequest struct {
	UserID   int64 `json:"userId" binding:"required,min=1"`
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// UpdateTransactionStatusRequest settles or fails a pending transaction
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed"`
}

// TransactionResponse is a transaction plus optional gateway redirect info
type TransactionResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CourseID    int64   `json:"courseId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"paymentDate"`
	GatewayRef  *string `json:"gatewayRef,omitempty"`
	RedirectURL string  `json:"redirectUrl,omitempty"` // Gateway checkout URL when a gateway is configured
}
