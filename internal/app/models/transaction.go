package models

import "time"

// Transaction records a course purchase.
type Transaction struct {
	ID          int64             `json:"id" db:"id"`
	UserID      int64             `json:"userId" db:"user_id"`
	CourseID    int64             `json:"courseId" db:"course_id"`
	Amount      float64           `json:"amount" db:"amount"` // Stored as NUMERIC(10,2)
	PaymentDate time.Time         `json:"paymentDate" db:"payment_date"`
	Status      TransactionStatus `json:"status" db:"status"`
	GatewayRef  *string           `json:"gatewayRef,omitempty" db:"gateway_ref"` // Payment gateway order reference (nullable)
}
