package models

// Well-known role IDs, seeded at startup. Role 1 is the privileged
// administrator role checked by the admin middleware.
const (
	RoleAdmin      int64 = 1
	RoleInstructor int64 = 2
	RoleStudent    int64 = 3
)

// TransactionStatus represents the lifecycle state of a payment transaction
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionPaid    TransactionStatus = "paid"
	TransactionFailed  TransactionStatus = "failed"
)

// EnrollmentStatus represents the state of a course enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)
