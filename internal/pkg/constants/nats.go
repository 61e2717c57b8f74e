package constants

// NATS Subjects
const (
	// Payment lifecycle
	SubjectPaymentSubmitted = "payments.submitted"
	SubjectPaymentSettled   = "payments.settled"
	SubjectPaymentFailed    = "payments.failed"
)
