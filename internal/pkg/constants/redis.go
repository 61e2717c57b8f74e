package constants

// Redis key formats
const (
	// Payments Service
	KeySubmitLock = "payments:submit:lock:%s" // Format: payments:submit:lock:{schedule_id}
)
