package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent is published on payment lifecycle changes
type PaymentEvent struct {
	PaymentID           uuid.UUID     `json:"payment_id"`
	ScheduleID          uuid.UUID     `json:"schedule_id"`
	Amount              float64       `json:"amount"`
	Status              PaymentStatus `json:"status"`
	ProviderReferenceID string        `json:"provider_reference_id"`
	StatusCode          *string       `json:"status_code,omitempty"`
	Timestamp           time.Time     `json:"timestamp"`
}
