package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the lifecycle status of an ACH payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusReturned   PaymentStatus = "returned"
)

// IsTerminal reports whether the status admits no further transitions
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusReturned:
		return true
	}
	return false
}

// Payment represents a single submission attempt against a payment schedule.
// Rows are append-only: a failed attempt is retained and superseded by a new
// row on resubmission. ProviderReferenceID is assigned at creation and never
// mutated; TraceNumber is set once the provider begins processing.
type Payment struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	PaymentScheduleID   uuid.UUID     `json:"payment_schedule_id" db:"payment_schedule_id"`
	Amount              float64       `json:"amount" db:"amount"`
	Status              PaymentStatus `json:"status" db:"status"`
	ProviderReferenceID string        `json:"provider_reference_id" db:"provider_reference_id"`
	TraceNumber         *string       `json:"trace_number,omitempty" db:"trace_number"`
	StatusCode          *string       `json:"status_code,omitempty" db:"status_code"`
	SettlementDate      *time.Time    `json:"settlement_date,omitempty" db:"settlement_date"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// SubmitResult is the outcome of submitting a schedule to the provider
type SubmitResult struct {
	Success   bool      `json:"success"`
	PaymentID uuid.UUID `json:"payment_id,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// ReconcileSummary aggregates the outcome of one reconciliation run.
// StatusCounts covers all payments in the store, not only the rows touched
// by the run.
type ReconcileSummary struct {
	TotalChecked int            `json:"total_checked"`
	UpdatedCount int            `json:"updated_count"`
	ErrorCount   int            `json:"error_count"`
	StatusCounts map[string]int `json:"status_counts"`
}

// SweepSummary aggregates the outcome of one due-schedule submission sweep
type SweepSummary struct {
	TotalDue       int `json:"total_due"`
	SubmittedCount int `json:"submitted_count"`
	ErrorCount     int `json:"error_count"`
}

// PaymentUpdate carries one reconciled status change to be applied to a
// payment row and its derived schedule row in a single transaction.
// ExpectedStatus is the status the row held when it was read; the update
// must not apply if another writer has moved it since.
type PaymentUpdate struct {
	PaymentID      uuid.UUID
	ScheduleID     uuid.UUID
	ExpectedStatus PaymentStatus
	NewStatus      PaymentStatus
	ScheduleStatus ScheduleStatus
	TraceNumber    *string
	StatusCode     *string
	SettlementDate *time.Time
}
