package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus represents the lifecycle status of a payment schedule.
// It is a pure projection of the schedule's active payment status and is
// never written independently of it.
type ScheduleStatus string

const (
	ScheduleStatusScheduled  ScheduleStatus = "scheduled"
	ScheduleStatusProcessing ScheduleStatus = "processing"
	ScheduleStatusCompleted  ScheduleStatus = "completed"
	ScheduleStatusFailed     ScheduleStatus = "failed"
)

// PaymentSchedule represents a single scheduled repayment on a loan.
// TransactionType is the ACH direction used when the schedule is submitted,
// debit by default.
type PaymentSchedule struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	LoanID          uuid.UUID      `json:"loan_id" db:"loan_id"`
	Amount          float64        `json:"amount" db:"amount"`
	ScheduledDate   time.Time      `json:"scheduled_date" db:"scheduled_date"`
	Status          ScheduleStatus `json:"status" db:"status"`
	TransactionType string         `json:"transaction_type" db:"transaction_type"`
}

// ScheduleDetail is a payment schedule joined with the owning loan and
// company banking details, as needed for submission
type ScheduleDetail struct {
	Schedule PaymentSchedule
	Loan     Loan
	Company  Company
}
