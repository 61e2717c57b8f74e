package models

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus represents the lifecycle status of a loan
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// Loan represents a loan issued to a company
type Loan struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CompanyID uuid.UUID  `json:"company_id" db:"company_id"`
	Amount    float64    `json:"amount" db:"amount"`
	TermDays  int        `json:"term_days" db:"term_days"`
	Status    LoanStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
