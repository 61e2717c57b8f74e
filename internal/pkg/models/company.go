package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a borrowing company and its funding bank account.
// BankRouting and BankAccount are stored encrypted at rest; the repository
// decrypts them on read.
type Company struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	BankRouting     string    `json:"bank_routing" db:"bank_routing"`
	BankAccount     string    `json:"bank_account" db:"bank_account"`
	BankAccountType string    `json:"bank_account_type" db:"bank_account_type"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
