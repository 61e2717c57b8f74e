package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/google/uuid"
)

// CreateCompany creates a new company with encrypted banking details
func (r *LedgerRepo) CreateCompany(ctx context.Context, company *models.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	encRouting, err := r.cipher.Encrypt(company.BankRouting)
	if err != nil {
		return fmt.Errorf("failed to encrypt bank routing: %w", err)
	}
	encAccount, err := r.cipher.Encrypt(company.BankAccount)
	if err != nil {
		return fmt.Errorf("failed to encrypt bank account: %w", err)
	}

	query := `
		INSERT INTO companies (id, name, bank_routing, bank_account,
			bank_account_type, created_at, updated_at
		) VALUES (:id, :name, :bank_routing, :bank_account,
			:bank_account_type, :created_at, :updated_at)
	`
	row := map[string]interface{}{
		"id":                company.ID,
		"name":              company.Name,
		"bank_routing":      encRouting,
		"bank_account":      encAccount,
		"bank_account_type": company.BankAccountType,
		"created_at":        company.CreatedAt,
		"updated_at":        company.UpdatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return apperrors.Store(fmt.Errorf("failed to insert company: %w", err))
	}

	return nil
}

// GetCompany retrieves a company by id with banking details decrypted
func (r *LedgerRepo) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `
		SELECT id, name, bank_routing, bank_account, bank_account_type,
			created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var company models.Company
	err := r.db.GetContext(ctx, &company, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("company %s", id)
		}
		return nil, apperrors.Store(fmt.Errorf("failed to get company: %w", err))
	}

	if err := r.decryptBankDetails(&company); err != nil {
		return nil, err
	}

	return &company, nil
}

// decryptBankDetails decrypts the banking columns in place
func (r *LedgerRepo) decryptBankDetails(company *models.Company) error {
	routing, err := r.cipher.Decrypt(company.BankRouting)
	if err != nil {
		return fmt.Errorf("failed to decrypt bank routing: %w", err)
	}
	account, err := r.cipher.Decrypt(company.BankAccount)
	if err != nil {
		return fmt.Errorf("failed to decrypt bank account: %w", err)
	}
	company.BankRouting = routing
	company.BankAccount = account
	return nil
}
