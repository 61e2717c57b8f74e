package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/models"
)

// CreateCompany validates and persists a company with its banking details
func (uc *PaymentUC) CreateCompany(ctx context.Context, company *models.Company) error {
	if err := validateCompany(company); err != nil {
		return err
	}
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.BankAccountType == "" {
		company.BankAccountType = "checking"
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	return uc.repo.CreateCompany(ctx, company)
}

// CreateLoan persists a loan for an existing company
func (uc *PaymentUC) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if loan.CompanyID == uuid.Nil {
		return apperrors.Validation("company_id is required")
	}
	if loan.Amount <= 0 {
		return apperrors.Validation("amount must be greater than zero")
	}
	if loan.TermDays <= 0 {
		return apperrors.Validation("term_days must be greater than zero")
	}
	if loan.ID == uuid.Nil {
		loan.ID = uuid.New()
	}
	if loan.Status == "" {
		loan.Status = models.LoanStatusActive
	}
	loan.CreatedAt = time.Now()

	return uc.repo.CreateLoan(ctx, loan)
}

// CreateSchedule persists a payment schedule for an existing loan
func (uc *PaymentUC) CreateSchedule(ctx context.Context, schedule *models.PaymentSchedule) error {
	if schedule.LoanID == uuid.Nil {
		return apperrors.Validation("loan_id is required")
	}
	if schedule.Amount <= 0 {
		return apperrors.Validation("amount must be greater than zero")
	}
	if schedule.ScheduledDate.IsZero() {
		return apperrors.Validation("scheduled_date is required")
	}
	if schedule.TransactionType != "" && !validTransactionTypes[schedule.TransactionType] {
		return apperrors.Validation("transaction_type must be debit or credit")
	}
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	return uc.repo.CreateSchedule(ctx, schedule)
}

// GetPayment returns a payment by id
func (uc *PaymentUC) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return uc.repo.GetPayment(ctx, id)
}

// ListProviderPayments passes an audit listing request through to the
// provider
func (uc *PaymentUC) ListProviderPayments(ctx context.Context, filter models.ListPaymentsFilter) (*models.ProviderPaymentList, error) {
	return uc.gw.ListPayments(ctx, filter)
}
