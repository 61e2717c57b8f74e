package payments

import (
	"context"

	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fintara/loanpay/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// submission engine
	SubmitPayment(ctx context.Context, scheduleID uuid.UUID) (*models.SubmitResult, error)
	SubmitDuePayments(ctx context.Context) (*models.SweepSummary, error)

	// reconciliation engine
	ReconcilePayments(ctx context.Context) (*models.ReconcileSummary, error)

	// ledger seeding and lookups
	CreateCompany(ctx context.Context, company *models.Company) error
	CreateLoan(ctx context.Context, loan *models.Loan) error
	CreateSchedule(ctx context.Context, schedule *models.PaymentSchedule) error
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)

	// provider audit listing
	ListProviderPayments(ctx context.Context, filter models.ListPaymentsFilter) (*models.ProviderPaymentList, error)
}
