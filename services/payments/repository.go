package payments

import (
	"context"
	"time"

	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fintara/loanpay/services/payments LedgerRepo

// LedgerRepo defines the transactional record store for companies, loans,
// payment schedules and payments
type LedgerRepo interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	CreateLoan(ctx context.Context, loan *models.Loan) error
	CreateSchedule(ctx context.Context, schedule *models.PaymentSchedule) error
	GetSchedule(ctx context.Context, id uuid.UUID) (*models.PaymentSchedule, error)

	// GetScheduleDetail returns a schedule joined with its loan and company,
	// banking fields decrypted, as needed for submission.
	GetScheduleDetail(ctx context.Context, id uuid.UUID) (*models.ScheduleDetail, error)

	// GetDueSchedules returns schedules in status scheduled whose
	// scheduled_date is on or before asOf.
	GetDueSchedules(ctx context.Context, asOf time.Time) ([]models.PaymentSchedule, error)

	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)

	// GetActivePayment returns the most recent non-failed, non-returned
	// payment for the schedule, or nil when every attempt has failed.
	GetActivePayment(ctx context.Context, scheduleID uuid.UUID) (*models.Payment, error)

	GetPaymentsByStatus(ctx context.Context, statuses []models.PaymentStatus) ([]models.Payment, error)

	// CreatePaymentWithSchedule inserts the payment row and moves its
	// schedule to the given status in one transaction.
	CreatePaymentWithSchedule(ctx context.Context, payment *models.Payment, scheduleStatus models.ScheduleStatus) error

	// ApplyPaymentUpdate applies one reconciled status change to the payment
	// row and its schedule row in one transaction, guarded by the payment's
	// expected status. Returns false when the guard did not match (another
	// writer already moved the row).
	ApplyPaymentUpdate(ctx context.Context, update *models.PaymentUpdate) (bool, error)

	// CountPaymentsByStatus aggregates payment counts per status across the
	// whole store.
	CountPaymentsByStatus(ctx context.Context) (map[string]int, error)
}
