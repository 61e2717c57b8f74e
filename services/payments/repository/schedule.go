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

// CreateLoan creates a new loan
func (r *LedgerRepo) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == uuid.Nil {
		loan.ID = uuid.New()
	}
	if loan.Status == "" {
		loan.Status = models.LoanStatusActive
	}
	loan.CreatedAt = time.Now()

	query := `
		INSERT INTO loans (id, company_id, amount, term_days, status, created_at)
		VALUES (:id, :company_id, :amount, :term_days, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, loan); err != nil {
		return apperrors.Store(fmt.Errorf("failed to insert loan: %w", err))
	}

	return nil
}

// CreateSchedule creates a new payment schedule
func (r *LedgerRepo) CreateSchedule(ctx context.Context, schedule *models.PaymentSchedule) error {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	if schedule.Status == "" {
		schedule.Status = models.ScheduleStatusScheduled
	}
	if schedule.TransactionType == "" {
		schedule.TransactionType = "debit"
	}

	query := `
		INSERT INTO payment_schedules (id, loan_id, amount, scheduled_date,
			status, transaction_type
		) VALUES (:id, :loan_id, :amount, :scheduled_date, :status, :transaction_type)
	`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return apperrors.Store(fmt.Errorf("failed to insert payment schedule: %w", err))
	}

	return nil
}

// GetSchedule retrieves a payment schedule by id
func (r *LedgerRepo) GetSchedule(ctx context.Context, id uuid.UUID) (*models.PaymentSchedule, error) {
	query := `
		SELECT id, loan_id, amount, scheduled_date, status, transaction_type
		FROM payment_schedules
		WHERE id = $1
	`

	var schedule models.PaymentSchedule
	err := r.db.GetContext(ctx, &schedule, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment schedule %s", id)
		}
		return nil, apperrors.Store(fmt.Errorf("failed to get payment schedule: %w", err))
	}

	return &schedule, nil
}

// GetScheduleDetail retrieves a schedule joined with its loan and company,
// banking fields decrypted
func (r *LedgerRepo) GetScheduleDetail(ctx context.Context, id uuid.UUID) (*models.ScheduleDetail, error) {
	query := `
		SELECT
			ps.id, ps.loan_id, ps.amount, ps.scheduled_date, ps.status, ps.transaction_type,
			l.id AS l_id, l.company_id AS l_company_id, l.amount AS l_amount,
			l.term_days AS l_term_days, l.status AS l_status, l.created_at AS l_created_at,
			c.id AS c_id, c.name AS c_name, c.bank_routing AS c_bank_routing,
			c.bank_account AS c_bank_account, c.bank_account_type AS c_bank_account_type,
			c.created_at AS c_created_at, c.updated_at AS c_updated_at
		FROM payment_schedules ps
		JOIN loans l ON l.id = ps.loan_id
		JOIN companies c ON c.id = l.company_id
		WHERE ps.id = $1
	`

	var detail models.ScheduleDetail
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.Schedule.ID,
		&detail.Schedule.LoanID,
		&detail.Schedule.Amount,
		&detail.Schedule.ScheduledDate,
		&detail.Schedule.Status,
		&detail.Schedule.TransactionType,
		&detail.Loan.ID,
		&detail.Loan.CompanyID,
		&detail.Loan.Amount,
		&detail.Loan.TermDays,
		&detail.Loan.Status,
		&detail.Loan.CreatedAt,
		&detail.Company.ID,
		&detail.Company.Name,
		&detail.Company.BankRouting,
		&detail.Company.BankAccount,
		&detail.Company.BankAccountType,
		&detail.Company.CreatedAt,
		&detail.Company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment schedule %s", id)
		}
		return nil, apperrors.Store(fmt.Errorf("failed to get schedule detail: %w", err))
	}

	if err := r.decryptBankDetails(&detail.Company); err != nil {
		return nil, err
	}

	return &detail, nil
}

// GetDueSchedules returns schedules still in status scheduled whose
// scheduled_date is on or before asOf
func (r *LedgerRepo) GetDueSchedules(ctx context.Context, asOf time.Time) ([]models.PaymentSchedule, error) {
	query := `
		SELECT id, loan_id, amount, scheduled_date, status, transaction_type
		FROM payment_schedules
		WHERE status = $1 AND scheduled_date <= $2
		ORDER BY scheduled_date
	`

	var schedules []models.PaymentSchedule
	err := r.db.SelectContext(ctx, &schedules, query, models.ScheduleStatusScheduled, asOf)
	if err != nil {
		return nil, apperrors.Store(fmt.Errorf("failed to get due schedules: %w", err))
	}

	return schedules, nil
}
