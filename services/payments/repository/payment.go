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
	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, payment_schedule_id, amount, status, provider_reference_id,
	trace_number, status_code, settlement_date, created_at, updated_at`

// GetPayment retrieves a payment by id
func (r *LedgerRepo) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment %s", id)
		}
		return nil, apperrors.Store(fmt.Errorf("failed to get payment: %w", err))
	}

	return &payment, nil
}

// GetActivePayment returns the most recent non-failed, non-returned payment
// for the schedule, or nil when no such attempt exists
func (r *LedgerRepo) GetActivePayment(ctx context.Context, scheduleID uuid.UUID) (*models.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE payment_schedule_id = $1 AND status NOT IN ($2, $3)
		ORDER BY created_at DESC
		LIMIT 1
	`, paymentColumns)

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query,
		scheduleID, models.PaymentStatusFailed, models.PaymentStatusReturned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Store(fmt.Errorf("failed to get active payment: %w", err))
	}

	return &payment, nil
}

// GetPaymentsByStatus returns all payments whose status is in the given set
func (r *LedgerRepo) GetPaymentsByStatus(ctx context.Context, statuses []models.PaymentStatus) ([]models.Payment, error) {
	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM payments WHERE status IN (?) ORDER BY created_at`, paymentColumns),
		statuses,
	)
	if err != nil {
		return nil, apperrors.Store(fmt.Errorf("failed to build status query: %w", err))
	}

	var payments []models.Payment
	err = r.db.SelectContext(ctx, &payments, r.db.Rebind(query), args...)
	if err != nil {
		return nil, apperrors.Store(fmt.Errorf("failed to get payments by status: %w", err))
	}

	return payments, nil
}

// CreatePaymentWithSchedule inserts the payment row and advances its schedule
// status in one transaction; both commit together or neither does
func (r *LedgerRepo) CreatePaymentWithSchedule(ctx context.Context, payment *models.Payment, scheduleStatus models.ScheduleStatus) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Store(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (id, payment_schedule_id, amount, status,
			provider_reference_id, trace_number, status_code, settlement_date,
			created_at, updated_at
		) VALUES (:id, :payment_schedule_id, :amount, :status,
			:provider_reference_id, :trace_number, :status_code, :settlement_date,
			:created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, payment); err != nil {
		return apperrors.Store(fmt.Errorf("failed to insert payment: %w", err))
	}

	scheduleQuery := `UPDATE payment_schedules SET status = $1 WHERE id = $2`
	if _, err = tx.ExecContext(ctx, scheduleQuery, scheduleStatus, payment.PaymentScheduleID); err != nil {
		return apperrors.Store(fmt.Errorf("failed to update schedule status: %w", err))
	}

	if err = tx.Commit(); err != nil {
		return apperrors.Store(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// ApplyPaymentUpdate applies one reconciled status change to the payment row
// and its derived schedule row in one transaction. The payment update is
// guarded by the status the caller read; zero rows affected means another
// writer moved the row first and the whole unit is abandoned.
func (r *LedgerRepo) ApplyPaymentUpdate(ctx context.Context, update *models.PaymentUpdate) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, apperrors.Store(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	query := `
		UPDATE payments
		SET status = $1,
			trace_number = COALESCE($2, trace_number),
			status_code = COALESCE($3, status_code),
			settlement_date = COALESCE($4, settlement_date),
			updated_at = NOW()
		WHERE id = $5 AND status = $6
	`
	result, err := tx.ExecContext(ctx, query,
		update.NewStatus,
		update.TraceNumber,
		update.StatusCode,
		update.SettlementDate,
		update.PaymentID,
		update.ExpectedStatus,
	)
	if err != nil {
		return false, apperrors.Store(fmt.Errorf("failed to update payment: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Store(fmt.Errorf("failed to get rows affected: %w", err))
	}
	if rows == 0 {
		// Lost the race against a concurrent reconciliation worker.
		return false, nil
	}

	scheduleQuery := `UPDATE payment_schedules SET status = $1 WHERE id = $2`
	if _, err = tx.ExecContext(ctx, scheduleQuery, update.ScheduleStatus, update.ScheduleID); err != nil {
		return false, apperrors.Store(fmt.Errorf("failed to update schedule status: %w", err))
	}

	if err = tx.Commit(); err != nil {
		return false, apperrors.Store(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return true, nil
}

// CountPaymentsByStatus aggregates payment counts per status across the
// whole store
func (r *LedgerRepo) CountPaymentsByStatus(ctx context.Context) (map[string]int, error) {
	query := `SELECT status, COUNT(*) AS count FROM payments GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Store(fmt.Errorf("failed to count payments: %w", err))
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperrors.Store(fmt.Errorf("failed to scan status count: %w", err))
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Store(fmt.Errorf("failed to iterate status counts: %w", err))
	}

	return counts, nil
}
