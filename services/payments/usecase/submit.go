package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/constants"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
)

// SubmitPayment submits the given schedule to the ACH provider, creating at
// most one in-flight payment per schedule. Calling it again while a payment
// is active returns the existing payment id without a new provider call.
//
// Validation rejections (bad banking details, provider input rejection) are
// modeled outcomes: they come back as SubmitResult{Success: false} with a nil
// error and leave the schedule untouched. Transport and store failures return
// an error so the caller can retry; the idempotency guard makes the retry
// safe.
func (uc *PaymentUC) SubmitPayment(ctx context.Context, scheduleID uuid.UUID) (*models.SubmitResult, error) {
	detail, err := uc.repo.GetScheduleDetail(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// Fast path before taking the lock
	if existing, err := uc.repo.GetActivePayment(ctx, scheduleID); err != nil {
		return nil, err
	} else if existing != nil {
		return &models.SubmitResult{Success: true, PaymentID: existing.ID}, nil
	}

	lockKey := fmt.Sprintf(constants.KeySubmitLock, scheduleID)
	lockTTL := time.Duration(uc.cfg.Reconcile.LockTTLSeconds) * time.Second
	acquired, err := uc.locker.SetNX(ctx, lockKey, "1", lockTTL)
	if err != nil {
		return nil, apperrors.Retriable(fmt.Errorf("failed to acquire submission lock: %w", err))
	}
	if !acquired {
		// Another submitter holds the lock. Observe its result if it has
		// already committed, otherwise tell the caller to retry.
		if existing, err := uc.repo.GetActivePayment(ctx, scheduleID); err != nil {
			return nil, err
		} else if existing != nil {
			return &models.SubmitResult{Success: true, PaymentID: existing.ID}, nil
		}
		return nil, apperrors.Retriable(fmt.Errorf("submission for schedule %s already in progress", scheduleID))
	}
	defer func() {
		if err := uc.locker.Delete(context.Background(), lockKey); err != nil {
			uc.logger.Warn("Failed to release submission lock",
				logger.String("schedule_id", scheduleID.String()),
				logger.Err(err))
		}
	}()

	// Re-check under the lock: a concurrent submitter may have committed
	// between the fast path and lock acquisition.
	if existing, err := uc.repo.GetActivePayment(ctx, scheduleID); err != nil {
		return nil, err
	} else if existing != nil {
		return &models.SubmitResult{Success: true, PaymentID: existing.ID}, nil
	}

	schedule := detail.Schedule
	if schedule.Status != models.ScheduleStatusScheduled && schedule.Status != models.ScheduleStatusFailed {
		return nil, apperrors.Invariant("schedule %s is %s but has no active payment", scheduleID, schedule.Status)
	}

	req := buildCreateRequest(detail)
	if err := validateCreatePayment(req); err != nil {
		return &models.SubmitResult{Success: false, Error: err.Error()}, nil
	}

	var resp *models.CreatePaymentResponse
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = uc.gw.CreatePayment(ctx, req)
		return callErr
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			uc.logger.Info("Provider rejected payment creation",
				logger.String("schedule_id", scheduleID.String()),
				logger.Err(err))
			return &models.SubmitResult{Success: false, Error: err.Error()}, nil
		}
		return nil, err
	}

	now := time.Now()
	payment := &models.Payment{
		ID:                  uuid.New(),
		PaymentScheduleID:   scheduleID,
		Amount:              schedule.Amount,
		Status:              models.PaymentStatusPending,
		ProviderReferenceID: resp.PaymentID,
		TraceNumber:         resp.TraceNumber,
		SettlementDate:      parseSettlementDate(resp.EstimatedSettlementDate),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uc.repo.CreatePaymentWithSchedule(ctx, payment, models.ScheduleStatusProcessing); err != nil {
		return nil, err
	}

	uc.logger.Info("Payment submitted",
		logger.String("payment_id", payment.ID.String()),
		logger.String("schedule_id", scheduleID.String()),
		logger.String("provider_reference_id", payment.ProviderReferenceID),
		logger.Float64("amount", payment.Amount))

	uc.publishEvent(ctx, constants.SubjectPaymentSubmitted, payment)

	return &models.SubmitResult{Success: true, PaymentID: payment.ID}, nil
}

// SubmitDuePayments submits every schedule whose scheduled date has arrived.
// Per-schedule failures are isolated and counted; they never abort the sweep.
func (uc *PaymentUC) SubmitDuePayments(ctx context.Context) (*models.SweepSummary, error) {
	due, err := uc.repo.GetDueSchedules(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	summary := &models.SweepSummary{TotalDue: len(due)}
	for _, schedule := range due {
		result, err := uc.SubmitPayment(ctx, schedule.ID)
		if err != nil {
			uc.logger.Warn("Due schedule submission failed",
				logger.String("schedule_id", schedule.ID.String()),
				logger.Err(err))
			summary.ErrorCount++
			continue
		}
		if !result.Success {
			uc.logger.Warn("Due schedule submission rejected",
				logger.String("schedule_id", schedule.ID.String()),
				logger.String("error", result.Error))
			summary.ErrorCount++
			continue
		}
		summary.SubmittedCount++
	}

	uc.logger.Info("Due schedule sweep finished",
		logger.Int("total_due", summary.TotalDue),
		logger.Int("submitted", summary.SubmittedCount),
		logger.Int("errors", summary.ErrorCount))

	return summary, nil
}

// buildCreateRequest maps schedule, loan and company details onto the
// provider's creation payload. The client reference id is derived from the
// schedule id so provider-side retries deduplicate as well.
func buildCreateRequest(detail *models.ScheduleDetail) *models.CreatePaymentRequest {
	accountType := detail.Company.BankAccountType
	if accountType == "" {
		accountType = "checking"
	}
	transactionType := detail.Schedule.TransactionType
	if transactionType == "" {
		transactionType = "debit"
	}

	return &models.CreatePaymentRequest{
		Amount:            detail.Schedule.Amount,
		AccountType:       accountType,
		TransactionType:   transactionType,
		RoutingNumber:     detail.Company.BankRouting,
		AccountNumber:     detail.Company.BankAccount,
		AccountHolderName: detail.Company.Name,
		Memo:              fmt.Sprintf("Loan payment %s", detail.Schedule.ID),
		ClientReferenceID: "SCHED-" + detail.Schedule.ID.String(),
	}
}

func parseSettlementDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// publishEvent publishes a lifecycle event, best effort
func (uc *PaymentUC) publishEvent(ctx context.Context, subject string, payment *models.Payment) {
	event := &models.PaymentEvent{
		PaymentID:           payment.ID,
		ScheduleID:          payment.PaymentScheduleID,
		Amount:              payment.Amount,
		Status:              payment.Status,
		ProviderReferenceID: payment.ProviderReferenceID,
		StatusCode:          payment.StatusCode,
		Timestamp:           time.Now(),
	}
	if err := uc.gw.PublishPaymentEvent(ctx, subject, event); err != nil {
		uc.logger.Warn("Failed to publish payment event",
			logger.String("subject", subject),
			logger.String("payment_id", payment.ID.String()),
			logger.Err(err))
	}
}
