package usecase

import (
	"context"
	"sync"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/constants"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
)

// ReconcilePayments polls the provider for every open payment and folds the
// reported status into the ledger. Per-payment provider failures and
// invariant violations are isolated and counted; a store failure cancels the
// remaining workers and propagates, with already-committed updates retained
// and reflected in the partial summary.
func (uc *PaymentUC) ReconcilePayments(ctx context.Context) (*models.ReconcileSummary, error) {
	open, err := uc.repo.GetPaymentsByStatus(ctx, []models.PaymentStatus{
		models.PaymentStatusPending,
		models.PaymentStatusProcessing,
	})
	if err != nil {
		return nil, err
	}

	summary := &models.ReconcileSummary{}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workerCount := uc.cfg.Reconcile.WorkerCount
	if workerCount <= 0 {
		workerCount = 5
	}

	jobs := make(chan models.Payment)
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		fatalErr error
	)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for payment := range jobs {
				updated, err := uc.reconcileOne(runCtx, &payment)

				mu.Lock()
				summary.TotalChecked++
				switch {
				case err != nil && apperrors.IsStore(err):
					summary.ErrorCount++
					if fatalErr == nil {
						fatalErr = err
					}
					cancel()
				case err != nil:
					summary.ErrorCount++
				case updated:
					summary.UpdatedCount++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, payment := range open {
		select {
		case <-runCtx.Done():
			break feed
		case jobs <- payment:
		}
	}
	close(jobs)
	wg.Wait()

	if counts, err := uc.repo.CountPaymentsByStatus(ctx); err != nil {
		if fatalErr == nil {
			fatalErr = err
		}
	} else {
		summary.StatusCounts = counts
	}

	uc.logger.Info("Reconciliation run finished",
		logger.Int("total_checked", summary.TotalChecked),
		logger.Int("updated", summary.UpdatedCount),
		logger.Int("errors", summary.ErrorCount))

	if fatalErr != nil {
		return summary, fatalErr
	}
	return summary, nil
}

// reconcileOne polls the provider for one payment and applies the reported
// transition. Returns whether the ledger was updated.
func (uc *PaymentUC) reconcileOne(ctx context.Context, payment *models.Payment) (bool, error) {
	status, err := uc.gw.GetPaymentStatus(ctx, payment.ProviderReferenceID)
	if err != nil {
		uc.logger.Warn("Provider status lookup failed",
			logger.String("payment_id", payment.ID.String()),
			logger.String("provider_reference_id", payment.ProviderReferenceID),
			logger.Err(err))
		return false, err
	}

	next := models.PaymentStatus(status.Status)
	if err := validateTransition(payment.Status, next); err != nil {
		// A regression reported by the provider is a data-integrity problem.
		// The row is left untouched for investigation, never auto-corrected.
		uc.logger.Error("Provider reported a disallowed status transition",
			logger.String("payment_id", payment.ID.String()),
			logger.String("current_status", string(payment.Status)),
			logger.String("provider_status", status.Status),
			logger.Err(err))
		return false, err
	}
	if next == payment.Status {
		return false, nil
	}

	update := &models.PaymentUpdate{
		PaymentID:      payment.ID,
		ScheduleID:     payment.PaymentScheduleID,
		ExpectedStatus: payment.Status,
		NewStatus:      next,
		ScheduleStatus: scheduleStatusFor(next),
		TraceNumber:    status.TraceNumber,
		StatusCode:     status.StatusCode,
	}
	if status.SettlementDate != nil {
		update.SettlementDate = parseSettlementDate(*status.SettlementDate)
	}

	applied, err := uc.repo.ApplyPaymentUpdate(ctx, update)
	if err != nil {
		return false, err
	}
	if !applied {
		// Another worker moved the row first; its result stands.
		uc.logger.Debug("Payment already updated concurrently",
			logger.String("payment_id", payment.ID.String()))
		return false, nil
	}

	uc.logger.Info("Payment status updated",
		logger.String("payment_id", payment.ID.String()),
		logger.String("from", string(payment.Status)),
		logger.String("to", string(next)))

	if next.IsTerminal() {
		settled := *payment
		settled.Status = next
		settled.StatusCode = status.StatusCode

		subject := constants.SubjectPaymentSettled
		if next != models.PaymentStatusCompleted {
			subject = constants.SubjectPaymentFailed
		}
		uc.publishEvent(ctx, subject, &settled)
	}

	return true, nil
}
