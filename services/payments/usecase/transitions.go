package usecase

import (
	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/models"
)

// statusRank orders payment statuses along the lifecycle. Transitions may
// only move forward; terminal statuses share a rank so a settled payment can
// never be rewritten as a different outcome.
var statusRank = map[models.PaymentStatus]int{
	models.PaymentStatusPending:    0,
	models.PaymentStatusProcessing: 1,
	models.PaymentStatusCompleted:  2,
	models.PaymentStatusFailed:     2,
	models.PaymentStatusReturned:   2,
}

// validateTransition checks that moving a payment from current to next is a
// legal forward step. The provider may report a terminal outcome without the
// processing stage ever being observed, so pending may jump straight to any
// terminal status.
func validateTransition(current, next models.PaymentStatus) error {
	currentRank, ok := statusRank[current]
	if !ok {
		return apperrors.Invariant("unknown payment status %q", current)
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return apperrors.Invariant("unknown payment status %q", next)
	}

	if current == next {
		return nil
	}
	if current.IsTerminal() {
		return apperrors.Invariant("payment is already %s, cannot move to %s", current, next)
	}
	if nextRank < currentRank {
		return apperrors.Invariant("payment status cannot regress from %s to %s", current, next)
	}

	return nil
}

// scheduleStatusFor projects a payment status onto the owning schedule.
// Failed and returned payments both leave the schedule failed so it can be
// resubmitted.
func scheduleStatusFor(status models.PaymentStatus) models.ScheduleStatus {
	switch status {
	case models.PaymentStatusCompleted:
		return models.ScheduleStatusCompleted
	case models.PaymentStatusFailed, models.PaymentStatusReturned:
		return models.ScheduleStatusFailed
	default:
		return models.ScheduleStatusProcessing
	}
}
