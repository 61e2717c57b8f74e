package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintara/loanpay/internal/pkg/models"
)

// PublishPaymentEvent publishes a payment lifecycle event. Callers treat
// publish failures as best-effort and never fail the payment operation on
// them.
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	return nil
}
