package payments

import (
	"context"

	"github.com/fintara/loanpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fintara/loanpay/services/payments PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// ACHQ HTTP Gateway
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, error)
	GetPaymentStatus(ctx context.Context, providerPaymentID string) (*models.ProviderPaymentStatus, error)
	ListPayments(ctx context.Context, filter models.ListPaymentsFilter) (*models.ProviderPaymentList, error)

	// NATS Gateway
	PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error
}
