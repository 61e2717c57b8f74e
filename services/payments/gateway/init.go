package gateway

import (
	"time"

	"github.com/fintara/loanpay/internal/pkg/circuitbreaker"
	httpclient "github.com/fintara/loanpay/internal/pkg/http"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
	natspkg "github.com/fintara/loanpay/internal/pkg/nats"
)

// PaymentGW talks to the ACHQ provider API over HTTP and publishes payment
// lifecycle events to NATS. Provider calls run through a circuit breaker so
// a dead provider fails fast instead of tying up reconciliation workers.
type PaymentGW struct {
	client     *httpclient.Client
	apiKey     string
	breaker    *circuitbreaker.CircuitBreaker
	natsClient *natspkg.Client
	logger     *logger.ZapLogger
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(cfg *models.Config, natsClient *natspkg.Client, l *logger.ZapLogger) *PaymentGW {
	timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second

	return &PaymentGW{
		client:     httpclient.NewClient(cfg.Provider.BaseURL, timeout),
		apiKey:     cfg.Provider.APIKey,
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig("achq"), l),
		natsClient: natsClient,
		logger:     l,
	}
}
