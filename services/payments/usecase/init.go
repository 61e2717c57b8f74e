package usecase

import (
	"context"
	"time"

	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/fintara/loanpay/internal/pkg/retry"
	"github.com/fintara/loanpay/services/payments"
)

// SubmitLocker is the distributed lock surface used to serialize concurrent
// submissions per schedule. Satisfied by database.RedisClient.
type SubmitLocker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// PaymentUC implements the payments usecase
type PaymentUC struct {
	cfg     *models.Config
	repo    payments.LedgerRepo
	gw      payments.PaymentGW
	locker  SubmitLocker
	retrier *retry.Retrier
	logger  *logger.ZapLogger
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(
	cfg *models.Config,
	repo payments.LedgerRepo,
	gw payments.PaymentGW,
	locker SubmitLocker,
	l *logger.ZapLogger,
) *PaymentUC {
	retryCfg := retry.DefaultConfig()
	if cfg.Provider.MaxRetries > 0 {
		retryCfg.MaxRetries = cfg.Provider.MaxRetries
	}

	return &PaymentUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		locker:  locker,
		retrier: retry.New(retryCfg, l),
		logger:  l,
	}
}
