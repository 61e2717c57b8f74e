package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/constants"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/fintara/loanpay/services/payments/mocks"
)

// fakeLocker is an in-memory SubmitLocker
type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (f *fakeLocker) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *fakeLocker) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, key)
	return nil
}

func newTestUC(t *testing.T, ctrl *gomock.Controller, cfg *models.Config) (*PaymentUC, *mocks.MockLedgerRepo, *mocks.MockPaymentGW, *fakeLocker) {
	t.Helper()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	locker := newFakeLocker()

	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, nil)
	require.NoError(t, err)

	return NewPaymentUC(cfg, mockRepo, mockGW, locker, zapLogger), mockRepo, mockGW, locker
}

func makeScheduleDetail(scheduleID uuid.UUID) *models.ScheduleDetail {
	companyID := uuid.New()
	loanID := uuid.New()
	return &models.ScheduleDetail{
		Schedule: models.PaymentSchedule{
			ID:              scheduleID,
			LoanID:          loanID,
			Amount:          1000.00,
			ScheduledDate:   time.Now().AddDate(0, 0, -1),
			Status:          models.ScheduleStatusScheduled,
			TransactionType: "debit",
		},
		Loan: models.Loan{
			ID:        loanID,
			CompanyID: companyID,
			Amount:    12000.00,
			TermDays:  365,
			Status:    models.LoanStatusActive,
		},
		Company: models.Company{
			ID:              companyID,
			Name:            "Acme Widgets Inc",
			BankRouting:     "021000021",
			BankAccount:     "123456789",
			BankAccountType: "checking",
		},
	}
}

func TestSubmitPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()
	detail := makeScheduleDetail(scheduleID)

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(detail, nil)
	// No active payment, checked before and after lock acquisition
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(nil, nil).Times(2)

	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, error) {
			assert.Equal(t, 1000.00, req.Amount)
			assert.Equal(t, "checking", req.AccountType)
			assert.Equal(t, "debit", req.TransactionType)
			assert.Equal(t, "021000021", req.RoutingNumber)
			assert.Equal(t, "SCHED-"+scheduleID.String(), req.ClientReferenceID)

			return &models.CreatePaymentResponse{
				Success:                 true,
				PaymentID:               "ACHQ-xyz-123",
				Status:                  "pending",
				EstimatedSettlementDate: "2026-09-02",
			}, nil
		})

	mockRepo.EXPECT().
		CreatePaymentWithSchedule(gomock.Any(), gomock.Any(), models.ScheduleStatusProcessing).
		DoAndReturn(func(_ context.Context, payment *models.Payment, _ models.ScheduleStatus) error {
			assert.Equal(t, scheduleID, payment.PaymentScheduleID)
			assert.Equal(t, models.PaymentStatusPending, payment.Status)
			assert.Equal(t, "ACHQ-xyz-123", payment.ProviderReferenceID)
			assert.Equal(t, 1000.00, payment.Amount)
			require.NotNil(t, payment.SettlementDate)
			assert.Equal(t, "2026-09-02", payment.SettlementDate.Format("2006-01-02"))
			return nil
		})

	mockGW.EXPECT().
		PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentSubmitted, gomock.Any()).
		Return(nil)

	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEqual(t, uuid.Nil, result.PaymentID)
}

func TestSubmitPayment_IdempotentOnActivePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _ := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()
	existing := &models.Payment{
		ID:                uuid.New(),
		PaymentScheduleID: scheduleID,
		Status:            models.PaymentStatusProcessing,
	}

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(makeScheduleDetail(scheduleID), nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(existing, nil)

	// Two calls in sequence observe the same payment id and no second
	// provider call is made
	result, err := uc.SubmitPayment(context.Background(), scheduleID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, existing.ID, result.PaymentID)

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(makeScheduleDetail(scheduleID), nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(existing, nil)

	again, err := uc.SubmitPayment(context.Background(), scheduleID)
	require.NoError(t, err)
	assert.True(t, again.Success)
	assert.Equal(t, result.PaymentID, again.PaymentID)
}

func TestSubmitPayment_InvalidRoutingNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _ := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()
	detail := makeScheduleDetail(scheduleID)
	detail.Company.BankRouting = "12345678" // 8 digits

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(detail, nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(nil, nil).Times(2)

	// No provider call, no payment row
	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "routing_number")
}

func TestSubmitPayment_ProviderRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(makeScheduleDetail(scheduleID), nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(nil, nil).Times(2)

	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation("Invalid account number"))

	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Invalid account number")
}

func TestSubmitPayment_ProviderTransportErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{}
	cfg.Provider.MaxRetries = 1
	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, cfg)

	scheduleID := uuid.New()

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(makeScheduleDetail(scheduleID), nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(nil, nil).Times(2)

	// Retried once, then surfaced to the caller; schedule untouched
	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Retriable(assert.AnError)).
		Times(2)

	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsRetriable(err))
}

func TestSubmitPayment_LockContentionObservesWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, locker := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()
	winner := &models.Payment{
		ID:                uuid.New(),
		PaymentScheduleID: scheduleID,
		Status:            models.PaymentStatusPending,
	}

	// Another submitter holds the lock and commits while we wait
	_, err := locker.SetNX(context.Background(), fmt.Sprintf(constants.KeySubmitLock, scheduleID), "1", time.Minute)
	require.NoError(t, err)

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), scheduleID).Return(makeScheduleDetail(scheduleID), nil)
	gomock.InOrder(
		mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(nil, nil),
		mockRepo.EXPECT().GetActivePayment(gomock.Any(), scheduleID).Return(winner, nil),
	)

	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, winner.ID, result.PaymentID)
}

func TestSubmitPayment_ScheduleNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _ := newTestUC(t, ctrl, &models.Config{})

	scheduleID := uuid.New()
	mockRepo.EXPECT().
		GetScheduleDetail(gomock.Any(), scheduleID).
		Return(nil, apperrors.NotFound("schedule %s", scheduleID))

	result, err := uc.SubmitPayment(context.Background(), scheduleID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSubmitDuePayments_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, &models.Config{})

	goodID := uuid.New()
	badID := uuid.New()
	due := []models.PaymentSchedule{
		{ID: goodID, Status: models.ScheduleStatusScheduled},
		{ID: badID, Status: models.ScheduleStatusScheduled},
	}

	mockRepo.EXPECT().GetDueSchedules(gomock.Any(), gomock.Any()).Return(due, nil)

	mockRepo.EXPECT().GetScheduleDetail(gomock.Any(), goodID).Return(makeScheduleDetail(goodID), nil)
	mockRepo.EXPECT().GetActivePayment(gomock.Any(), goodID).Return(nil, nil).Times(2)
	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(&models.CreatePaymentResponse{Success: true, PaymentID: "ACHQ-1", Status: "pending"}, nil)
	mockRepo.EXPECT().CreatePaymentWithSchedule(gomock.Any(), gomock.Any(), models.ScheduleStatusProcessing).Return(nil)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentSubmitted, gomock.Any()).Return(nil)

	mockRepo.EXPECT().
		GetScheduleDetail(gomock.Any(), badID).
		Return(nil, apperrors.NotFound("schedule %s", badID))

	summary, err := uc.SubmitDuePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalDue)
	assert.Equal(t, 1, summary.SubmittedCount)
	assert.Equal(t, 1, summary.ErrorCount)
}
