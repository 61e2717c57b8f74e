package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/constants"
	"github.com/fintara/loanpay/internal/pkg/models"
)

func reconcileConfig(workers int) *models.Config {
	cfg := &models.Config{}
	cfg.Reconcile.WorkerCount = workers
	return cfg
}

func openPayment(status models.PaymentStatus) models.Payment {
	return models.Payment{
		ID:                  uuid.New(),
		PaymentScheduleID:   uuid.New(),
		Amount:              1000.00,
		Status:              status,
		ProviderReferenceID: "ACHQ-" + uuid.NewString(),
	}
}

func TestReconcilePayments_PendingToProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusPending)
	trace := "TRC-0001"

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), []models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusProcessing}).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{
			PaymentID:   payment.ProviderReferenceID,
			Status:      "processing",
			TraceNumber: &trace,
		}, nil)

	mockRepo.EXPECT().
		ApplyPaymentUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.PaymentUpdate) (bool, error) {
			assert.Equal(t, payment.ID, update.PaymentID)
			assert.Equal(t, payment.PaymentScheduleID, update.ScheduleID)
			assert.Equal(t, models.PaymentStatusPending, update.ExpectedStatus)
			assert.Equal(t, models.PaymentStatusProcessing, update.NewStatus)
			assert.Equal(t, models.ScheduleStatusProcessing, update.ScheduleStatus)
			require.NotNil(t, update.TraceNumber)
			assert.Equal(t, trace, *update.TraceNumber)
			return true, nil
		})

	mockRepo.EXPECT().
		CountPaymentsByStatus(gomock.Any()).
		Return(map[string]int{"processing": 1}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalChecked)
	assert.Equal(t, 1, summary.UpdatedCount)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Equal(t, map[string]int{"processing": 1}, summary.StatusCounts)
}

func TestReconcilePayments_ProcessingToCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusProcessing)
	settlement := "2026-09-02"

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{
			PaymentID:      payment.ProviderReferenceID,
			Status:         "completed",
			SettlementDate: &settlement,
		}, nil)

	mockRepo.EXPECT().
		ApplyPaymentUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.PaymentUpdate) (bool, error) {
			assert.Equal(t, models.PaymentStatusCompleted, update.NewStatus)
			assert.Equal(t, models.ScheduleStatusCompleted, update.ScheduleStatus)
			require.NotNil(t, update.SettlementDate)
			assert.Equal(t, settlement, update.SettlementDate.Format("2006-01-02"))
			return true, nil
		})

	mockGW.EXPECT().
		PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentSettled, gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().
		CountPaymentsByStatus(gomock.Any()).
		Return(map[string]int{"completed": 1}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.UpdatedCount)
	assert.Equal(t, map[string]int{"completed": 1}, summary.StatusCounts)
}

func TestReconcilePayments_ReturnedPersistsStatusCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusProcessing)
	statusCode := "R01"

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{
			PaymentID:  payment.ProviderReferenceID,
			Status:     "returned",
			StatusCode: &statusCode,
		}, nil)

	mockRepo.EXPECT().
		ApplyPaymentUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.PaymentUpdate) (bool, error) {
			assert.Equal(t, models.PaymentStatusReturned, update.NewStatus)
			assert.Equal(t, models.ScheduleStatusFailed, update.ScheduleStatus)
			require.NotNil(t, update.StatusCode)
			assert.Equal(t, "R01", *update.StatusCode)
			return true, nil
		})

	mockGW.EXPECT().
		PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentFailed, gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{"returned": 1}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.UpdatedCount)
	assert.Equal(t, 0, summary.ErrorCount)
}

func TestReconcilePayments_SameStatusIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusProcessing)

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{
			PaymentID: payment.ProviderReferenceID,
			Status:    "processing",
		}, nil)

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{"processing": 1}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalChecked)
	assert.Equal(t, 0, summary.UpdatedCount)
	assert.Equal(t, 0, summary.ErrorCount)
}

func TestReconcilePayments_RegressionCountedAsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusProcessing)

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	// Provider misbehaves and reports the payment back at pending; the row
	// must be left alone
	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{
			PaymentID: payment.ProviderReferenceID,
			Status:    "pending",
		}, nil)

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{"processing": 1}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.UpdatedCount)
	assert.Equal(t, 1, summary.ErrorCount)
}

func TestReconcilePayments_PartialFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(3))

	good1 := openPayment(models.PaymentStatusPending)
	bad := openPayment(models.PaymentStatusPending)
	good2 := openPayment(models.PaymentStatusProcessing)

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{good1, bad, good2}, nil)

	trace := "TRC-7"
	settlement := "2026-09-03"

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), good1.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{Status: "processing", TraceNumber: &trace}, nil)
	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), bad.ProviderReferenceID).
		Return(nil, apperrors.Retriable(assert.AnError))
	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), good2.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{Status: "completed", SettlementDate: &settlement}, nil)

	mockRepo.EXPECT().ApplyPaymentUpdate(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentSettled, gomock.Any()).Return(nil)

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalChecked)
	assert.Equal(t, 2, summary.UpdatedCount)
	assert.Equal(t, 1, summary.ErrorCount)
}

func TestReconcilePayments_LostRaceNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusPending)
	trace := "TRC-9"

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{Status: "processing", TraceNumber: &trace}, nil)

	// Another worker already moved the row; guard does not match
	mockRepo.EXPECT().ApplyPaymentUpdate(gomock.Any(), gomock.Any()).Return(false, nil)

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.UpdatedCount)
	assert.Equal(t, 0, summary.ErrorCount)
}

func TestReconcilePayments_StoreErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW, _ := newTestUC(t, ctrl, reconcileConfig(1))

	payment := openPayment(models.PaymentStatusProcessing)
	settlement := "2026-09-02"

	mockRepo.EXPECT().
		GetPaymentsByStatus(gomock.Any(), gomock.Any()).
		Return([]models.Payment{payment}, nil)

	mockGW.EXPECT().
		GetPaymentStatus(gomock.Any(), payment.ProviderReferenceID).
		Return(&models.ProviderPaymentStatus{Status: "completed", SettlementDate: &settlement}, nil)

	mockRepo.EXPECT().
		ApplyPaymentUpdate(gomock.Any(), gomock.Any()).
		Return(false, apperrors.Store(assert.AnError))

	mockRepo.EXPECT().CountPaymentsByStatus(gomock.Any()).Return(map[string]int{}, nil)

	summary, err := uc.ReconcilePayments(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.TotalChecked)
	assert.Equal(t, 1, summary.ErrorCount)
}
