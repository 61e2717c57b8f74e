package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/crypto"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/fintara/loanpay/services/payments/repository"
)

func setupMockRepo(t *testing.T) (*repository.LedgerRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	cipher, err := crypto.NewCipher("test-passphrase", "test-salt")
	require.NoError(t, err)

	return repository.NewLedgerRepo(&models.Config{}, db, cipher), mock
}

func paymentRows(payment *models.Payment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "payment_schedule_id", "amount", "status", "provider_reference_id",
		"trace_number", "status_code", "settlement_date", "created_at", "updated_at",
	}).AddRow(
		payment.ID, payment.PaymentScheduleID, payment.Amount, payment.Status,
		payment.ProviderReferenceID, payment.TraceNumber, payment.StatusCode,
		payment.SettlementDate, payment.CreatedAt, payment.UpdatedAt,
	)
}

func TestGetActivePayment_Found(t *testing.T) {
	repo, mock := setupMockRepo(t)

	scheduleID := uuid.New()
	payment := &models.Payment{
		ID:                  uuid.New(),
		PaymentScheduleID:   scheduleID,
		Amount:              1000.00,
		Status:              models.PaymentStatusPending,
		ProviderReferenceID: "ACHQ-1",
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	mock.ExpectQuery("(?s)SELECT (.+) FROM payments").
		WithArgs(scheduleID, models.PaymentStatusFailed, models.PaymentStatusReturned).
		WillReturnRows(paymentRows(payment))

	got, err := repo.GetActivePayment(context.Background(), scheduleID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, payment.ID, got.ID)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActivePayment_NoneIsNotAnError(t *testing.T) {
	repo, mock := setupMockRepo(t)

	scheduleID := uuid.New()
	mock.ExpectQuery("(?s)SELECT (.+) FROM payments").
		WithArgs(scheduleID, models.PaymentStatusFailed, models.PaymentStatusReturned).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetActivePayment(context.Background(), scheduleID)

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentWithSchedule_CommitsBothWrites(t *testing.T) {
	repo, mock := setupMockRepo(t)

	scheduleID := uuid.New()
	payment := &models.Payment{
		PaymentScheduleID:   scheduleID,
		Amount:              1000.00,
		Status:              models.PaymentStatusPending,
		ProviderReferenceID: "ACHQ-1",
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(sqlmock.AnyArg(), scheduleID, 1000.00, models.PaymentStatusPending,
			"ACHQ-1", nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_schedules SET status")).
		WithArgs(models.ScheduleStatusProcessing, scheduleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreatePaymentWithSchedule(context.Background(), payment, models.ScheduleStatusProcessing)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentWithSchedule_RollsBackOnScheduleFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	payment := &models.Payment{
		PaymentScheduleID:   uuid.New(),
		Amount:              1000.00,
		Status:              models.PaymentStatusPending,
		ProviderReferenceID: "ACHQ-1",
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_schedules SET status")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreatePaymentWithSchedule(context.Background(), payment, models.ScheduleStatusProcessing)

	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentUpdate_Applies(t *testing.T) {
	repo, mock := setupMockRepo(t)

	trace := "TRC-1"
	update := &models.PaymentUpdate{
		PaymentID:      uuid.New(),
		ScheduleID:     uuid.New(),
		ExpectedStatus: models.PaymentStatusPending,
		NewStatus:      models.PaymentStatusProcessing,
		ScheduleStatus: models.ScheduleStatusProcessing,
		TraceNumber:    &trace,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(update.NewStatus, trace, nil, nil, update.PaymentID, update.ExpectedStatus).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_schedules SET status")).
		WithArgs(update.ScheduleStatus, update.ScheduleID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.ApplyPaymentUpdate(context.Background(), update)

	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentUpdate_GuardMissIsNotAnError(t *testing.T) {
	repo, mock := setupMockRepo(t)

	update := &models.PaymentUpdate{
		PaymentID:      uuid.New(),
		ScheduleID:     uuid.New(),
		ExpectedStatus: models.PaymentStatusProcessing,
		NewStatus:      models.PaymentStatusCompleted,
		ScheduleStatus: models.ScheduleStatusCompleted,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	applied, err := repo.ApplyPaymentUpdate(context.Background(), update)

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentsByStatus(t *testing.T) {
	repo, mock := setupMockRepo(t)

	payment := &models.Payment{
		ID:                  uuid.New(),
		PaymentScheduleID:   uuid.New(),
		Amount:              500.00,
		Status:              models.PaymentStatusProcessing,
		ProviderReferenceID: "ACHQ-2",
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	mock.ExpectQuery("(?s)SELECT (.+) FROM payments WHERE status IN").
		WithArgs(models.PaymentStatusPending, models.PaymentStatusProcessing).
		WillReturnRows(paymentRows(payment))

	got, err := repo.GetPaymentsByStatus(context.Background(), []models.PaymentStatus{
		models.PaymentStatusPending,
		models.PaymentStatusProcessing,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, payment.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountPaymentsByStatus(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("completed", 3).
		AddRow("processing", 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*)")).
		WillReturnRows(rows)

	counts, err := repo.CountPaymentsByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"completed": 3, "processing": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
