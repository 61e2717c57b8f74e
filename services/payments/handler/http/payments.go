package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/fintara/loanpay/internal/utils"
	"github.com/fintara/loanpay/services/payments"
)

// PaymentsHandler handles HTTP requests for payment operations
type PaymentsHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentsHandler creates a new payments HTTP handler
func NewPaymentsHandler(paymentUC payments.PaymentUC) *PaymentsHandler {
	return &PaymentsHandler{
		paymentUC: paymentUC,
	}
}

// CreateCompany handles company creation
func (h *PaymentsHandler) CreateCompany(c echo.Context) error {
	var company models.Company
	if err := c.Bind(&company); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.paymentUC.CreateCompany(c.Request().Context(), &company); err != nil {
		return errorResponse(c, err)
	}

	// Never echo banking details back
	company.BankAccount = ""
	company.BankRouting = ""

	return utils.SuccessResponse(c, http.StatusCreated, "Company created successfully", company)
}

// CreateLoan handles loan creation
func (h *PaymentsHandler) CreateLoan(c echo.Context) error {
	var loan models.Loan
	if err := c.Bind(&loan); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.paymentUC.CreateLoan(c.Request().Context(), &loan); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Loan created successfully", loan)
}

// CreateSchedule handles payment schedule creation
func (h *PaymentsHandler) CreateSchedule(c echo.Context) error {
	var schedule models.PaymentSchedule
	if err := c.Bind(&schedule); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.paymentUC.CreateSchedule(c.Request().Context(), &schedule); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Schedule created successfully", schedule)
}

// SubmitPayment handles a submission request for one schedule
func (h *PaymentsHandler) SubmitPayment(c echo.Context) error {
	scheduleID, err := uuid.Parse(c.Param("scheduleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	result, err := h.paymentUC.SubmitPayment(c.Request().Context(), scheduleID)
	if err != nil {
		logger.Error("Payment submission failed",
			logger.String("schedule_id", scheduleID.String()),
			logger.Err(err))
		return errorResponse(c, err)
	}

	if !result.Success {
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, result.Error)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment submitted successfully", result)
}

// Reconcile triggers a reconciliation run
func (h *PaymentsHandler) Reconcile(c echo.Context) error {
	summary, err := h.paymentUC.ReconcilePayments(c.Request().Context())
	if err != nil {
		logger.Error("Reconciliation run failed", logger.Err(err))
		if summary != nil {
			// The run aborted mid-way; report the partial counts alongside
			// the failure.
			return c.JSON(http.StatusInternalServerError, utils.Response{
				Success: false,
				Error:   err.Error(),
				Data:    summary,
			})
		}
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation completed", summary)
}

// GetPayment returns one payment by id
func (h *PaymentsHandler) GetPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", payment)
}

// ListProviderPayments returns provider-side payments for audit
func (h *PaymentsHandler) ListProviderPayments(c echo.Context) error {
	filter := models.ListPaymentsFilter{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		Status:    c.QueryParam("status"),
	}

	list, err := h.paymentUC.ListProviderPayments(c.Request().Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Provider payments retrieved successfully", list)
}

// errorResponse maps the error taxonomy onto HTTP status codes
func errorResponse(c echo.Context, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case apperrors.IsNotFound(err):
		return utils.NotFoundResponse(c, err.Error())
	case apperrors.IsRetriable(err):
		return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
