package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fintara/loanpay/internal/pkg/middleware"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/fintara/loanpay/services/payments"
	httpHandler "github.com/fintara/loanpay/services/payments/handler/http"
)

// Handler combines all handlers for the payments service
type Handler struct {
	paymentsHTTP *httpHandler.PaymentsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payments.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentsHTTP: httpHandler.NewPaymentsHandler(paymentUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Ops surface, API key required
	ops := e.Group("", middleware.ValidateAPIKey(h.cfg.APIKey.OpsKey))

	ops.POST("/companies", h.paymentsHTTP.CreateCompany)
	ops.POST("/loans", h.paymentsHTTP.CreateLoan)
	ops.POST("/schedules", h.paymentsHTTP.CreateSchedule)
	ops.POST("/schedules/:scheduleID/submit", h.paymentsHTTP.SubmitPayment)
	ops.POST("/reconcile", h.paymentsHTTP.Reconcile)
	ops.GET("/payments/:paymentID", h.paymentsHTTP.GetPayment)
	ops.GET("/provider/payments", h.paymentsHTTP.ListProviderPayments)
}
