package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/circuitbreaker"
	"github.com/fintara/loanpay/internal/pkg/logger"
	"github.com/fintara/loanpay/internal/pkg/models"
)

const apiKeyHeader = "X-ACHQ-API-Key"

// CreatePayment submits a new ACH payment to the provider
func (g *PaymentGW) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create payment request: %w", err)
	}

	var response models.CreatePaymentResponse
	err = g.execute(ctx, func(ctx context.Context) error {
		endpoint := fmt.Sprintf("%s/payments/create", g.client.BaseURL)

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		g.setHeaders(httpReq)

		resp, err := g.client.HTTPClient.Do(httpReq)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("create payment request failed: %w", err))
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("failed to read response body: %w", err))
		}

		if err := g.classifyStatus(resp.StatusCode, respBody); err != nil {
			return err
		}

		if err := json.Unmarshal(respBody, &response); err != nil {
			g.logger.Error("Failed to parse create payment response",
				logger.String("body", string(respBody)))
			return fmt.Errorf("failed to parse create payment response: %w", err)
		}

		// The provider also reports input rejections as success:false in a
		// 200 body.
		if !response.Success {
			return apperrors.Validation("%s", response.Error)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// GetPaymentStatus retrieves the current provider-side status of a payment
func (g *PaymentGW) GetPaymentStatus(ctx context.Context, providerPaymentID string) (*models.ProviderPaymentStatus, error) {
	var response models.ProviderPaymentStatus
	err := g.execute(ctx, func(ctx context.Context) error {
		endpoint := fmt.Sprintf("%s/payments/%s", g.client.BaseURL, url.PathEscape(providerPaymentID))

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		g.setHeaders(httpReq)

		resp, err := g.client.HTTPClient.Do(httpReq)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("payment status request failed: %w", err))
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("failed to read response body: %w", err))
		}

		if resp.StatusCode == http.StatusNotFound {
			return apperrors.NotFound("provider payment %s", providerPaymentID)
		}
		if err := g.classifyStatus(resp.StatusCode, respBody); err != nil {
			return err
		}

		if err := json.Unmarshal(respBody, &response); err != nil {
			g.logger.Error("Failed to parse payment status response",
				logger.String("body", string(respBody)))
			return fmt.Errorf("failed to parse payment status response: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// ListPayments retrieves provider payments with optional filters, for
// audit/reporting
func (g *PaymentGW) ListPayments(ctx context.Context, filter models.ListPaymentsFilter) (*models.ProviderPaymentList, error) {
	var response models.ProviderPaymentList
	err := g.execute(ctx, func(ctx context.Context) error {
		endpoint := fmt.Sprintf("%s/payments", g.client.BaseURL)

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create HTTP request: %w", err)
		}
		g.setHeaders(httpReq)

		q := httpReq.URL.Query()
		if filter.StartDate != "" {
			q.Set("start_date", filter.StartDate)
		}
		if filter.EndDate != "" {
			q.Set("end_date", filter.EndDate)
		}
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		httpReq.URL.RawQuery = q.Encode()

		resp, err := g.client.HTTPClient.Do(httpReq)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("list payments request failed: %w", err))
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.Retriable(fmt.Errorf("failed to read response body: %w", err))
		}

		if err := g.classifyStatus(resp.StatusCode, respBody); err != nil {
			return err
		}

		if err := json.Unmarshal(respBody, &response); err != nil {
			return fmt.Errorf("failed to parse list payments response: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// execute runs a provider call through the circuit breaker. A refusing
// breaker is reported as retriable so the item stays eligible for the next
// pass.
func (g *PaymentGW) execute(ctx context.Context, fn func(context.Context) error) error {
	err := g.breaker.Execute(ctx, fn)
	if errors.Is(err, circuitbreaker.ErrOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return apperrors.Retriable(err)
	}
	return err
}

// setHeaders sets the common ACHQ request headers
func (g *PaymentGW) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, g.apiKey)
}

// classifyStatus maps non-2xx provider responses onto the error taxonomy.
// Client errors carry the provider's own error text when the body has one.
func (g *PaymentGW) classifyStatus(statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode >= 500:
		return apperrors.Retriable(fmt.Errorf("provider returned status %d", statusCode))
	default:
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return apperrors.Validation("%s", errResp.Error)
		}
		return apperrors.Validation("provider returned status %d", statusCode)
	}
}
