package models

// CreatePaymentRequest is the ACHQ payment creation payload
type CreatePaymentRequest struct {
	Amount            float64 `json:"amount"`
	AccountType       string  `json:"account_type"`     // checking or savings
	TransactionType   string  `json:"transaction_type"` // debit or credit
	RoutingNumber     string  `json:"routing_number"`
	AccountNumber     string  `json:"account_number"`
	AccountHolderName string  `json:"account_holder_name"`
	Memo              string  `json:"memo,omitempty"`
	ClientReferenceID string  `json:"client_reference_id,omitempty"`
}

// CreatePaymentResponse is the ACHQ payment creation response
type CreatePaymentResponse struct {
	Success                 bool    `json:"success"`
	PaymentID               string  `json:"payment_id"`
	Status                  string  `json:"status"`
	EstimatedSettlementDate string  `json:"estimated_settlement_date"`
	TraceNumber             *string `json:"trace_number"`
	Error                   string  `json:"error,omitempty"`
}

// ProviderPaymentStatus is the ACHQ payment status response
type ProviderPaymentStatus struct {
	PaymentID         string  `json:"payment_id"`
	Status            string  `json:"status"`
	ClientReferenceID *string `json:"client_reference_id,omitempty"`
	TraceNumber       *string `json:"trace_number,omitempty"`
	SettlementDate    *string `json:"settlement_date,omitempty"`
	StatusCode        *string `json:"status_code,omitempty"`
}

// ProviderPaymentList is the ACHQ payment listing response, used for
// audit/reporting only
type ProviderPaymentList struct {
	Payments   []ProviderPaymentStatus `json:"payments"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
}

// ListPaymentsFilter holds the optional ACHQ listing filters
type ListPaymentsFilter struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Status    string
}
