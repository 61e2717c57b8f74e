package usecase

import (
	"github.com/fintara/loanpay/internal/pkg/apperrors"
	"github.com/fintara/loanpay/internal/pkg/models"
)

var validAccountTypes = map[string]bool{
	"checking": true,
	"savings":  true,
}

var validTransactionTypes = map[string]bool{
	"debit":  true,
	"credit": true,
}

// validateCreatePayment checks a provider request before it leaves the
// service, mirroring the provider's own input rules so bad requests fail
// fast without burning an API call
func validateCreatePayment(req *models.CreatePaymentRequest) error {
	if req.Amount <= 0 {
		return apperrors.Validation("amount must be greater than zero")
	}
	if !validAccountTypes[req.AccountType] {
		return apperrors.Validation("account_type must be checking or savings")
	}
	if !validTransactionTypes[req.TransactionType] {
		return apperrors.Validation("transaction_type must be debit or credit")
	}
	if len(req.RoutingNumber) != 9 || !isDigits(req.RoutingNumber) {
		return apperrors.Validation("routing_number must be exactly 9 digits")
	}
	if len(req.AccountNumber) < 4 || len(req.AccountNumber) > 17 {
		return apperrors.Validation("account_number must be 4 to 17 characters")
	}
	if req.AccountHolderName == "" {
		return apperrors.Validation("account_holder_name is required")
	}
	return nil
}

// validateCompany checks company banking details before they are persisted
func validateCompany(company *models.Company) error {
	if company.Name == "" {
		return apperrors.Validation("company name is required")
	}
	if len(company.BankRouting) != 9 || !isDigits(company.BankRouting) {
		return apperrors.Validation("bank_routing must be exactly 9 digits")
	}
	if len(company.BankAccount) < 4 || len(company.BankAccount) > 17 {
		return apperrors.Validation("bank_account must be 4 to 17 characters")
	}
	if company.BankAccountType != "" && !validAccountTypes[company.BankAccountType] {
		return apperrors.Validation("bank_account_type must be checking or savings")
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
