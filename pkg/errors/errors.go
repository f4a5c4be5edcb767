package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrClientNotFound         = errors.New("client not found")
	ErrLoanNotFound           = errors.New("loan not found")
	ErrLoanNotActive          = errors.New("loan is not active")
	ErrInvalidLoanTerms       = errors.New("invalid loan terms")
	ErrInvalidClassifierInput = errors.New("invalid classifier input")
	ErrPaymentExceedsBalance  = errors.New("payment exceeds total payable")
	ErrRenewalBelowBalance    = errors.New("renewal principal does not cover outstanding balance")
	ErrSalaryConfigNotFound   = errors.New("salary config not found")
	ErrSalaryConfigInactive   = errors.New("salary config is inactive")
	ErrAdvanceBelowMinimum    = errors.New("advance below configured minimum")
	ErrAdvanceLimitExceeded   = errors.New("advance limit exceeded")
	ErrSusuNotFound           = errors.New("susu not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeClientNotFound         = "CLIENT_NOT_FOUND"
	ErrCodeLoanNotFound           = "LOAN_NOT_FOUND"
	ErrCodeLoanNotActive          = "LOAN_NOT_ACTIVE"
	ErrCodeInvalidLoanTerms       = "INVALID_LOAN_TERMS"
	ErrCodeInvalidClassifierInput = "INVALID_CLASSIFIER_INPUT"
	ErrCodePaymentExceedsBalance  = "PAYMENT_EXCEEDS_BALANCE"
	ErrCodeRenewalBelowBalance    = "RENEWAL_BELOW_BALANCE"
	ErrCodeSalaryConfigNotFound   = "SALARY_CONFIG_NOT_FOUND"
	ErrCodeSalaryConfigInactive   = "SALARY_CONFIG_INACTIVE"
	ErrCodeAdvanceBelowMinimum    = "ADVANCE_BELOW_MINIMUM"
	ErrCodeAdvanceLimitExceeded   = "ADVANCE_LIMIT_EXCEEDED"
	ErrCodeSusuNotFound           = "SUSU_NOT_FOUND"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCacheError             = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapClientNotFound(clientID string) *BusinessError {
	return NewBusinessError(
		ErrCodeClientNotFound,
		fmt.Sprintf("Client with ID %s not found", clientID),
		ErrClientNotFound,
	)
}

func WrapLoanNotFound(loanID string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotFound,
		fmt.Sprintf("Loan with ID %s not found", loanID),
		ErrLoanNotFound,
	)
}

func WrapLoanNotActive(loanID, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotActive,
		fmt.Sprintf("Loan with ID %s is %s, not active", loanID, status),
		ErrLoanNotActive,
	)
}

func WrapInvalidLoanTerms(reason string) *BusinessError {
	return NewBusinessError(ErrCodeInvalidLoanTerms, reason, ErrInvalidLoanTerms)
}

func WrapInvalidClassifierInput(reason string) *BusinessError {
	return NewBusinessError(ErrCodeInvalidClassifierInput, reason, ErrInvalidClassifierInput)
}

func WrapPaymentExceedsBalance(amount, outstanding string) *BusinessError {
	return NewBusinessError(
		ErrCodePaymentExceedsBalance,
		fmt.Sprintf("Payment of %s exceeds outstanding balance %s", amount, outstanding),
		ErrPaymentExceedsBalance,
	)
}

func WrapRenewalBelowBalance(newPrincipal, outstanding string) *BusinessError {
	return NewBusinessError(
		ErrCodeRenewalBelowBalance,
		fmt.Sprintf("Renewal principal %s must exceed outstanding balance %s", newPrincipal, outstanding),
		ErrRenewalBelowBalance,
	)
}

func WrapSalaryConfigNotFound(collectorID string) *BusinessError {
	return NewBusinessError(
		ErrCodeSalaryConfigNotFound,
		fmt.Sprintf("No salary config for collector %s", collectorID),
		ErrSalaryConfigNotFound,
	)
}

func WrapSalaryConfigInactive(collectorID string) *BusinessError {
	return NewBusinessError(
		ErrCodeSalaryConfigInactive,
		fmt.Sprintf("Salary config for collector %s is inactive", collectorID),
		ErrSalaryConfigInactive,
	)
}

func WrapAdvanceBelowMinimum(amount, minimum string) *BusinessError {
	return NewBusinessError(
		ErrCodeAdvanceBelowMinimum,
		fmt.Sprintf("Advance of %s is below the minimum %s", amount, minimum),
		ErrAdvanceBelowMinimum,
	)
}

func WrapAdvanceLimitExceeded(requested, limit string) *BusinessError {
	return NewBusinessError(
		ErrCodeAdvanceLimitExceeded,
		fmt.Sprintf("Advance of %s exceeds the period limit %s", requested, limit),
		ErrAdvanceLimitExceeded,
	)
}

func WrapSusuNotFound(susuID string) *BusinessError {
	return NewBusinessError(
		ErrCodeSusuNotFound,
		fmt.Sprintf("Susu with ID %s not found", susuID),
		ErrSusuNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
