package pricing

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable rejection reason.
// The set is closed: callers can switch on it exhaustively.
type Code string

const (
	CodeNoMenuSelections   Code = "NO_MENU_SELECTIONS"
	CodeInvalidGuestCount  Code = "INVALID_GUEST_COUNT"
	CodeInvalidDistance    Code = "INVALID_DISTANCE"
	CodeInvalidMenuQty     Code = "INVALID_MENU_QUANTITY"
	CodeInvalidAddOnQty    Code = "INVALID_ADDON_QUANTITY"
	CodeProteinNotFound    Code = "PROTEIN_NOT_FOUND"
	CodeSideNotFound       Code = "SIDE_NOT_FOUND"
	CodeAddOnNotFound      Code = "ADDON_NOT_FOUND"
	CodeNoProductPricing   Code = "NO_PRODUCT_PRICING"
	CodeAddOnInactive      Code = "ADDON_INACTIVE"
	CodeInvalidHungerLevel Code = "INVALID_HUNGER_LEVEL"
	CodeInvalidTaxRate     Code = "INVALID_TAX_RATE"
	CodeInvalidDepositPct  Code = "INVALID_DEPOSIT_PERCENTAGE"
	CodeInvalidRadius      Code = "INVALID_DELIVERY_RADIUS"
	CodeInvalidFeePerMile  Code = "INVALID_FEE_PER_MILE"
	CodeInvalidMinimum     Code = "INVALID_MINIMUM_ORDER"
	CodeOutsideRadius      Code = "OUTSIDE_DELIVERY_RADIUS"
	CodeBelowMinimumOrder  Code = "BELOW_MINIMUM_ORDER"
	CodeBelowMinPerGuest   Code = "BELOW_MINIMUM_PER_GUEST"
	CodeCalculationError   Code = "CALCULATION_ERROR"
)

// Error carries a code the caller can branch on plus a
// human-readable message safe to show in the quote form.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rejection code from any error returned by
// this package. Unknown errors map to CALCULATION_ERROR so the
// caller's switch stays exhaustive.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeCalculationError
}

// ConfigIssue reports whether the error is the tenant's fault
// (bad rule configuration) rather than the customer's input.
// These should page an operator, not just render in the form.
func ConfigIssue(err error) bool {
	switch CodeOf(err) {
	case CodeInvalidTaxRate, CodeInvalidDepositPct, CodeInvalidRadius,
		CodeInvalidFeePerMile, CodeInvalidMinimum, CodeInvalidHungerLevel:
		return true
	}
	return false
}
