package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Payment protocol errors. Match them with errors.Is; wrap them with fmt.Errorf("%w: ...") to add detail.
var (
	ErrUserRejectedSignature = &Failure{Code: http.StatusPaymentRequired, Message: "user rejected signature"}
	ErrGatewayUnavailable    = &Failure{Code: http.StatusServiceUnavailable, Message: "payment gateway unavailable"}
	ErrInsufficientBalance   = &Failure{Code: http.StatusPaymentRequired, Message: "insufficient balance"}
	ErrSubmission            = &Failure{Code: http.StatusBadGateway, Message: "settlement rejected transfer"}
	ErrTransferFailed        = &Failure{Code: http.StatusConflict, Message: "transfer failed"}
	ErrAmountMismatch        = &Failure{Code: http.StatusConflict, Message: "settled amount does not match booking total"}
	ErrPollingTimeout        = &Failure{Code: http.StatusGatewayTimeout, Message: "transfer confirmation timed out"}
	ErrConflict              = &Failure{Code: http.StatusConflict, Message: "booking was modified concurrently"}
	ErrNotEligible           = &Failure{Code: http.StatusUnprocessableEntity, Message: "booking is not eligible"}
	ErrAlreadyReleased       = &Failure{Code: http.StatusConflict, Message: "escrow already released"}
	ErrInvalidDateRange      = &Failure{Code: http.StatusBadRequest, Message: "check-out must be after check-in"}
	ErrOutOfPolicy           = &Failure{Code: http.StatusUnprocessableEntity, Message: "request is outside the property policy"}
	ErrNotFound              = &Failure{Code: http.StatusNotFound, Message: "not found"}
)

// protocolKinds name the protocol errors for clients that branch on them. Two 402s
// (declined signature, short balance) need different handling in a wallet.
var protocolKinds = []struct {
	err  error
	kind string
}{
	{ErrUserRejectedSignature, "user_rejected_signature"},
	{ErrGatewayUnavailable, "gateway_unavailable"},
	{ErrInsufficientBalance, "insufficient_balance"},
	{ErrSubmission, "submission_error"},
	{ErrTransferFailed, "transfer_failed"},
	{ErrAmountMismatch, "amount_mismatch"},
	{ErrPollingTimeout, "polling_timeout"},
	{ErrConflict, "conflict"},
	{ErrNotEligible, "not_eligible"},
	{ErrAlreadyReleased, "already_released"},
	{ErrInvalidDateRange, "invalid_date_range"},
	{ErrOutOfPolicy, "out_of_policy"},
	{ErrNotFound, "not_found"},
}

// Kind returns the protocol error name wrapped by err, or empty for anything else.
func Kind(err error) string {
	for _, known := range protocolKinds {
		if errors.Is(err, known.err) {
			return known.kind
		}
	}

	return ""
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
