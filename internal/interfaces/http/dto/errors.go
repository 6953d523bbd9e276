package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
)

// Ledger error codes. These surface the payment allocator's validation
// failures to API clients.
const (
	ErrCodeNoActiveDebt        = "NO_ACTIVE_DEBT"
	ErrCodeOverpaymentRejected = "OVERPAYMENT_REJECTED"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	ErrCodeNoActiveDebt:        http.StatusUnprocessableEntity,
	ErrCodeOverpaymentRejected: http.StatusUnprocessableEntity,
	"CLIENT_INACTIVE":          http.StatusUnprocessableEntity,
	"INVALID_ADJUSTMENT":       http.StatusUnprocessableEntity,
	"INVALID_STATE":            http.StatusUnprocessableEntity,

	// Domain validation failures -> 400 Bad Request
	"INVALID_AMOUNT":        http.StatusBadRequest,
	"INVALID_PRINCIPAL":     http.StatusBadRequest,
	"INVALID_THRESHOLDS":    http.StatusBadRequest,
	"INVALID_CLIENT":        http.StatusBadRequest,
	"INVALID_CLIENT_NAME":   http.StatusBadRequest,
	"INVALID_PROVIDER_NAME": http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":  http.StatusBadRequest,
	"INVALID_QUANTITY":      http.StatusBadRequest,
	"INVALID_ACTOR":         http.StatusBadRequest,
	"INVALID_SUBJECT_TYPE":  http.StatusBadRequest,
	"INVALID_INPUT":         http.StatusBadRequest,

	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ValidationDetail describes one field-level validation failure
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationErrorResponse creates a validation error response with details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      ErrCodeValidation,
			Message:   message,
			RequestID: requestID,
		},
		Data: details,
	}
}
