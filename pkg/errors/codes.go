package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeTimeout            ErrorCode = "COMMON_006"
	ErrCodeValidation         ErrorCode = "COMMON_007"
	ErrCodeSerialization      ErrorCode = "COMMON_008"
	ErrCodeExternalService    ErrorCode = "COMMON_009"
)

// Analysis engine error codes.
const (
	ErrCodeProfileInvalid        ErrorCode = "ANL_001"
	ErrCodeCategoryUnmapped      ErrorCode = "ANL_002"
	ErrCodeScoreOutOfRange       ErrorCode = "ANL_003"
	ErrCodeValuationFailed       ErrorCode = "ANL_004"
	ErrCodeInsufficientData      ErrorCode = "ANL_005"
	ErrCodeReportAssemblyFailed  ErrorCode = "ANL_006"
	ErrCodeImprovementPlanFailed ErrorCode = "ANL_007"
)

// Scoring gateway error codes.
const (
	ErrCodeGatewayUnavailable ErrorCode = "GWY_001"
	ErrCodeGatewayTimeout     ErrorCode = "GWY_002"
	ErrCodeGatewayBadPayload  ErrorCode = "GWY_003"
	ErrCodeGatewayBusy        ErrorCode = "GWY_004"
)

// Sentinel codes.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,

	ErrCodeProfileInvalid:        http.StatusUnprocessableEntity,
	ErrCodeCategoryUnmapped:      http.StatusUnprocessableEntity,
	ErrCodeScoreOutOfRange:       http.StatusInternalServerError,
	ErrCodeValuationFailed:       http.StatusInternalServerError,
	ErrCodeInsufficientData:      http.StatusUnprocessableEntity,
	ErrCodeReportAssemblyFailed:  http.StatusInternalServerError,
	ErrCodeImprovementPlanFailed: http.StatusInternalServerError,

	ErrCodeGatewayUnavailable: http.StatusBadGateway,
	ErrCodeGatewayTimeout:     http.StatusGatewayTimeout,
	ErrCodeGatewayBadPayload:  http.StatusBadGateway,
	ErrCodeGatewayBusy:        http.StatusServiceUnavailable,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeExternalService:    "external service error",

	ErrCodeProfileInvalid:        "business profile is invalid",
	ErrCodeCategoryUnmapped:      "categorical value has no mapping",
	ErrCodeScoreOutOfRange:       "computed score out of range",
	ErrCodeValuationFailed:       "valuation computation failed",
	ErrCodeInsufficientData:      "insufficient data for analysis",
	ErrCodeReportAssemblyFailed:  "failed to assemble analysis report",
	ErrCodeImprovementPlanFailed: "failed to build improvement plan",

	ErrCodeGatewayUnavailable: "scoring gateway unavailable",
	ErrCodeGatewayTimeout:     "scoring gateway timed out",
	ErrCodeGatewayBadPayload:  "scoring gateway returned a malformed payload",
	ErrCodeGatewayBusy:        "scoring gateway is busy",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
