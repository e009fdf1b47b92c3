package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the envelope every failed API call returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption configures an ErrorResponse
type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalogue message for the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError reports one "field: message" detail per failed field,
// sorted by field name.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001 and hands it back for logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatus = map[ErrorCode]int{
	ValidationGeneral:          http.StatusBadRequest,
	ValidationRequiredField:    http.StatusBadRequest,
	ValidationInvalidFormat:    http.StatusBadRequest,
	ValidationOutOfRange:       http.StatusBadRequest,
	ValidationInvalidSKU:       http.StatusBadRequest,
	ValidationInvalidUUID:      http.StatusBadRequest,
	CustomerInvalidID:          http.StatusBadRequest,
	CatalogInvalidCategory:     http.StatusBadRequest,
	RecommendationInvalidLimit: http.StatusBadRequest,
	RecommendationMissingSeeds: http.StatusBadRequest,
	RecommendationTooManySeeds: http.StatusBadRequest,

	CustomerNotFound:        http.StatusNotFound,
	CatalogProductNotFound:  http.StatusNotFound,
	CatalogCategoryNotFound: http.StatusNotFound,

	SystemRateLimitExceeded: http.StatusTooManyRequests,

	SystemServiceUnavailable:  http.StatusServiceUnavailable,
	CatalogUnavailable:        http.StatusServiceUnavailable,
	RecommendationUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its HTTP status. Unlisted codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
