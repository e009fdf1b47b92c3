package errors

// ErrorCode represents a standardized error code for API responses
type ErrorCode string

// Validation error codes
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidSKU    ErrorCode = "VALIDATION_005"
	ValidationInvalidUUID   ErrorCode = "VALIDATION_006"
)

// Customer error codes
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_002"
)

// Catalog error codes
const (
	CatalogProductNotFound  ErrorCode = "CATALOG_001"
	CatalogInvalidCategory  ErrorCode = "CATALOG_002"
	CatalogUnavailable      ErrorCode = "CATALOG_003"
	CatalogCategoryNotFound ErrorCode = "CATALOG_004"
)

// Recommendation error codes
const (
	RecommendationInvalidLimit ErrorCode = "RECOMMENDATION_001"
	RecommendationMissingSeeds ErrorCode = "RECOMMENDATION_002"
	RecommendationTooManySeeds ErrorCode = "RECOMMENDATION_003"
	RecommendationUnavailable  ErrorCode = "RECOMMENDATION_004"
)

// System error codes
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default user-facing messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Value is out of acceptable range",
	ValidationInvalidSKU:    "Invalid product SKU",
	ValidationInvalidUUID:   "Invalid identifier format",

	CustomerNotFound:  "Customer not found",
	CustomerInvalidID: "Invalid customer ID format",

	CatalogProductNotFound:  "Product not found",
	CatalogInvalidCategory:  "Invalid product category",
	CatalogUnavailable:      "Product catalog is temporarily unavailable",
	CatalogCategoryNotFound: "Category not found",

	RecommendationInvalidLimit: "Recommendation limit must be between 1 and 50",
	RecommendationMissingSeeds: "At least one seed SKU is required",
	RecommendationTooManySeeds: "Too many seed SKUs in request",
	RecommendationUnavailable:  "Recommendations are temporarily unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the given error code is defined
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
