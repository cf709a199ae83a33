package dto

// ErrorCode defines standardized error codes for API responses
type ErrorCode string

// Error code constants
const (
	// Authentication errors (AUTH_xxx)
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"
	ErrorCodeAccountDisabled    ErrorCode = "AUTH_006"

	// Resource errors (RES_xxx)
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeResourceConflict      ErrorCode = "RES_003"
	ErrorCodeCapacityExceeded      ErrorCode = "RES_004"
	ErrorCodeReferencedResource    ErrorCode = "RES_005"

	// Validation errors (VAL_xxx)
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidInput     ErrorCode = "VAL_002"

	// Server errors (SRV_xxx)
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorDetail contains detailed error information
type ErrorDetail struct {
	Code    ErrorCode              `json:"code" example:"RES_001"`
	Message string                 `json:"message" example:"Resource not found"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the standard error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse creates an ErrorResponse with the given code and message
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithDetails attaches structured details to the error response.
func (r ErrorResponse) WithDetails(details map[string]interface{}) ErrorResponse {
	r.Error.Details = details
	return r
}

// ValidationErrors collects field-level validation failures.
type ValidationErrors struct {
	Fields map[string]string
}

// NewValidationErrors creates an empty validation error collection.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: map[string]string{}}
}

// Add records a failure for a field. The first message per field wins.
func (v *ValidationErrors) Add(field, message string) {
	if _, ok := v.Fields[field]; !ok {
		v.Fields[field] = message
	}
}

// HasErrors reports whether any field failed.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	return "validation failed"
}

// Details converts the collection into an error-detail map.
func (v *ValidationErrors) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(v.Fields))
	for field, message := range v.Fields {
		details[field] = message
	}
	return details
}
