package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses with
// standardized error codes. Unrecognized errors become 500s and are
// logged; their detail is not leaked to the client.
func HandleAPIError(c *gin.Context, err error) {
	var verrs *dto.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(verrs.Details()))
		return
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		status, code := statusForSentinel(custom.Err)
		response := dto.NewErrorResponse(code, custom.Message)
		if custom.Details != nil {
			response = response.WithDetails(custom.Details)
		}
		c.JSON(status, response)
		return
	}

	status, code := statusForSentinel(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(status, dto.NewErrorResponse(code, "An internal error occurred"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(code, err.Error()))
}

// statusForSentinel maps sentinel errors to an HTTP status and error code.
func statusForSentinel(err error) (int, dto.ErrorCode) {
	switch {
	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeTokenExpired
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.ErrorCodeTokenInvalid

	// 403
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.ErrorCodeAccountDisabled

	// 404
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrAttendanceNotFound),
		errors.Is(err, apperrors.ErrFeeNotFound),
		errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrStudentDepartmentNotFound),
		errors.Is(err, apperrors.ErrCourseDeptNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	// 409: uniqueness
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentEmailExists),
		errors.Is(err, apperrors.ErrStudentNumberExists),
		errors.Is(err, apperrors.ErrStudentNationalIDExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrCourseCodeExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrAttendanceExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists

	// 409: capacity
	case errors.Is(err, apperrors.ErrCourseCapacityFull),
		errors.Is(err, apperrors.ErrCourseCapacityTooSmall):
		return http.StatusConflict, dto.ErrorCodeCapacityExceeded

	// 409: referential and state conflicts
	case errors.Is(err, apperrors.ErrDepartmentHasRelations),
		errors.Is(err, apperrors.ErrCourseHasRelations),
		errors.Is(err, apperrors.ErrStudentHasActiveEnrollments):
		return http.StatusConflict, dto.ErrorCodeReferencedResource
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrCourseInactive),
		errors.Is(err, apperrors.ErrFeeOverpayment),
		errors.Is(err, apperrors.ErrFeeAlreadySettled):
		return http.StatusConflict, dto.ErrorCodeResourceConflict

	// 400
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeInvalidInput
	}

	return http.StatusInternalServerError, dto.ErrorCodeInternalServer
}

// HandleBindingError converts gin binding failures into the standard
// validation envelope.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(bindingErrorDetails(err)))
}
