package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
)

func TestStatusForSentinel(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeTokenExpired},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeTokenInvalid},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"fee not found", apperrors.ErrFeeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrStudentEmailExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate enrollment", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course full", apperrors.ErrCourseCapacityFull, http.StatusConflict, dto.ErrorCodeCapacityExceeded},
		{"capacity below enrollment", apperrors.ErrCourseCapacityTooSmall, http.StatusConflict, dto.ErrorCodeCapacityExceeded},
		{"department in use", apperrors.ErrDepartmentHasRelations, http.StatusConflict, dto.ErrorCodeReferencedResource},
		{"overpayment", apperrors.ErrFeeOverpayment, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"settled fee", apperrors.ErrFeeAlreadySettled, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeInvalidInput},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusForSentinel(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(ctx, err)
	return w
}

func TestHandleAPIError(t *testing.T) {
	t.Run("validation errors include field details", func(t *testing.T) {
		verrs := dto.NewValidationErrors()
		verrs.Add("gpa", "must be between 0 and 4.00")

		w := performWithError(verrs)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.ErrorCodeValidationFailed, response.Error.Code)
		assert.Contains(t, response.Error.Details, "gpa")
	})

	t.Run("sentinel errors map to their status", func(t *testing.T) {
		w := performWithError(apperrors.ErrCourseCapacityFull)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown errors do not leak detail", func(t *testing.T) {
		w := performWithError(errors.New("pq: something sensitive"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "sensitive")
	})

	t.Run("custom errors keep their message", func(t *testing.T) {
		w := performWithError(apperrors.NewBadRequestError("unknown category"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown category")
	})
}
