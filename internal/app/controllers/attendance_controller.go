package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/middleware"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetAll godoc
// @Summary List attendance records
// @Description The date defaults to today when no other filter is given.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param courseId query int false "Course filter"
// @Param studentId query int false "Student filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.AttendanceListResponse
// @Router /attendance [get]
func (c *AttendanceController) GetAll(ctx *gin.Context) {
	var filter dto.AttendanceFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	records, err := c.attendanceService.GetAll(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary Record attendance for one student
// @Description A second record for the same student, course and date is a conflict.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /attendance [post]
func (c *AttendanceController) Create(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.Create(ctx.Request.Context(), &req, middleware.UserIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// BulkRecord godoc
// @Summary Record attendance for a whole course on one date
// @Description Existing records for the same student, course and date are updated in place.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkAttendanceRequest true "Course, date and entries"
// @Success 200 {object} dto.BulkAttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /attendance/bulk [post]
func (c *AttendanceController) BulkRecord(ctx *gin.Context) {
	var req dto.BulkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.attendanceService.BulkRecord(ctx.Request.Context(), &req, middleware.UserIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attendance/{id} [delete]
func (c *AttendanceController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.attendanceService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "attendance record deleted"})
}
