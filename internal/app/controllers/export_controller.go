package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/repositories"
	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/middleware"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController streams xlsx workbooks
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new export controller
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// Students godoc
// @Summary Download students as an xlsx workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param q query string false "Search over names, email and student number"
// @Param departmentId query int false "Department filter"
// @Success 200 {file} binary
// @Router /exports/students.xlsx [get]
func (c *ExportController) Students(ctx *gin.Context) {
	search := ctx.Query("q")
	departmentID, _ := strconv.ParseInt(ctx.DefaultQuery("departmentId", "0"), 10, 64)

	buffer, err := c.exportService.StudentsWorkbook(ctx.Request.Context(), search, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("students-%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

// Attendance godoc
// @Summary Download attendance records as an xlsx workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param courseId query int false "Course filter"
// @Success 200 {file} binary
// @Router /exports/attendance.xlsx [get]
func (c *ExportController) Attendance(ctx *gin.Context) {
	filter := repositories.AttendanceFilter{}
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := helpers.ParseDate(dateStr)
		if err != nil {
			verrs := dto.NewValidationErrors()
			verrs.Add("date", "must be a date in YYYY-MM-DD form")
			middleware.HandleAPIError(ctx, verrs)
			return
		}
		filter.Date = &date
	}
	filter.CourseID, _ = strconv.ParseInt(ctx.DefaultQuery("courseId", "0"), 10, 64)

	buffer, err := c.exportService.AttendanceWorkbook(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}
