package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/middleware"
)

// DashboardController handles dashboard endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Get headline entity counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStats
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// Overview godoc
// @Summary Get the full dashboard payload
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardOverview
// @Router /dashboard/overview [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	overview, err := c.dashboardService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// AttendanceChart godoc
// @Summary Get per-day attendance counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days (default 7, max 90)"
// @Param courseId query int false "Course filter"
// @Success 200 {object} dto.AttendanceChartResponse
// @Router /dashboard/attendance-chart [get]
func (c *DashboardController) AttendanceChart(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	courseID, _ := strconv.ParseInt(ctx.DefaultQuery("courseId", "0"), 10, 64)

	chart, err := c.dashboardService.AttendanceChart(ctx.Request.Context(), days, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, chart)
}
