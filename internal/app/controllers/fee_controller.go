package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/middleware"
)

// FeeController handles fee endpoints
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new fee controller
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// Create godoc
// @Summary Create a fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee details"
// @Success 201 {object} dto.FeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fees [post]
func (c *FeeController) Create(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	fee, err := c.feeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, fee)
}

// GetAll godoc
// @Summary List fee records with totals
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (PEN, PAR, PAI, OVD, WAI)"
// @Param feeType query string false "Type filter (TUI, LAB, LIB, EXM, HOS, OTH)"
// @Param q query string false "Search over student name and number"
// @Param studentId query int false "Student filter"
// @Param academicYear query string false "Academic year filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.FeeListResponse
// @Router /fees [get]
func (c *FeeController) GetAll(ctx *gin.Context) {
	var filter dto.FeeFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	fees, err := c.feeService.GetAll(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// GetByID godoc
// @Summary Get a fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.FeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fees/{id} [get]
func (c *FeeController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fee, err := c.feeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// Update godoc
// @Summary Update a fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.UpdateFeeRequest true "Fee details"
// @Success 200 {object} dto.FeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fees/{id} [put]
func (c *FeeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	fee, err := c.feeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// RecordPayment godoc
// @Summary Record a payment against a fee
// @Description Payments may not exceed the outstanding balance. The status is recomputed and a transaction reference is generated.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.FeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fees/{id}/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	fee, err := c.feeService.RecordPayment(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// Delete godoc
// @Summary Delete a fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fees/{id} [delete]
func (c *FeeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feeService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "fee deleted"})
}
