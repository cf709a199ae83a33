package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/app/services"
	"github.com/kaan/studenthub/internal/middleware"
	"github.com/kaan/studenthub/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// Create godoc
// @Summary Publish an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.AnnouncementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), &req, middleware.UserIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// GetAll godoc
// @Summary List active announcements ordered by priority then recency
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.AnnouncementListResponse
// @Router /announcements [get]
func (c *AnnouncementController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	announcements, err := c.announcementService.GetActive(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Announcement details"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [put]
func (c *AnnouncementController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	announcement, err := c.announcementService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcement)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.announcementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "announcement deleted"})
}
