package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/middleware"
)

// parseIDParam extracts a positive integer path parameter. A false
// return means the response has already been written.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		verrs := dto.NewValidationErrors()
		verrs.Add(name, "must be a positive integer")
		middleware.HandleAPIError(ctx, verrs)
		return 0, false
	}
	return id, true
}
