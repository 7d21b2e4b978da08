package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Instructor dashboard
// @Description Aggregates course, enrollment and review statistics for the calling instructor
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/instructor/dashboard [get]
func (c *DashboardController) InstructorStats(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.DashboardService.GetInstructorStats(ctx.Request.Context(), principal.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
