package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// @Summary Own badges
// @Description Lists badge rules with the calling learner's progress toward each
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/learner/badges [get]
func (c *BadgeController) MyBadges(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.EarnedBadges(principal.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}
