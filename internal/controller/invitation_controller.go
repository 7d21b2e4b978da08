package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InvitationController struct {
	InvitationService *service.InvitationService
}

func NewInvitationController(invitationService *service.InvitationService) *InvitationController {
	return &InvitationController{InvitationService: invitationService}
}

type issueInvitationsRequest struct {
	Emails []string `json:"emails" binding:"required,min=1,dive,email"`
}

// @Summary Issue invitations
// @Description Issues or refreshes invitations for a list of email addresses to an owned course
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param invitations body issueInvitationsRequest true "Recipient emails"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/invitations [post]
func (c *InvitationController) IssueInvitations(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req issueInvitationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	invitations, err := c.InvitationService.Issue(util.MustParseUint(ctx.Param("id")), principal.UserID, req.Emails)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, invitations)
}

// @Summary List invitations
// @Description Lists invitations issued for an owned course
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/invitations [get]
func (c *InvitationController) ListInvitations(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	invitations, err := c.InvitationService.ListByCourse(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, invitations)
}
