package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController handles the admin-facing user management endpoints.
// Role changes and deletions re-check the caller's role against the
// identity provider so a stale session cannot perform them.
type UserController struct {
	UserService     *service.UserService
	IdentityService *service.IdentityService
}

func NewUserController(userService *service.UserService, identityService *service.IdentityService) *UserController {
	return &UserController{
		UserService:     userService,
		IdentityService: identityService,
	}
}

// requireLiveAdmin rejects the request unless the identity provider
// still reports the caller as an admin right now.
func (c *UserController) requireLiveAdmin(ctx *gin.Context, principal *util.Principal) bool {
	role, err := c.IdentityService.FetchLiveRole(ctx.Request.Context(), principal.ExternalID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return false
	}
	if role != model.Admin {
		util.Forbidden(ctx)
		return false
	}
	return true
}

// @Summary List users
// @Description Lists users with optional role and name/email filters
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role" Enums(admin, instructor, learner)
// @Param search query string false "Name or email substring filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	limit, offset := pageParams(ctx)
	users, total, err := c.UserService.ListUsers(repository.UserFilter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
	}, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:   users,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// @Summary Get user
// @Description Fetches one user by internal ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetUserByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Avatar   *string `json:"avatar"`
	Disabled *bool   `json:"disabled"`
}

// @Summary Update user
// @Description Applies a partial update to a user's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body updateUserRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(util.MustParseUint(ctx.Param("id")), service.UpdateUserInput{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Disabled: req.Disabled,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

type changeRoleRequest struct {
	Role       string `json:"role" binding:"required,oneof=admin instructor learner"`
	EnrollCode string `json:"enroll_code"`
}

// @Summary Change user role
// @Description Moves a user to a new role; granting admin requires the enrollment code
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param role body changeRoleRequest true "New role"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) ChangeRole(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}
	if !c.requireLiveAdmin(ctx, principal) {
		return
	}

	var req changeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.ChangeRole(util.MustParseUint(ctx.Param("id")), req.Role, req.EnrollCode)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary Delete user
// @Description Removes a user together with enrollments, progress, reviews and invitations
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}
	if !c.requireLiveAdmin(ctx, principal) {
		return
	}

	if err := c.UserService.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
