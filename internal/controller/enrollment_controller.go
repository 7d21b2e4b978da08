package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// EnrollmentController handles the learner-facing enrollment and
// progress endpoints.
type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// @Summary Enroll in course
// @Description Enrolls the calling learner into a published course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} util.Response
// @Router /api/learner/courses/{id}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(util.MustParseUint(ctx.Param("id")), principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, enrollment)
}

// @Summary List own enrollments
// @Description Lists the calling learner's enrollments with progress
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/learner/enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollments, err := c.EnrollmentService.ListByUser(principal.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

type progressRequest struct {
	LessonID         uint `json:"lesson_id" binding:"required"`
	Completed        bool `json:"completed"`
	TimeSpentSeconds int  `json:"time_spent_seconds" binding:"omitempty,min=0"`
}

// @Summary Record lesson progress
// @Description Upserts the learner's progress on one lesson and recomputes course completion
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param progress body progressRequest true "Progress update"
// @Success 200 {object} util.Response
// @Router /api/learner/courses/{id}/progress [post]
func (c *EnrollmentController) RecordProgress(ctx *gin.Context) {
	principal := util.GetPrincipal(ctx)
	if principal == nil {
		util.Unauthorized(ctx)
		return
	}

	var req progressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.EnrollmentService.UpsertProgress(util.MustParseUint(ctx.Param("id")), principal.UserID, service.ProgressInput{
		LessonID:         req.LessonID,
		Completed:        req.Completed,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
